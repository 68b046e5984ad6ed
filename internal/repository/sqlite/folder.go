package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/xid"

	"codetrove/internal/apperror"
	"codetrove/internal/model"
)

// CreateFolder inserts a new folder, assigning its canonical id. A
// client-supplied optimistic id is stored and echoed back untouched.
func (db *DB) CreateFolder(ctx context.Context, folder *model.Folder) error {
	folder.ID = xid.New().String()
	if folder.SnippetIDs == nil {
		folder.SnippetIDs = []string{}
	}

	ids, err := json.Marshal(folder.SnippetIDs)
	if err != nil {
		return fmt.Errorf("sqlite: encoding membership set: %w", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO folders (id, local_id, name, snippet_ids)
		 VALUES (?, ?, ?, ?)`,
		folder.ID,
		folder.LocalID,
		folder.Name,
		string(ids),
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating folder: %w", err)
	}

	return nil
}

// GetFolderByID retrieves a single folder by its canonical id.
func (db *DB) GetFolderByID(ctx context.Context, id string) (*model.Folder, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, local_id, name, snippet_ids
		 FROM folders
		 WHERE id = ?`,
		id,
	)

	folder, err := scanFolder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("folder", id)
		}
		return nil, fmt.Errorf("sqlite: getting folder %s: %w", id, err)
	}

	return folder, nil
}

// ListFolders returns every folder in insertion order.
func (db *DB) ListFolders(ctx context.Context) ([]model.Folder, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, local_id, name, snippet_ids
		 FROM folders
		 ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing folders: %w", err)
	}
	defer rows.Close()

	folders := []model.Folder{}
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scanning folder: %w", err)
		}
		folders = append(folders, *folder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating folders: %w", err)
	}

	return folders, nil
}

// UpdateFolder overwrites the stored folder with the given one, matched by
// canonical id only.
func (db *DB) UpdateFolder(ctx context.Context, folder *model.Folder) error {
	if folder.SnippetIDs == nil {
		folder.SnippetIDs = []string{}
	}

	ids, err := json.Marshal(folder.SnippetIDs)
	if err != nil {
		return fmt.Errorf("sqlite: encoding membership set: %w", err)
	}

	res, err := db.conn.ExecContext(ctx,
		`UPDATE folders
		 SET name = ?, snippet_ids = ?
		 WHERE id = ?`,
		folder.Name,
		string(ids),
		folder.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating folder %s: %w", folder.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: updating folder %s: %w", folder.ID, err)
	}
	if affected == 0 {
		return apperror.NotFound("folder", folder.ID)
	}

	return nil
}

// DeleteFolder removes a folder. Its member snippets are not touched.
func (db *DB) DeleteFolder(ctx context.Context, id string) error {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM folders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting folder %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: deleting folder %s: %w", id, err)
	}
	if affected == 0 {
		return apperror.NotFound("folder", id)
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFolder(s scanner) (*model.Folder, error) {
	var (
		folder model.Folder
		ids    string
	)
	if err := s.Scan(&folder.ID, &folder.LocalID, &folder.Name, &ids); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(ids), &folder.SnippetIDs); err != nil {
		return nil, fmt.Errorf("decoding membership set: %w", err)
	}
	if folder.SnippetIDs == nil {
		folder.SnippetIDs = []string{}
	}
	return &folder, nil
}
