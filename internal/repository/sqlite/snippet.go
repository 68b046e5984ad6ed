package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/xid"

	"codetrove/internal/apperror"
	"codetrove/internal/model"
	"codetrove/internal/repository"
)

// Compile-time check that *DB implements the repository interfaces.
var (
	_ repository.SnippetRepository = (*DB)(nil)
	_ repository.FolderRepository  = (*DB)(nil)
)

// Create inserts a new snippet, assigning its canonical id.
func (db *DB) Create(ctx context.Context, snippet *model.Snippet) error {
	snippet.ID = xid.New().String()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO snippets (id, title, description, language, code)
		 VALUES (?, ?, ?, ?, ?)`,
		snippet.ID,
		snippet.Title,
		snippet.Description,
		snippet.Language,
		snippet.Code,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating snippet: %w", err)
	}

	return nil
}

// GetByID retrieves a single snippet by its canonical id.
func (db *DB) GetByID(ctx context.Context, id string) (*model.Snippet, error) {
	var snippet model.Snippet

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, title, description, language, code
		 FROM snippets
		 WHERE id = ?`,
		id,
	).Scan(
		&snippet.ID,
		&snippet.Title,
		&snippet.Description,
		&snippet.Language,
		&snippet.Code,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("snippet", id)
		}
		return nil, fmt.Errorf("sqlite: getting snippet %s: %w", id, err)
	}

	return &snippet, nil
}

// List returns every snippet in insertion order.
func (db *DB) List(ctx context.Context) ([]model.Snippet, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, description, language, code
		 FROM snippets
		 ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing snippets: %w", err)
	}
	defer rows.Close()

	snippets := []model.Snippet{}
	for rows.Next() {
		var s model.Snippet
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Language, &s.Code); err != nil {
			return nil, fmt.Errorf("sqlite: scanning snippet: %w", err)
		}
		snippets = append(snippets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating snippets: %w", err)
	}

	return snippets, nil
}

// Update overwrites the stored snippet with the given one.
func (db *DB) Update(ctx context.Context, snippet *model.Snippet) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE snippets
		 SET title = ?, description = ?, language = ?, code = ?
		 WHERE id = ?`,
		snippet.Title,
		snippet.Description,
		snippet.Language,
		snippet.Code,
		snippet.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating snippet %s: %w", snippet.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: updating snippet %s: %w", snippet.ID, err)
	}
	if affected == 0 {
		return apperror.NotFound("snippet", snippet.ID)
	}

	return nil
}

// Delete removes a snippet. Folder membership sets are left untouched; the
// dangling references they may now hold are resolved at read time.
func (db *DB) Delete(ctx context.Context, id string) error {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM snippets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting snippet %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: deleting snippet %s: %w", id, err)
	}
	if affected == 0 {
		return apperror.NotFound("snippet", id)
	}

	return nil
}
