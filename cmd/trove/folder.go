package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"codetrove/internal/model"
)

func newFoldersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folders",
		Short: "Manage folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			folders, err := apiClient().FetchFolders(ctx)
			if err != nil {
				return err
			}
			if len(folders) == 0 {
				fmt.Println("no folders")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSNIPPETS")
			for _, f := range folders {
				fmt.Fprintf(w, "%s\t%s\t%d\n", f.ID, f.Name, len(f.SnippetIDs))
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(
		newFolderAddCmd(),
		newFolderRenameCmd(),
		newFolderRemoveCmd(),
		newFolderToggleCmd(),
	)
	return cmd
}

func newFolderAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			folder, err := apiClient().CreateFolder(ctx, model.FolderDraft{
				Name:       args[0],
				SnippetIDs: []string{},
			})
			if err != nil {
				return err
			}
			fmt.Println(folder.ID)
			return nil
		},
	}
}

func newFolderRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			name := args[1]
			_, err := apiClient().UpdateFolder(ctx, args[0], model.FolderUpdate{Name: &name})
			return err
		},
	}
}

func newFolderRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a folder (snippets inside it are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return apiClient().DeleteFolder(ctx, args[0])
		},
	}
}

func newFolderToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <folder-id> <snippet-id>",
		Short: "Add a snippet to a folder, or remove it if already present",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			// The toggle needs the current membership set, so go through the
			// store rather than issuing a blind update.
			s := newStore()
			if err := s.FetchFolders(ctx); err != nil {
				return err
			}
			if err := s.ToggleSnippetInFolder(ctx, args[0], args[1]); err != nil {
				return err
			}

			for _, f := range s.Snapshot().Folders.Items {
				if f.Matches(args[0]) {
					fmt.Printf("%s now holds %d snippet(s)\n", f.Name, len(f.SnippetIDs))
					return nil
				}
			}
			return fmt.Errorf("no folder matches %q", args[0])
		},
	}
}
