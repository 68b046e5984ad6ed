package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"codetrove/internal/model"
)

func newListCmd() *cobra.Command {
	var folderID, search string
	var showCode bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snippets, optionally filtered by folder and search term",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			s := newStore()
			if err := s.FetchSnippets(ctx); err != nil {
				return err
			}
			if err := s.FetchFolders(ctx); err != nil {
				return err
			}
			s.SelectFolder(folderID)

			snippets := s.VisibleSnippets(search)
			if len(snippets) == 0 {
				fmt.Println("no snippets")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tLANGUAGE\tDESCRIPTION")
			for _, sn := range snippets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sn.ID, sn.Title, sn.Language, sn.Description)
				if showCode {
					w.Flush()
					fmt.Println(indent(sn.Code))
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&folderID, "folder", "all", "folder id to filter by (\"all\" for every snippet)")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive term matched against title and code")
	cmd.Flags().BoolVar(&showCode, "code", false, "print snippet bodies as well")
	return cmd
}

func newAddCmd() *cobra.Command {
	var draft model.SnippetDraft
	var file string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new snippet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				code, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				draft.Code = string(code)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			snippet, err := apiClient().CreateSnippet(ctx, draft)
			if err != nil {
				return err
			}
			fmt.Println(snippet.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Title, "title", "", "snippet title (required)")
	cmd.Flags().StringVar(&draft.Description, "desc", "", "short description")
	cmd.Flags().StringVar(&draft.Language, "lang", "", "language tag")
	cmd.Flags().StringVar(&draft.Code, "snippet", "", "snippet body")
	cmd.Flags().StringVar(&file, "file", "", "read the snippet body from a file")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagsMutuallyExclusive("snippet", "file")
	return cmd
}

func newEditCmd() *cobra.Command {
	var title, desc, lang, code, file string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of an existing snippet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd model.SnippetUpdate
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				upd.Description = &desc
			}
			if cmd.Flags().Changed("lang") {
				upd.Language = &lang
			}
			if cmd.Flags().Changed("snippet") {
				upd.Code = &code
			}
			if file != "" {
				b, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				s := string(b)
				upd.Code = &s
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			snippet, err := apiClient().UpdateSnippet(ctx, args[0], upd)
			if err != nil {
				return err
			}
			fmt.Printf("updated %s (%s)\n", snippet.ID, snippet.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&desc, "desc", "", "new description")
	cmd.Flags().StringVar(&lang, "lang", "", "new language tag")
	cmd.Flags().StringVar(&code, "snippet", "", "new snippet body")
	cmd.Flags().StringVar(&file, "file", "", "read the new snippet body from a file")
	cmd.MarkFlagsMutuallyExclusive("snippet", "file")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a snippet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return apiClient().DeleteSnippet(ctx, args[0])
		},
	}
}

func indent(code string) string {
	lines := strings.Split(strings.TrimRight(code, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}
