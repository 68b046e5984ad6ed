package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codetrove/internal/model"
	"codetrove/internal/news"
)

func newAlternativesCmd() *cobra.Command {
	var lang, file string

	cmd := &cobra.Command{
		Use:   "alt [code]",
		Short: "Ask the server for AI-suggested alternative implementations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var code string
			switch {
			case file != "":
				b, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				code = string(b)
			case len(args) == 1:
				code = args[0]
			default:
				return fmt.Errorf("provide code as an argument or via --file")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			result, err := apiClient().Alternatives(ctx, model.AlternativesRequest{
				Code:     code,
				Language: lang,
			})
			if err != nil {
				return err
			}

			fmt.Printf("rating: %d/10\n", result.Rating)
			for _, alt := range result.Alternatives {
				fmt.Printf("\n--- alternative %d ---\n%s\n", alt.Rank, alt.Code)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "language of the code")
	cmd.Flags().StringVar(&file, "file", "", "read the code from a file")
	return cmd
}

func newNewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "news",
		Short: "Show the top Hacker News front-page stories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			stories, err := news.NewClient(news.DefaultBaseURL).TopStories(ctx)
			if err != nil {
				return err
			}
			for _, story := range stories {
				fmt.Printf("%s\n  %s\n", story.Title, story.URL)
			}
			return nil
		},
	}
}
