// Command trove is a terminal client for a CodeTrove server. It covers the
// full API surface: listing snippets through the folder/search view, snippet
// and folder management, AI alternatives, and the tech news panel.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"codetrove/internal/client"
	"codetrove/internal/news"
	"codetrove/internal/store"
)

var (
	apiURL  string
	timeout time.Duration
)

func main() {
	root := &cobra.Command{
		Use:           "trove",
		Short:         "Personal code snippet manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&apiURL, "api", envOr("CODETROVE_API", "http://localhost:8080"), "base URL of the CodeTrove server")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "per-command timeout")

	root.AddCommand(
		newListCmd(),
		newAddCmd(),
		newEditCmd(),
		newRemoveCmd(),
		newFoldersCmd(),
		newAlternativesCmd(),
		newNewsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "trove:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func apiClient() *client.Client {
	return client.New(apiURL)
}

// newStore builds a fully wired store for commands that need the derived
// snippet view rather than raw API responses.
func newStore() *store.Store {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return store.New(apiClient(), news.NewClient(news.DefaultBaseURL), logger)
}
