// Package main is the entry point for the mapgen CLI
package main

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "mapgen",
		Short: "Roguelike map generator",
		Long: `mapgen builds dungeon, forest and village levels: a walled terrain grid with
every open cell reachable, stairs and a player start.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logLevel := slog.LevelWarn
			if verbose {
				logLevel = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: logLevel,
			})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log generation details to stderr")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}

// writeError prints err, one line per field when it carries validation errors
func writeError(w io.Writer, err error) {
	var e *errors.Error
	if !errors.As(err, &e) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	fields, ok := e.Meta["validation_errors"].(map[string][]string)
	if !ok || len(fields) == 0 {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	fmt.Fprintln(w, "Error: invalid arguments")
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		fmt.Fprintf(w, "  %s: %s\n", name, strings.Join(fields[name], ", "))
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		writeError(os.Stderr, err)
		os.Exit(1)
	}
}
