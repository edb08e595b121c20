package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/instabio/bioforge/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start interactive shell",
	Long: `Start an interactive shell for generating bios.

The shell keeps a per-category history for the session, so successive
'generate' commands never repeat a bio you have already seen. Type
'help' in the shell for available commands.`,
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := buildEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		r, err := repl.New(&repl.Config{Engine: eng})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create shell: %v\n", err)
			os.Exit(1)
		}

		if err := r.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
