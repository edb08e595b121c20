package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/instabio/bioforge/internal/history"
	"github.com/instabio/bioforge/internal/params"
	"github.com/instabio/bioforge/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate <category>",
	Short: "Generate fresh bios for a category",
	Long: `Generate a round of unique bios for a category.

Categories: aesthetic, funny, business, cool.

Each round calls the AI backend with several parameter sets, filters
near-duplicate candidates, and prints at most six bios of up to three
lines each. If every generation attempt fails, the curated fallback
list for the category is shown instead.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		category, err := types.ParseCategory(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		eng, err := buildEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		result, err := eng.GenerateUnique(ctx, category, history.New())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		if result.Failed() {
			color.Yellow("AI generation unavailable — showing curated %s bios.", category)
			for i, bio := range params.Curated(category) {
				fmt.Printf("\n%s\n%s\n", cyan(fmt.Sprintf("Bio #%d (curated)", i+1)), bio)
			}
			fmt.Println()
			return
		}

		fmt.Printf("\n%s\n", cyan(fmt.Sprintf("=== %d fresh %s bios ===", len(result.Bios), category)))
		for i, bio := range result.Bios {
			fmt.Printf("\n%s\n%s\n", gray(fmt.Sprintf("--- bio %d ---", i+1)), bio)
		}
		fmt.Printf("\n%s\n", gray(fmt.Sprintf(
			"sets=%d failed=%d raw=%d batch_dups=%d history_dups=%d relaxed=%t in %dms",
			result.Stats.AttemptedSets, result.Stats.FailedSets, result.Stats.RawCandidates,
			result.Stats.WithinBatchDuplicates, result.Stats.HistoryDuplicates,
			result.Stats.Relaxed, result.Stats.ProcessingTimeMs)))
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
