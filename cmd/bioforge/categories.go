package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/instabio/bioforge/internal/params"
	"github.com/instabio/bioforge/internal/types"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List available bio categories",
	Run: func(cmd *cobra.Command, args []string) {
		yellow := color.New(color.FgYellow).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		for _, c := range types.AllCategories() {
			sets := params.Sets(c)
			curated := params.Curated(c)
			fmt.Printf("  %s %s\n", yellow(string(c)),
				gray(fmt.Sprintf("(%d parameter sets, %d curated fallbacks)", len(sets), len(curated))))
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
