// bioforge generates Instagram-style bios with an AI backend, filters
// near-duplicates, and reflows output to three display lines.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/instabio/bioforge/internal/engine"
	"github.com/instabio/bioforge/internal/generator"
)

var (
	configPath string
	modelName  string
)

var rootCmd = &cobra.Command{
	Use:   "bioforge",
	Short: "AI-powered Instagram bio generator",
	Long: `bioforge generates Instagram bios with an AI backend.

Generated candidates are filtered for near-duplicates against everything
already shown this session, reflowed to at most three lines, and capped
at six per round. When generation is unavailable, curated bios are shown
instead.

Set ANTHROPIC_API_KEY before running generation commands.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&modelName, "model", "", "generation model override")
}

// buildEngine wires the generator and orchestrator from flags and
// environment.
func buildEngine() (*engine.Engine, error) {
	var cfg engine.Config
	var err error
	if configPath != "" {
		cfg, err = engine.LoadConfigFile(configPath)
	} else {
		cfg, err = engine.ConfigFromEnv()
	}
	if err != nil {
		return nil, err
	}

	gen, err := generator.NewAnthropicGenerator(&generator.Config{Model: modelName})
	if err != nil {
		return nil, err
	}

	return engine.New(gen, cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
