// Package repl provides the interactive shell for generating and
// browsing bios without leaving the terminal.
package repl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/instabio/bioforge/internal/engine"
	"github.com/instabio/bioforge/internal/history"
	"github.com/instabio/bioforge/internal/params"
	"github.com/instabio/bioforge/internal/types"
)

// REPL represents the interactive shell.
type REPL struct {
	engine    *engine.Engine
	rl        *readline.Instance
	ctx       context.Context
	histories map[types.Category]*history.History
	commands  map[string]CommandHandler
}

// CommandHandler handles a specific command.
type CommandHandler func(args []string) error

// Config holds REPL configuration.
type Config struct {
	Engine *engine.Engine
}

// New creates a new REPL instance.
func New(cfg *Config) (*REPL, error) {
	if cfg.Engine == nil {
		return nil, fmt.Errorf("engine is required")
	}

	r := &REPL{
		engine:    cfg.Engine,
		histories: make(map[types.Category]*history.History),
		commands:  make(map[string]CommandHandler),
	}
	r.registerCommands()
	return r, nil
}

// Run starts the REPL loop.
func (r *REPL) Run(ctx context.Context) error {
	r.ctx = ctx

	cyan := color.New(color.FgCyan).SprintFunc()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cyan("bioforge> "),
		HistoryFile:       "",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()
	r.rl = rl

	r.printWelcome()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if cmd == "exit" || cmd == "quit" {
			return nil
		}

		handler, ok := r.commands[cmd]
		if !ok {
			fmt.Printf("Unknown command %q. Type 'help' for available commands.\n", cmd)
			continue
		}
		if err := handler(args); err != nil {
			color.Red("Error: %v", err)
		}
	}
}

func (r *REPL) registerCommands() {
	r.commands["generate"] = r.cmdGenerate
	r.commands["gen"] = r.cmdGenerate
	r.commands["categories"] = r.cmdCategories
	r.commands["history"] = r.cmdHistory
	r.commands["reset"] = r.cmdReset
	r.commands["help"] = r.cmdHelp
}

func (r *REPL) printWelcome() {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Printf("%s — AI bio generator\n", bold("bioforge"))
	fmt.Println("Type 'generate <category>' to get started, 'help' for commands.")
	fmt.Println()
}

// historyFor returns the session history for a category, creating it on
// first use. Each category keeps its own history, as each page does in
// the hosted generator.
func (r *REPL) historyFor(category types.Category) *history.History {
	h, ok := r.histories[category]
	if !ok {
		h = history.New()
		r.histories[category] = h
	}
	return h
}

func (r *REPL) cmdGenerate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: generate <category>")
	}
	category, err := types.ParseCategory(args[0])
	if err != nil {
		return err
	}

	fmt.Println("Generating...")
	result, err := r.engine.GenerateUnique(r.ctx, category, r.historyFor(category))
	if err != nil {
		return err
	}

	if result.Failed() {
		color.Yellow("Generation unavailable — showing curated %s bios.", category)
		printBios(params.Curated(category))
		return nil
	}

	label := fmt.Sprintf("%d fresh %s bios", len(result.Bios), category)
	if result.Stats.Relaxed {
		label += " (history filter relaxed)"
	}
	color.Green("%s:", label)
	printBios(result.Bios)
	return nil
}

func (r *REPL) cmdCategories(args []string) error {
	yellow := color.New(color.FgYellow).SprintFunc()
	for _, c := range types.AllCategories() {
		fmt.Printf("  %s (%d parameter sets)\n", yellow(string(c)), len(params.Sets(c)))
	}
	return nil
}

func (r *REPL) cmdHistory(args []string) error {
	total := 0
	for _, c := range types.AllCategories() {
		if h, ok := r.histories[c]; ok && h.Len() > 0 {
			fmt.Printf("  %s: %d bios shown\n", c, h.Len())
			total += h.Len()
		}
	}
	if total == 0 {
		fmt.Println("  No bios shown yet this session.")
	}
	return nil
}

func (r *REPL) cmdReset(args []string) error {
	if len(args) == 0 {
		for _, h := range r.histories {
			h.Reset()
		}
		fmt.Println("All histories cleared.")
		return nil
	}
	category, err := types.ParseCategory(args[0])
	if err != nil {
		return err
	}
	r.historyFor(category).Reset()
	fmt.Printf("History for %s cleared.\n", category)
	return nil
}

func (r *REPL) cmdHelp(args []string) error {
	fmt.Println(`Commands:
  generate <category>  Generate fresh bios (aesthetic, funny, business, cool)
  categories           List available categories
  history              Show how many bios each category has used
  reset [category]     Clear history for one category, or all
  help                 Show this help
  exit                 Leave the shell`)
	return nil
}

func printBios(bios []string) {
	gray := color.New(color.FgHiBlack).SprintFunc()
	for i, bio := range bios {
		fmt.Printf("\n%s\n", gray(fmt.Sprintf("--- bio %d ---", i+1)))
		fmt.Println(bio)
	}
	fmt.Println()
}
