package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"pricetrack/renderer"
)

// historyCmd displays the tracked-price table.
type historyCmd struct {
	entity string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the tracked price history" }
func (*historyCmd) Usage() string {
	return `ptk history [-n <entity name>]

  Displays the tracked-price table, most recent observation first within
  each entity. With -n, only that entity's history is shown.

`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.entity, "n", "", "Entity name to display. Displays all by default.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}

	rows, err := loadTracked(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TrackedMarkdown(rows, c.entity))
	return subcommands.ExitSuccess
}

// summaryCmd displays the latest observation per entity.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the latest price per entity" }
func (*summaryCmd) Usage() string {
	return `ptk summary

  Displays one line per entity: its latest observed price and how it stands
  against its running average.

`
}
func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}

	rows, err := loadTracked(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(rows))
	return subcommands.ExitSuccess
}
