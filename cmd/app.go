// Package cmd implements the CLI application driving the price tracker.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"pricetrack"
)

// Commands lists the subcommands of the application.
// A main package will register them all and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&ingestCmd{},
	&trackCmd{},
	&checkCmd{},
	&historyCmd{},
	&summaryCmd{},
	&catalogCmd{},
	&exportCmd{},
	&adviseCmd{},
}

// loadConfig loads the environment configuration, reporting errors on stderr.
func loadConfig() (pricetrack.Config, bool) {
	cfg, err := pricetrack.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return pricetrack.Config{}, false
	}
	return cfg, true
}

// loadTracked reads the persisted tracked table for display-side commands.
func loadTracked(cfg pricetrack.Config) ([]pricetrack.TrackedRow, error) {
	return pricetrack.DecodeTracked(cfg.TrackedPath(), cfg.Currency)
}

// printMarkdown renders a markdown string for the terminal and prints it.
// If the renderer fails the raw markdown is still printed: losing color is
// better than losing the report.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
