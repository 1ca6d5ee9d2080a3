package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"pricetrack/advisor"
	"pricetrack/renderer"
)

// adviseCmd asks the AI advisor to review the tracked table.
type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the AI advisor to review price trends" }
func (*adviseCmd) Usage() string {
	return `ptk advise [question...]

  Sends the tracked-price table to Gemini and prints its purchase
  recommendations. Requires GEMINI_API_KEY in the environment.

`
}
func (*adviseCmd) SetFlags(f *flag.FlagSet) {}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}

	rows, err := loadTracked(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	question := strings.Join(f.Args(), " ")
	table := renderer.TrackedMarkdown(rows, "")

	answer, err := advisor.New().Advise(ctx, client, table, question)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(answer)
	return subcommands.ExitSuccess
}
