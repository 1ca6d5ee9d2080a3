package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// trackCmd recomputes the tracked-price table from the ledger.
type trackCmd struct{}

func (*trackCmd) Name() string { return "track" }
func (*trackCmd) Synopsis() string {
	return "update the price tracker table from the purchases ledger"
}
func (*trackCmd) Usage() string {
	return `ptk track

  Recomputes price deltas and running averages. On first run the whole
  ledger is computed; afterwards only entities with observations newer than
  the tracker watermark are recomputed and merged with the untouched rows.

`
}
func (*trackCmd) SetFlags(f *flag.FlagSet) {}

func (c *trackCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}

	if err := cfg.Tracker().Update(); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating price tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Price tracker updated at %s\n", cfg.TrackedPath())
	return subcommands.ExitSuccess
}
