package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"pricetrack"
)

// checkCmd runs one scrape reconciliation cycle over the catalog.
type checkCmd struct{}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "check live listings for every catalog entity and record prices"
}
func (*checkCmd) Usage() string {
	return `ptk check

  For each catalog entity, fetches the listing feed at its canonical URL,
  fuzzy-matches the observed listing names against the catalog name, records
  a scrape observation for each match, and updates the price tracker.
  Entities without a confident match are skipped for this cycle.

`
}
func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}

	appended, err := cfg.Tracker().Check(cfg.Feed(), cfg.Matcher(), pricetrack.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error checking listings: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %d scrape observations\n", appended)
	return subcommands.ExitSuccess
}
