package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"pricetrack"
)

// ingestCmd appends a producer batch to the purchases ledger.
type ingestCmd struct {
	batchFile string
}

func (*ingestCmd) Name() string { return "ingest" }
func (*ingestCmd) Synopsis() string {
	return "append a batch of parsed purchase messages to the ledger"
}
func (*ingestCmd) Usage() string {
	return `ptk ingest -f <batch.jsonl>

  Reads a JSONL batch produced by the email parser (one message per line:
  id, timestamp, items) and appends its line items to the purchases ledger.
  Only records newer than the ledger watermark are appended, and rows that
  are already persisted are skipped, so replaying a batch is harmless.
  First-sighted item names are added to the catalog.

`
}

func (c *ingestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.batchFile, "f", "", "Batch file to ingest (JSONL). Required.")
}

func (c *ingestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.batchFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <batch.jsonl> is required")
		return subcommands.ExitUsageError
	}
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}

	file, err := os.Open(c.batchFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening batch file %q: %v\n", c.batchFile, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	messages, err := pricetrack.DecodeBatch(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding batch: %v\n", err)
		return subcommands.ExitFailure
	}

	appended, err := cfg.Tracker().Ingest(messages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error ingesting batch: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Appended %d records from %d messages to %s\n", appended, len(messages), cfg.LedgerPath())
	return subcommands.ExitSuccess
}
