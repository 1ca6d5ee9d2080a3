package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"pricetrack"
)

// exportCmd exports the tracked table to a spreadsheet.
type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the tracked table to an xlsx workbook" }
func (*exportCmd) Usage() string {
	return `ptk export [-o <file.xlsx>]

  Exports the tracked-price table to an xlsx workbook with the same columns
  and display formatting as the CSV table.

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "price_tracker.xlsx", "Output workbook path.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}

	rows, err := loadTracked(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := pricetrack.ExportTrackedXLSX(c.outputFile, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d rows to %s\n", len(rows), c.outputFile)
	return subcommands.ExitSuccess
}
