package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"pricetrack"
	"pricetrack/renderer"
)

// catalogCmd displays the known entities.
type catalogCmd struct{}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "display the entity catalog" }
func (*catalogCmd) Usage() string {
	return `ptk catalog

  Displays the known entities and their canonical URLs, sorted by name.

`
}
func (*catalogCmd) SetFlags(f *flag.FlagSet) {}

func (c *catalogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}

	catalog, err := pricetrack.DecodeCatalog(cfg.CatalogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CatalogMarkdown(catalog.Entries()))
	return subcommands.ExitSuccess
}
