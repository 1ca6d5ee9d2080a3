// Package renderer renders the computed tables to markdown strings for
// terminal display. Formatting decisions (currency signs, "N/A" sentinels)
// belong to the domain types; this package only lays them out.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"pricetrack"
)

// display returns the boundary form of an optional value.
func display(s string, present bool) string {
	if !present {
		return "N/A"
	}
	return s
}

// TrackedMarkdown renders the tracked table, optionally restricted to a
// single entity. Rows are rendered in the order given (entity ascending,
// timestamp descending in the persisted table).
func TrackedMarkdown(rows []pricetrack.TrackedRow, entity string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if entity != "" {
		doc.H1(fmt.Sprintf("Price history for %s", entity))
	} else {
		doc.H1("Price Tracker")
	}

	table := md.TableSet{
		Header: []string{"Timestamp", "Name", "Qty", "Price", "Previous", "Change", "Change %", "Average", "Vs Average"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		if entity != "" && row.Name != entity {
			continue
		}
		quantity := ""
		if row.Quantity > 0 {
			quantity = fmt.Sprintf("%d", row.Quantity)
		}
		table.Rows = append(table.Rows, []string{
			row.Timestamp.String(),
			row.Name,
			quantity,
			row.Price.String(),
			display(row.PreviousPrice.String(), row.HasPrevious),
			display(row.PriceChange.String(), row.HasPrevious),
			display(row.PercentChange.String(), row.HasPercent),
			row.RunningAverage.String(),
			row.DiffFromAverage.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// SummaryMarkdown renders one line per entity: its latest observation and how
// it stands against its running average.
func SummaryMarkdown(rows []pricetrack.TrackedRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Summary")

	table := md.TableSet{
		Header: []string{"Name", "Last Seen", "Price", "Change %", "Average", "Vs Average"},
		Rows:   [][]string{},
	}
	// the persisted order is entity ascending, timestamp descending, so the
	// first row of each entity is its latest observation
	seen := make(map[string]bool)
	for _, row := range rows {
		if seen[row.Name] {
			continue
		}
		seen[row.Name] = true
		table.Rows = append(table.Rows, []string{
			row.Name,
			row.Timestamp.String(),
			row.Price.String(),
			display(row.PercentChange.String(), row.HasPercent),
			row.RunningAverage.String(),
			row.DiffFromAverage.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// CatalogMarkdown renders the entity catalog.
func CatalogMarkdown(entries []*pricetrack.CatalogEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Catalog")

	table := md.TableSet{
		Header: []string{"Name", "URL"},
		Rows:   [][]string{},
	}
	for _, entry := range entries {
		table.Rows = append(table.Rows, []string{entry.Name, entry.URL})
	}
	doc.Table(table)

	return doc.String()
}
