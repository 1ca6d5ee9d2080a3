package renderer

import (
	"strings"
	"testing"

	"pricetrack"
)

func row(name, ts string, price float64) pricetrack.TrackedRow {
	return pricetrack.TrackedRow{
		Name:            name,
		Timestamp:       pricetrack.MustParseTimestamp(ts),
		Quantity:        1,
		Price:           pricetrack.M(price, "USD"),
		RunningAverage:  pricetrack.M(price, "USD"),
		DiffFromAverage: pricetrack.M(0, "USD"),
	}
}

func TestTrackedMarkdown(t *testing.T) {
	rows := []pricetrack.TrackedRow{
		row("Dog Food", "2025-01-05 09:00:00", 33.99),
		row("Dog Food", "2025-01-01 10:00:00", 35.99),
		row("Litter", "2025-01-01 10:00:00", 19.99),
	}

	got := TrackedMarkdown(rows, "")
	if !strings.Contains(got, "# Price Tracker") {
		t.Errorf("missing title in:\n%s", got)
	}
	if !strings.Contains(got, "$33.99") || !strings.Contains(got, "$19.99") {
		t.Errorf("missing prices in:\n%s", got)
	}
	// first observations carry no deltas
	if !strings.Contains(got, "N/A") {
		t.Errorf("missing absent-delta sentinel in:\n%s", got)
	}
}

func TestTrackedMarkdown_EntityFilter(t *testing.T) {
	rows := []pricetrack.TrackedRow{
		row("Dog Food", "2025-01-01 10:00:00", 35.99),
		row("Litter", "2025-01-01 10:00:00", 19.99),
	}

	got := TrackedMarkdown(rows, "Dog Food")
	if !strings.Contains(got, "# Price history for Dog Food") {
		t.Errorf("missing entity title in:\n%s", got)
	}
	if strings.Contains(got, "Litter") {
		t.Errorf("foreign entity leaked into:\n%s", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	// persisted order: entity ascending, timestamp descending
	rows := []pricetrack.TrackedRow{
		row("Dog Food", "2025-01-05 09:00:00", 33.99),
		row("Dog Food", "2025-01-01 10:00:00", 35.99),
		row("Litter", "2025-01-01 10:00:00", 19.99),
	}

	got := SummaryMarkdown(rows)
	if !strings.Contains(got, "$33.99") {
		t.Errorf("missing latest price in:\n%s", got)
	}
	if strings.Contains(got, "$35.99") {
		t.Errorf("older observation leaked into the summary:\n%s", got)
	}
}

func TestCatalogMarkdown(t *testing.T) {
	got := CatalogMarkdown([]*pricetrack.CatalogEntry{
		{Name: "Dog Food", URL: "https://example.com/dog-food"},
	})
	if !strings.Contains(got, "Dog Food") || !strings.Contains(got, "https://example.com/dog-food") {
		t.Errorf("missing catalog entry in:\n%s", got)
	}
}
