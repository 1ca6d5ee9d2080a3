package pricetrack

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TrackedColumns is the schema header of the tracked-price table.
var TrackedColumns = []string{"timestamp", "name", "quantity", "price", "prev_price", "price_change", "percent_change", "avg_price", "diff_from_avg"}

// absentValue is the display sentinel for absent values. It exists only in
// the persisted/exported form, never inside the computation.
const absentValue = "N/A"

// EncodeTracked writes the full tracked table to path as a single atomic
// replace: the table is written to a temporary file in the same directory and
// renamed over the previous one, so a failed write leaves the last-good state
// untouched.
//
// Writing an empty table is rejected with an EmptyResultError so a transient
// computation bug cannot silently truncate the table to zero rows.
func EncodeTracked(path string, rows []TrackedRow) error {
	if len(rows) == 0 {
		return &EmptyResultError{Table: path}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory %q: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temporary table for %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(TrackedColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(encodeTrackedRow(row)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// DecodeTracked loads the tracked table from path. Rows that cannot be parsed
// are skipped with a warning so one bad historical row does not take the
// whole table down.
func DecodeTracked(path string, currency string) ([]TrackedRow, error) {
	rows, err := readTable(path, TrackedColumns)
	if err != nil {
		return nil, err
	}
	var decoded []TrackedRow
	for _, row := range rows {
		r, err := decodeTrackedRow(row, currency)
		if err != nil {
			log.Printf("warning, %q: skipping row: %v", path, err)
			continue
		}
		decoded = append(decoded, r)
	}
	return decoded, nil
}

// TrackedExists reports whether the tracked table has been materialized.
func TrackedExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LatestTracked scans the tracked table and returns its most recent
// timestamp, or absent when the table is empty. Bad timestamps are skipped
// with a warning, as for the ledger watermark.
func LatestTracked(path string) (Timestamp, bool, error) {
	rows, err := readTable(path, TrackedColumns)
	if err != nil {
		return Timestamp{}, false, err
	}
	var latest Timestamp
	found := false
	for _, row := range rows {
		ts, err := ParseTimestamp(row[0])
		if err != nil {
			log.Printf("warning, %q: skipping row with bad timestamp: %v", path, err)
			continue
		}
		if !found || ts.After(latest) {
			latest = ts
			found = true
		}
	}
	return latest, found, nil
}

func encodeTrackedRow(r TrackedRow) []string {
	quantity := ""
	if r.Quantity > 0 {
		quantity = strconv.Itoa(r.Quantity)
	}
	previous, change, percent := absentValue, absentValue, absentValue
	if r.HasPrevious {
		previous = r.PreviousPrice.String()
		change = r.PriceChange.String()
	}
	if r.HasPercent {
		percent = r.PercentChange.String()
	}
	return []string{
		r.Timestamp.String(),
		r.Name,
		quantity,
		r.Price.String(),
		previous,
		change,
		percent,
		r.RunningAverage.String(),
		r.DiffFromAverage.String(),
	}
}

func decodeTrackedRow(row []string, currency string) (TrackedRow, error) {
	ts, err := ParseTimestamp(row[0])
	if err != nil {
		return TrackedRow{}, err
	}
	r := TrackedRow{Timestamp: ts, Name: row[1]}
	if row[2] != "" {
		r.Quantity, err = strconv.Atoi(row[2])
		if err != nil {
			return TrackedRow{}, fmt.Errorf("invalid quantity %q: %w", row[2], err)
		}
	}
	if r.Price, err = ParsePrice(row[3], currency); err != nil {
		return TrackedRow{}, err
	}
	if row[4] != absentValue {
		if r.PreviousPrice, err = ParsePrice(row[4], currency); err != nil {
			return TrackedRow{}, err
		}
		if r.PriceChange, err = ParsePrice(row[5], currency); err != nil {
			return TrackedRow{}, err
		}
		r.HasPrevious = true
	}
	if row[6] != absentValue {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(row[6], "%"), 64)
		if err != nil {
			return TrackedRow{}, fmt.Errorf("invalid percent %q: %w", row[6], err)
		}
		r.PercentChange = Percent(pct)
		r.HasPercent = true
	}
	if r.RunningAverage, err = ParsePrice(row[7], currency); err != nil {
		return TrackedRow{}, err
	}
	if r.DiffFromAverage, err = ParsePrice(row[8], currency); err != nil {
		return TrackedRow{}, err
	}
	return r, nil
}
