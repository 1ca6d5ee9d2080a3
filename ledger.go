package pricetrack

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// PurchasesColumns is the schema header of the purchases ledger. The column
// order is part of the persisted format and must not change.
var PurchasesColumns = []string{"source_id", "timestamp", "date", "time", "name", "quantity", "price", "url"}

// Ledger is the durable, append-only purchases table.
//
// Rows are written in input order and never rewritten; the date and time
// columns are derived from the timestamp at write time for human readers.
type Ledger struct {
	path     string
	currency string
}

// OpenLedger returns a Ledger persisting at path. The file is materialized
// lazily on first append or read.
func OpenLedger(path, currency string) *Ledger {
	return &Ledger{path: path, currency: currency}
}

// Path returns the ledger file location.
func (l *Ledger) Path() string { return l.path }

// Exists reports whether the ledger store has been materialized yet. Callers
// branch on this for first-run behavior (an absent store means there is no
// resume point).
func (l *Ledger) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// ensure materializes the store with its schema header if it does not exist.
func (l *Ledger) ensure() (created bool, err error) {
	if l.Exists() {
		return false, nil
	}
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("could not create ledger directory %q: %w", dir, err)
		}
	}
	log.Printf("warning, ledger %q does not exist, creating it", l.path)
	f, err := os.Create(l.path)
	if err != nil {
		return false, fmt.Errorf("could not create ledger %q: %w", l.path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(PurchasesColumns); err != nil {
		return false, err
	}
	w.Flush()
	return true, w.Error()
}

// Append appends records to the ledger in input order and returns how many
// were written. A record whose (source_id, name, timestamp) identity is
// already persisted is skipped with a warning, so replaying the same producer
// batch cannot duplicate rows.
func (l *Ledger) Append(records []PurchaseRecord) (int, error) {
	if _, err := l.ensure(); err != nil {
		return 0, err
	}
	seen, err := l.keys()
	if err != nil {
		return 0, err
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("could not open ledger %q for append: %w", l.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	appended := 0
	for _, r := range records {
		if seen[r.Key()] {
			log.Printf("warning, skipping duplicate ledger row %s", r.Key())
			continue
		}
		seen[r.Key()] = true
		if err := w.Write(encodePurchaseRow(r)); err != nil {
			return appended, err
		}
		appended++
	}
	w.Flush()
	return appended, w.Error()
}

// LatestTimestamp scans the full table and returns the most recent timestamp,
// or absent if the store is empty. Rows with an unparsable timestamp are
// skipped with a warning rather than aborting the scan.
func (l *Ledger) LatestTimestamp() (Timestamp, bool, error) {
	if _, err := l.ensure(); err != nil {
		return Timestamp{}, false, err
	}
	rows, err := readTable(l.path, PurchasesColumns)
	if err != nil {
		return Timestamp{}, false, err
	}
	var latest Timestamp
	found := false
	for _, row := range rows {
		ts, err := ParseTimestamp(row[1])
		if err != nil {
			log.Printf("warning, %q: skipping row with bad timestamp: %v", l.path, err)
			continue
		}
		if !found || ts.After(latest) {
			latest = ts
			found = true
		}
	}
	return latest, found, nil
}

// ReadSince returns all records with a timestamp strictly greater than since,
// in file order. A zero since returns the whole table. Rows that cannot be
// parsed are skipped with a warning.
func (l *Ledger) ReadSince(since Timestamp) ([]PurchaseRecord, error) {
	if _, err := l.ensure(); err != nil {
		return nil, err
	}
	rows, err := readTable(l.path, PurchasesColumns)
	if err != nil {
		return nil, err
	}
	var records []PurchaseRecord
	for _, row := range rows {
		r, err := decodePurchaseRow(row, l.currency)
		if err != nil {
			log.Printf("warning, %q: skipping row: %v", l.path, err)
			continue
		}
		if !since.IsZero() && !r.Timestamp.After(since) {
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

// Observations projects ledger records onto the delta engine's input,
// restricted to the given entity names. A nil names set selects everything.
func (l *Ledger) Observations(names map[string]bool) ([]PriceObservation, error) {
	records, err := l.ReadSince(Timestamp{})
	if err != nil {
		return nil, err
	}
	var observations []PriceObservation
	for _, r := range records {
		if names != nil && !names[r.Name] {
			continue
		}
		observations = append(observations, PriceObservation{
			Name:      r.Name,
			Timestamp: r.Timestamp,
			Quantity:  r.Quantity,
			Price:     r.Price,
		})
	}
	return observations, nil
}

// keys returns the identity of every persisted row.
func (l *Ledger) keys() (map[string]bool, error) {
	rows, err := readTable(l.path, PurchasesColumns)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		seen[row[0]+"|"+row[4]+"|"+row[1]] = true
	}
	return seen, nil
}

func encodePurchaseRow(r PurchaseRecord) []string {
	quantity := ""
	if r.Quantity > 0 {
		quantity = strconv.Itoa(r.Quantity)
	}
	return []string{
		r.SourceID,
		r.Timestamp.String(),
		r.Timestamp.DateDisplay(),
		r.Timestamp.TimeDisplay(),
		r.Name,
		quantity,
		r.Price.String(),
		r.URL,
	}
}

func decodePurchaseRow(row []string, currency string) (PurchaseRecord, error) {
	ts, err := ParseTimestamp(row[1])
	if err != nil {
		return PurchaseRecord{}, err
	}
	price, err := ParsePrice(row[6], currency)
	if err != nil {
		return PurchaseRecord{}, fmt.Errorf("row %q: %w", row[0], err)
	}
	quantity := 0
	if row[5] != "" {
		quantity, err = strconv.Atoi(row[5])
		if err != nil {
			return PurchaseRecord{}, fmt.Errorf("row %q: invalid quantity %q: %w", row[0], row[5], err)
		}
	}
	return PurchaseRecord{
		SourceID:  row[0],
		Timestamp: ts,
		Name:      row[4],
		Quantity:  quantity,
		Price:     price,
		URL:       row[7],
	}, nil
}

// readTable reads a CSV table, validates its header against the declared
// schema, and returns the data rows.
func readTable(path string, columns []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingInputError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(columns)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read table %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, &MissingInputError{Path: path, Detail: "no header row"}
	}
	for i, name := range columns {
		if rows[0][i] != name {
			return nil, &MissingInputError{Path: path, Detail: fmt.Sprintf("header column %d is %q, want %q", i, rows[0][i], name)}
		}
	}
	return rows[1:], nil
}
