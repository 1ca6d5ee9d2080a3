package pricetrack

import (
	"fmt"
	"log"
)

// Tracker drives the batch pipeline: ingestion into the ledger, catalog
// maintenance, and the scoped recompute-and-merge of the tracked table.
//
// It is single threaded by design: one process, one pass, full table swap.
// Concurrent invocations over the same files must be prevented by the caller.
type Tracker struct {
	Ledger      *Ledger
	TrackedPath string
	CatalogPath string
	Currency    string
}

// Ingest expands producer messages into purchase records, appends the ones
// past the current watermark to the ledger, and registers first-sighted
// entity names in the catalog. It returns the number of rows appended.
//
// On a first run (no ledger yet) there is no resume point and every record is
// appended.
func (t *Tracker) Ingest(messages []Message) (int, error) {
	var watermark Timestamp
	if t.Ledger.Exists() {
		latest, found, err := t.Ledger.LatestTimestamp()
		if err != nil {
			return 0, err
		}
		if found {
			watermark = latest
		}
	}

	var records []PurchaseRecord
	for _, m := range messages {
		expanded, err := m.Records(t.Currency)
		if err != nil {
			return 0, err
		}
		for _, r := range expanded {
			if !watermark.IsZero() && !r.Timestamp.After(watermark) {
				continue
			}
			records = append(records, r)
		}
	}
	if len(records) == 0 {
		log.Println("no records past the watermark, nothing to ingest")
		return 0, nil
	}

	appended, err := t.Ledger.Append(records)
	if err != nil {
		return appended, err
	}
	if err := t.registerEntities(records); err != nil {
		return appended, err
	}
	return appended, nil
}

// registerEntities creates catalog entries for names seen for the first time.
func (t *Tracker) registerEntities(records []PurchaseRecord) error {
	catalog, err := DecodeCatalog(t.CatalogPath)
	if err != nil {
		return err
	}
	added := 0
	for _, r := range records {
		if catalog.Add(r.Name, r.URL) {
			added++
		}
	}
	if added == 0 {
		return nil
	}
	return EncodeCatalog(t.CatalogPath, catalog)
}

// Update recomputes the tracked-price table.
//
// On first run the whole ledger is computed. Afterwards only the entities
// touched since the tracked watermark are recomputed, over their full price
// history so running statistics stay causal, and merged with the untouched
// rows. Nothing is persisted before the final merged result exists, so a
// failed run leaves the previous table in place.
func (t *Tracker) Update() error {
	if !t.Ledger.Exists() {
		return &MissingInputError{Path: t.Ledger.Path(), Detail: "no purchases ledger to track"}
	}

	if !TrackedExists(t.TrackedPath) {
		observations, err := t.Ledger.Observations(nil)
		if err != nil {
			return err
		}
		rows := ComputeDeltas(observations)
		SortTracked(rows)
		return EncodeTracked(t.TrackedPath, rows)
	}

	watermark, found, err := LatestTracked(t.TrackedPath)
	if err != nil {
		return err
	}
	if !found {
		// a tracked file with a header but no parsable row: recompute all
		watermark = Timestamp{}
	}

	fresh, err := t.Ledger.ReadSince(watermark)
	if err != nil {
		return err
	}
	if len(fresh) == 0 {
		log.Println("tracked table is up to date")
		return nil
	}

	touched := make(map[string]bool)
	for _, r := range fresh {
		touched[r.Name] = true
	}

	// recompute the touched entities over their whole history: the running
	// average is causal from the first observation, not from the watermark
	observations, err := t.Ledger.Observations(touched)
	if err != nil {
		return err
	}
	recomputed := ComputeDeltas(observations)

	previous, err := DecodeTracked(t.TrackedPath, t.Currency)
	if err != nil {
		return fmt.Errorf("could not load previous tracked table: %w", err)
	}

	merged := Merge(previous, recomputed, touched)
	return EncodeTracked(t.TrackedPath, merged)
}
