package pricetrack

import (
	"fmt"
	"log"
)

// Check runs one scrape reconciliation cycle.
//
// For every catalog entity it pulls the live listing candidates from its
// canonical URL, resolves the observed names back to the catalog identity
// with the matcher, and appends a quantity-less scrape observation for each
// match. A feed failure or a no-match skips that entity for this cycle; both
// are logged, never retried, and never abort the run. Touched entities are
// then recomputed and merged into the tracked table.
func (t *Tracker) Check(feed *Feed, matcher Matcher, now Timestamp) (int, error) {
	catalog, err := DecodeCatalog(t.CatalogPath)
	if err != nil {
		return 0, err
	}
	if catalog.Len() == 0 {
		return 0, &MissingInputError{Path: t.CatalogPath, Detail: "no catalog entities to check"}
	}

	var records []PurchaseRecord
	for _, entry := range catalog.Entries() {
		candidates, err := feed.Candidates(entry.URL)
		if err != nil {
			log.Printf("warning, skipping %q for this cycle: %v", entry.Name, err)
			continue
		}
		observed, ok := matcher.Match(candidates, entry.Name)
		if !ok {
			log.Printf("no listing matched %q among %d candidates, skipping", entry.Name, len(candidates))
			continue
		}
		if observed.Name != entry.Name {
			log.Printf("matched %q to listing %q", entry.Name, observed.Name)
		}
		records = append(records, PurchaseRecord{
			SourceID:  fmt.Sprintf("scrape:%s", now),
			Timestamp: now,
			Name:      entry.Name, // reconciled to the catalog identity
			Price:     observed.Price,
			URL:       entry.URL,
		})
	}
	if len(records) == 0 {
		log.Println("no entity produced a scrape observation this cycle")
		return 0, nil
	}

	appended, err := t.Ledger.Append(records)
	if err != nil {
		return appended, err
	}
	return appended, t.Update()
}
