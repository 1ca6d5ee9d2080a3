package pricetrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// PurchaseRecord is one purchased (or scraped) line item. Records are
// immutable once appended to the ledger and are uniquely identified by
// (SourceID, Name, Timestamp).
type PurchaseRecord struct {
	SourceID  string
	Timestamp Timestamp
	Name      string
	Quantity  int // 0 means absent (scrape-sourced rows have no quantity)
	Price     Money
	URL       string
}

// Key returns the identity of the record used by the ledger's uniqueness check.
func (r PurchaseRecord) Key() string {
	return r.SourceID + "|" + r.Name + "|" + r.Timestamp.String()
}

// Item is a single line item as parsed out of a producer message.
type Item struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// equal compares the fields a structural extraction can actually disagree on.
func (i Item) equal(j Item) bool {
	return i.Name == j.Name && i.Price == j.Price && i.Quantity == j.Quantity
}

// Message is one parsed producer message (typically a purchase confirmation
// email) as handed over by the ingestion collaborator: an opaque source id,
// the message instant, and the extracted line items. When the producer
// extracted items from both the HTML and the plaintext body, TextItems holds
// the second parse for cross-checking.
type Message struct {
	ID        string    `json:"id"`
	Timestamp Timestamp `json:"timestamp"`
	Items     []Item    `json:"items"`
	TextItems []Item    `json:"text_items,omitempty"`
}

// Records expands the message into one PurchaseRecord per line item.
//
// If the message carries both an HTML and a plaintext parse and they
// disagree, it returns a ValidationMismatchError holding both, so the caller
// can decide which fields diverged instead of guessing from a bare failure.
func (m Message) Records(currency string) ([]PurchaseRecord, error) {
	if m.ID == "" {
		return nil, fmt.Errorf("message without id")
	}
	if err := m.crossCheck(); err != nil {
		return nil, err
	}

	records := make([]PurchaseRecord, 0, len(m.Items))
	for _, item := range m.Items {
		price, err := ParsePrice(item.Price, currency)
		if err != nil {
			return nil, fmt.Errorf("message %q item %q: %w", m.ID, item.Name, err)
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		records = append(records, PurchaseRecord{
			SourceID:  m.ID,
			Timestamp: m.Timestamp,
			Name:      strings.TrimSpace(item.Name),
			Quantity:  quantity,
			Price:     price,
			URL:       item.URL,
		})
	}
	return records, nil
}

// crossCheck verifies the two structural extractions agree, when both exist.
func (m Message) crossCheck() error {
	if m.TextItems == nil {
		return nil
	}
	mismatch := len(m.Items) != len(m.TextItems)
	if !mismatch {
		for i := range m.Items {
			if !m.Items[i].equal(m.TextItems[i]) {
				mismatch = true
				break
			}
		}
	}
	if mismatch {
		return &ValidationMismatchError{SourceID: m.ID, HTML: m.Items, Text: m.TextItems}
	}
	return nil
}

// DecodeBatch decodes producer messages from a stream of JSONL data, one
// message per line, and returns them in input order.
func DecodeBatch(r io.Reader) ([]Message, error) {
	var messages []Message
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var m Message
		if err := json.Unmarshal(line, &m); err != nil {
			return nil, fmt.Errorf("cannot parse batch line %q: %w", string(line), err)
		}
		messages = append(messages, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
