package pricetrack

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheck_ScrapeCycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products": [
			{"name": "Premium Dog Fod", "price": 29.99},
			{"name": "Cat Tree", "price": 89.00}
		]}`))
	}))
	defer srv.Close()

	tr := testTracker(t)
	if _, err := tr.Ingest([]Message{
		message("email-1", "2025-01-01 10:00:00",
			Item{Name: "Premium Dog Food", URL: srv.URL, Price: "$35.99", Quantity: 1}),
	}); err != nil {
		t.Fatal(err)
	}

	feed := NewFeed("USD")
	feed.Client = srv.Client() // no disk cache in tests

	appended, err := tr.Check(feed, Matcher{}, MustParseTimestamp("2025-01-10 08:00:00"))
	if err != nil {
		t.Fatal(err)
	}
	if appended != 1 {
		t.Fatalf("appended %d scrape observations, want 1", appended)
	}

	// the observation is reconciled to the catalog identity, not the listing name
	rows, err := DecodeTracked(tr.TrackedPath, "USD")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d tracked rows, want 2", len(rows))
	}
	latest := rows[0]
	if latest.Name != "Premium Dog Food" {
		t.Errorf("latest row name = %q, want the catalog identity", latest.Name)
	}
	if got := latest.Price.String(); got != "$29.99" {
		t.Errorf("latest price = %s, want $29.99", got)
	}
	if !latest.HasPrevious || latest.PreviousPrice.String() != "$35.99" {
		t.Errorf("previous price = %s, want $35.99", latest.PreviousPrice)
	}
}

func TestCheck_ReplayIsIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [{"name": "Litter", "price": 19.49}]}`))
	}))
	defer srv.Close()

	tr := testTracker(t)
	if _, err := tr.Ingest([]Message{
		message("email-1", "2025-01-01 10:00:00",
			Item{Name: "Litter", URL: srv.URL, Price: "$19.99", Quantity: 1}),
	}); err != nil {
		t.Fatal(err)
	}

	feed := NewFeed("USD")
	feed.Client = srv.Client()
	now := MustParseTimestamp("2025-01-10 08:00:00")

	if _, err := tr.Check(feed, Matcher{}, now); err != nil {
		t.Fatal(err)
	}
	// the same cycle replayed lands on the same (source, name, timestamp) key
	appended, err := tr.Check(feed, Matcher{}, now)
	if err != nil {
		t.Fatal(err)
	}
	if appended != 0 {
		t.Errorf("replayed cycle appended %d rows, want 0", appended)
	}
}

func TestCheck_EmptyCatalog(t *testing.T) {
	tr := testTracker(t)
	var missing *MissingInputError
	if _, err := tr.Check(NewFeed("USD"), Matcher{}, MustParseTimestamp("2025-01-10 08:00:00")); !errors.As(err, &missing) {
		t.Fatalf("got %v, want a MissingInputError", err)
	}
}

func TestCheck_FeedFailureSkipsEntity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := testTracker(t)
	if _, err := tr.Ingest([]Message{
		message("email-1", "2025-01-01 10:00:00",
			Item{Name: "Litter", URL: srv.URL, Price: "$19.99", Quantity: 1}),
	}); err != nil {
		t.Fatal(err)
	}

	feed := NewFeed("USD")
	feed.Client = srv.Client()

	appended, err := tr.Check(feed, Matcher{}, MustParseTimestamp("2025-01-10 08:00:00"))
	if err != nil {
		t.Fatal(err)
	}
	if appended != 0 {
		t.Errorf("failing feed appended %d rows, want 0", appended)
	}
}
