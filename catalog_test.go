package pricetrack

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCatalog_AddDeduplicates(t *testing.T) {
	c := NewCatalog()
	if !c.Add("Dog Food", "https://example.com/dog-food") {
		t.Error("first sighting should create an entry")
	}
	if c.Add("Dog Food", "https://example.com/other") {
		t.Error("second sighting of the same name should not create an entry")
	}
	if c.Add("", "https://example.com/empty") {
		t.Error("an empty name is not an entity")
	}
	if c.Len() != 1 {
		t.Errorf("catalog has %d entries, want 1", c.Len())
	}
	// the first sighted URL stays canonical
	if got := c.Get("Dog Food").URL; got != "https://example.com/dog-food" {
		t.Errorf("canonical url = %q", got)
	}
}

func TestCatalog_EncodeDecodeSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")

	c := NewCatalog()
	c.Add("Zebra Toy", "https://example.com/z")
	c.Add("Apple Chews", "https://example.com/a")
	c.Add("Litter", "https://example.com/l")
	if err := EncodeCatalog(path, c); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "name,url\nApple Chews,https://example.com/a\nLitter,https://example.com/l\nZebra Toy,https://example.com/z\n"
	if string(content) != want {
		t.Errorf("catalog file = %q, want %q", content, want)
	}

	loaded, err := DecodeCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Len() != 3 || !loaded.Has("Litter") {
		t.Errorf("decoded catalog lost entries: %d", loaded.Len())
	}
}

func TestDecodeCatalog_AbsentFileIsEmpty(t *testing.T) {
	c, err := DecodeCatalog(filepath.Join(t.TempDir(), "nope.csv"))
	if err != nil {
		t.Fatalf("absent catalog should decode as empty, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("got %d entries, want 0", c.Len())
	}
}
