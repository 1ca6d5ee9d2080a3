package pricetrack

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// CatalogColumns is the schema header of the catalog table.
var CatalogColumns = []string{"name", "url"}

// CatalogEntry is a distinct purchasable entity, identified by name, with the
// canonical URL it was first sighted under.
type CatalogEntry struct {
	Name string
	URL  string
}

// Catalog holds the known entities. Entries are created on first sighting of
// a name and never deleted; the persisted table is deduplicated by name and
// sorted ascending.
type Catalog struct {
	entries []*CatalogEntry
	index   map[string]*CatalogEntry
}

// NewCatalog returns a new empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make([]*CatalogEntry, 0),
		index:   make(map[string]*CatalogEntry),
	}
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

func (c *Catalog) Get(name string) *CatalogEntry { return c.index[name] }

func (c *Catalog) Len() int { return len(c.entries) }

// Add records a first sighting of name. It returns true if the entry was
// created, false if the name was already known (exact-name collapse).
func (c *Catalog) Add(name, url string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if _, ok := c.index[name]; ok {
		return false
	}
	entry := &CatalogEntry{Name: name, URL: url}
	c.entries = append(c.entries, entry)
	c.index[name] = entry
	return true
}

// Entries returns the catalog entries sorted by name ascending.
func (c *Catalog) Entries() []*CatalogEntry {
	sorted := slices.Clone(c.entries)
	slices.SortFunc(sorted, func(a, b *CatalogEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}

// DecodeCatalog loads the catalog table from path. An absent file yields an
// empty catalog: the store materializes on first save.
func DecodeCatalog(path string) (*Catalog, error) {
	c := NewCatalog()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c, nil
	}
	rows, err := readTable(path, CatalogColumns)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		c.Add(row[0], row[1])
	}
	return c, nil
}

// EncodeCatalog writes the catalog to path, deduplicated by name and sorted
// by name ascending, replacing the previous file in a single rewrite.
func EncodeCatalog(path string, c *Catalog) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create catalog directory %q: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not write catalog %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(CatalogColumns); err != nil {
		return err
	}
	for _, entry := range c.Entries() {
		if err := w.Write([]string{entry.Name, entry.URL}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
