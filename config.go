package pricetrack

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// File names of the three persisted tables inside the data directory.
const (
	PurchasesFile = "purchase_tracker.csv"
	TrackedFile   = "price_tracker.csv"
	CatalogFile   = "catalog.csv"
)

// Config carries everything the pipeline needs from the environment. It is
// loaded once at startup and threaded explicitly into entry points; core
// logic never reads ambient global state.
type Config struct {
	DataDir  string // directory holding the persisted tables
	Currency string // ISO currency code for all prices

	// Producer filters, forwarded to the ingestion collaborator.
	From    string
	Subject string

	// Identity matching.
	MinScore   int // minimum similarity (0-100) to accept a match
	NamesPath  string
	PricesPath string
}

// LoadConfig reads the configuration from the environment, honoring a .env
// file in the working directory when present.
func LoadConfig() (Config, error) {
	// a missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	cfg := Config{
		DataDir:    getenv("PRICETRACK_DATA_DIR", "data"),
		Currency:   getenv("PRICETRACK_CURRENCY", "USD"),
		From:       os.Getenv("PRICETRACK_FROM"),
		Subject:    os.Getenv("PRICETRACK_SUBJECT"),
		NamesPath:  getenv("PRICETRACK_NAMES_PATH", DefaultNamesPath),
		PricesPath: getenv("PRICETRACK_PRICES_PATH", DefaultPricesPath),
	}

	if s := os.Getenv("PRICETRACK_MIN_SCORE"); s != "" {
		score, err := strconv.Atoi(s)
		if err != nil || score < 0 || score > 100 {
			return Config{}, fmt.Errorf("PRICETRACK_MIN_SCORE must be an integer between 0 and 100, got %q", s)
		}
		cfg.MinScore = score
	}
	return cfg, nil
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// LedgerPath returns the purchases table location.
func (c Config) LedgerPath() string { return filepath.Join(c.DataDir, PurchasesFile) }

// TrackedPath returns the tracked-price table location.
func (c Config) TrackedPath() string { return filepath.Join(c.DataDir, TrackedFile) }

// CatalogPath returns the catalog table location.
func (c Config) CatalogPath() string { return filepath.Join(c.DataDir, CatalogFile) }

// Tracker builds the pipeline over the configured stores.
func (c Config) Tracker() *Tracker {
	return &Tracker{
		Ledger:      OpenLedger(c.LedgerPath(), c.Currency),
		TrackedPath: c.TrackedPath(),
		CatalogPath: c.CatalogPath(),
		Currency:    c.Currency,
	}
}

// Matcher builds the identity matcher with the configured threshold.
func (c Config) Matcher() Matcher { return Matcher{MinScore: c.MinScore} }

// Feed builds the listing feed with the configured extraction paths.
func (c Config) Feed() *Feed {
	f := NewFeed(c.Currency)
	f.NamesPath = c.NamesPath
	f.PricesPath = c.PricesPath
	return f
}
