package pricetrack

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// Default jsonpath expressions locating listing names and prices in a feed
// document. Feeds that shape their JSON differently override them in config.
const (
	DefaultNamesPath  = "$.products[*].name"
	DefaultPricesPath = "$.products[*].price"
)

// Feed reads freshly scraped listing candidates for a catalog entity.
//
// The scrape collaborator (a page renderer plus structural extractor) leaves
// JSON documents behind; the feed only picks the candidate names and prices
// out of them with two parallel jsonpath expressions.
type Feed struct {
	Client     *http.Client
	NamesPath  string
	PricesPath string
	Currency   string
}

// NewFeed returns a Feed with the default paths and a daily-cached HTTP
// client, so repeated check cycles in one day do not hammer the source.
func NewFeed(currency string) *Feed {
	return &Feed{
		Client:     daily(),
		NamesPath:  DefaultNamesPath,
		PricesPath: DefaultPricesPath,
		Currency:   currency,
	}
}

// Candidates fetches the feed document at addr and extracts its listing
// candidates.
func (f *Feed) Candidates(addr string) ([]Candidate, error) {
	var jobj any
	if err := jwget(f.Client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", addr, err)
	}
	return f.extract(jobj)
}

// extract zips the names and prices found in the document into candidates.
// Trailing unpaired values are dropped, as a zip does.
func (f *Feed) extract(jobj any) ([]Candidate, error) {
	names, err := pathStrings(jobj, f.NamesPath)
	if err != nil {
		return nil, err
	}
	prices, err := pathStrings(jobj, f.PricesPath)
	if err != nil {
		return nil, err
	}

	n := len(names)
	if len(prices) < n {
		n = len(prices)
	}
	candidates := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		price, err := ParsePrice(prices[i], f.Currency)
		if err != nil {
			return nil, fmt.Errorf("candidate %q: %w", names[i], err)
		}
		candidates = append(candidates, Candidate{Name: names[i], Price: price})
	}
	return candidates, nil
}

// pathStrings evaluates a jsonpath expression and renders every match as a
// string.
func pathStrings(jobj any, path string) ([]string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of
	// answers, or a single answer: normalize to a list here
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}
	values := make([]string, 0, len(jlist))
	for _, v := range jlist {
		switch t := v.(type) {
		case string:
			values = append(values, t)
		case float64:
			values = append(values, strconv.FormatFloat(t, 'f', -1, 64))
		default:
			return nil, fmt.Errorf("path %q: unexpected value %v (%T)", path, v, v)
		}
	}
	return values, nil
}
