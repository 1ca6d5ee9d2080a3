package pricetrack

import "fmt"

// Structural errors abort a run; data quality issues are logged and skipped
// instead. A failed run never reaches the merge writer, so the previously
// persisted tables keep their last-good state.

// MissingInputError reports that a required file or field is absent, e.g.
// requesting deltas with no ledger.
type MissingInputError struct {
	Path   string // file that was required
	Detail string
}

func (e *MissingInputError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("missing required input %q: %s", e.Path, e.Detail)
	}
	return fmt.Sprintf("missing required input %q", e.Path)
}

// EmptyResultError guards against overwriting a persisted table with zero
// rows when a computation step yields nothing.
type EmptyResultError struct {
	Table string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("refusing to overwrite %q with an empty result", e.Table)
}

// ValidationMismatchError reports that the HTML and plaintext representations
// of the same producer message disagree. Both parses are carried so the
// caller (or a test) can inspect the exact fields that diverged.
type ValidationMismatchError struct {
	SourceID string
	HTML     []Item
	Text     []Item
}

func (e *ValidationMismatchError) Error() string {
	return fmt.Sprintf("message %q: html and plaintext parses disagree (%d vs %d items)",
		e.SourceID, len(e.HTML), len(e.Text))
}
