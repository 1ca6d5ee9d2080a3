// Package pricetrack maintains an append-only ledger of purchase history and
// a derived price-trend view over it. It is designed to be local-first and
// auditable: every store is a human-readable flat table that can be diffed
// and version-controlled.
//
// The core functionalities include:
//   - Ledger Store: idempotent, resumable ingestion of dated purchase records
//     into an append-only table, with a watermark query to drive the next
//     ingestion batch.
//   - Delta Engine: per-entity previous price, absolute and percent change,
//     and a causal running average computed strictly over past observations.
//   - Identity Matcher: approximate string matching that reconciles freshly
//     scraped listing names with the canonical catalog entities.
//   - Reconciliation/Merge Writer: recomputes touched entities in full,
//     keeps untouched rows unchanged, and atomically rewrites the tracked
//     table.
//
// This package serves as the foundational logic for the `ptk` command-line
// tool. Producers (email parsing, page scraping) stay outside of it and hand
// over normalized records; consumers read the computed tables.
package pricetrack
