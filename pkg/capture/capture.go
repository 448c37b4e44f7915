// Package capture holds the substrings consumed by wildcards during a
// match attempt. The table is an ordered, bounded collection of tagged
// records: the matcher appends to it left to right, the rebuild engine
// reads it back by kind and 1-based index.
package capture

import (
	"github.com/arthur-debert/filer/pkg/errors"
)

// MaxRecords is the capacity of a table. Patterns with more wildcards
// than this are rejected outright rather than silently truncated.
const MaxRecords = 10

// Kind identifies which wildcard produced a record
type Kind byte

const (
	// Star is a record produced by a '*' wildcard (zero or more chars)
	Star Kind = '*'
	// QuestionMark is a record produced by a '?' wildcard (exactly one char)
	QuestionMark Kind = '?'
)

// String returns the wildcard character for the kind
func (k Kind) String() string {
	return string(byte(k))
}

// Record is one capture: the wildcard that produced it and the text it
// consumed. Text is empty only for Star records.
type Record struct {
	Kind Kind
	Text string
}

// Table is the ordered store of captures for a single match attempt.
// It is not safe for concurrent use; the driver owns one per run and
// clears it between files.
type Table struct {
	records []Record
}

// NewTable returns an empty table
func NewTable() *Table {
	return &Table{records: make([]Record, 0, MaxRecords)}
}

// Clear resets the table to empty
func (t *Table) Clear() {
	t.records = t.records[:0]
}

// Len returns the number of records currently stored
func (t *Table) Len() int {
	return len(t.records)
}

// Append adds a record at the end of the table. It fails with
// ErrCaptureOverflow when all slots are occupied.
func (t *Table) Append(kind Kind, text string) error {
	if len(t.records) >= MaxRecords {
		return errors.Newf(errors.ErrCaptureOverflow,
			"capture table full: pattern has more than %d wildcards", MaxRecords)
	}
	t.records = append(t.records, Record{Kind: kind, Text: text})
	return nil
}

// SetText replaces the text of the i-th record (0-based). Used by the
// matcher while growing a star capture during backtracking.
func (t *Table) SetText(i int, text string) {
	t.records[i].Text = text
}

// Truncate discards all records at position n and beyond. Used by the
// matcher to roll back captures from a failed branch.
func (t *Table) Truncate(n int) {
	t.records = t.records[:n]
}

// Nth returns the n-th (1-based) record of the given kind in table
// order, counting only records of that kind. It fails with
// ErrCaptureNotFound when fewer than n such records exist.
func (t *Table) Nth(kind Kind, n int) (Record, error) {
	if n < 1 {
		return Record{}, errors.Newf(errors.ErrCaptureNotFound,
			"capture index %d out of range for %q", n, kind.String())
	}
	seen := 0
	for _, rec := range t.records {
		if rec.Kind != kind {
			continue
		}
		seen++
		if seen == n {
			return rec, nil
		}
	}
	return Record{}, errors.Newf(errors.ErrCaptureNotFound,
		"no capture %d of kind %q (have %d)", n, kind.String(), seen)
}

// Records returns the records in table order. The returned slice is the
// table's backing store; callers must not mutate it.
func (t *Table) Records() []Record {
	return t.records
}
