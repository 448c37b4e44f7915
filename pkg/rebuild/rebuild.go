// Package rebuild implements the template engine that synthesizes a new
// filename from the captures of a successful match. Templates are plain
// strings with three kinds of escapes:
//
//	*    or ?      replay the next capture of that kind
//	*'N  or ?'N    replay the N-th capture of that kind (N = 1-9)
//	'dX            insert a date/time field (X in y Y m d M H s t)
//	'sN            insert the run sequence number, zero-padded to N digits
//
// Reference errors (bad index digit, index past the captured set) are
// recoverable: they are logged and the reference contributes nothing.
// Malformed quote escapes are template defects and abort the run.
package rebuild

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/filer/pkg/capture"
	"github.com/arthur-debert/filer/pkg/errors"
	"github.com/arthur-debert/filer/pkg/logging"
	"github.com/arthur-debert/filer/pkg/types"
)

// MaxNameLen caps the rebuilt name, counted in code points. Output
// beyond the cap is silently dropped rather than failing the file.
const MaxNameLen = 300

// Diagnostic strings for recoverable reference errors. The wording is
// part of filer's observable behavior, so keep it stable.
const (
	msgBadIndex = "Pattern index must be 1-9!"
	msgNotFound = "Can't find indexed pattern item."
)

// Engine rebuilds names from templates. It carries the clock so date
// escapes are testable; cursors and sequence state are per-call.
type Engine struct {
	clock  types.Clock
	logger zerolog.Logger
}

// NewEngine returns an engine reading time from clock (nil means wall
// clock).
func NewEngine(clock types.Clock) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		clock:  clock,
		logger: logging.GetLogger("rebuild"),
	}
}

// Validate checks template for fatal defects (malformed quote escapes)
// without producing output. The driver calls this before iterating
// files so a broken template never yields partial output.
func (e *Engine) Validate(template string) error {
	_, err := scan(template)
	return err
}

// Rebuild produces the output name for one matched file. The table
// holds the captures of the match; seq is the current value of the
// run-local sequence counter.
func (e *Engine) Rebuild(template string, table *capture.Table, seq int) (string, error) {
	toks, err := scan(template)
	if err != nil {
		return "", err
	}

	var (
		b    strings.Builder
		used int // code points written so far
		stk  int // auto-cursor over star captures
		qmk  int // auto-cursor over question-mark captures
	)

	for _, tok := range toks {
		switch tok.kind {
		case tokLiteral:
			appendBounded(&b, &used, string(tok.ch))

		case tokRef:
			n := tok.index
			switch {
			case n == badIndex:
				e.logger.Warn().Str("template", template).Msg(msgBadIndex)
				continue
			case n == autoIndex:
				if tok.refKind == capture.Star {
					stk++
					n = stk
				} else {
					qmk++
					n = qmk
				}
			default:
				// An explicit index also repositions the auto-cursor.
				if tok.refKind == capture.Star {
					stk = n
				} else {
					qmk = n
				}
			}
			rec, err := table.Nth(tok.refKind, n)
			if err != nil {
				e.logger.Warn().
					Str("template", template).
					Str("kind", tok.refKind.String()).
					Int("index", n).
					Msg(msgNotFound)
				continue
			}
			appendBounded(&b, &used, rec.Text)

		case tokDate:
			appendBounded(&b, &used, e.clock().Format(dateLayouts[tok.ch]))

		case tokSeq:
			appendBounded(&b, &used, fmt.Sprintf("%0*d", tok.width, seq))
		}
	}

	return b.String(), nil
}

// appendBounded appends s to b, dropping code points past MaxNameLen.
// The cap never splits a multi-byte character.
func appendBounded(b *strings.Builder, used *int, s string) {
	room := MaxNameLen - *used
	if room <= 0 {
		return
	}
	if utf8.RuneCountInString(s) > room {
		runes := []rune(s)
		s = string(runes[:room])
	}
	b.WriteString(s)
	*used += utf8.RuneCountInString(s)
}

// dateLayouts maps 'd escape codes to time layouts.
var dateLayouts = map[rune]string{
	'y': "06",       // 2-digit year
	'Y': "2006",     // 4-digit year
	'm': "01",       // month
	'd': "02",       // day of month
	'M': "04",       // minute
	'H': "15",       // hour
	's': "20060102", // compact date
	't': "1504",     // compact time
}

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokRef
	tokDate
	tokSeq
)

// index sentinels for reference tokens
const (
	autoIndex = 0  // no 'N given: use the auto-cursor
	badIndex  = -1 // 'N given but not a digit 1-9: recoverable error
)

type token struct {
	kind    tokenKind
	ch      rune         // literal char, or date code for tokDate
	refKind capture.Kind // for tokRef
	index   int          // for tokRef
	width   int          // for tokSeq
}

// scan tokenizes a rebuild template. The walk is over code points so
// multi-byte literals stay whole. Fatal template defects (unknown
// quote escape, missing or out-of-range date/sequence code) surface as
// ErrTemplateInvalid; recoverable index problems are encoded in the
// token stream and handled at rebuild time.
func scan(template string) ([]token, error) {
	rs := []rune(template)
	var toks []token
	for i := 0; i < len(rs); {
		switch c := rs[i]; c {
		case '*', '?':
			kind := capture.Star
			if c == '?' {
				kind = capture.QuestionMark
			}
			tok := token{kind: tokRef, refKind: kind, index: autoIndex}
			i++
			// Optional explicit index: a quote and one digit.
			if i < len(rs) && rs[i] == '\'' {
				i++
				if i >= len(rs) {
					tok.index = badIndex
				} else {
					d := rs[i]
					i++
					if d >= '1' && d <= '9' {
						tok.index = int(d - '0')
					} else {
						tok.index = badIndex
					}
				}
			}
			toks = append(toks, tok)

		case '\'':
			if i+1 >= len(rs) {
				return nil, errors.Newf(errors.ErrTemplateInvalid,
					"dangling quote escape at end of template %q", template)
			}
			switch rs[i+1] {
			case 'd':
				if i+2 >= len(rs) {
					return nil, errors.Newf(errors.ErrTemplateInvalid,
						"missing date code after 'd in template %q", template)
				}
				code := rs[i+2]
				if _, ok := dateLayouts[code]; !ok {
					return nil, errors.Newf(errors.ErrTemplateInvalid,
						"unknown date code %q in template %q", string(code), template)
				}
				toks = append(toks, token{kind: tokDate, ch: code})
				i += 3
			case 's':
				if i+2 >= len(rs) {
					return nil, errors.Newf(errors.ErrTemplateInvalid,
						"missing digit count after 's in template %q", template)
				}
				d := rs[i+2]
				if d < '1' || d > '9' {
					return nil, errors.Newf(errors.ErrTemplateInvalid,
						"sequence digit count must be 1-9, got %q in template %q", string(d), template)
				}
				toks = append(toks, token{kind: tokSeq, width: int(d - '0')})
				i += 3
			default:
				return nil, errors.Newf(errors.ErrTemplateInvalid,
					"unknown quote escape '%s in template %q", string(rs[i+1]), template)
			}

		default:
			toks = append(toks, token{kind: tokLiteral, ch: c})
			i++
		}
	}
	return toks, nil
}
