// Package matcher implements the wildcard matching engine. A pattern is
// a plain string where '*' matches any run of zero or more characters
// and '?' matches exactly one character; everything else is literal.
// Characters are Unicode code points, so '?' consumes a whole rune.
// Each wildcard records the text it consumed in a capture table so the
// rebuild engine can replay it.
package matcher

import (
	"strings"

	"github.com/arthur-debert/filer/pkg/capture"
	"github.com/arthur-debert/filer/pkg/errors"
)

// Match tests name against pattern. On success it returns true and the
// capture table populated in wildcard order. "No match" is an ordinary
// false result, not an error; the only error condition is a pattern
// whose wildcard count exceeds the capture table capacity.
//
// Names starting with '.' are rejected up front unless includeDotfiles
// is set. This check happens once per attempt, not per recursive step.
func Match(name, pattern string, includeDotfiles bool) (bool, *capture.Table, error) {
	if n := wildcardCount(pattern); n > capture.MaxRecords {
		return false, nil, errors.Newf(errors.ErrCaptureOverflow,
			"pattern %q has %d wildcards, limit is %d", pattern, n, capture.MaxRecords)
	}

	table := capture.NewTable()
	if strings.HasPrefix(name, ".") && !includeDotfiles {
		return false, table, nil
	}

	if !matchAt([]rune(name), []rune(pattern), 0, 0, table) {
		table.Clear()
		return false, table, nil
	}
	return true, table, nil
}

// matchAt compares name[fp:] against pattern[pp:], appending captures
// to table as wildcards consume text. Captures from failed branches are
// rolled back before returning, so on success the table holds exactly
// the captures of the winning derivation.
func matchAt(name, pattern []rune, fp, pp int, table *capture.Table) bool {
	// Both exhausted simultaneously: the match is complete.
	if fp == len(name) && pp == len(pattern) {
		return true
	}
	// Exactly one exhausted: dead end.
	if fp == len(name) || pp == len(pattern) {
		return false
	}

	switch pattern[pp] {
	case '?':
		mark := table.Len()
		// Cannot overflow: wildcard count was checked up front.
		_ = table.Append(capture.QuestionMark, string(name[fp]))
		if matchAt(name, pattern, fp+1, pp+1, table) {
			return true
		}
		table.Truncate(mark)
		return false

	case '*':
		mark := table.Len()
		_ = table.Append(capture.Star, "")

		// Empty match first, then grow the star one character at a
		// time, retrying the continuation after each growth.
		if matchAt(name, pattern, fp, pp+1, table) {
			return true
		}
		for end := fp + 1; ; end++ {
			table.SetText(mark, string(name[fp:end]))
			if end == len(name) {
				// Filename exhausted mid-star: the star swallows the
				// rest, and only wins if it is the last pattern token.
				if pp == len(pattern)-1 {
					return true
				}
				table.Truncate(mark)
				return false
			}
			if matchAt(name, pattern, end, pp+1, table) {
				return true
			}
		}

	default:
		if name[fp] == pattern[pp] {
			return matchAt(name, pattern, fp+1, pp+1, table)
		}
		return false
	}
}

func wildcardCount(pattern string) int {
	return strings.Count(pattern, "*") + strings.Count(pattern, "?")
}
