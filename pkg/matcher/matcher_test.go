package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/filer/pkg/capture"
	"github.com/arthur-debert/filer/pkg/errors"
)

// captureTexts flattens the table for easy comparison
func captureTexts(t *capture.Table) []string {
	texts := make([]string, 0, t.Len())
	for _, rec := range t.Records() {
		texts = append(texts, rec.Kind.String()+rec.Text)
	}
	return texts
}

func TestMatchLiterals(t *testing.T) {
	tests := []struct {
		name    string
		fn      string
		pattern string
		want    bool
	}{
		{"exact match", "abc", "abc", true},
		{"different", "abc", "abd", false},
		{"pattern longer", "abc", "abcd", false},
		{"filename longer", "abcd", "abc", false},
		{"both empty", "", "", true},
		{"empty pattern", "abc", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, table, err := Match(tt.fn, tt.pattern, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			if ok {
				assert.Equal(t, 0, table.Len(), "literal matches produce no captures")
			}
		})
	}
}

func TestMatchStar(t *testing.T) {
	tests := []struct {
		name     string
		fn       string
		pattern  string
		want     bool
		captures []string
	}{
		{"bare star", "abc", "*", true, []string{"*abc"}},
		{"star in middle", "abc", "a*c", true, []string{"*b"}},
		{"star matches empty", "ac", "a*c", true, []string{"*"}},
		{"two stars", "abc", "*b*", true, []string{"*a", "*c"}},
		{"star then literal mismatch", "abc", "*x", false, nil},
		{"trailing star swallows rest", "abcdef", "ab*", true, []string{"*cdef"}},
		{"star with nothing left", "ab", "ab*", false, nil},
		{"leading star trailing literal", "abc", "*c", true, []string{"*ab"}},
		{"empty filename vs star", "", "*", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, table, err := Match(tt.fn, tt.pattern, false)
			require.NoError(t, err)
			require.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, tt.captures, captureTexts(table))
			} else {
				assert.Equal(t, 0, table.Len(), "failed match leaves an empty table")
			}
		})
	}
}

func TestMatchQuestionMark(t *testing.T) {
	tests := []struct {
		name     string
		fn       string
		pattern  string
		want     bool
		captures []string
	}{
		{"single char", "abc", "a?c", true, []string{"?b"}},
		{"mismatch after", "abc", "a?d", false, nil},
		{"all question marks", "abc", "???", true, []string{"?a", "?b", "?c"}},
		{"question mark needs a char", "ab", "ab?", false, nil},
		{"mixed with star", "a1b22c", "a?b*c", true, []string{"?1", "*22"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, table, err := Match(tt.fn, tt.pattern, false)
			require.NoError(t, err)
			require.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, tt.captures, captureTexts(table))
			}
		})
	}
}

func TestMatchDotfiles(t *testing.T) {
	ok, _, err := Match(".hidden", "*", false)
	require.NoError(t, err)
	assert.False(t, ok, "dotfiles are rejected by default")

	ok, table, err := Match(".hidden", "*", true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"*.hidden"}, captureTexts(table))
}

func TestMatchBacktracking(t *testing.T) {
	// The first star must retry longer prefixes before the second
	// star gets its chance.
	ok, table, err := Match("aXbXc", "*X*", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"*a", "*bXc"}, captureTexts(table))
}

func TestMatchMultibyteCharacters(t *testing.T) {
	// Wildcards count code points, not bytes.
	ok, table, err := Match("aéc", "a?c", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"?é"}, captureTexts(table))

	ok, table, err = Match("résumé.txt", "r*.txt", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"*ésumé"}, captureTexts(table))

	ok, _, err = Match("日本語", "???", false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchWildcardOverflow(t *testing.T) {
	pattern := strings.Repeat("?", capture.MaxRecords+1)
	fn := strings.Repeat("a", capture.MaxRecords+1)

	ok, _, err := Match(fn, pattern, false)
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCaptureOverflow))

	// Exactly at the limit is fine.
	ok, table, err := Match(strings.Repeat("a", capture.MaxRecords), strings.Repeat("?", capture.MaxRecords), false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, capture.MaxRecords, table.Len())
}
