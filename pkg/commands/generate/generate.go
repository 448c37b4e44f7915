// Package generate implements filer's driver loop: list a directory,
// match every entry against the wildcard pattern, rebuild a name for
// each match, and produce one command line per match. Nothing here
// touches the filesystem beyond reading the listing.
package generate

import (
	"fmt"

	"github.com/arthur-debert/filer/pkg/errors"
	"github.com/arthur-debert/filer/pkg/filesystem"
	"github.com/arthur-debert/filer/pkg/logging"
	"github.com/arthur-debert/filer/pkg/matcher"
	"github.com/arthur-debert/filer/pkg/rebuild"
	"github.com/arthur-debert/filer/pkg/types"
)

// GenerateOptions holds options for the generate run
type GenerateOptions struct {
	// Directory to list; "." when empty.
	Directory string
	// MatchPattern is the wildcard pattern entries are tested against.
	MatchPattern string
	// RebuildPattern is the template used to synthesize output names.
	RebuildPattern string
	// CommandPrefix is prepended to every output line (possibly empty).
	CommandPrefix string
	// IncludeDotfiles lets names starting with '.' match.
	IncludeDotfiles bool
	// QuoteNames wraps both paths in double quotes in the output.
	QuoteNames bool
	// FileSystem to list through; the OS filesystem when nil.
	FileSystem types.FS
	// Clock for date escapes; wall clock when nil.
	Clock types.Clock
}

// Line is one generated command line
type Line struct {
	Source  string // original path as listed, <dir>/<name>
	Rebuilt string // name synthesized by the rebuild template
	Text    string // the full formatted command line
}

// GenerateResult holds the outcome of one run
type GenerateResult struct {
	Lines   []Line
	Scanned int
	Matched int
}

// Generate runs the match/rebuild loop over one directory. Entries are
// processed in listing order; the sequence counter starts at 1 and
// advances once per matched file whether or not the template uses it.
//
// The rebuild template is validated up front so a malformed template
// fails the run before any output is produced.
func Generate(opts GenerateOptions) (*GenerateResult, error) {
	logger := logging.GetLogger("commands.generate")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	dir := opts.Directory
	if dir == "" {
		dir = "."
	}

	engine := rebuild.NewEngine(opts.Clock)
	if err := engine.Validate(opts.RebuildPattern); err != nil {
		return nil, err
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirAccess, "cannot read directory %s", dir)
	}

	logger.Debug().
		Str("dir", dir).
		Str("match", opts.MatchPattern).
		Str("rebuild", opts.RebuildPattern).
		Int("entries", len(entries)).
		Msg("Starting generate run")

	result := &GenerateResult{}
	seq := 1

	for _, entry := range entries {
		name := entry.Name()
		result.Scanned++

		// Match builds a fresh capture table per attempt, so there is
		// no per-file clearing to do here.
		ok, table, err := matcher.Match(name, opts.MatchPattern, opts.IncludeDotfiles)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.Trace().Str("name", name).Msg("No match")
			continue
		}

		rebuilt, err := engine.Rebuild(opts.RebuildPattern, table, seq)
		if err != nil {
			return nil, err
		}

		// Historical output shape: the directory is joined with a
		// plain slash, so the default dir yields "./name".
		source := dir + "/" + name
		result.Lines = append(result.Lines, Line{
			Source:  source,
			Rebuilt: rebuilt,
			Text:    formatLine(opts.CommandPrefix, source, rebuilt, opts.QuoteNames),
		})
		result.Matched++
		seq++
	}

	logger.Info().
		Int("scanned", result.Scanned).
		Int("matched", result.Matched).
		Msg("Generate run finished")

	return result, nil
}

// formatLine assembles one output line. The command prefix keeps its
// trailing separator even when empty, matching filer's historical
// output.
func formatLine(cmd, source, rebuilt string, quote bool) string {
	if quote {
		return fmt.Sprintf(`%s "%s" "%s"`, cmd, source, rebuilt)
	}
	return fmt.Sprintf("%s %s %s", cmd, source, rebuilt)
}
