// Package config loads filer's optional configuration file. The file
// supplies defaults for the non-core options only; command-line flags
// always win, and the match/rebuild patterns themselves are never read
// from config.
package config

import (
	"io/fs"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/filer/pkg/errors"
	"github.com/arthur-debert/filer/pkg/logging"
	"github.com/arthur-debert/filer/pkg/types"

	stderrors "errors"
)

// ConfigFileName is the name of the config file under the XDG config
// directory ($XDG_CONFIG_HOME/filer/filer.toml).
const ConfigFileName = "filer.toml"

// Config holds the options a config file may default
type Config struct {
	Command         string `toml:"command"`
	Directory       string `toml:"directory"`
	IncludeDotfiles bool   `toml:"include_dotfiles"`
	QuoteNames      bool   `toml:"quote_names"`
}

// Default returns the built-in defaults
func Default() Config {
	return Config{
		Directory: ".",
	}
}

// DefaultPath returns the standard location of the config file
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "filer", ConfigFileName)
}

// Load reads the config file at the default location. A missing file is
// not an error: the built-in defaults apply.
func Load(fsys types.FS) (Config, error) {
	return LoadFrom(fsys, DefaultPath())
}

// LoadFrom reads the config file at path, overlaying its values on the
// built-in defaults.
func LoadFrom(fsys types.FS, path string) (Config, error) {
	logger := logging.GetLogger("config")
	cfg := Default()

	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("No config file, using defaults")
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
	}

	logger.Debug().Str("path", path).Msg("Loaded config file")
	return cfg, nil
}
