package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/filer/pkg/errors"
	"github.com/arthur-debert/filer/pkg/filesystem"
)

func TestLoadFromMissingFile(t *testing.T) {
	memFS := filesystem.NewMemory()

	cfg, err := LoadFrom(memFS, "/home/user/.config/filer/filer.toml")
	require.NoError(t, err, "a missing config file is not an error")
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromOverlaysDefaults(t *testing.T) {
	memFS := filesystem.NewMemory()
	memFS.AddFile("/cfg/filer.toml", []byte(`
command = "mv"
quote_names = true
`))

	cfg, err := LoadFrom(memFS, "/cfg/filer.toml")
	require.NoError(t, err)
	assert.Equal(t, "mv", cfg.Command)
	assert.True(t, cfg.QuoteNames)
	// Unset keys keep their defaults
	assert.Equal(t, ".", cfg.Directory)
	assert.False(t, cfg.IncludeDotfiles)
}

func TestLoadFromAllKeys(t *testing.T) {
	memFS := filesystem.NewMemory()
	memFS.AddFile("/cfg/filer.toml", []byte(`
command = "cp"
directory = "/data/inbox"
include_dotfiles = true
quote_names = true
`))

	cfg, err := LoadFrom(memFS, "/cfg/filer.toml")
	require.NoError(t, err)
	assert.Equal(t, Config{
		Command:         "cp",
		Directory:       "/data/inbox",
		IncludeDotfiles: true,
		QuoteNames:      true,
	}, cfg)
}

func TestLoadFromBadTOML(t *testing.T) {
	memFS := filesystem.NewMemory()
	memFS.AddFile("/cfg/filer.toml", []byte(`command = `))

	cfg, err := LoadFrom(memFS, "/cfg/filer.toml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Equal(t, Default(), cfg)
}
