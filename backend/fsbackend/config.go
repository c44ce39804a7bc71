package fsbackend

import (
	"bytes"
	"path/filepath"

	"github.com/berserkin1337/git-lite/backend"
	"github.com/berserkin1337/git-lite/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
	"gopkg.in/ini.v1"
)

// setDefaultCfg sets and persists the default git configuration for
// the repository
func (b *Backend) setDefaultCfg() error {
	cfg := ini.Empty()

	// Core
	core, err := cfg.NewSection(backend.CfgCore)
	if err != nil {
		return xerrors.Errorf("could not create core section: %w", err)
	}
	coreCfg := []struct {
		k string
		v string
	}{
		{backend.CfgCoreFormatVersion, "0"},
		{backend.CfgCoreFileMode, "false"},
		{backend.CfgCoreBare, "false"},
	}
	for _, kv := range coreCfg {
		if _, err := core.NewKey(kv.k, kv.v); err != nil {
			return xerrors.Errorf("could not set %s: %w", kv.k, err)
		}
	}

	// we go through a buffer instead of ini's SaveTo so everything
	// goes through the same afero fs
	buf := new(bytes.Buffer)
	if _, err := cfg.WriteTo(buf); err != nil {
		return xerrors.Errorf("could not serialize the config: %w", err)
	}
	p := filepath.Join(b.root, gitpath.ConfigPath)
	if err := afero.WriteFile(b.fs, p, buf.Bytes(), 0o644); err != nil {
		return xerrors.Errorf("could not persist the config to disk: %w", err)
	}
	return nil
}

// Config loads and returns the repository's configuration
func (b *Backend) Config() (*ini.File, error) {
	p := filepath.Join(b.root, gitpath.ConfigPath)
	data, err := afero.ReadFile(b.fs, p)
	if err != nil {
		return nil, xerrors.Errorf("could not read config file: %w", err)
	}
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, xerrors.Errorf("could not parse config file: %w", err)
	}
	return cfg, nil
}
