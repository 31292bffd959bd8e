// Package config resolves the preferred backend configuration and the
// environment settings of a build.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fs     afero.Fs
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(fs afero.Fs, logger ports.Logger) *Loader {
	return &Loader{fs: fs, logger: logger}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load merges the user config over the built-in defaults.
//
// Precedence: explicitPath, then shrink.yaml discovered from rootDir upwards,
// then defaults alone. A missing explicit file is an error; a missing
// discovered file is not.
func (l *Loader) Load(explicitPath, rootDir string) (domain.BackendConfig, error) {
	defaults := domain.DefaultBackendConfig()

	path := explicitPath
	if path == "" {
		path = l.discover(rootDir)
	}
	if path == "" {
		l.logger.Debug("no " + FileName + " found, using built-in closure defaults")
		return defaults, nil
	}

	file, err := l.read(path)
	if err != nil {
		return domain.BackendConfig{}, err
	}

	l.logger.Debug("using closure config from " + path)
	return defaults.Merge(file.Closure.toDomain()), nil
}

func (l *Loader) discover(rootDir string) string {
	if rootDir == "" {
		return ""
	}

	current, err := filepath.Abs(rootDir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(current, FileName)
		if _, err := l.fs.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}

func (l *Loader) read(path string) (*Shrinkfile, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrConfigRead, zerr.With(zerr.New("config file not found"), "path", path))
		}
		return nil, errors.Join(domain.ErrConfigRead, zerr.With(zerr.Wrap(err, "read config"), "path", path))
	}

	var file Shrinkfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(
			domain.ErrConfigParse,
			zerr.With(zerr.Wrap(err, fmt.Sprintf("parse %s", filepath.Base(path))), "path", path),
		)
	}

	return &file, nil
}

func (d ClosureDTO) toDomain() domain.BackendConfig {
	return domain.BackendConfig{
		JavaExecutable: d.JavaExecutable,
		CompilerJar:    d.CompilerJar,
		Optimization:   d.Optimization,
		LanguageIn:     d.LanguageIn,
		LanguageOut:    d.LanguageOut,
	}
}
