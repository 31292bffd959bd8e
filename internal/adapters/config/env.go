package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/mstoykov/envconfig"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/zerr"
)

// Env holds the settings read from the process environment.
type Env struct {
	// EnableClosure gates any attempt to use Closure Compiler.
	EnableClosure bool `envconfig:"SHRINK_ENABLE_CLOSURE"`
	// OutputJSFileName is the JS bundle name inside BuildDir.
	OutputJSFileName string `envconfig:"SHRINK_OUTPUT_JS_FILE_NAME" default:"main.js"`
	// OutputCSSFileName is the CSS bundle name inside BuildDir.
	OutputCSSFileName string `envconfig:"SHRINK_OUTPUT_CSS_FILE_NAME" default:"main.css"`
	BuildDir          string `envconfig:"SHRINK_BUILD_DIR" default:"www/build"`
	// ClosureConfig is a config file path that takes precedence over discovery.
	ClosureConfig string `envconfig:"SHRINK_CLOSURE"`
}

// LoadEnv reads Env through lookup. A nil lookup reads the process environment.
func LoadEnv(lookup func(string) (string, bool)) (Env, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var env Env
	if err := envconfig.Process("", &env, lookup); err != nil {
		return Env{}, errors.Join(domain.ErrEnvParse, zerr.Wrap(err, "process environment"))
	}
	return env, nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(domain.ErrEnvParse, zerr.With(zerr.Wrap(err, "load dotenv"), "path", path))
	}
	return nil
}
