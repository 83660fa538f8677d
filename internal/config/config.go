// Package config loads CLI defaults from the XDG config dir and the environment.
// Precedence is fixed: command-line values override DB2_* environment variables,
// which override the optional config.yaml defaults file. Only non-secret settings
// live here; the tool carries no credentials.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"batchtsocmd/cli/internal/xdg"

	"gopkg.in/yaml.v3"
)

// Environment variable names recognized for defaults.
const (
	EnvSystem  = "DB2_SYSTEM"
	EnvPlan    = "DB2_PLAN"
	EnvToollib = "DB2_TOOLLIB"
	EnvSteplib = "DB2_STEPLIB"
	EnvDbrmlib = "DB2_DBRMLIB"
)

// Defaults holds fallback values for the common submission parameters.
// Steplib and Dbrmlib use the same colon-separated concatenation syntax
// as the command-line flags.
type Defaults struct {
	System  string `yaml:"system"`
	Plan    string `yaml:"plan"`
	Toollib string `yaml:"toollib"`
	Steplib string `yaml:"steplib"`
	Dbrmlib string `yaml:"dbrmlib"`
}

// path returns the path to the defaults file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the defaults file; a missing file returns zero defaults.
func Load() (Defaults, error) {
	var d Defaults
	p, err := path()
	if err != nil {
		return d, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return d, nil
		}
		return d, err
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, err
	}
	return d, nil
}

// Save writes the defaults file with 0600 permissions.
func Save(d Defaults) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Resolve returns the flag value when set, else the environment variable,
// else the file default.
func Resolve(flag, envVar, fileDefault string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fileDefault
}
