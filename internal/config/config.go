package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fswrap/pkg/fsio"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig indicates a config value that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment variables read by ApplyEnv.
const (
	EnvEncoding = "FSWRAP_ENCODING"
	EnvVerbose  = "FSWRAP_VERBOSE"
	EnvNoColor  = "NO_COLOR"
)

type Settings struct {
	// Encoding is the IANA name used by text commands. Empty means UTF-8.
	Encoding string `yaml:"encoding"`
	Verbose  bool   `yaml:"verbose"`
	// Color is one of auto, always or never.
	Color string `yaml:"color"`
}

const ConfigFileName = "fswrap.yaml"

// Defaults returns the settings used when no config file exists.
func Defaults() *Settings {
	return &Settings{Encoding: "utf-8", Color: ColorAuto}
}

// Load reads ConfigFileName from dir. Fields missing from the file keep
// their defaults.
func Load(fsys afero.Fs, dir string) (*Settings, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := afero.ReadFile(fsys, configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, configPath, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment. lookup is os.LookupEnv
// outside tests.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvEncoding); ok && v != "" {
		s.Encoding = v
	}
	if v, ok := lookup(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvVerbose, v)
		}
		s.Verbose = b
	}
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		s.Color = ColorNever
	}
	return nil
}

// Validate checks the color mode and that the encoding is known.
func (s *Settings) Validate() error {
	switch s.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalidConfig, s.Color)
	}
	if _, err := fsio.LookupEncoding(s.Encoding); err != nil {
		return fmt.Errorf("%w: encoding %q: %v", ErrInvalidConfig, s.Encoding, err)
	}
	return nil
}
