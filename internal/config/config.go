package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/decomment/pkg/decomment"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileConfig is the content of an optional .decomment.yaml in the walk root.
type FileConfig struct {
	Extensions []string `yaml:"extensions,omitempty"`
	Exclude    []string `yaml:"exclude,omitempty"`
}

// Config is the fully resolved configuration for one run.
type Config struct {
	Root       string
	Extensions []string
	Exclude    []string
	Verbose    bool
}

// Overrides carries values given on the command line. Empty slices mean "not set".
type Overrides struct {
	Extensions []string
	Exclude    []string
	Verbose    bool
}

// Load reads .decomment.yaml from root.
func Load(root string) (*FileConfig, error) {
	configPath := filepath.Join(root, decomment.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", decomment.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// Resolve layers defaults, the optional config file in root, environment
// variables and command-line overrides, later layers replacing earlier ones.
func Resolve(root string, overrides Overrides) (*Config, error) {
	cfg := &Config{
		Root:       root,
		Extensions: decomment.DefaultExtensions(),
		Exclude:    decomment.DefaultExclude(),
		Verbose:    overrides.Verbose,
	}

	fileCfg, err := Load(root)
	switch {
	case errors.Is(err, ErrConfigNotFound):
	case err != nil:
		return nil, err
	default:
		if len(fileCfg.Extensions) > 0 {
			cfg.Extensions = fileCfg.Extensions
		}
		if len(fileCfg.Exclude) > 0 {
			cfg.Exclude = fileCfg.Exclude
		}
	}

	if v, ok := os.LookupEnv(decomment.EnvExtensions); ok {
		cfg.Extensions = splitList(v)
		if len(cfg.Extensions) == 0 {
			return nil, fmt.Errorf("%w: %s is set but empty", decomment.ErrInvalidConfig, decomment.EnvExtensions)
		}
	}
	if v, ok := os.LookupEnv(decomment.EnvExclude); ok {
		cfg.Exclude = splitList(v)
	}

	if len(overrides.Extensions) > 0 {
		cfg.Extensions = overrides.Extensions
	}
	if len(overrides.Exclude) > 0 {
		cfg.Exclude = overrides.Exclude
	}

	cfg.Extensions, err = normalizeExtensions(cfg.Extensions)
	if err != nil {
		return nil, err
	}
	cfg.Exclude = compact(cfg.Exclude)

	return cfg, nil
}

// normalizeExtensions trims entries, adds a leading dot and rejects entries
// that could never match a file name.
func normalizeExtensions(exts []string) ([]string, error) {
	out := make([]string, 0, len(exts))
	for _, ext := range compact(exts) {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if ext == "." || strings.ContainsAny(ext, `/\`) {
			return nil, fmt.Errorf("%w: bad extension %q", decomment.ErrInvalidConfig, ext)
		}
		out = append(out, ext)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no extensions configured", decomment.ErrInvalidConfig)
	}
	return out, nil
}

func splitList(v string) []string {
	return compact(strings.Split(v, ","))
}

// compact trims whitespace and drops empty entries.
func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
