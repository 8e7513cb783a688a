package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFormAlias is written by Init and used by generators when the
	// project config does not override it.
	DefaultFormAlias = "@/components/form"
	// DefaultModule is the package the schema builder namespace is imported from.
	DefaultModule = "zod"
	// DefaultNamespace is used when the namespace cannot be detected.
	DefaultNamespace = "z"
)

// Candidate config files, in lookup order.
var configFiles = []string{"components.json", "zodform.yaml", "zodform.yml"}

var (
	// ErrConfigNotFound is returned when no config file exists in the project.
	ErrConfigNotFound = errors.New("config: configuration file not found")
	// ErrNotInitialized is returned when the form alias has not been set up.
	ErrNotInitialized = errors.New("config: form alias is missing, run init first")
)

// Aliases mirrors the alias block of components.json.
type Aliases struct {
	Form       string `json:"form,omitempty" yaml:"form,omitempty"`
	Components string `json:"components,omitempty" yaml:"components,omitempty"`
	UI         string `json:"ui,omitempty" yaml:"ui,omitempty"`
}

// ResolvedConfig is the project configuration consumed by the extractor and
// the generators. Paths are absolute once produced by Load.
type ResolvedConfig struct {
	Cwd            string
	FormsDirectory string
	Aliases        Aliases
	Namespace      string
	Module         string
}

// Abs anchors a relative path at the project directory.
func (c ResolvedConfig) Abs(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Cwd == "" {
		return path
	}
	return filepath.Join(c.Cwd, path)
}

type configFile struct {
	Aliases   Aliases `json:"aliases" yaml:"aliases"`
	Namespace string  `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Module    string  `json:"module,omitempty" yaml:"module,omitempty"`
}

// Load finds the project config in cwd and resolves the form alias through
// tsconfig.json path mappings.
func Load(cwd string) (ResolvedConfig, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return ResolvedConfig{}, fmt.Errorf("config: resolve %s: %w", cwd, err)
	}

	path, data, err := readConfigFile(abs)
	if err != nil {
		return ResolvedConfig{}, err
	}
	raw, err := parseConfig(data, path)
	if err != nil {
		return ResolvedConfig{}, err
	}
	if strings.TrimSpace(raw.Aliases.Form) == "" {
		return ResolvedConfig{}, fmt.Errorf("%w (%s)", ErrNotInitialized, path)
	}

	ts, err := readTSConfig(abs)
	if err != nil {
		return ResolvedConfig{}, err
	}
	forms, err := ts.resolve(raw.Aliases.Form)
	if err != nil {
		return ResolvedConfig{}, err
	}

	cfg := ResolvedConfig{
		Cwd:            abs,
		FormsDirectory: forms,
		Aliases:        raw.Aliases,
		Namespace:      strings.TrimSpace(raw.Namespace),
		Module:         strings.TrimSpace(raw.Module),
	}
	if cfg.Module == "" {
		cfg.Module = DefaultModule
	}
	return cfg, nil
}

func readConfigFile(dir string) (string, []byte, error) {
	for _, name := range configFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return path, data, nil
	}
	return "", nil, fmt.Errorf("%w in %s", ErrConfigNotFound, dir)
}

func parseConfig(data []byte, source string) (configFile, error) {
	var cfg configFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return configFile{}, fmt.Errorf("config: file %s is empty", source)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return configFile{}, fmt.Errorf("config: parse %s: %w", source, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return configFile{}, fmt.Errorf("config: parse %s: %w", source, err)
		}
	}
	return cfg, nil
}
