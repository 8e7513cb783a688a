package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tailscale/hujson"
)

// ErrUnresolvedAlias is returned when an alias has no tsconfig path mapping.
var ErrUnresolvedAlias = errors.New("config: alias does not match any tsconfig path")

type tsConfig struct {
	dir             string
	CompilerOptions struct {
		BaseURL string              `json:"baseUrl"`
		Paths   map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
}

// readTSConfig loads tsconfig.json from dir. A missing file yields an empty
// config; comments and trailing commas are accepted.
func readTSConfig(dir string) (tsConfig, error) {
	cfg := tsConfig{dir: dir}
	path := filepath.Join(dir, "tsconfig.json")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return tsConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	standard, err := hujson.Standardize(data)
	if err != nil {
		return tsConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := json.Unmarshal(standard, &cfg); err != nil {
		return tsConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// resolve maps an import alias onto an absolute directory. Patterns are tried
// from the longest prefix down so "@/components/*" wins over "@/*".
func (ts tsConfig) resolve(alias string) (string, error) {
	alias = strings.TrimSpace(alias)
	base := ts.dir
	if ts.CompilerOptions.BaseURL != "" {
		base = filepath.Join(ts.dir, ts.CompilerOptions.BaseURL)
	}

	patterns := make([]string, 0, len(ts.CompilerOptions.Paths))
	for pattern := range ts.CompilerOptions.Paths {
		patterns = append(patterns, pattern)
	}
	sort.Slice(patterns, func(i, j int) bool {
		pi, pj := prefixOf(patterns[i]), prefixOf(patterns[j])
		if len(pi) != len(pj) {
			return len(pi) > len(pj)
		}
		return patterns[i] < patterns[j]
	})

	for _, pattern := range patterns {
		targets := ts.CompilerOptions.Paths[pattern]
		if len(targets) == 0 {
			continue
		}
		match, ok := matchPattern(pattern, alias)
		if !ok {
			continue
		}
		target := strings.Replace(targets[0], "*", match, 1)
		return filepath.Join(base, filepath.FromSlash(target)), nil
	}

	if strings.HasPrefix(alias, "@") || strings.HasPrefix(alias, "~") {
		return "", fmt.Errorf("%w: %q", ErrUnresolvedAlias, alias)
	}
	if filepath.IsAbs(alias) {
		return filepath.Clean(alias), nil
	}
	return filepath.Join(ts.dir, filepath.FromSlash(alias)), nil
}

func prefixOf(pattern string) string {
	if i := strings.Index(pattern, "*"); i >= 0 {
		return pattern[:i]
	}
	return pattern
}

func matchPattern(pattern, value string) (string, bool) {
	star := strings.Index(pattern, "*")
	if star < 0 {
		return "", pattern == value
	}
	prefix, suffix := pattern[:star], pattern[star+1:]
	if len(value) < len(prefix)+len(suffix) {
		return "", false
	}
	if !strings.HasPrefix(value, prefix) || !strings.HasSuffix(value, suffix) {
		return "", false
	}
	return value[len(prefix) : len(value)-len(suffix)], true
}
