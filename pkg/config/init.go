package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// Init records the form alias in the project's components.json, keeping every
// other key untouched. It returns the path it wrote.
func Init(cwd, formAlias string) (string, error) {
	if formAlias == "" {
		formAlias = DefaultFormAlias
	}
	path := filepath.Join(cwd, "components.json")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("config: parse %s: %w", path, err)
	}
	if raw == nil {
		raw = make(map[string]any)
	}
	aliases, _ := raw["aliases"].(map[string]any)
	if aliases == nil {
		aliases = make(map[string]any)
	}
	aliases["form"] = formAlias
	raw["aliases"] = aliases

	payload, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return "", fmt.Errorf("config: encode %s: %w", path, err)
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
