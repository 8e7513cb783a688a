package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestInit_PreservesExistingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "components.json", `{"style": "new-york", "aliases": {"ui": "@/components/ui", "form": "@/old"}}`)

	path, err := Init(dir, "")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if path != filepath.Join(dir, "components.json") {
		t.Fatalf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if raw["style"] != "new-york" {
		t.Fatalf("style lost: %v", raw)
	}
	aliases := raw["aliases"].(map[string]any)
	if aliases["form"] != DefaultFormAlias || aliases["ui"] != "@/components/ui" {
		t.Fatalf("unexpected aliases: %v", aliases)
	}
}

func TestInit_MissingComponentsJSON(t *testing.T) {
	if _, err := Init(t.TempDir(), ""); !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}
