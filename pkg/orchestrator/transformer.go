package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ilyichv/shadcn-zod-form/pkg/model"
)

// Transformer mutates a derived Form before decorators run and the renderer
// sees it.
type Transformer interface {
	Transform(ctx context.Context, form *model.Form) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *model.Form) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *model.Form) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// PresetTransformer applies declarative overrides loaded from a JSON or YAML
// document:
//
//	{
//	  "metadata": {"source": "crm"},
//	  "fields": {"items.$index.qty": {"label": "Quantity"}},
//	  "groups": {"items": {"label": "Line items"}}
//	}
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Metadata map[string]string      `json:"metadata" yaml:"metadata"`
	Fields   map[string]presetPatch `json:"fields" yaml:"fields"`
	Groups   map[string]presetPatch `json:"groups" yaml:"groups"`
}

type presetPatch struct {
	Label string `json:"label" yaml:"label"`
}

// NewPresetTransformer constructs a transformer from raw JSON bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path. Files ending in .yaml or .yml are decoded as YAML.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		var document presetDocument
		if err := yaml.Unmarshal(data, &document); err != nil {
			return nil, fmt.Errorf("preset transformer: parse %s: %w", path, err)
		}
		return &PresetTransformer{document: document}, nil
	}
	return NewPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied form. Patches
// naming unknown fields or groups are rejected.
func (t *PresetTransformer) Transform(ctx context.Context, form *model.Form) error {
	if form == nil {
		return errors.New("preset transformer: form is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(t.document.Metadata) > 0 {
		form.Metadata = mergeStringMap(form.Metadata, t.document.Metadata)
	}

	for path, patch := range t.document.Fields {
		if !patchField(form, path, patch) {
			return fmt.Errorf("preset transformer: field %q not found", path)
		}
	}
	for id, patch := range t.document.Groups {
		found := false
		for i := range form.Groups {
			if form.Groups[i].ID == id {
				applyLabel(&form.Groups[i].Label, patch)
				found = true
			}
		}
		if !found {
			return fmt.Errorf("preset transformer: group %q not found", id)
		}
	}
	return nil
}

// patchField updates every copy of the descriptor at path: the flat list,
// the owning group and the ordered entries.
func patchField(form *model.Form, path string, patch presetPatch) bool {
	found := patchDescriptors(form.Fields, path, patch)
	found = patchEntries(form.Entries, path, patch) || found
	for i := range form.Groups {
		found = patchDescriptors(form.Groups[i].Fields, path, patch) || found
		found = patchEntries(form.Groups[i].Entries, path, patch) || found
	}
	return found
}

func patchDescriptors(fields []model.FieldDescriptor, path string, patch presetPatch) bool {
	found := false
	for i := range fields {
		if fields[i].Path == path {
			applyLabel(&fields[i].Label, patch)
			found = true
		}
	}
	return found
}

func patchEntries(entries []model.Entry, path string, patch presetPatch) bool {
	found := false
	for _, entry := range entries {
		if entry.Field != nil && entry.Field.Path == path {
			applyLabel(&entry.Field.Label, patch)
			found = true
		}
	}
	return found
}

func applyLabel(target *string, patch presetPatch) {
	if label := strings.TrimSpace(patch.Label); label != "" {
		*target = label
	}
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
