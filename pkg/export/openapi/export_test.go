package openapi_test

import (
	"errors"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/ilyichv/shadcn-zod-form/pkg/export/openapi"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

func userSchema() schema.Object {
	return schema.NewObject(
		schema.Property{Name: "name", Node: schema.Primitive{Type: schema.TypeString}},
		schema.Property{Name: "email", Node: schema.Primitive{Type: schema.TypeString, Chained: schema.NewModifierSet("email")}},
		schema.Property{Name: "age", Node: schema.Primitive{Type: schema.TypeNumber, Chained: schema.NewModifierSet("int", "optional")}},
		schema.Property{Name: "nickname", Node: schema.Primitive{Type: schema.TypeString, Chained: schema.NewModifierSet("nullable")}},
		schema.Property{Name: "role", Node: schema.Enum{Options: []string{"ADMIN", "USER"}}},
		schema.Property{Name: "tags", Node: schema.Array{Element: schema.NewObject(
			schema.Property{Name: "label", Node: schema.Primitive{Type: schema.TypeString}},
		)}},
		schema.Property{Name: "born", Node: schema.Primitive{Type: schema.TypeDate, Chained: schema.NewModifierSet("optional")}},
		schema.Property{Name: "meta", Node: schema.Unsupported{Reason: "record schemas are not supported"}},
	)
}

func TestSchema_Object(t *testing.T) {
	out, err := openapi.Schema(userSchema())
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	if !out.Type.Is(openapi3.TypeObject) {
		t.Fatalf("expected object type, got %v", out.Type)
	}
	wantOrder := []any{"name", "email", "age", "nickname", "role", "tags", "born", "meta"}
	if diff := cmp.Diff(wantOrder, out.Extensions[openapi.OrderExtension]); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	wantRequired := []string{"name", "email", "nickname", "role", "tags", "meta"}
	if diff := cmp.Diff(wantRequired, out.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}

	props := out.Properties
	if got := props["email"].Value.Format; got != "email" {
		t.Fatalf("email format = %q", got)
	}
	if !props["age"].Value.Type.Is(openapi3.TypeInteger) {
		t.Fatalf("age type = %v", props["age"].Value.Type)
	}
	if !props["nickname"].Value.Nullable {
		t.Fatal("nickname should be nullable")
	}
	if diff := cmp.Diff([]any{"ADMIN", "USER"}, props["role"].Value.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
	items := props["tags"].Value.Items
	if items == nil || !items.Value.Type.Is(openapi3.TypeObject) {
		t.Fatalf("tags items should be an object schema, got %+v", items)
	}
	if got := props["born"].Value.Format; got != "date" {
		t.Fatalf("born format = %q", got)
	}
	if got := props["meta"].Value.Extensions[openapi.UnsupportedExtension]; got != "record schemas are not supported" {
		t.Fatalf("meta extension = %v", got)
	}
}

func TestSchema_ValidatesValues(t *testing.T) {
	out, err := openapi.Schema(schema.NewObject(
		schema.Property{Name: "name", Node: schema.Primitive{Type: schema.TypeString}},
		schema.Property{Name: "qty", Node: schema.Primitive{Type: schema.TypeNumber, Chained: schema.NewModifierSet("optional")}},
		schema.Property{Name: "role", Node: schema.Enum{Options: []string{"ADMIN", "USER"}}},
	))
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	if err := out.VisitJSON(map[string]any{"name": "Ada", "role": "ADMIN"}); err != nil {
		t.Fatalf("expected valid value, got %v", err)
	}
	if err := out.VisitJSON(map[string]any{"role": "ADMIN"}); err == nil {
		t.Fatal("expected missing required property to fail")
	}
	if err := out.VisitJSON(map[string]any{"name": "Ada", "role": "GUEST"}); err == nil {
		t.Fatal("expected enum violation to fail")
	}
}

func TestSchema_NilNode(t *testing.T) {
	if _, err := openapi.Schema(nil); !errors.Is(err, openapi.ErrNilNode) {
		t.Fatalf("expected ErrNilNode, got %v", err)
	}
}

func TestDocument(t *testing.T) {
	doc, err := openapi.Document("schemas/user.ts", map[string]schema.Node{"UserSchema": userSchema()})
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	ref, ok := doc.Components.Schemas["UserSchema"]
	if !ok || ref.Value == nil {
		t.Fatal("expected UserSchema component")
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["openapi"] != "3.0.3" {
		t.Fatalf("openapi version = %v", decoded["openapi"])
	}
}
