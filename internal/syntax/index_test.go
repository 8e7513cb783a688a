package syntax_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/ilyichv/shadcn-zod-form/internal/syntax"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

const bindingsSource = `import { z } from "zod";

export const UserSchema = z.object({ name: z.string() });
const AddressSchema = z.object({ street: z.string() });
let counter = 1, other = "x";
var legacy = z.string().optional();
const { a, b } = something;
const OrderSchema = z.object({});

export default AddressSchema;
export { legacy };
export { OrderSchema };
`

func mustParse(t *testing.T, src, location string) *syntax.Index {
	t.Helper()
	ix, err := syntax.Parse(context.Background(), []byte(src), location)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	t.Cleanup(ix.Close)
	return ix
}

func TestIndex_Bindings(t *testing.T) {
	ix := mustParse(t, bindingsSource, "schemas/user.ts")

	type row struct {
		Name          string
		Exported      bool
		DefaultExport bool
	}
	var got []row
	for binding := range ix.Bindings() {
		got = append(got, row{binding.Name, binding.Exported, binding.DefaultExport})
	}

	want := []row{
		{"UserSchema", true, false},
		{"AddressSchema", true, true},
		{"counter", false, false},
		{"other", false, false},
		{"legacy", true, false},
		{"OrderSchema", true, false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestIndex_BindingsStopsEarly(t *testing.T) {
	ix := mustParse(t, bindingsSource, "schemas/user.ts")

	count := 0
	for range ix.Bindings() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("expected iteration to stop after 2 bindings, got %d", count)
	}
}

func TestIndex_IsCallChainRootedAt(t *testing.T) {
	src := `const a = z.string().optional().nullable();
const b = z.object({});
const c = y.string();
const d = z;
const e = (z.string() as any).min(1);
const f = z.coerce.number();
const g = make(z.string());
`
	ix := mustParse(t, src, "rooted.ts")

	want := map[string]bool{
		"a": true,
		"b": true,
		"c": false,
		"d": false,
		"e": true,
		"f": true,
		"g": false,
	}
	for binding := range ix.Bindings() {
		if got := ix.IsCallChainRootedAt(binding.Value, "z"); got != want[binding.Name] {
			t.Errorf("%s: rooted = %v, want %v", binding.Name, got, want[binding.Name])
		}
	}
}

func TestIndex_NamespaceImport(t *testing.T) {
	cases := map[string]struct {
		src  string
		want string
		ok   bool
	}{
		"named":     {src: `import { z } from "zod";`, want: "z", ok: true},
		"aliased":   {src: `import { z as zod } from 'zod';`, want: "zod", ok: true},
		"namespace": {src: `import * as v from "zod";`, want: "v", ok: true},
		"default":   {src: `import zz from "zod";`, want: "zz", ok: true},
		"missing":   {src: `import { y } from "yup";`, ok: false},
		"typeFirst": {src: `import { type ZodType, z } from "zod";`, want: "z", ok: true},
		"typeStmt":  {src: "import type { ZodSchema } from \"zod\";\nimport { z } from \"zod\";", want: "z", ok: true},
		"typeOnly":  {src: `import type { z } from "zod";`, ok: false},
		"otherName": {src: `import { ZodError } from "zod";`, ok: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ix := mustParse(t, tc.src, "imports.ts")
			got, ok := ix.NamespaceImport("zod", "z")
			if ok != tc.ok || got != tc.want {
				t.Fatalf("NamespaceImport = (%q, %v), want (%q, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestIndex_StringValueAndKeys(t *testing.T) {
	ix := mustParse(t, `const o = { plain: 1, "quoted-key": 2, 'single': 3, 4: 5 };`, "keys.ts")

	var object = firstValue(t, ix)
	var keys []string
	for _, member := range syntax.NamedChildren(object) {
		key, _ := syntax.Pair(member)
		name, ok := ix.KeyName(key)
		if !ok {
			t.Fatalf("expected literal key for %q", ix.Text(member))
		}
		keys = append(keys, name)
	}
	want := []string{"plain", "quoted-key", "single", "4"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SyntaxErrorReportsPosition(t *testing.T) {
	_, err := syntax.Parse(context.Background(), []byte("const a = z.object({\n  name: z.string(,\n});"), "broken.ts")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.Is(err, schema.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	var parseErr *schema.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *schema.ParseError, got %T", err)
	}
	if parseErr.Location != "broken.ts" || parseErr.Line < 1 {
		t.Fatalf("unexpected parse error details: %+v", parseErr)
	}
}

func TestParse_TSXGrammar(t *testing.T) {
	ix := mustParse(t, `export const S = z.object({}); const el = <div />;`, "component.tsx")
	count := 0
	for range ix.Bindings() {
		count++
	}
	if count != 2 {
		t.Fatalf("expected 2 bindings, got %d", count)
	}
}

func TestParse_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := syntax.Parse(ctx, []byte("const a = 1;"), "a.ts"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStripQuotes(t *testing.T) {
	if got := syntax.StripQuotes(`"RED"`); got != "RED" {
		t.Fatalf("StripQuotes = %q", got)
	}
	if got := syntax.StripQuotes("'it`s'"); got != "its" {
		t.Fatalf("StripQuotes = %q", got)
	}
}

func firstValue(t *testing.T, ix *syntax.Index) *sitter.Node {
	t.Helper()
	for binding := range ix.Bindings() {
		return binding.Value
	}
	t.Fatal("no bindings")
	return nil
}
