package orchestrator_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ilyichv/shadcn-zod-form/internal/zod/extractor"
	"github.com/ilyichv/shadcn-zod-form/pkg/config"
	"github.com/ilyichv/shadcn-zod-form/pkg/model"
	"github.com/ilyichv/shadcn-zod-form/pkg/orchestrator"
	"github.com/ilyichv/shadcn-zod-form/pkg/render"
	"github.com/ilyichv/shadcn-zod-form/pkg/renderers/fields"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
	"github.com/ilyichv/shadcn-zod-form/pkg/testsupport"
	pkgzod "github.com/ilyichv/shadcn-zod-form/pkg/zod"
)

const orderSource = `import { z } from "zod";

export const OrderSchema = z.object({
  name: z.string(),
  items: z.array(z.object({ name: z.string(), qty: z.number() })),
  meta: z.record(z.string()),
});

export const CustomerSchema = z.object({
  email: z.string().email(),
});
`

type stubRenderer struct {
	last  model.Form
	opts  render.RenderOptions
	calls int
}

func (s *stubRenderer) Name() string        { return "stub" }
func (s *stubRenderer) ContentType() string { return "text/plain" }

func (s *stubRenderer) Render(_ context.Context, form model.Form, opts render.RenderOptions) ([]byte, error) {
	s.last = form
	s.opts = opts
	s.calls++
	return []byte("rendered " + form.Component), nil
}

func stubOrchestrator(t *testing.T, options ...orchestrator.Option) (*orchestrator.Orchestrator, *stubRenderer) {
	t.Helper()
	renderer := &stubRenderer{}
	registry, err := render.NewRegistry(renderer)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	options = append([]orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(renderer.Name()),
	}, options...)
	return orchestrator.New(options...), renderer
}

func orderRequest(t *testing.T) orchestrator.Request {
	doc := testsupport.InlineDocument(t, "schemas/order.ts", orderSource)
	return orchestrator.Request{
		Document: &doc,
		Config: config.ResolvedConfig{
			FormsDirectory: "components/forms",
			Aliases:        config.Aliases{Form: "@/components/forms", UI: "@/components/ui"},
		},
	}
}

func TestOrchestrator_Extract(t *testing.T) {
	orch, _ := stubOrchestrator(t)

	extraction, err := orch.Extract(testsupport.Context(), orderRequest(t))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if diff := cmp.Diff([]string{"OrderSchema", "CustomerSchema"}, extraction.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if len(extraction.Warnings) != 1 {
		t.Fatalf("expected one warning for the record member, got %+v", extraction.Warnings)
	}
}

func TestOrchestrator_GenerateNamedSchema(t *testing.T) {
	var warnings []schema.Warning
	orch, renderer := stubOrchestrator(t, orchestrator.WithWarningHandler(func(w schema.Warning) {
		warnings = append(warnings, w)
	}))

	req := orderRequest(t)
	req.Schema = "OrderSchema"
	result, err := orch.Generate(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if result.FormName != "order-form" || renderer.last.Component != "OrderForm" {
		t.Fatalf("unexpected naming: %q / %q", result.FormName, renderer.last.Component)
	}
	if string(result.Output) != "rendered OrderForm" || result.ContentType != "text/plain" {
		t.Fatalf("unexpected output %q (%s)", result.Output, result.ContentType)
	}
	if renderer.last.ImportRef != `import { OrderSchema } from "../../schemas/order";` {
		t.Fatalf("import ref = %q", renderer.last.ImportRef)
	}
	if renderer.opts.Aliases.UI != "@/components/ui" {
		t.Fatalf("aliases not forwarded: %+v", renderer.opts.Aliases)
	}
	if len(renderer.last.Groups) != 1 || renderer.last.Groups[0].ID != "items" {
		t.Fatalf("unexpected groups: %+v", renderer.last.Groups)
	}

	if len(result.Warnings) != 1 || len(warnings) != 1 || warnings[0].Code != schema.WarningUnsupportedType {
		t.Fatalf("warnings = %+v, handler saw %d", result.Warnings, len(warnings))
	}
}

func TestOrchestrator_SchemaSelection(t *testing.T) {
	t.Run("unknown schema", func(t *testing.T) {
		orch, _ := stubOrchestrator(t)
		req := orderRequest(t)
		req.Schema = "MissingSchema"
		if _, err := orch.Generate(testsupport.Context(), req); !errors.Is(err, orchestrator.ErrSchemaNotFound) {
			t.Fatalf("expected ErrSchemaNotFound, got %v", err)
		}
	})

	t.Run("ambiguous without selector", func(t *testing.T) {
		orch, _ := stubOrchestrator(t)
		if _, err := orch.Generate(testsupport.Context(), orderRequest(t)); !errors.Is(err, orchestrator.ErrAmbiguousSchema) {
			t.Fatalf("expected ErrAmbiguousSchema, got %v", err)
		}
	})

	t.Run("selector decides", func(t *testing.T) {
		var offered []string
		orch, renderer := stubOrchestrator(t, orchestrator.WithSelector(orchestrator.SelectorFunc(func(_ context.Context, names []string) (string, error) {
			offered = names
			return "CustomerSchema", nil
		})))
		result, err := orch.Generate(testsupport.Context(), orderRequest(t))
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if diff := cmp.Diff([]string{"OrderSchema", "CustomerSchema"}, offered); diff != "" {
			t.Fatalf("offered mismatch (-want +got):\n%s", diff)
		}
		if result.Schema.Name != "CustomerSchema" || renderer.last.Fields[0].InputKind != model.InputEmail {
			t.Fatalf("unexpected selection %q %+v", result.Schema.Name, renderer.last.Fields)
		}
	})

	t.Run("single schema is automatic", func(t *testing.T) {
		orch, _ := stubOrchestrator(t, orchestrator.WithSelector(orchestrator.SelectorFunc(func(context.Context, []string) (string, error) {
			return "", errors.New("selector should not be called")
		})))
		doc := testsupport.InlineDocument(t, "schemas/user.ts", `export const UserSchema = z.object({ name: z.string() });`)
		result, err := orch.Generate(testsupport.Context(), orchestrator.Request{Document: &doc})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if result.Schema.Name != "UserSchema" || result.FormName != "user-form" {
			t.Fatalf("unexpected result %q %q", result.Schema.Name, result.FormName)
		}
	})
}

func TestOrchestrator_OutputDirRecomputesImport(t *testing.T) {
	orch, renderer := stubOrchestrator(t)
	req := orderRequest(t)
	req.Schema = "CustomerSchema"
	req.OutputDir = "app/forms/customers"

	if _, err := orch.Generate(testsupport.Context(), req); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if want := `import { CustomerSchema } from "../../../schemas/order";`; renderer.last.ImportRef != want {
		t.Fatalf("import ref = %q, want %q", renderer.last.ImportRef, want)
	}
}

func TestOrchestrator_TransformersAndDecorators(t *testing.T) {
	var order []string
	orch, renderer := stubOrchestrator(t,
		orchestrator.WithTransformer(orchestrator.TransformerFunc(func(_ context.Context, form *model.Form) error {
			order = append(order, "transform")
			form.Metadata = map[string]string{"patched": "true"}
			return nil
		})),
		orchestrator.WithDecorators(model.DecoratorFunc(func(form *model.Form) error {
			order = append(order, "decorate:"+form.Metadata["patched"])
			return nil
		})),
	)

	req := orderRequest(t)
	req.Schema = "OrderSchema"
	req.FormName = "checkout"
	if _, err := orch.Generate(testsupport.Context(), req); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([]string{"transform", "decorate:true"}, order); diff != "" {
		t.Fatalf("stage order mismatch (-want +got):\n%s", diff)
	}
	if renderer.last.Component != "Checkout" {
		t.Fatalf("component = %q", renderer.last.Component)
	}
}

type countingExtractor struct {
	inner pkgzod.Extractor
	calls int
}

func (c *countingExtractor) Extract(ctx context.Context, doc schema.Document, cfg config.ResolvedConfig) (pkgzod.Extraction, error) {
	c.calls++
	return c.inner.Extract(ctx, doc, cfg)
}

func TestOrchestrator_GenerateReusesExtraction(t *testing.T) {
	counter := &countingExtractor{inner: extractor.New(pkgzod.NewExtractorOptions())}
	orch, renderer := stubOrchestrator(t, orchestrator.WithExtractor(counter))

	req := orderRequest(t)
	extraction, err := orch.Extract(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	req.Document = nil
	req.Extraction = &extraction
	req.Schema = "CustomerSchema"
	result, err := orch.Generate(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if counter.calls != 1 {
		t.Fatalf("extractor ran %d times, want 1", counter.calls)
	}
	if result.Schema.Name != "CustomerSchema" || renderer.calls != 1 {
		t.Fatalf("unexpected result %q (renderer calls %d)", result.Schema.Name, renderer.calls)
	}
}

func TestOrchestrator_StageErrorsAreWrapped(t *testing.T) {
	orch, renderer := stubOrchestrator(t, orchestrator.WithTransformer(orchestrator.TransformerFunc(func(context.Context, *model.Form) error {
		return fmt.Errorf("boom")
	})))

	req := orderRequest(t)
	req.Schema = "OrderSchema"
	_, err := orch.Generate(testsupport.Context(), req)
	if err == nil || !strings.Contains(err.Error(), "orchestrator: transform form: boom") {
		t.Fatalf("expected wrapped transformer error, got %v", err)
	}
	if renderer.calls != 0 {
		t.Fatal("renderer should not run after a failed stage")
	}

	doc := testsupport.InlineDocument(t, "empty.ts", `const x = 1;`)
	if _, err := orch.Extract(testsupport.Context(), orchestrator.Request{Document: &doc}); !errors.Is(err, schema.ErrNoSchemaFound) {
		t.Fatalf("expected ErrNoSchemaFound, got %v", err)
	}

	if _, err := orch.Extract(testsupport.Context(), orchestrator.Request{}); err == nil {
		t.Fatal("expected error without source or document")
	}
}

func TestOrchestrator_RendererSelection(t *testing.T) {
	orch := orchestrator.New()
	req := orderRequest(t)
	req.Schema = "OrderSchema"

	result, err := orch.Generate(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(result.Output), "export function OrderForm()") {
		t.Fatalf("default renderer should emit the TSX component:\n%s", result.Output)
	}
	if !strings.Contains(string(result.Output), `from "@/components/ui/button"`) {
		t.Fatalf("ui alias not applied:\n%s", result.Output)
	}

	req.Renderer = fields.Name
	result, err = orch.Generate(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("generate fields: %v", err)
	}
	if result.ContentType != "application/json" {
		t.Fatalf("content type = %q", result.ContentType)
	}

	req.Renderer = "missing"
	if _, err := orch.Generate(testsupport.Context(), req); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}
