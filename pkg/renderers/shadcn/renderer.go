package shadcn

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/microcosm-cc/bluemonday"

	"github.com/ilyichv/shadcn-zod-form/pkg/model"
	"github.com/ilyichv/shadcn-zod-form/pkg/render"
	rendertemplate "github.com/ilyichv/shadcn-zod-form/pkg/render/template"
	gotemplate "github.com/ilyichv/shadcn-zod-form/pkg/render/template/gotemplate"
)

// Name is the registry identifier of this renderer.
const Name = "shadcn"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPolicy replaces the strict sanitizer applied to labels and options.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer emits a React Hook Form component built from shadcn/ui registry
// primitives.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the shadcn renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.policy == nil {
		cfg.policy = bluemonday.StrictPolicy()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("shadcn renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, policy: cfg.policy}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/tsx; charset=utf-8"
}

// Render produces the component source. Registry imports are rewritten onto
// the aliases carried by options.
func (r *Renderer) Render(ctx context.Context, form model.Form, options render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if r.templates == nil {
		return nil, fmt.Errorf("shadcn renderer: template renderer is nil")
	}

	c := &composer{r: r, form: form, imports: importSet{}}
	c.imports.add(buttonModule)
	c.imports.add(formModule)

	body, err := c.entries(form.Entries)
	if err != nil {
		return nil, err
	}

	var hooks, subcomponents []string
	for _, group := range form.Groups {
		if group.ParentID == "" {
			hooks = append(hooks, fmt.Sprintf("  const %s = useFieldArray({ control: form.control, name: %s })", arrayVar(group), quote(group.Path)))
			continue
		}
		component, err := c.subcomponent(group)
		if err != nil {
			return nil, err
		}
		subcomponents = append(subcomponents, component)
	}

	component := form.Component
	if component == "" {
		component = model.ComponentName(form.Name)
	}

	result, err := r.templates.RenderTemplate("form", map[string]any{
		"imports":       c.importBlock(len(form.Groups) > 0, len(subcomponents) > 0),
		"schema_name":   form.SchemaName,
		"component":     component,
		"defaults":      form.Defaults.Literal(),
		"hooks":         block(hooks, "\n"),
		"subcomponents": block(subcomponents, "\n\n"),
		"body":          indent(body, 8),
	})
	if err != nil {
		return nil, fmt.Errorf("shadcn renderer: render form: %w", err)
	}
	return RewriteImports([]byte(result), options.Aliases), nil
}

// composer renders the pieces of one form.
type composer struct {
	r       *Renderer
	form    model.Form
	imports importSet
}

func (c *composer) entries(entries []model.Entry) (string, error) {
	var parts []string
	for _, entry := range entries {
		switch entry.Kind {
		case model.EntryField:
			if entry.Field == nil {
				continue
			}
			markup, ok, err := c.field(*entry.Field)
			if err != nil {
				return "", err
			}
			if ok {
				parts = append(parts, markup)
			}
		case model.EntryGroup:
			group, ok := c.form.Group(entry.Group)
			if !ok {
				return "", fmt.Errorf("shadcn renderer: unknown group %q", entry.Group)
			}
			if group.ParentID == "" {
				markup, err := c.group(group)
				if err != nil {
					return "", err
				}
				parts = append(parts, markup)
				continue
			}
			parts = append(parts, nestedReference(group))
		}
	}
	return strings.Join(parts, "\n"), nil
}

func (c *composer) field(field model.FieldDescriptor) (string, bool, error) {
	spec, ok := inputs[field.InputKind]
	if !ok {
		return "", false, nil
	}
	c.imports.add(spec.module)

	control := spec.control
	if field.InputKind == model.InputSelect {
		items := make([]string, 0, len(field.Options))
		for _, option := range field.Options {
			items = append(items, fmt.Sprintf("<SelectItem value=%s>%s</SelectItem>", attrValue(option), c.text(option)))
		}
		control = selectControl(items)
	}

	path, templated := pathExpr(field.Path)
	markup, err := c.r.templates.RenderTemplate("field", map[string]any{
		"path":      path,
		"templated": templated,
		"label":     c.text(field.Label),
		"control":   indentTail(control, 8),
	})
	if err != nil {
		return "", false, fmt.Errorf("shadcn renderer: render field %q: %w", field.Path, err)
	}
	return strings.TrimSpace(markup), true, nil
}

func (c *composer) group(group model.RepeatableGroup) (string, error) {
	children, err := c.entries(group.Entries)
	if err != nil {
		return "", err
	}
	markup, err := c.r.templates.RenderTemplate("group", map[string]any{
		"label":    c.text(group.Label),
		"array":    arrayVar(group),
		"index":    indexVar(group.Placeholder),
		"seed":     group.Seed.Literal(),
		"children": indent(children, 6),
	})
	if err != nil {
		return "", fmt.Errorf("shadcn renderer: render group %q: %w", group.ID, err)
	}
	return strings.TrimSpace(markup), nil
}

// subcomponent wraps a nested group in its own component so its
// useFieldArray hook is not called inside a loop.
func (c *composer) subcomponent(group model.RepeatableGroup) (string, error) {
	markup, err := c.group(group)
	if err != nil {
		return "", err
	}
	params := ancestorIndexes(group.Path)
	types := make([]string, 0, len(params))
	for _, param := range params {
		types = append(types, param+": number")
	}
	path, _ := pathExpr(group.Path)

	out, err := c.r.templates.RenderTemplate("field-array", map[string]any{
		"component":   subcomponentName(group),
		"params":      strings.Join(params, ", "),
		"param_types": strings.Join(types, "; "),
		"array":       arrayVar(group),
		"name":        "`" + path + "`",
		"block":       indent(markup, 4),
	})
	if err != nil {
		return "", fmt.Errorf("shadcn renderer: render field array %q: %w", group.ID, err)
	}
	return strings.TrimSpace(out), nil
}

func (c *composer) importBlock(hasGroups, hasNested bool) string {
	hookForm := []string{"useForm"}
	if hasGroups {
		hookForm = append([]string{"useFieldArray"}, hookForm...)
	}
	if hasNested {
		hookForm = append(hookForm, "type UseFormReturn")
	}

	lines := []string{
		`import { zodResolver } from "@hookform/resolvers/zod"`,
		importStatement(hookForm, "react-hook-form"),
		`import { z } from "zod"`,
	}
	if hasGroups {
		lines = append(lines, `import { PlusIcon, XIcon } from "lucide-react"`)
	}
	if ref := strings.TrimSpace(c.form.ImportRef); ref != "" {
		lines = append(lines, ref)
	}
	lines = append(lines, c.imports.lines()...)
	return strings.Join(lines, "\n")
}

// text sanitizes label and option text for use as JSX children.
func (c *composer) text(value string) string {
	clean := c.r.policy.Sanitize(value)
	return strings.NewReplacer("{", "&#123;", "}", "&#125;").Replace(clean)
}

var plainAttrPattern = regexp.MustCompile(`^[^"\\{}<>]*$`)

func attrValue(value string) string {
	if plainAttrPattern.MatchString(value) {
		return `"` + value + `"`
	}
	return "{" + quote(value) + "}"
}

func quote(value string) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return `""`
	}
	return string(encoded)
}

// pathExpr converts placeholder segments into template literal
// substitutions. templated reports whether any substitution happened.
func pathExpr(path string) (string, bool) {
	segments := strings.Split(path, ".")
	templated := false
	for i, segment := range segments {
		if model.IsPlaceholder(segment) {
			segments[i] = "${" + indexVar(segment) + "}"
			templated = true
		}
	}
	return strings.Join(segments, "."), templated
}

func ancestorIndexes(path string) []string {
	var out []string
	for _, segment := range strings.Split(path, ".") {
		if model.IsPlaceholder(segment) {
			out = append(out, indexVar(segment))
		}
	}
	return out
}

func nestedReference(group model.RepeatableGroup) string {
	var b strings.Builder
	b.WriteString("<" + subcomponentName(group) + " form={form}")
	for _, index := range ancestorIndexes(group.Path) {
		b.WriteString(" " + index + "={" + index + "}")
	}
	b.WriteString(" />")
	return b.String()
}

func indexVar(placeholder string) string {
	return strings.TrimPrefix(placeholder, "$")
}

func arrayVar(group model.RepeatableGroup) string {
	return group.ID + "Array"
}

func subcomponentName(group model.RepeatableGroup) string {
	return model.ComponentName(group.ID) + "FieldArray"
}

func block(parts []string, sep string) string {
	if len(parts) == 0 {
		return ""
	}
	return "\n" + strings.Join(parts, sep) + "\n"
}
