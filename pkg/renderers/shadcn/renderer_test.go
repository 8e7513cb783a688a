package shadcn_test

import (
	"strings"
	"testing"

	"github.com/ilyichv/shadcn-zod-form/pkg/config"
	"github.com/ilyichv/shadcn-zod-form/pkg/model"
	"github.com/ilyichv/shadcn-zod-form/pkg/render"
	"github.com/ilyichv/shadcn-zod-form/pkg/renderers/shadcn"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
	"github.com/ilyichv/shadcn-zod-form/pkg/testsupport"
)

func str(mods ...string) schema.Node {
	return schema.Primitive{Type: schema.TypeString, Chained: schema.NewModifierSet(mods...)}
}

func prop(name string, node schema.Node) schema.Property {
	return schema.Property{Name: name, Node: node}
}

func buildForm(t *testing.T, root schema.Object) model.Form {
	t.Helper()
	derivation, err := model.NewDeriver().Derive(root)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	return model.Form{
		Name:       "user-form",
		Component:  "UserForm",
		SchemaName: "UserSchema",
		ImportRef:  `import { UserSchema } from "../schemas/user";`,
		Derivation: derivation,
	}
}

func renderForm(t *testing.T, form model.Form, opts render.RenderOptions) string {
	t.Helper()
	renderer, err := shadcn.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(testsupport.Context(), form, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func assertContains(t *testing.T, output string, snippets ...string) {
	t.Helper()
	for _, snippet := range snippets {
		if !strings.Contains(output, snippet) {
			t.Errorf("output is missing %q\n--- output ---\n%s", snippet, output)
		}
	}
}

func TestRenderer_FieldsAndGroups(t *testing.T) {
	form := buildForm(t, schema.NewObject(
		prop("firstName", str()),
		prop("email", str("email")),
		prop("subscribed", schema.Primitive{Type: schema.TypeBoolean}),
		prop("color", schema.Enum{Options: []string{"RED", "GREEN"}}),
		prop("meta", schema.Unsupported{Reason: "record schemas are not supported"}),
		prop("items", schema.Array{Element: schema.NewObject(
			prop("name", str()),
			prop("qty", schema.Primitive{Type: schema.TypeNumber}),
		)}),
	))

	output := renderForm(t, form, render.RenderOptions{})

	assertContains(t, output,
		`import { zodResolver } from "@hookform/resolvers/zod"`,
		`import { useFieldArray, useForm } from "react-hook-form"`,
		`import { PlusIcon, XIcon } from "lucide-react"`,
		`import { UserSchema } from "../schemas/user";`,
		`import { Checkbox } from "@/registry/ui/checkbox"`,
		`import { Input } from "@/registry/ui/input"`,
		`const formSchema = UserSchema`,
		`export function UserForm() {`,
		`defaultValues: { firstName: "", email: "", subscribed: false, items: [] },`,
		`name="firstName"`,
		`<FormLabel>First Name</FormLabel>`,
		`<Input type="email" {...field} />`,
		`<Checkbox checked={field.value} onCheckedChange={field.onChange} />`,
		`<SelectItem value="RED">RED</SelectItem>`,
		`<SelectItem value="GREEN">GREEN</SelectItem>`,
		`const itemsArray = useFieldArray({ control: form.control, name: "items" })`,
		`{ itemsArray.fields.map((item, index) => (`,
		"name={`items.${index}.qty`}",
		`<FormLabel>Items Qty</FormLabel>`,
		`onClick={() => itemsArray.remove(index)}`,
		`onClick={() => itemsArray.append({ name: "", qty: 0 })}`,
	)
	if strings.Contains(output, "meta") {
		t.Fatalf("field without input kind should be skipped:\n%s", output)
	}
	if strings.Index(output, `name="firstName"`) > strings.Index(output, "itemsArray.fields.map") {
		t.Fatal("fields should keep declaration order")
	}
}

func TestRenderer_NestedGroupsUseSubcomponents(t *testing.T) {
	form := buildForm(t, schema.NewObject(
		prop("orders", schema.Array{Element: schema.NewObject(
			prop("code", str()),
			prop("lineItems", schema.Array{Element: schema.NewObject(
				prop("sku", str()),
			)}),
		)}),
	))

	output := renderForm(t, form, render.RenderOptions{})

	assertContains(t, output,
		`import { useFieldArray, useForm, type UseFormReturn } from "react-hook-form"`,
		`function OrdersLineItemsFieldArray({ form, index }: { form: UseFormReturn<FormValues>; index: number }) {`,
		"const ordersLineItemsArray = useFieldArray({ control: form.control, name: `orders.${index}.lineItems` })",
		`<OrdersLineItemsFieldArray form={form} index={index} />`,
		"{ ordersLineItemsArray.fields.map((item, index2) => (",
		"name={`orders.${index}.lineItems.${index2}.sku`}",
		`onClick={() => ordersArray.append({ code: "", lineItems: [] })}`,
	)
	if strings.Count(output, "useFieldArray({") != 2 {
		t.Fatalf("expected one hook per group:\n%s", output)
	}
}

func TestRenderer_SanitizesTextAndRewritesImports(t *testing.T) {
	form := buildForm(t, schema.NewObject(
		prop("kind", schema.Enum{Options: []string{`<b>bold</b>`, `{x}`}}),
	))

	output := renderForm(t, form, render.RenderOptions{Aliases: config.Aliases{Components: "@/components", UI: "~/ui"}})

	assertContains(t, output,
		`>bold</SelectItem>`,
		`<SelectItem value={"{x}"}>&#123;x&#125;</SelectItem>`,
		`from "~/ui/button"`,
		`from "~/ui/select"`,
	)
	if strings.Contains(output, "@/registry/ui") {
		t.Fatalf("registry imports were not rewritten:\n%s", output)
	}
}

func TestRewriteImports(t *testing.T) {
	src := []byte("import { Button } from \"@/registry/ui/button\"\nimport {\n  Form,\n} from '@/registry/ui/form'\nconst x = \"@/registry/ui\"\n")

	got := string(shadcn.RewriteImports(src, config.Aliases{Components: "@/components/"}))
	want := "import { Button } from \"@/components/button\"\nimport {\n  Form,\n} from '@/components/form'\nconst x = \"@/registry/ui\"\n"
	if got != want {
		t.Fatalf("RewriteImports mismatch\nwant: %q\n got: %q", want, got)
	}

	if got := shadcn.RewriteImports(src, config.Aliases{}); string(got) != string(src) {
		t.Fatal("expected source unchanged without aliases")
	}
}
