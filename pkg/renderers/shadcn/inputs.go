package shadcn

import (
	"strings"

	"github.com/ilyichv/shadcn-zod-form/pkg/model"
)

const registryPrefix = "@/registry/ui"

// uiModule is a registry component module and the names imported from it.
type uiModule struct {
	path  string
	names []string
}

var (
	buttonModule   = uiModule{registryPrefix + "/button", []string{"Button"}}
	checkboxModule = uiModule{registryPrefix + "/checkbox", []string{"Checkbox"}}
	formModule     = uiModule{registryPrefix + "/form", []string{"Form", "FormControl", "FormField", "FormItem", "FormLabel", "FormMessage"}}
	inputModule    = uiModule{registryPrefix + "/input", []string{"Input"}}
	selectModule   = uiModule{registryPrefix + "/select", []string{"Select", "SelectContent", "SelectGroup", "SelectItem", "SelectTrigger", "SelectValue"}}
)

type inputSpec struct {
	module  uiModule
	control string
}

// inputs maps input kinds onto registry components. Fields whose input kind
// is missing here are not rendered.
var inputs = map[model.InputKind]inputSpec{
	model.InputText:          {inputModule, `<Input {...field} />`},
	model.InputNumber:        {inputModule, `<Input type="number" {...field} />`},
	model.InputEmail:         {inputModule, `<Input type="email" {...field} />`},
	model.InputURL:           {inputModule, `<Input type="url" {...field} />`},
	model.InputDate:          {inputModule, `<Input type="date" {...field} />`},
	model.InputDateTimeLocal: {inputModule, `<Input type="datetime-local" {...field} />`},
	model.InputCheckbox:      {checkboxModule, `<Checkbox checked={field.value} onCheckedChange={field.onChange} />`},
	model.InputSelect:        {selectModule, ""},
}

func selectControl(items []string) string {
	var b strings.Builder
	b.WriteString("<Select onValueChange={field.onChange} defaultValue={field.value}>\n")
	b.WriteString("  <SelectTrigger className=\"w-[180px]\">\n")
	b.WriteString("    <SelectValue placeholder=\"Select a value\" />\n")
	b.WriteString("  </SelectTrigger>\n")
	b.WriteString("  <SelectContent>\n")
	b.WriteString("    <SelectGroup>\n")
	for _, item := range items {
		b.WriteString("      " + item + "\n")
	}
	b.WriteString("    </SelectGroup>\n")
	b.WriteString("  </SelectContent>\n")
	b.WriteString("</Select>")
	return b.String()
}

// indent prefixes every non-empty line with n spaces.
func indent(text string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// indentTail indents every line but the first.
func indentTail(text string, n int) string {
	first, rest, found := strings.Cut(text, "\n")
	if !found {
		return text
	}
	return first + "\n" + indent(rest, n)
}
