package importref_test

import (
	"testing"

	"github.com/ilyichv/shadcn-zod-form/pkg/importref"
)

func TestPath(t *testing.T) {
	cases := []struct {
		name     string
		formsDir string
		file     string
		want     string
	}{
		// A true relative path: components/forms is two levels below the
		// project root, so the import climbs twice. A single "../" would
		// resolve to components/schemas/user.
		{name: "sibling tree", formsDir: "components/forms", file: "schemas/user.ts", want: "../../schemas/user"},
		{name: "one level up", formsDir: "components", file: "schemas/user.ts", want: "../schemas/user"},
		{name: "nested below forms", formsDir: "src/forms", file: "src/forms/schemas/user.tsx", want: "./schemas/user"},
		{name: "same directory", formsDir: "src", file: "src/user.js", want: "./user"},
		{name: "windows separators", formsDir: `src\components\forms`, file: `src\schemas\user.ts`, want: "../../schemas/user"},
		{name: "absolute paths", formsDir: "/app/src/forms", file: "/app/src/schemas/order.jsx", want: "../schemas/order"},
		{name: "non script extension kept", formsDir: "a", file: "a/b.schema.mts", want: "./b.schema.mts"},
		{name: "mixed absolute and relative", formsDir: "forms", file: "/abs/user.ts", want: "/abs/user"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := importref.Path(tc.formsDir, tc.file); got != tc.want {
				t.Fatalf("Path(%q, %q) = %q, want %q", tc.formsDir, tc.file, got, tc.want)
			}
		})
	}
}

func TestBuild_NamedExport(t *testing.T) {
	got := importref.Build("components", "schemas/user.ts", "UserSchema", false)
	want := `import { UserSchema } from "../schemas/user";`
	if got != want {
		t.Fatalf("Build = %q, want %q", got, want)
	}
}

func TestBuild_DefaultExport(t *testing.T) {
	got := importref.Build("components/forms", "schemas/user.ts", "UserSchema", true)
	want := `import UserSchema from "../../schemas/user";`
	if got != want {
		t.Fatalf("Build = %q, want %q", got, want)
	}
}
