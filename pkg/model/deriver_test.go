package model_test

import (
	"testing"

	"github.com/ilyichv/shadcn-zod-form/pkg/model"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

func TestNewDeriver_WithLabeler(t *testing.T) {
	deriver := model.NewDeriver(model.WithLabeler(func(string) string { return "X" }))
	derivation, err := deriver.Derive(schema.NewObject(schema.Property{Name: "name", Node: schema.Primitive{Type: schema.TypeString}}))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if derivation.Fields[0].Label != "X" {
		t.Fatalf("label = %q", derivation.Fields[0].Label)
	}
}

func TestDefaultFormName(t *testing.T) {
	cases := map[string]string{
		"UserSchema":        "user-form",
		"UserProfileSchema": "user-profile-form",
		"address":           "address-form",
		"Schema":            "form",
	}
	for input, want := range cases {
		if got := model.DefaultFormName(input); got != want {
			t.Errorf("DefaultFormName(%q) = %q, want %q", input, got, want)
		}
	}
	if got := model.ComponentName("user-profile-form"); got != "UserProfileForm" {
		t.Fatalf("ComponentName = %q", got)
	}
}
