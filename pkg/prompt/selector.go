package prompt

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidFormName is returned by ValidateFormName.
var ErrInvalidFormName = errors.New("prompt: form name must be kebab-case")

var formNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateFormName accepts kebab-case names such as "user-form".
func ValidateFormName(name string) error {
	if !formNamePattern.MatchString(strings.TrimSpace(name)) {
		return fmt.Errorf("%w: %q", ErrInvalidFormName, name)
	}
	return nil
}

// SchemaSelector asks the user to pick among the schemas found in a file.
type SchemaSelector struct {
	driver Driver
}

func NewSchemaSelector(driver Driver) *SchemaSelector {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &SchemaSelector{driver: driver}
}

// SelectSchema returns the chosen name. A single candidate is returned
// without prompting.
func (s *SchemaSelector) SelectSchema(ctx context.Context, names []string) (string, error) {
	switch len(names) {
	case 0:
		return "", ErrNoOptions
	case 1:
		return names[0], nil
	}
	index, err := s.driver.Select(ctx, SelectConfig{
		Message: "Which schema do you want to generate a form for?",
		Options: names,
	})
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(names) {
		return "", fmt.Errorf("prompt: selection %d out of range", index)
	}
	return names[index], nil
}

// FormName asks for the form file name, suggesting fallback.
func (s *SchemaSelector) FormName(ctx context.Context, fallback string) (string, error) {
	name, err := s.driver.Input(ctx, InputConfig{
		Message:   "Form name:",
		Default:   fallback,
		Help:      "kebab-case file name without extension, e.g. user-form",
		Validator: ValidateFormName,
	})
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallback
	}
	if err := ValidateFormName(name); err != nil {
		return "", err
	}
	return name, nil
}
