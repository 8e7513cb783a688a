package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

// SeedEntry is one key of a Seed.
type SeedEntry struct {
	Key   string
	Value any
}

// Seed is an ordered default-value object. Values are string, int, bool,
// nested Seed or an empty []any.
type Seed []SeedEntry

// Get returns the value stored under key.
func (s Seed) Get(key string) (any, bool) {
	for _, entry := range s {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (s Seed) Keys() []string {
	keys := make([]string, 0, len(s))
	for _, entry := range s {
		keys = append(keys, entry.Key)
	}
	return keys
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Literal renders the seed as a TypeScript object literal, for example
// `{ name: "", qty: 0 }`.
func (s Seed) Literal() string {
	if len(s) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(s))
	for _, entry := range s {
		key := entry.Key
		if !identifierPattern.MatchString(key) {
			key = strconv.Quote(key)
		}
		parts = append(parts, key+": "+literalValue(entry.Value))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func literalValue(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case Seed:
		return v.Literal()
	case []any:
		return "[]"
	default:
		return fmt.Sprint(v)
	}
}

// MarshalJSON keeps key order.
func (s Seed) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// groupSeed builds the value appended for a new group item. Strings seed "",
// numbers 0 and booleans false; enums, dates and unsupported members are left
// out. Nested groups start empty.
func groupSeed(obj schema.Object) Seed {
	seed := Seed{}
	for _, prop := range obj.Properties {
		switch n := prop.Node.(type) {
		case schema.Primitive:
			switch n.Type {
			case schema.TypeString:
				seed = append(seed, SeedEntry{prop.Name, ""})
			case schema.TypeNumber:
				seed = append(seed, SeedEntry{prop.Name, 0})
			case schema.TypeBoolean:
				seed = append(seed, SeedEntry{prop.Name, false})
			}
		case schema.Object:
			seed = append(seed, SeedEntry{prop.Name, groupSeed(n)})
		case schema.Array:
			if _, ok := n.Element.(schema.Object); ok {
				seed = append(seed, SeedEntry{prop.Name, []any{}})
			}
		}
	}
	return seed
}

// formDefaults builds the initial values of the whole form. Unlike group
// seeds, numbers are left unset so the input starts empty.
func formDefaults(obj schema.Object) Seed {
	seed := Seed{}
	for _, prop := range obj.Properties {
		switch n := prop.Node.(type) {
		case schema.Primitive:
			switch n.Type {
			case schema.TypeString:
				seed = append(seed, SeedEntry{prop.Name, ""})
			case schema.TypeBoolean:
				seed = append(seed, SeedEntry{prop.Name, false})
			}
		case schema.Object:
			seed = append(seed, SeedEntry{prop.Name, formDefaults(n)})
		case schema.Array:
			seed = append(seed, SeedEntry{prop.Name, []any{}})
		}
	}
	return seed
}
