// Package config loads the project configuration (components.json or
// zodform.yaml) and resolves the form alias into the forms directory using the
// tsconfig.json path mappings, producing the ResolvedConfig consumed by the
// extractor and the generators.
package config
