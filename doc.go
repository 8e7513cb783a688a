// Package zodform generates React Hook Form components from zod schemas
// declared in TypeScript sources. The schemas are read statically: files are
// parsed, never executed.
//
// The root package offers constructors for the default loader, extractor,
// deriver and renderer registry, plus one-call helpers around
// pkg/orchestrator.
package zodform
