// Package orchestrator wires the loader → extractor → selector → deriver →
// renderer pipeline, providing dependency injection friendly helpers for
// consumers that prefer a single entry point.
package orchestrator
