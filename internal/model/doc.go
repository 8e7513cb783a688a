// Package model derives the UI-agnostic field model from schema IR. Public
// types are re-exported from pkg/model.
package model
