package zod

import "github.com/ilyichv/shadcn-zod-form/pkg/schema"

// ExtractorOptions configures extractor implementations.
type ExtractorOptions struct {
	// Namespace forces the builder identifier. When empty the identifier is
	// taken from the project config, then from the file's import of Module,
	// and finally defaults to "z".
	Namespace string

	// Module is the package the builder namespace is imported from. Empty
	// means the project config value or "zod".
	Module string

	// OnWarning receives each warning in emission order.
	OnWarning schema.WarningHandler
}

// ExtractorOption mutates ExtractorOptions during construction.
type ExtractorOption func(*ExtractorOptions)

// WithNamespace pins the builder namespace identifier.
func WithNamespace(namespace string) ExtractorOption {
	return func(opts *ExtractorOptions) {
		opts.Namespace = namespace
	}
}

// WithModule sets the module the namespace is imported from.
func WithModule(module string) ExtractorOption {
	return func(opts *ExtractorOptions) {
		opts.Module = module
	}
}

// WithWarningHandler registers a callback for extraction warnings.
func WithWarningHandler(handler schema.WarningHandler) ExtractorOption {
	return func(opts *ExtractorOptions) {
		opts.OnWarning = handler
	}
}

// NewExtractorOptions applies the options over the defaults.
func NewExtractorOptions(options ...ExtractorOption) ExtractorOptions {
	var cfg ExtractorOptions
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
