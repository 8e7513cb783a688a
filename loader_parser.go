package zodform

import (
	internalloader "github.com/ilyichv/shadcn-zod-form/internal/loader"
	"github.com/ilyichv/shadcn-zod-form/internal/zod/extractor"
	"github.com/ilyichv/shadcn-zod-form/pkg/model"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
	pkgzod "github.com/ilyichv/shadcn-zod-form/pkg/zod"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...schema.LoaderOption) schema.Loader {
	cfg := schema.NewLoaderOptions(options...)
	return internalloader.New(cfg)
}

// NewExtractor constructs a schema extractor backed by the internal
// implementation.
func NewExtractor(options ...pkgzod.ExtractorOption) pkgzod.Extractor {
	cfg := pkgzod.NewExtractorOptions(options...)
	return extractor.New(cfg)
}

// NewDeriver constructs the field deriver.
func NewDeriver(options ...model.DeriverOption) model.Deriver {
	return model.NewDeriver(options...)
}
