package model

// Options configures the behaviour of the Deriver. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	// Labeler turns one path segment into label text.
	Labeler func(string) string
}

func defaultOptions() Options {
	return Options{
		Labeler: DefaultLabeler,
	}
}
