package timespan

import "golang.org/x/text/language"

// Options configures HumanString.
type Options struct {
	// Language selects the phrase catalog. Default: language.English.
	Language language.Tag
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns English output.
func DefaultOptions() Options {
	return Options{Language: language.English}
}

// WithLanguage selects the output language. Unsupported tags fall back to
// the closest supported one, English when none matches.
func WithLanguage(tag language.Tag) Option {
	return func(o *Options) {
		o.Language = tag
	}
}
