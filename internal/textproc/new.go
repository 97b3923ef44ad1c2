package textproc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedLanguage is returned by New for a language without rules.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Options configures a Tokenizer.
type Options struct {
	// Language selects abbreviation and stop word rules. Defaults to english.
	Language string
	// StopWords drops common function words from the token stream.
	StopWords bool
}

type implTokenizer struct {
	rules     languageRules
	stopWords bool
}

// New creates a Tokenizer for the configured language.
func New(opts Options) (Tokenizer, error) {
	lang := strings.ToLower(strings.TrimSpace(opts.Language))
	if lang == "" {
		lang = "english"
	}

	rules, ok := languages[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, opts.Language)
	}

	return &implTokenizer{
		rules:     rules,
		stopWords: opts.StopWords,
	}, nil
}
