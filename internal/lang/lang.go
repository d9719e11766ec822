// Package lang maps language codes to pipeline capabilities: tokenizer
// rulesets, feature taggers, fallback predictors, and pronunciation
// post-processors. Unknown codes fail at startup; languages without a
// given capability fall back to safe no-op implementations.
package lang

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/example/go-phonemize/internal/g2p"
	"github.com/example/go-phonemize/internal/phonemize"
	"github.com/example/go-phonemize/internal/tagger"
	"github.com/example/go-phonemize/internal/text"
)

// ErrUnknownLanguage marks an unresolvable language identifier. It is a
// configuration error, fatal at startup.
var ErrUnknownLanguage = errors.New("unknown language")

// Language bundles the per-language capabilities consumed by the
// pipeline. Fields are fully constructed and ready to use.
type Language struct {
	// Code is the normalized language code ("en", "fr", ...).
	Code string

	// Name is the human-readable language name; it doubles as the model
	// selector for goruut-backed predictors.
	Name string

	// Tokenizer carries the language's normalization ruleset.
	Tokenizer text.Options

	// Tagger assigns features; Noop when the language has no tagger.
	Tagger tagger.Tagger

	// Predictor is the default fallback oracle; nil when the language has
	// none, in which case out-of-lexicon words degrade to empty
	// pronunciations.
	Predictor g2p.Predictor

	// Post rewrites resolved pronunciations; Identity when unused.
	Post phonemize.PostProcessor
}

// builder constructs a Language; construction may fail (e.g. dictionary
// loading for the Japanese tagger).
type builder func() (Language, error)

var registry = map[string]builder{
	"en": newEnglish,
	"fr": newFrench,
	"de": newGerman,
	"ja": newJapanese,
}

// Normalize folds a language identifier to its registry key: lower case,
// region stripped ("en_US", "en-us" → "en").
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	code = strings.ReplaceAll(code, "_", "-")
	base, _, _ := strings.Cut(code, "-")
	return base
}

// For resolves a language identifier to its capability set.
func For(code string) (Language, error) {
	key := Normalize(code)
	build, ok := registry[key]
	if !ok {
		return Language{}, fmt.Errorf("%w %q (supported: %s)", ErrUnknownLanguage, code, strings.Join(Codes(), ", "))
	}
	l, err := build()
	if err != nil {
		return Language{}, fmt.Errorf("language %q: %w", key, err)
	}
	return l, nil
}

// Default returns a degraded-but-safe capability set for an unconfigured
// language: default tokenizer rules, no tagger, no predictor.
func Default(code string) Language {
	return Language{
		Code:   Normalize(code),
		Name:   code,
		Tagger: tagger.Noop{},
		Post:   phonemize.Identity{},
	}
}

// Codes lists the registered language codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for c := range registry {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

func newEnglish() (Language, error) {
	return Language{
		Code: "en",
		Name: "English",
		Tokenizer: text.Options{
			Abbreviations: text.DefaultAbbreviations(),
			Currencies:    text.DefaultCurrencies(),
			NumberLang:    "en",
		},
		Tagger:    tagger.NewEnglish(),
		Predictor: g2p.NewRules(),
		Post:      phonemize.Identity{},
	}, nil
}

func newFrench() (Language, error) {
	return Language{
		Code: "fr",
		Name: "French",
		Tokenizer: text.Options{
			Currencies: map[string]text.CurrencyNames{
				"€": {Singular: "euro", Plural: "euros", MinorSingular: "centime", MinorPlural: "centimes"},
				"$": {Singular: "dollar", Plural: "dollars", MinorSingular: "centime", MinorPlural: "centimes"},
			},
			NumberLang: "fr",
		},
		Tagger:    tagger.Noop{},
		Predictor: g2p.NewGoruut("French"),
		Post:      Liaison{},
	}, nil
}

func newGerman() (Language, error) {
	return Language{
		Code: "de",
		Name: "German",
		Tokenizer: text.Options{
			Currencies: map[string]text.CurrencyNames{
				"€": {Singular: "euro", Plural: "euro", MinorSingular: "cent", MinorPlural: "cent"},
			},
			NumberLang: "de",
		},
		Tagger:    tagger.Noop{},
		Predictor: g2p.NewGoruut("German"),
		Post:      phonemize.Identity{},
	}, nil
}

func newJapanese() (Language, error) {
	kagome, err := tagger.NewKagome()
	if err != nil {
		return Language{}, err
	}
	return Language{
		Code:      "ja",
		Name:      "Japanese",
		Tokenizer: text.Options{},
		Tagger:    kagome,
		Predictor: g2p.NewGoruut("Japanese"),
		Post:      phonemize.Identity{},
	}, nil
}
