package main

import (
	"fmt"
	"time"

	"github.com/example/go-phonemize/internal/config"
	"github.com/example/go-phonemize/internal/g2p"
	"github.com/example/go-phonemize/internal/lang"
	"github.com/example/go-phonemize/internal/lexicon"
	"github.com/example/go-phonemize/internal/phonemize"
	"github.com/example/go-phonemize/internal/text"
)

// buildService assembles the pipeline for the configured language:
// tokenizer ruleset, lexicon, tagger, fallback oracle, post-processor.
// All failures here are startup configuration errors.
func buildService(cfg config.Config) (*phonemize.Service, lang.Language, error) {
	l, err := lang.For(cfg.Language)
	if err != nil {
		return nil, lang.Language{}, err
	}

	opts := l.Tokenizer
	casing, err := config.NormalizeCasing(cfg.Text.Casing)
	if err != nil {
		return nil, lang.Language{}, err
	}
	switch casing {
	case "lower":
		opts.Casing = text.CaseLower
	case "upper":
		opts.Casing = text.CaseUpper
	}
	if cfg.Text.NumberLang != "" {
		opts.NumberLang = cfg.Text.NumberLang
	}

	tok, err := text.NewTokenizer(opts)
	if err != nil {
		return nil, lang.Language{}, fmt.Errorf("tokenizer: %w", err)
	}

	var resolver lexicon.Resolver
	if cfg.Paths.LexiconPath != "" {
		resolver, err = lexicon.LoadFile(cfg.Paths.LexiconPath, cfg.Text.CaseSensitiveLexicon)
		if err != nil {
			return nil, lang.Language{}, err
		}
	} else {
		resolver = lexicon.NewMemory(cfg.Text.CaseSensitiveLexicon)
	}

	predictor, err := buildPredictor(cfg, l)
	if err != nil {
		return nil, lang.Language{}, err
	}

	svcOpts := []phonemize.Option{
		phonemize.WithTagger(l.Tagger),
		phonemize.WithPostProcessor(l.Post),
	}
	if predictor != nil {
		svcOpts = append(svcOpts, phonemize.WithPredictor(predictor))
	}

	return phonemize.NewService(tok, resolver, svcOpts...), l, nil
}

func buildPredictor(cfg config.Config, l lang.Language) (g2p.Predictor, error) {
	backend, err := config.NormalizeG2PBackend(cfg.G2P.Backend)
	if err != nil {
		return nil, err
	}

	var oracle g2p.Predictor
	switch backend {
	case config.BackendLanguage:
		oracle = l.Predictor
	case config.BackendRules:
		oracle = g2p.NewRules()
	case config.BackendGoruut:
		oracle = g2p.NewGoruut(l.Name)
	case config.BackendNone:
		return nil, nil
	}
	if oracle == nil {
		return nil, nil
	}

	return g2p.NewAdapter(oracle, time.Duration(cfg.G2P.TimeoutMS)*time.Millisecond), nil
}
