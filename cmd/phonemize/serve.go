package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/go-phonemize/internal/config"
	"github.com/example/go-phonemize/internal/lang"
	"github.com/example/go-phonemize/internal/phonemize"
	"github.com/example/go-phonemize/internal/server"
	"github.com/spf13/cobra"
)

// pipelineSet serves one prebuilt pipeline per registered language; the
// empty request code maps to the configured default language.
type pipelineSet struct {
	def    string
	byCode map[string]*phonemize.Service
}

func (s *pipelineSet) Pipeline(code string) (server.Phonemizer, bool) {
	if code == "" {
		code = s.def
	}
	svc, ok := s.byCode[lang.Normalize(code)]
	return svc, ok
}

func (s *pipelineSet) Languages() []string { return lang.Codes() }

// buildPipelineSet constructs every registered language's pipeline up
// front so request handling never pays construction cost. The configured
// lexicon file applies to the default language only.
func buildPipelineSet(cfg config.Config) (*pipelineSet, error) {
	set := &pipelineSet{
		def:    lang.Normalize(cfg.Language),
		byCode: make(map[string]*phonemize.Service),
	}

	for _, code := range lang.Codes() {
		langCfg := cfg
		langCfg.Language = code
		if code != set.def {
			langCfg.Paths.LexiconPath = ""
		}
		svc, _, err := buildService(langCfg)
		if err != nil {
			return nil, fmt.Errorf("language %q: %w", code, err)
		}
		set.byCode[code] = svc
	}

	if _, ok := set.byCode[set.def]; !ok {
		return nil, fmt.Errorf("%w %q", lang.ErrUnknownLanguage, cfg.Language)
	}
	return set, nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the phonemization HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			pipelines, err := buildPipelineSet(cfg)
			if err != nil {
				return err
			}

			srv := server.New(cfg.Server.ListenAddr, pipelines,
				server.WithMaxTextBytes(cfg.Server.MaxTextBytes),
				server.WithWorkers(cfg.Server.Workers),
				server.WithRequestTimeout(time.Duration(cfg.Server.RequestTimeoutSec)*time.Second),
			).WithShutdownTimeout(time.Duration(cfg.Server.ShutdownTimeout) * time.Second)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}

	return cmd
}
