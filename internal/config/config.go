package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Language string       `mapstructure:"language"`
	LogLevel string       `mapstructure:"log_level"`
	Paths    PathsConfig  `mapstructure:"paths"`
	Text     TextConfig   `mapstructure:"text"`
	G2P      G2PConfig    `mapstructure:"g2p"`
	Server   ServerConfig `mapstructure:"server"`
}

type PathsConfig struct {
	LexiconPath string `mapstructure:"lexicon_path"`
}

type TextConfig struct {
	// Casing is keep, lower, or upper.
	Casing string `mapstructure:"casing"`
	// NumberLang overrides the language's number-to-words locale.
	NumberLang string `mapstructure:"number_lang"`
	// CaseSensitiveLexicon disables case folding of lexicon keys.
	CaseSensitiveLexicon bool `mapstructure:"case_sensitive_lexicon"`
}

type G2PConfig struct {
	// Backend selects the fallback oracle: language (the language's
	// default), rules, goruut, or none.
	Backend string `mapstructure:"backend"`
	// TimeoutMS bounds one fallback prediction; 0 disables the deadline.
	TimeoutMS int `mapstructure:"timeout_ms"`
}

type ServerConfig struct {
	ListenAddr        string `mapstructure:"listen_addr"`
	MaxTextBytes      int    `mapstructure:"max_text_bytes"`
	Workers           int    `mapstructure:"workers"`
	RequestTimeoutSec int    `mapstructure:"request_timeout_sec"`
	ShutdownTimeout   int    `mapstructure:"shutdown_timeout"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Language: "en",
		LogLevel: "info",
		Paths: PathsConfig{
			LexiconPath: "",
		},
		Text: TextConfig{
			Casing:               "keep",
			NumberLang:           "",
			CaseSensitiveLexicon: false,
		},
		G2P: G2PConfig{
			Backend:   BackendLanguage,
			TimeoutMS: 2000,
		},
		Server: ServerConfig{
			ListenAddr:        ":8080",
			MaxTextBytes:      65536,
			Workers:           4,
			RequestTimeoutSec: 30,
			ShutdownTimeout:   30,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("language", defaults.Language, "Language code (en|fr|de|ja, region suffixes accepted)")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("paths-lexicon-path", defaults.Paths.LexiconPath, "Path to lexicon file")
	fs.String("text-casing", defaults.Text.Casing, "Token casing policy (keep|lower|upper)")
	fs.String("text-number-lang", defaults.Text.NumberLang, "Number-to-words locale override")
	fs.Bool("text-case-sensitive-lexicon", defaults.Text.CaseSensitiveLexicon, "Match lexicon keys case-sensitively")
	fs.String("g2p-backend", defaults.G2P.Backend, "Fallback predictor backend (language|rules|goruut|none)")
	fs.Int("g2p-timeout-ms", defaults.G2P.TimeoutMS, "Fallback prediction timeout in milliseconds (0 disables)")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum request text size in bytes")
	fs.Int("server-workers", defaults.Server.Workers, "Max concurrent phonemization requests")
	fs.Int("server-request-timeout-sec", defaults.Server.RequestTimeoutSec, "Per-request deadline in seconds")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown drain period in seconds")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("PHONEMIZE")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("phonemize")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("language", c.Language)
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("paths.lexicon_path", c.Paths.LexiconPath)
	v.SetDefault("text.casing", c.Text.Casing)
	v.SetDefault("text.number_lang", c.Text.NumberLang)
	v.SetDefault("text.case_sensitive_lexicon", c.Text.CaseSensitiveLexicon)
	v.SetDefault("g2p.backend", c.G2P.Backend)
	v.SetDefault("g2p.timeout_ms", c.G2P.TimeoutMS)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.workers", c.Server.Workers)
	v.SetDefault("server.request_timeout_sec", c.Server.RequestTimeoutSec)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("paths.lexicon_path", "paths-lexicon-path")
	v.RegisterAlias("text.casing", "text-casing")
	v.RegisterAlias("text.number_lang", "text-number-lang")
	v.RegisterAlias("text.case_sensitive_lexicon", "text-case-sensitive-lexicon")
	v.RegisterAlias("g2p.backend", "g2p-backend")
	v.RegisterAlias("g2p.timeout_ms", "g2p-timeout-ms")
	v.RegisterAlias("server.listen_addr", "server-listen-addr")
	v.RegisterAlias("server.max_text_bytes", "server-max-text-bytes")
	v.RegisterAlias("server.workers", "server-workers")
	v.RegisterAlias("server.request_timeout_sec", "server-request-timeout-sec")
	v.RegisterAlias("server.shutdown_timeout", "server-shutdown-timeout")
}
