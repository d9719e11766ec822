package config

import (
	"fmt"
	"strings"
)

const (
	// BackendLanguage uses the resolved language's default oracle.
	BackendLanguage = "language"
	// BackendRules forces the rule-based English oracle.
	BackendRules = "rules"
	// BackendGoruut forces the goruut statistical oracle.
	BackendGoruut = "goruut"
	// BackendNone disables fallback prediction entirely.
	BackendNone = "none"
)

// NormalizeG2PBackend canonicalizes a backend name, defaulting the empty
// string to BackendLanguage.
func NormalizeG2PBackend(raw string) (string, error) {
	backend := strings.ToLower(strings.TrimSpace(raw))
	if backend == "" {
		backend = BackendLanguage
	}
	switch backend {
	case BackendLanguage, BackendRules, BackendGoruut, BackendNone:
		return backend, nil
	default:
		return "", fmt.Errorf(
			"invalid g2p backend %q (expected %s|%s|%s|%s)",
			raw,
			BackendLanguage,
			BackendRules,
			BackendGoruut,
			BackendNone,
		)
	}
}

// NormalizeCasing canonicalizes a casing policy name, defaulting the
// empty string to "keep".
func NormalizeCasing(raw string) (string, error) {
	casing := strings.ToLower(strings.TrimSpace(raw))
	if casing == "" {
		casing = "keep"
	}
	switch casing {
	case "keep", "lower", "upper":
		return casing, nil
	default:
		return "", fmt.Errorf("invalid casing %q (expected keep|lower|upper)", raw)
	}
}
