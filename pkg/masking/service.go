// Package masking scrubs credential-shaped content out of agent
// transcripts before they are persisted. Agents run shell commands in
// real repositories; their output routinely echoes env vars, git
// remotes, and config files that must not land in the database.
package masking

import (
	"log/slog"
	"regexp"
)

// Service applies data masking to agent run logs. Created once at
// application startup. Thread-safe and stateless aside from compiled
// patterns.
type Service struct {
	patterns []*CompiledPattern
}

// NewService creates a masking service with all built-in patterns
// compiled eagerly, plus any extra patterns supplied by the operator.
// Invalid extra patterns are logged and skipped.
func NewService(extraPatterns ...string) *Service {
	s := &Service{patterns: compileBuiltinPatterns()}

	for i, p := range extraPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			slog.Error("Failed to compile custom masking pattern, skipping",
				"index", i, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        "custom",
			Regex:       re,
			Replacement: "__MASKED__",
		})
	}

	slog.Info("Masking service initialized", "patterns", len(s.patterns))
	return s
}

// Mask applies every pattern to data and returns the scrubbed result.
// Nil-safe: a nil service passes data through unchanged.
func (s *Service) Mask(data string) string {
	if s == nil || data == "" {
		return data
	}
	for _, p := range s.patterns {
		data = p.Regex.ReplaceAllString(data, p.Replacement)
	}
	return data
}
