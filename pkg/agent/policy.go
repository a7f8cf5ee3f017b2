package agent

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Policy enforces repository security limits on agent output: paths
// the agent must not touch and size caps on a change set.
type Policy struct {
	blockedPatterns []string
	maxFilesPerPR   int
}

// NewPolicy creates a policy from the repository's blocked path
// patterns and change-size limit. Zero maxFilesPerPR disables the cap.
func NewPolicy(blockedPatterns []string, maxFilesPerPR int) *Policy {
	return &Policy{blockedPatterns: blockedPatterns, maxFilesPerPR: maxFilesPerPR}
}

// Violations returns the modified paths matching a blocked pattern.
func (p *Policy) Violations(files []string) []string {
	var violations []string
	for _, file := range files {
		for _, pattern := range p.blockedPatterns {
			ok, err := doublestar.Match(pattern, file)
			if err != nil {
				continue
			}
			if ok {
				violations = append(violations, file)
				break
			}
		}
	}
	return violations
}

// Check validates a change set against the policy.
func (p *Policy) Check(files []string) error {
	if violations := p.Violations(files); len(violations) > 0 {
		return fmt.Errorf("blocked paths modified: %s", strings.Join(violations, ", "))
	}
	if p.maxFilesPerPR > 0 && len(files) > p.maxFilesPerPR {
		return fmt.Errorf("change set of %d files exceeds limit of %d", len(files), p.maxFilesPerPR)
	}
	return nil
}

// PromptConstraints renders the blocked patterns as prompt text so the
// agent is told up front, not only rejected after the fact.
func (p *Policy) PromptConstraints() string {
	if len(p.blockedPatterns) == 0 {
		return ""
	}
	return "Never create or modify files matching these patterns: " +
		strings.Join(p.blockedPatterns, ", ")
}
