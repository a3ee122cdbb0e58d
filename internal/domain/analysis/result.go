// Package analysis holds the structured result of intent extraction over a
// raw inbound message, together with its language/intent value objects.
package analysis

import (
	"regexp"
	"strings"
)

// contractPattern is the canonical contract number format: F + 7 digits + D.
var contractPattern = regexp.MustCompile(`^F\d{7}D$`)

// Result is the immutable outcome of one extraction pass over one message.
// Produced exactly once per inbound message, by the model or the heuristic
// fallback, and never mutated afterwards.
type Result struct {
	Language       Language
	Intent         Intent
	ContractNumber string // empty when absent or invalid
	IsValidFormat  bool
	IsSpam         bool
	Confidence     float64
	UsedFallback   bool
}

// NormalizeContractNumber strips embedded whitespace, upper-cases and
// validates a candidate contract number. Returns "" when the result does not
// match the canonical format.
func NormalizeContractNumber(raw string) string {
	cleaned := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	if !contractPattern.MatchString(cleaned) {
		return ""
	}
	return cleaned
}

// IsValidContractNumber reports whether s already is a canonical contract number.
func IsValidContractNumber(s string) bool {
	return contractPattern.MatchString(s)
}
