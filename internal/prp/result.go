package prp

import (
	"fmt"
	"strings"
)

// ValidationResult reports the outcome of validating a generated PRP.
// Consistency between Success and Errors is the producer's job; Summary
// only renders what it is given.
type ValidationResult struct {
	Success  bool     `json:"success"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Summary renders a one-line human-readable outcome.
func (v *ValidationResult) Summary() string {
	var b strings.Builder

	if v.Success {
		b.WriteString("✅ Validation passed")
		if len(v.Warnings) > 0 {
			fmt.Fprintf(&b, " with %d warnings", len(v.Warnings))
		}
		return b.String()
	}

	fmt.Fprintf(&b, "❌ Validation failed: %d errors", len(v.Errors))
	if len(v.Warnings) > 0 {
		fmt.Fprintf(&b, ", %d warnings", len(v.Warnings))
	}
	return b.String()
}
