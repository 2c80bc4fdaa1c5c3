package validation

import (
	"fmt"
	"strings"
)

// Issue is a single problem found during validation.
type Issue struct {
	Code    Code
	Message string
}

// String renders the issue as "[code] message".
func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s", i.Code, i.Message)
}

// Result accumulates the outcome of one validation call. A fresh Result is
// valid; AddIssue is the only way to flip it. Version and DeclaredLength are
// set by the wrapper validator once the corresponding header fields have
// been parsed, even when a later check fails.
type Result struct {
	Valid          bool
	Issues         []Issue
	Version        *int
	DeclaredLength *uint32
}

// NewResult returns a Result with no issues.
func NewResult() *Result {
	return &Result{Valid: true}
}

// AddIssue records a problem and marks the result invalid. Issues keep
// insertion order; the first one added determines PrimaryCode.
func (r *Result) AddIssue(code Code, message string) {
	r.Issues = append(r.Issues, Issue{Code: code, Message: message})
	r.Valid = false
}

// PrimaryCode returns the code of the first recorded issue, or CodeValid
// when there are none.
func (r *Result) PrimaryCode() Code {
	if len(r.Issues) == 0 {
		return CodeValid
	}
	return r.Issues[0].Code
}

// String renders the human-readable validation report.
func (r *Result) String() string {
	if r.Valid {
		return "Validation passed: manifest is structurally compliant"
	}
	var b strings.Builder
	b.WriteString("Validation failed:\n")
	for _, issue := range r.Issues {
		fmt.Fprintf(&b, "  - %s\n", issue)
	}
	return b.String()
}
