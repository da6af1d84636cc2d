// internal/checker/types.go
package checker

import (
	"fmt"
	"go/token"
)

// SourceUnit is the raw text of one file together with its path.
type SourceUnit struct {
	Path string
	Src  []byte
}

// Candidate is a method declared inside a use-case type that has a return clause.
type Candidate struct {
	UseCase   string
	Method    string
	Signature string
	Pos       token.Pos
	Position  token.Position
}

// Kind tags the rule that produced a Violation.
type Kind string

const (
	// KindExposedModel marks a use-case method returning a configured model type.
	KindExposedModel Kind = "exposed-model"
)

// Violation is one architectural finding.
type Violation struct {
	Kind        Kind
	UseCase     string
	Method      string
	ExposedType string
	Signature   string
	Position    token.Position
}

// Message renders the violation the way the checker reports it everywhere.
func (v Violation) Message() string {
	switch v.Kind {
	case KindExposedModel:
		return fmt.Sprintf("UseCase '%s' exposes model object '%s' in method '%s'", v.UseCase, v.ExposedType, v.Method)
	default:
		return fmt.Sprintf("UseCase '%s' violates rule %q in method '%s'", v.UseCase, v.Kind, v.Method)
	}
}

// Severity classifies a Diagnostic.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Diagnostic records a per-file problem that was recovered from.
type Diagnostic struct {
	Path     string
	Severity Severity
	Message  string
}

// FileResult is the walker output for one file.
type FileResult struct {
	Path       string
	UseCase    bool
	Candidates []Candidate
}

// Summary holds the run counters.
type Summary struct {
	FilesScanned int
	UseCaseFiles int
	Violations   int
}

// Report is the outcome of a check run.
type Report struct {
	Violations  []Violation
	Diagnostics []Diagnostic
	Summary     Summary
}

// HasViolations reports whether the run produced any finding.
func (r *Report) HasViolations() bool {
	return r != nil && len(r.Violations) > 0
}
