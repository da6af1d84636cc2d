// internal/report/report.go
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"arch-rule-checker/internal/checker"
	"arch-rule-checker/internal/snippet"

	"github.com/google/uuid"
)

// Document is the machine-readable form of a report.
type Document struct {
	RunID       string       `json:"runId"`
	Summary     Summary      `json:"summary"`
	Violations  []Violation  `json:"violations"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

type Summary struct {
	FilesScanned int `json:"filesScanned"`
	UseCaseFiles int `json:"useCaseFiles"`
	Violations   int `json:"violations"`
}

type Violation struct {
	Kind        string `json:"kind"`
	UseCase     string `json:"useCase"`
	Method      string `json:"method"`
	ExposedType string `json:"exposedType"`
	Signature   string `json:"signature"`
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Message     string `json:"message"`
}

type Diagnostic struct {
	Path     string `json:"path"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// NewDocument converts rep for serialization.
func NewDocument(rep *checker.Report, runID uuid.UUID) Document {
	doc := Document{
		RunID: runID.String(),
		Summary: Summary{
			FilesScanned: rep.Summary.FilesScanned,
			UseCaseFiles: rep.Summary.UseCaseFiles,
			Violations:   rep.Summary.Violations,
		},
		Violations: make([]Violation, 0, len(rep.Violations)),
	}
	for _, v := range rep.Violations {
		doc.Violations = append(doc.Violations, Violation{
			Kind:        string(v.Kind),
			UseCase:     v.UseCase,
			Method:      v.Method,
			ExposedType: v.ExposedType,
			Signature:   v.Signature,
			File:        v.Position.Filename,
			Line:        v.Position.Line,
			Column:      v.Position.Column,
			Message:     v.Message(),
		})
	}
	for _, d := range rep.Diagnostics {
		doc.Diagnostics = append(doc.Diagnostics, Diagnostic{
			Path:     d.Path,
			Severity: string(d.Severity),
			Message:  d.Message,
		})
	}
	return doc
}

// JSON writes rep as an indented Document.
func JSON(w io.Writer, rep *checker.Report, runID uuid.UUID) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(rep, runID))
}

// TextOptions tunes the human-readable report.
type TextOptions struct {
	// ShowSource prints the offending declaration under each violation.
	ShowSource bool
}

// Text writes one line per violation, then warnings, then the summary.
func Text(w io.Writer, rep *checker.Report, opts TextOptions) error {
	var b strings.Builder
	for _, v := range rep.Violations {
		b.WriteString(fmt.Sprintf("%s: %s\n", v.Position, v.Message()))
		if opts.ShowSource {
			writeSource(&b, v)
		}
	}
	for _, d := range rep.Diagnostics {
		b.WriteString(fmt.Sprintf("%s: %s: %s\n", d.Severity, d.Path, d.Message))
	}

	b.WriteString("\n--- Summary ---\n")
	b.WriteString(fmt.Sprintf("Files scanned:     %d\n", rep.Summary.FilesScanned))
	b.WriteString(fmt.Sprintf("UseCase files:     %d\n", rep.Summary.UseCaseFiles))
	b.WriteString(fmt.Sprintf("Violations found:  %d\n", rep.Summary.Violations))
	if !rep.HasViolations() {
		b.WriteString("No architecture violations found.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSource(b *strings.Builder, v checker.Violation) {
	src, err := os.ReadFile(v.Position.Filename)
	if err != nil {
		b.WriteString(fmt.Sprintf("    // Error getting source: %v\n", err))
		return
	}
	code, err := snippet.At(v.Position.Filename, src, v.Position.Line)
	if err != nil {
		b.WriteString(fmt.Sprintf("    // Error getting source: %v\n", err))
		return
	}
	for _, line := range strings.Split(code, "\n") {
		b.WriteString("    " + line + "\n")
	}
}
