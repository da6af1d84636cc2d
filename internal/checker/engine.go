// internal/checker/engine.go
package checker

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"runtime"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

var validate = validator.New()

// Options configures one check run.
type Options struct {
	ModelTypes       []string `validate:"required,min=1,dive,required"`
	ExemptionMarkers []string `validate:"omitempty,dive,required"`
	// Workers bounds the number of files analyzed concurrently. Zero means
	// GOMAXPROCS.
	Workers int `validate:"gte=0"`
}

// Check analyzes units and returns the violations in input order. Files that
// are not in the use-case layer are counted but never parsed. A file that does
// not parse is skipped with a warning diagnostic; it never fails the run.
func Check(ctx context.Context, units []SourceUnit, opts Options) (*Report, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid check options: %w", err)
	}
	markers := opts.ExemptionMarkers
	if markers == nil {
		markers = DefaultExemptionMarkers
	}
	rule := NewRule(opts.ModelTypes, markers)

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(units))
	diags := make([][]Diagnostic, len(units))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, unit := range units {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i], diags[i] = analyzeUnit(unit)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := Aggregate(results, rule)
	for _, d := range diags {
		rep.Diagnostics = append(rep.Diagnostics, d...)
	}
	return &rep, nil
}

// AnalyzeSource checks a single file against rule.
func AnalyzeSource(path string, src []byte, rule *Rule) ([]Violation, error) {
	if !ClassifyPath(path) {
		return nil, nil
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	rep := Aggregate([]FileResult{{Path: path, UseCase: true, Candidates: Walk(fset, file)}}, rule)
	return rep.Violations, nil
}

func analyzeUnit(unit SourceUnit) (FileResult, []Diagnostic) {
	res := FileResult{Path: unit.Path}
	if !ClassifyPath(unit.Path) {
		return res, nil
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, unit.Path, unit.Src, parser.SkipObjectResolution)
	if err != nil {
		return res, []Diagnostic{{
			Path:     unit.Path,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("skipping file that does not parse: %v", err),
		}}
	}
	res.UseCase = true
	res.Candidates = Walk(fset, file)
	return res, nil
}
