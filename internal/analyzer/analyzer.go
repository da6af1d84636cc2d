// Package analyzer exposes the use-case exposure check as a go/analysis pass.
//
// # Overview
//
// The pass runs the same walker and rule as arc-cli, one file at a time, and
// reports a diagnostic at the name of every use-case method whose return
// type exposes a configured model type:
//
//	func (u *GetUserUseCase) Execute(id string) UserEntity // reported
//	func (u *GetUserUseCase) Execute(id string) UserResponse
//
// Files are classified by path only, so the pass needs no type information
// and can run under go vet, gopls or golangci-lint alike.
//
// # Configuration
//
// The -config flag points to an arch-config.json (or .yaml) file. Without it
// the built-in model types are used.
package analyzer

import (
	"sync"

	"arch-rule-checker/internal/checker"
	"arch-rule-checker/internal/config"

	"golang.org/x/tools/go/analysis"
)

const doc = `report use-case methods that return domain model types

A method declared on a type in the use-case layer (a file whose name contains
"usecase", or a file under both a "core" and a "usecases" directory) must not
return a configured model type such as UserEntity or Result[OrderEntity].
Types carrying a Response or DTO marker are allowed.`

// Analyzer is the usecaseexposure pass.
var Analyzer = &analysis.Analyzer{
	Name: "usecaseexposure",
	Doc:  doc,
	Run:  run,
}

var configPath string

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path to the model type configuration file")
}

var (
	ruleOnce sync.Once
	rule     *checker.Rule
)

// loadRule builds the rule once per process. A configuration that cannot be
// loaded falls back to the defaults, same as the CLI.
func loadRule() *checker.Rule {
	ruleOnce.Do(func() {
		cfg, _ := config.Load(configPath)
		rule = checker.NewRule(cfg.ModelTypes, cfg.Markers())
	})
	return rule
}

func run(pass *analysis.Pass) (any, error) {
	r := loadRule()
	for _, file := range pass.Files {
		name := pass.Fset.Position(file.Pos()).Filename
		if !checker.ClassifyPath(name) {
			continue
		}
		for _, c := range checker.Walk(pass.Fset, file) {
			exposed, ok := r.Evaluate(c.Signature)
			if !ok {
				continue
			}
			v := checker.Violation{
				Kind:        checker.KindExposedModel,
				UseCase:     c.UseCase,
				Method:      c.Method,
				ExposedType: exposed,
				Signature:   c.Signature,
			}
			pass.Reportf(c.Pos, "%s", v.Message())
		}
	}
	return nil, nil
}
