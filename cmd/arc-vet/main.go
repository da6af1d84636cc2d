// cmd/arc-vet/main.go
package main

import (
	"arch-rule-checker/internal/analyzer"

	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
