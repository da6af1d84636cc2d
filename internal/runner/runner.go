// internal/runner/runner.go
package runner

import (
	"context"
	"path/filepath"

	"arch-rule-checker/internal/checker"
	"arch-rule-checker/internal/config"
	"arch-rule-checker/internal/discovery"
	"arch-rule-checker/internal/logger"
)

// Request describes one check of a source tree.
type Request struct {
	SourcePath string
	// ConfigPath overrides configuration discovery under SourcePath.
	ConfigPath   string
	IncludeTests bool
	Workers      int
}

// Result is a completed check.
type Result struct {
	Report     *checker.Report
	Config     config.Configuration
	ConfigPath string
}

// Run resolves the configuration, discovers and reads the Go files under the
// source root and checks them. Only an unusable source root or invalid
// options make it fail; configuration and per-file problems are recovered.
func Run(ctx context.Context, req Request) (*Result, error) {
	root := req.SourcePath
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	cfgPath := req.ConfigPath
	if cfgPath == "" {
		cfgPath, _ = config.Locate(root)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.L().Info("config.default", "path", cfgPath, "reason", err)
		cfgPath = ""
	} else if cfgPath == "" {
		logger.L().Info("config.default", "reason", "no configuration file found")
	} else {
		logger.L().Debug("config.loaded", "path", cfgPath, "modelTypes", cfg.ModelTypes)
	}

	paths, err := discovery.Find(root, discovery.Options{IncludeTests: req.IncludeTests})
	if err != nil {
		return nil, err
	}
	units, readDiags := discovery.Read(paths)

	rep, err := checker.Check(ctx, units, checker.Options{
		ModelTypes:       cfg.ModelTypes,
		ExemptionMarkers: cfg.Markers(),
		Workers:          req.Workers,
	})
	if err != nil {
		return nil, err
	}
	for _, d := range rep.Diagnostics {
		logger.L().Warn("file.skipped", "path", d.Path, "reason", d.Message)
	}
	rep.Diagnostics = append(readDiags, rep.Diagnostics...)
	rep.Summary.FilesScanned += len(readDiags)

	logger.L().Debug("check.done",
		"root", root,
		"files", rep.Summary.FilesScanned,
		"useCaseFiles", rep.Summary.UseCaseFiles,
		"violations", rep.Summary.Violations,
	)
	return &Result{Report: rep, Config: cfg, ConfigPath: cfgPath}, nil
}
