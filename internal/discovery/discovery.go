// internal/discovery/discovery.go
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"arch-rule-checker/internal/checker"
	"arch-rule-checker/internal/logger"
)

// Options controls which files are discovered.
type Options struct {
	IncludeTests bool
}

// ExecutionError means the source root itself cannot be scanned. It aborts
// the run, unlike per-file read errors.
type ExecutionError struct {
	Root string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("cannot scan source root %s: %v", e.Root, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	"vendor":   true,
	"testdata": true,
}

// Find returns the Go files under root in lexical walk order. Hidden entries,
// vendor and testdata directories are skipped; so are _test.go files unless
// opts.IncludeTests is set. Unreadable subdirectories are logged and skipped.
func Find(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &ExecutionError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &ExecutionError{Root: root, Err: fmt.Errorf("not a directory")}
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.L().Warn("file.skipped", "path", path, "err", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if path != root && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || filepath.Ext(name) != ".go" {
			return nil
		}
		if !opts.IncludeTests && strings.HasSuffix(name, "_test.go") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, &ExecutionError{Root: root, Err: err}
	}
	return files, nil
}

// Read loads the given files. A file that cannot be read is reported as a
// warning diagnostic and left out; the order of the others is kept.
func Read(paths []string) ([]checker.SourceUnit, []checker.Diagnostic) {
	units := make([]checker.SourceUnit, 0, len(paths))
	var diags []checker.Diagnostic
	for _, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			logger.L().Warn("file.unreadable", "path", p, "err", err)
			diags = append(diags, checker.Diagnostic{
				Path:     p,
				Severity: checker.SeverityWarning,
				Message:  fmt.Sprintf("skipping unreadable file: %v", err),
			})
			continue
		}
		units = append(units, checker.SourceUnit{Path: p, Src: src})
	}
	return units, diags
}
