package checker

import (
	"path/filepath"
	"strings"
)

const (
	useCaseToken   = "usecase"
	coreSegment    = "core"
	useCaseSegment = "usecases"
)

// IsUseCaseFile decides whether a file belongs to the use-case layer. The file
// name must mention "UseCase", or the path must contain both a "Core" and a
// "UseCases" segment. Matching ignores case so snake_case Go file names and
// lower-case package directories are recognized.
func IsUseCaseFile(fileName string, pathSegments []string) bool {
	if strings.Contains(strings.ToLower(fileName), useCaseToken) {
		return true
	}

	var core, useCases bool
	for _, seg := range pathSegments {
		switch strings.ToLower(seg) {
		case coreSegment:
			core = true
		case useCaseSegment:
			useCases = true
		}
	}
	return core && useCases
}

// ClassifyPath splits path into its segments and applies IsUseCaseFile.
func ClassifyPath(path string) bool {
	slashed := filepath.ToSlash(path)
	segments := strings.FieldsFunc(slashed, func(r rune) bool { return r == '/' })
	name := ""
	if len(segments) > 0 {
		name = segments[len(segments)-1]
	}
	return IsUseCaseFile(name, segments)
}
