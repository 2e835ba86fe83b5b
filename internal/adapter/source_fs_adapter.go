package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "github.com/verdict-dev/verdict/internal/model"
)

// SourceFSAdapter abstracts filesystem discovery of test files so the
// workflow can be tested without touching the disk.
type SourceFSAdapter interface {
	// CollectTestFiles walks the given roots and returns every file whose
	// name ends in suffix, skipping paths matched by any exclude regex.
	CollectTestFiles(roots []m.Path, suffix string, exclude []string) ([]m.Path, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter against the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// CollectTestFiles walks roots and gathers matching test files in sorted order.
func (a *LocalSourceFSAdapter) CollectTestFiles(roots []m.Path, suffix string, exclude []string) ([]m.Path, error) {
	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var files []m.Path

	for _, root := range roots {
		rootStr := string(root)

		if _, err := os.Stat(rootStr); err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		err := filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || !strings.HasSuffix(info.Name(), suffix) {
				return nil
			}

			if matchesAny(patterns, path) {
				return nil
			}

			if _, ok := seen[path]; ok {
				return nil
			}

			seen[path] = struct{}{}
			files = append(files, m.Path(path))

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", rootStr, err)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
