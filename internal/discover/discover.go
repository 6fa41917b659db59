// Package discover finds Java source roots and source files in a repository.
package discover

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

var skipDirs = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	".gradle":      {},
	".idea":        {},
	"node_modules": {},
	"target":       {},
	"build":        {},
	"out":          {},
	"dist":         {},
}

// conventional source-root layouts, relative to a module directory.
var rootLayouts = []string{
	filepath.Join("src", "main", "java"),
	filepath.Join("src", "java"),
}

// nestedRootDepth limits the scan for source roots of nested modules.
const nestedRootDepth = 4

// SourceRoots returns the Java source roots under repoRoot: the conventional
// layouts at the top level, or, when none exist there, the same layouts found
// by a shallow scan for nested modules. With no conventional root at all, the
// repository root itself is used.
func SourceRoots(repoRoot string) []string {
	var roots []string
	for _, layout := range rootLayouts {
		p := filepath.Join(repoRoot, layout)
		if isDir(p) {
			roots = append(roots, p)
		}
	}
	if len(roots) > 0 {
		return roots
	}

	seen := map[string]struct{}{}
	_ = filepath.WalkDir(repoRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if _, skip := skipDirs[d.Name()]; skip || strings.HasPrefix(d.Name(), ".") && path != repoRoot {
			return filepath.SkipDir
		}
		rel, relErr := filepath.Rel(repoRoot, path)
		if relErr != nil {
			return nil
		}
		if strings.Count(rel, string(filepath.Separator))+1 > nestedRootDepth {
			return filepath.SkipDir
		}
		for _, layout := range rootLayouts {
			if rel == layout || strings.HasSuffix(rel, string(filepath.Separator)+layout) {
				if _, dup := seen[path]; !dup {
					seen[path] = struct{}{}
					roots = append(roots, path)
				}
				return filepath.SkipDir
			}
		}
		return nil
	})
	sort.Strings(roots)

	if len(roots) == 0 {
		roots = []string{repoRoot}
	}
	return roots
}

// JavaFiles discovers .java files under the given source roots, honoring the
// repository's .gitignore. Paths are absolute and sorted; a file reachable
// from two roots is listed once.
func JavaFiles(repoRoot string, roots []string) ([]string, error) {
	gi := loadGitignore(repoRoot)

	seen := map[string]struct{}{}
	var results []string

	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil // skip unreadable entries
			}
			name := d.Name()
			if d.IsDir() {
				if path == root {
					return nil
				}
				if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(name, ".") || d.Type()&os.ModeSymlink != 0 {
				return nil
			}
			if filepath.Ext(name) != ".java" {
				return nil
			}
			if gi != nil {
				if rel, relErr := filepath.Rel(repoRoot, path); relErr == nil && gi.MatchesPath(rel) {
					return nil
				}
			}
			if _, dup := seen[path]; dup {
				return nil
			}
			seen[path] = struct{}{}
			results = append(results, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(results)
	return results, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
