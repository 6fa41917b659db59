// Package pipeline wires the run together: discover Java sources, build the
// structural model, run the extractors, and write the three JSON documents.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/pmeredith/dbscout/internal/discover"
	"github.com/pmeredith/dbscout/internal/extract"
	"github.com/pmeredith/dbscout/internal/javasrc"
	"github.com/pmeredith/dbscout/internal/jsonenc"
)

// Options configures one extraction run.
type Options struct {
	RepoPath string
	OutDir   string
	Config   extract.Config
	// Workers bounds the parse worker pool; 0 means GOMAXPROCS.
	Workers int
}

// Output file names, fixed contract.
const (
	EntitiesFile      = "entities.json"
	RelationshipsFile = "relationships.json"
	InteractionsFile  = "db_interactions.json"
)

// Run executes the pipeline. Classification never fails on malformed input;
// the returned error covers only unusable repository paths and output I/O.
func Run(opts Options) error {
	repoRoot, err := filepath.Abs(opts.RepoPath)
	if err != nil {
		return fmt.Errorf("resolving repo path: %w", err)
	}
	info, err := os.Stat(repoRoot)
	if err != nil {
		return fmt.Errorf("repo path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", repoRoot)
	}

	roots := discover.SourceRoots(repoRoot)
	for _, r := range roots {
		slog.Debug("source root", "path", r)
	}

	files, err := discover.JavaFiles(repoRoot, roots)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no Java sources found under %s", repoRoot)
	}
	slog.Info("Java sources discovered", "count", len(files))

	parsed := parseConcurrent(files, opts.Workers)
	m := javasrc.Resolve(parsed)
	slog.Info("types in model", "count", len(m.Types))

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	outputs := []struct {
		name string
		json string
	}{
		{EntitiesFile, extract.EntitiesJSON(extract.Entities(m, opts.Config))},
		{RelationshipsFile, extract.RelationshipsJSON(extract.Relations(m, opts.Config))},
		{InteractionsFile, extract.InteractionsJSON(extract.Interactions(m, opts.Config))},
	}
	for _, out := range outputs {
		path := filepath.Join(opts.OutDir, out.name)
		if err := os.WriteFile(path, []byte(jsonenc.Pretty(out.json)+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		slog.Info("written", "file", path)
	}
	return nil
}

// parseConcurrent parses files with a worker pool, one parser per goroutine,
// and returns the results in input order so model enumeration stays
// deterministic. Files that fail to parse are logged and dropped.
func parseConcurrent(files []string, workers int) []*javasrc.File {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(files) {
		workers = len(files)
	}

	work := make(chan int, len(files))
	indexed := make([]*javasrc.File, len(files))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			parser := javasrc.NewParser()
			for idx := range work {
				path := files[idx]
				source, err := os.ReadFile(path)
				if err != nil {
					slog.Warn("skipping unreadable file", "path", path, "error", err)
					continue
				}
				f, err := javasrc.ParseFile(parser, source, path)
				if err != nil {
					slog.Warn("skipping unparseable file", "path", path, "error", err)
					continue
				}
				indexed[idx] = f
			}
		}()
	}
	for i := range files {
		work <- i
	}
	close(work)
	wg.Wait()

	parsed := make([]*javasrc.File, 0, len(files))
	for _, f := range indexed {
		if f != nil {
			parsed = append(parsed, f)
		}
	}
	return parsed
}
