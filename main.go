// dbscout scans a Java repository and writes normalized persistence metadata
// (entities, relationships, data-access call sites) as JSON documents.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dusted-go/logging/prettylog"
	"github.com/mattn/go-isatty"
	slogformatter "github.com/samber/slog-formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pmeredith/dbscout/internal/extract"
	"github.com/pmeredith/dbscout/internal/pipeline"
)

var version = "dev"

func main() {
	os.Exit(mainFn())
}

func mainFn() int {
	var (
		repoPath       string
		outDir         string
		configPath     string
		workers        int
		includeIDField bool
		excludeSuffix  []string
		verbose        bool
	)

	cmd := &cobra.Command{
		Use:           "dbscout",
		Short:         "dbscout extracts persistence metadata from Java codebases",
		Long:          `dbscout builds a structural model of a Java repository and classifies its
JPA entities, relationships, and data-access call sites into three JSON
documents: entities.json, relationships.json, and db_interactions.json.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initLogging(verbose)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("include-id-field") {
				cfg.IncludeIDField = includeIDField
			}
			if len(excludeSuffix) > 0 {
				cfg.ExcludeTypeSuffixes = append(cfg.ExcludeTypeSuffixes, excludeSuffix...)
			}
			return pipeline.Run(pipeline.Options{
				RepoPath: repoPath,
				OutDir:   outDir,
				Config:   cfg,
				Workers:  workers,
			})
		},
	}

	cmd.Flags().StringVar(&repoPath, "repo", ".", "path to the Java repository to analyze")
	cmd.Flags().StringVar(&outDir, "out", "out/db-info", "directory for the JSON output files")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML policy file")
	cmd.Flags().IntVar(&workers, "workers", 0, "parse worker count (default: number of CPUs)")
	cmd.Flags().BoolVar(&includeIDField, "include-id-field", true,
		"list the identifier member among an entity's fields as well as idField")
	cmd.Flags().StringSliceVar(&excludeSuffix, "exclude-suffix", nil,
		"skip types whose simple name ends with this suffix (repeatable)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	if err := cmd.Execute(); err != nil {
		slog.Error("run failed", "error", err)
		return 1
	}
	return 0
}

func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	w := os.Stderr

	logger := slog.New(
		slogformatter.NewFormatterHandler(
			slogformatter.FormatByType(func(s []string) slog.Value {
				return slog.StringValue(strings.Join(s, ","))
			}),
		)(
			prettylog.New(&slog.HandlerOptions{Level: level},
				prettylog.WithDestinationWriter(w),
				func() prettylog.Option {
					if isatty.IsTerminal(w.Fd()) {
						return prettylog.WithColor()
					}
					return func(_ *prettylog.Handler) {}
				}(),
			),
		),
	)
	slog.SetDefault(logger)
}

// loadConfig starts from the default policy tables and overlays the optional
// YAML file: includeIdField, excludeTypeSuffixes, repositorySuffix,
// loggerTypeSuffixes, markers (marker name -> FQN list), and apiPrefixes
// (ordered prefix/kind pairs).
func loadConfig(path string) (extract.Config, error) {
	cfg := extract.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if v.IsSet("includeIdField") {
		cfg.IncludeIDField = v.GetBool("includeIdField")
	}
	if v.IsSet("excludeTypeSuffixes") {
		cfg.ExcludeTypeSuffixes = v.GetStringSlice("excludeTypeSuffixes")
	}
	if v.IsSet("repositorySuffix") {
		cfg.RepositorySuffix = v.GetString("repositorySuffix")
	}
	if v.IsSet("loggerTypeSuffixes") {
		cfg.LoggerTypeSuffixes = v.GetStringSlice("loggerTypeSuffixes")
	}
	if v.IsSet("markers") {
		// viper lowercases map keys; fold them back onto the canonical
		// marker names so overrides land on the right table entry.
		for marker, names := range v.GetStringMapStringSlice("markers") {
			cfg.Markers[canonicalMarker(cfg, marker)] = names
		}
	}
	if v.IsSet("apiPrefixes") {
		var prefixes []extract.APIPrefix
		if err := v.UnmarshalKey("apiPrefixes", &prefixes); err != nil {
			return cfg, fmt.Errorf("parsing apiPrefixes in %s: %w", path, err)
		}
		cfg.APIPrefixes = prefixes
	}
	return cfg, nil
}

func canonicalMarker(cfg extract.Config, key string) string {
	for marker := range cfg.Markers {
		if strings.EqualFold(marker, key) {
			return marker
		}
	}
	return key
}
