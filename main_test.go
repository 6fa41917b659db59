package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmeredith/dbscout/internal/extract"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, extract.DefaultConfig(), cfg)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	yaml := `
includeIdField: false
excludeTypeSuffixes:
  - DTO
  - View
repositorySuffix: Dao
markers:
  entity:
    - com.acme.orm.Persistent
apiPrefixes:
  - prefix: com.acme.orm.
    kind: AcmeORM
  - prefix: java.sql.
    kind: JDBC
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.IncludeIDField)
	assert.Equal(t, []string{"DTO", "View"}, cfg.ExcludeTypeSuffixes)
	assert.Equal(t, "Dao", cfg.RepositorySuffix)

	// The lowercased YAML key folds back onto the canonical marker name.
	assert.Equal(t, []string{"com.acme.orm.Persistent"}, cfg.Markers[extract.MarkerEntity])
	// Untouched markers keep their defaults.
	assert.Equal(t, extract.DefaultConfig().Markers[extract.MarkerID], cfg.Markers[extract.MarkerID])

	require.Len(t, cfg.APIPrefixes, 2)
	assert.Equal(t, extract.APIPrefix{Prefix: "com.acme.orm.", Kind: "AcmeORM"}, cfg.APIPrefixes[0])
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
