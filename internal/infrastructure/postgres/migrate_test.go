package postgres

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_ParesUpDown(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)

	pattern := regexp.MustCompile(`^(\d+)_.*\.(up|down)\.sql$`)
	byVersion := map[string]map[string]bool{}
	for _, e := range entries {
		m := pattern.FindStringSubmatch(e.Name())
		require.NotNil(t, m, "nombre de migración inválido: %s", e.Name())
		if byVersion[m[1]] == nil {
			byVersion[m[1]] = map[string]bool{}
		}
		require.False(t, byVersion[m[1]][m[2]], "migración %s duplicada para la versión %s", m[2], m[1])
		byVersion[m[1]][m[2]] = true
	}

	require.NotEmpty(t, byVersion)
	for version, dirs := range byVersion {
		assert.True(t, dirs["up"] && dirs["down"], "la versión %s necesita up y down", version)
	}
}

func TestMigrations_OrdenEstable(t *testing.T) {
	files, err := migrationFiles(".up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_init.up.sql", files[0])
}
