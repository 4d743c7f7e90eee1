package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsPath_Explicit(t *testing.T) {
	assert.Equal(t, "file:///opt/lingoread/migrations", MigrationsPath("/opt/lingoread/migrations"))
}

func TestMigrationsPath_Probe(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "migrations"), 0o755))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.Equal(t, "file://migrations", MigrationsPath(""))
}

func TestMigrationsPath_RepositoryLayout(t *testing.T) {
	// Tests run from internal/database, two levels below the repository root
	assert.Equal(t, "file://../../migrations", MigrationsPath(""))
}
