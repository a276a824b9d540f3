package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamados/servicedesk/internal/shared/config"
)

func TestInitAndClose_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "nested", "servicedesk.db"),
	}

	require.NoError(t, Init(cfg))
	require.NotNil(t, Get())
	assert.FileExists(t, cfg.Path)

	require.NoError(t, Close())
	assert.Nil(t, Get())
	assert.NoError(t, Close())
}

func TestDialector_UnknownDriver(t *testing.T) {
	_, err := Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestDialector_Names(t *testing.T) {
	for driver, name := range map[string]string{
		"mysql":    "mysql",
		"postgres": "postgres",
		"sqlite":   "sqlite",
	} {
		d, err := Dialector(&config.DatabaseConfig{Driver: driver, Path: ":memory:", Host: "localhost", Port: 1})
		require.NoError(t, err, driver)
		assert.Equal(t, name, d.Name(), driver)
	}
}
