// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kirinukist/internal/platform/config"
)

/*
TestLoadFile_Defaults verifies defaults are applied when only required keys are set.
*/
func TestLoadFile_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/kirinukist")
	t.Setenv("IDENTITY_SECRET", "secret")

	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "./data/migrations", cfg.MigrationPath)
	assert.True(t, cfg.RunMigrations)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

/*
TestLoadFile_DotEnv verifies values are read from a dotenv file.
*/
func TestLoadFile_DotEnv(t *testing.T) {
	t.Setenv("IDENTITY_SECRET", "secret")
	// godotenv never overrides variables that are already set; clear the one under test.
	for _, key := range []string{"DATABASE_URL", "SERVER_PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "DATABASE_URL=postgres://db/kirinukist\nSERVER_PORT=9090\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://db/kirinukist", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.ServerPort)
}

/*
TestLoadFile_MissingRequired verifies required keys are enforced.
*/
func TestLoadFile_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	t.Setenv("IDENTITY_SECRET", "secret")

	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
