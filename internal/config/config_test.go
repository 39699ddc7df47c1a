package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tty/internal/mines"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadConfig(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{
			name: "json",
			file: "config.json",
			content: `{
				"mode": "development",
				"debug": true,
				"log_file": "/tmp/mines.log",
				"game": {"width": 9, "height": 8, "mine_count": 10}
			}`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: "mode: development\n" +
				"debug: true\n" +
				"log_file: /tmp/mines.log\n" +
				"game:\n  width: 9\n  height: 8\n  mine_count: 10\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := Default()
			require.NoError(t, ReadConfig(writeFile(t, test.file, test.content), config))

			assert.True(t, config.Development())
			assert.True(t, config.Debug)
			assert.Equal(t, "/tmp/mines.log", config.LogFile)
			assert.Equal(t, &mines.GameParams{Width: 9, Height: 8, MineCount: 10}, config.Game)
		})
	}
}

func TestReadConfigInvalid(t *testing.T) {
	err := ReadConfig(writeFile(t, "config.json", "{"), Default())
	assert.Error(t, err)

	err = ReadConfig(filepath.Join(t.TempDir(), "missing.json"), Default())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "MINES_LOG_LEVEL=warn\n")
	t.Setenv("MINES_MODE", "development")
	t.Setenv("MINES_DEBUG", "1")
	t.Setenv("MINES_METRICS_FILE", "/tmp/mines.prom")
	t.Setenv("MINES_GAME", "16:16:40")
	t.Cleanup(func() { os.Unsetenv("MINES_LOG_LEVEL") })

	config := Default()
	require.NoError(t, LoadEnv(config, envFile))

	assert.True(t, config.Development())
	assert.True(t, config.Debug)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, "/tmp/mines.prom", config.MetricsFile)
	assert.Equal(t, &mines.GameParams{Width: 16, Height: 16, MineCount: 40}, config.Game)
}

func TestLoadEnvMissingFile(t *testing.T) {
	config := Default()
	require.NoError(t, LoadEnv(config, filepath.Join(t.TempDir(), ".env")))
	assert.True(t, config.Production())
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("MINES_GAME", "16:16")
	assert.Error(t, LoadEnv(Default(), filepath.Join(t.TempDir(), ".env")))
}

func TestFields(t *testing.T) {
	config := Default()
	config.Game = &mines.GameParams{Width: 2, Height: 3, MineCount: 1}
	fields := config.Fields()
	assert.Equal(t, "production", fields["mode"])
	assert.Equal(t, "2:3:1", fields["game"])
}
