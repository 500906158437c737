package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGameConfig_DefaultValues(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadGameConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, "config/resources.yaml", cfg.ResourceManifest)
	assert.Equal(t, "data/levels.yaml", cfg.LevelManifest)
	assert.Equal(t, "data/levels", cfg.LevelsDir)
	assert.Equal(t, SaveBackendGdata, cfg.SaveBackend)
	assert.Equal(t, "data/player_data.ini", cfg.SavePath)
	assert.Equal(t, "data/records.db", cfg.RecordsDB)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 1.0, cfg.WindowScale)
	assert.Equal(t, 0.6, cfg.MusicVolume)
	assert.Equal(t, 1.0, cfg.SoundVolume)
}

func TestLoadGameConfig_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "starfall.yaml")
	content := `
fps: 60
save_backend: file
save_path: /tmp/save.ini
seed: 42
verbose: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGameConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, SaveBackendFile, cfg.SaveBackend)
	assert.Equal(t, "/tmp/save.ini", cfg.SavePath)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Verbose)
	// 未出现在文件中的键保持默认值
	assert.Equal(t, "assets", cfg.AssetsDir)
}

func TestLoadGameConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "starfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: 60\n"), 0644))
	t.Setenv("STARFALL_FPS", "45")

	cfg, err := LoadGameConfig(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.FPS)
}

func TestLoadGameConfig_FindsFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "starfall.yaml"), []byte("seed: 7\n"), 0644))
	t.Chdir(dir)

	cfg, err := LoadGameConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadGameConfig_MissingFile(t *testing.T) {
	_, err := LoadGameConfig(viper.New(), "/nonexistent/starfall.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadGameConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"zero fps", "fps: 0\n", "fps must be positive"},
		{"unknown backend", "save_backend: cloud\n", "unknown save_backend"},
		{"loud music", "music_volume: 2\n", "music_volume"},
		{"negative sound", "sound_volume: -1\n", "sound_volume"},
		{"zero scale", "window_scale: 0\n", "window_scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "starfall.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadGameConfig(viper.New(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
