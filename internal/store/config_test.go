package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigPath_EnvOverride(t *testing.T) {
	t.Setenv("MDTODO_CONFIG", "/tmp/custom.yaml")
	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MDTODO_CONFIG", filepath.Join(home, "missing.yaml"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "mdtodo", "TODO.md"), cfg.TodoFile)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "TODO.md", cfg.Sync.Key)
	assert.Nil(t, cfg.Keywords)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "config.yaml")
	t.Setenv("MDTODO_CONFIG", path)
	t.Setenv("MDTODO_EDITOR", "nano")
	t.Setenv("MDTODO_LOG_LEVEL", "debug")

	content := `todo_file: ~/notes/TODO.md
editor: vim
locale: pt
sync:
  enable: true
  bucket: my-bucket
keywords:
  focus_marker: Focus
  sections:
    - status: DOING
      keyword: NOW
    - status: next
      keyword: SOON
    - status: waiting
      keyword: WAIT
    - status: blocked
      keyword: STUCK
    - status: ideas
      keyword: MAYBE
    - status: done
      keyword: FINISHED
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes", "TODO.md"), cfg.TodoFile)
	assert.Equal(t, "nano", cfg.Editor)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "pt", cfg.Locale)
	assert.True(t, cfg.Sync.Enable)
	assert.Equal(t, "my-bucket", cfg.Sync.Bucket)
	assert.Equal(t, "TODO.md", cfg.Sync.Key)

	require.NotNil(t, cfg.Keywords)
	assert.Equal(t, "Focus", cfg.Keywords.FocusMarker)
	require.Len(t, cfg.Keywords.Sections, 6)
	assert.Equal(t, model.StatusDoing, cfg.Keywords.Sections[0].Status)
	assert.Equal(t, "NOW", cfg.Keywords.Sections[0].Keyword)
}

func TestLoadConfig_BadStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "keywords:\n  sections:\n    - status: someday\n      keyword: LATER\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadConfigFrom(path)
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := model.DefaultConfig()
	cfg.TodoFile = "/srv/todo/TODO.md"
	cfg.Editor = "hx"
	cfg.Sync.Bucket = "bucket"

	require.NoError(t, SaveConfig(path, &cfg))

	loaded, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.TodoFile, loaded.TodoFile)
	assert.Equal(t, "hx", loaded.Editor)
	assert.Equal(t, "bucket", loaded.Sync.Bucket)
	assert.Equal(t, cfg.Log, loaded.Log)
}
