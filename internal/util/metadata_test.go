package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectChange(t *testing.T) {
	base := time.Date(2025, time.October, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		local, remote FileMeta
		want          SyncAction
	}{
		{name: "both missing", want: SyncNone},
		{name: "remote missing", local: FileMeta{Exists: true, ModTime: base}, want: SyncPush},
		{name: "local missing", remote: FileMeta{Exists: true, ModTime: base}, want: SyncPull},
		{name: "local newer", local: FileMeta{Exists: true, ModTime: base.Add(time.Minute)}, remote: FileMeta{Exists: true, ModTime: base}, want: SyncPush},
		{name: "remote newer", local: FileMeta{Exists: true, ModTime: base}, remote: FileMeta{Exists: true, ModTime: base.Add(time.Minute)}, want: SyncPull},
		{name: "within skew", local: FileMeta{Exists: true, ModTime: base.Add(500 * time.Millisecond)}, remote: FileMeta{Exists: true, ModTime: base}, want: SyncNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectChange(tt.local, tt.remote))
		})
	}
}

func TestLocalMeta(t *testing.T) {
	dir := t.TempDir()

	meta, err := LocalMeta(filepath.Join(dir, "missing.md"))
	require.NoError(t, err)
	assert.False(t, meta.Exists)

	path := filepath.Join(dir, "TODO.md")
	require.NoError(t, os.WriteFile(path, []byte("## NEXT\n"), 0644))
	meta, err = LocalMeta(path)
	require.NoError(t, err)
	assert.True(t, meta.Exists)
	assert.Equal(t, int64(8), meta.Size)
}
