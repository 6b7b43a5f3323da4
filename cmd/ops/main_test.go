package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/model"
	"github.com/thedidscuf/GameYoutube/internal/ops"
	"github.com/thedidscuf/GameYoutube/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListChannels_MarksActive(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository(store.NewMemoryKV())
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := model.NewChannel("a", "Alpha", "", false, now)
	b := model.NewChannel("b", "Beta", "", false, now.Add(time.Hour))
	require.NoError(t, repo.SaveChannel(ctx, a))
	require.NoError(t, repo.SaveChannel(ctx, b))
	require.NoError(t, repo.SetActiveChannelID(ctx, "b"))

	var out bytes.Buffer
	require.NoError(t, listChannels(ctx, repo, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	var first, second channelLine
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "Alpha", first.Name)
	assert.False(t, first.Active)
	assert.Equal(t, "Beta", second.Name)
	assert.True(t, second.Active)
}

func TestCmdBackupAndDrill(t *testing.T) {
	dataDir := t.TempDir()
	kv, err := store.NewFileKV(dataDir)
	require.NoError(t, err)
	require.NoError(t, kv.Put(context.Background(), "meta:active_channel", []byte(`"x"`)))
	require.NoError(t, kv.Close())

	archive := filepath.Join(t.TempDir(), "b"+ops.ArchiveExt)
	var out bytes.Buffer
	require.NoError(t, cmdBackup([]string{"--data-dir", dataDir, "--out", archive}, &out))
	assert.Equal(t, archive, strings.TrimSpace(out.String()))

	target := filepath.Join(t.TempDir(), "restored")
	require.NoError(t, cmdRestore([]string{"--archive", archive, "--target-dir", target}))
	want, _ := ops.DirDigest(dataDir)
	got, _ := ops.DirDigest(target)
	assert.Equal(t, want, got)

	out.Reset()
	require.NoError(t, cmdDrill([]string{"--data-dir", dataDir, "--work-dir", t.TempDir()}, &out))
	assert.Contains(t, out.String(), "digest: "+want)

	assert.Error(t, cmdRestore(nil))
}

func TestCmdBalance_RoundTripsThroughLoadBalance(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cmdBalance([]string{"--preset", "hard"}, &out))

	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, out.Bytes(), 0o644))
	got, err := config.LoadBalance(path, config.Default())
	require.NoError(t, err)
	assert.Equal(t, config.Hard(), got)
}
