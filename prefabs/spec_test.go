package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/railshooter/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.InDelta(t, 20, cfg.Rail.FollowerSpeed("rail"), 1e-9)
	assert.InDelta(t, 15, cfg.Rail.CameraOffset.Z, 1e-9)
	assert.InDelta(t, 30, cfg.Player.MaxSpeed, 1e-9)
	assert.InDelta(t, 300, cfg.Player.BulletSpeed, 1e-9)
	assert.InDelta(t, 300, cfg.Player.Bounds.Z, 1e-9)
	assert.InDelta(t, 100, cfg.Enemy.Speed, 1e-9)
	assert.InDelta(t, 1, cfg.Enemy.SpawnInterval, 1e-9)
	assert.Equal(t, SpawnPatternRandom, cfg.Enemy.SpawnPattern)
	assert.Positive(t, cfg.Bullet.Collider.Sweep)
	assert.Positive(t, cfg.Explosion.TTLSeconds)
}

func TestFollowerSpeedFallback(t *testing.T) {
	spec := RailSpec{Followers: map[string]FollowerSpec{"slow": {Speed: 5}, "broken": {Speed: -1}}}

	assert.InDelta(t, 5, spec.FollowerSpeed("slow"), 1e-9)
	assert.InDelta(t, nav.DefaultRailSpeed, spec.FollowerSpeed("broken"), 1e-9)
	assert.InDelta(t, nav.DefaultRailSpeed, spec.FollowerSpeed("missing"), 1e-9)
}

func TestLoadSpecMissing(t *testing.T) {
	_, err := LoadSpec[RailSpec]("does_not_exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does_not_exist.yaml")
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "rail.yaml", cleanPrefabPath("prefabs/rail.yaml"))
	assert.Equal(t, "rail.yaml", cleanPrefabPath("rail.yaml"))
	assert.Equal(t, "", cleanPrefabPath(""))
}

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rail.yaml"), []byte("name: rail\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "rail.yaml", filepath.Base(name))
	case <-time.After(5 * time.Second):
		t.Fatal("no watcher event for rail.yaml")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Empty(t, w.Pending())
}
