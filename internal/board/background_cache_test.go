package board

import (
	"io"
	"log/slog"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// The render callbacks return nil so these tests never allocate GPU
// images; the cache stores and recalls nil entries just the same.
func countingRender(n *int) func() *ebiten.Image {
	return func() *ebiten.Image {
		*n++
		return nil
	}
}

func TestBackgroundCacheRendersOncePerKey(t *testing.T) {
	c := newBackgroundCache(quietLogger())
	renders := 0
	key := backgroundKey{W: 640, H: 360, View: ViewNormal, Game: GameSoccer}
	for i := 0; i < 3; i++ {
		c.getOrRender(key, countingRender(&renders))
	}
	if renders != 1 {
		t.Fatalf("expected 1 render for a repeated key, got %d", renders)
	}
}

func TestBackgroundCacheEvictsOldest(t *testing.T) {
	c := newBackgroundCache(quietLogger())
	renders := 0
	key := func(i int) backgroundKey {
		return backgroundKey{W: 100 + i, H: 100, View: ViewNormal, Game: GameSoccer}
	}
	for i := 0; i <= backgroundCacheSize; i++ {
		c.getOrRender(key(i), countingRender(&renders))
	}
	if renders != backgroundCacheSize+1 {
		t.Fatalf("expected %d initial renders, got %d", backgroundCacheSize+1, renders)
	}
	if c.len() != backgroundCacheSize {
		t.Fatalf("cache should hold %d entries, has %d", backgroundCacheSize, c.len())
	}
	// The first key was least recently used and must have been dropped.
	c.getOrRender(key(0), countingRender(&renders))
	if renders != backgroundCacheSize+2 {
		t.Fatalf("evicted key should render again, render count %d", renders)
	}
}

func TestBackgroundCacheHitRefreshesRecency(t *testing.T) {
	c := newBackgroundCache(quietLogger())
	renders := 0
	key := func(i int) backgroundKey {
		return backgroundKey{W: 100 + i, H: 100, View: ViewNormal, Game: GameSoccer}
	}
	for i := 0; i < backgroundCacheSize; i++ {
		c.getOrRender(key(i), countingRender(&renders))
	}
	// Touch the oldest entry, then overflow: the second oldest goes.
	c.getOrRender(key(0), countingRender(&renders))
	c.getOrRender(key(backgroundCacheSize), countingRender(&renders))

	before := renders
	c.getOrRender(key(0), countingRender(&renders))
	if renders != before {
		t.Fatal("recently touched key should have survived the overflow")
	}
	c.getOrRender(key(1), countingRender(&renders))
	if renders != before+1 {
		t.Fatal("untouched oldest key should have been evicted")
	}
}

func TestBackgroundCacheKeysAreIndependent(t *testing.T) {
	c := newBackgroundCache(quietLogger())
	renders := 0
	keys := []backgroundKey{
		{W: 640, H: 360, View: ViewNormal, Game: GameSoccer},
		{W: 640, H: 360, View: ViewTactics, Game: GameSoccer},
		{W: 640, H: 360, View: ViewNormal, Game: GameFutsal},
		{W: 640, H: 360, View: ViewTactics, Game: GameFutsal},
		{W: 641, H: 360, View: ViewNormal, Game: GameSoccer},
	}
	for _, k := range keys {
		c.getOrRender(k, countingRender(&renders))
	}
	if renders != len(keys) {
		t.Fatalf("expected one render per distinct key, got %d for %d keys", renders, len(keys))
	}
	for _, k := range keys {
		c.getOrRender(k, countingRender(&renders))
	}
	if renders != len(keys) {
		t.Fatalf("repeat lookups should all hit, render count %d", renders)
	}
}

func TestBackgroundCachePurge(t *testing.T) {
	c := newBackgroundCache(quietLogger())
	renders := 0
	key := backgroundKey{W: 640, H: 360, View: ViewNormal, Game: GameSoccer}
	c.getOrRender(key, countingRender(&renders))
	c.purge()
	if c.len() != 0 {
		t.Fatalf("purge should empty the cache, %d entries left", c.len())
	}
	c.getOrRender(key, countingRender(&renders))
	if renders != 2 {
		t.Fatalf("purged key should render again, render count %d", renders)
	}
}
