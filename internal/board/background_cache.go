package board

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// backgroundCacheSize bounds how many pre-rendered pitch backgrounds are
// kept alive. Each entry is a full-surface image, so the bound matters:
// a window being resized produces a new entry per size.
const backgroundCacheSize = 10

// backgroundKey identifies one pre-rendered background. Width and height
// are backing-surface pixels, so a device-scale change produces a new key
// just like a resize does.
type backgroundKey struct {
	W, H int
	View ViewMode
	Game GameType
}

// backgroundCache is an LRU of rendered pitch backgrounds. It is only
// touched from the game goroutine, so it carries no lock of its own.
type backgroundCache struct {
	lru *lru.Cache[backgroundKey, *ebiten.Image]
	log *slog.Logger
}

func newBackgroundCache(log *slog.Logger) *backgroundCache {
	c := &backgroundCache{log: log}
	// Evicted backgrounds are deallocated eagerly rather than waiting for
	// the finalizer; they are the largest images the board ever holds.
	cache, err := lru.NewWithEvict[backgroundKey, *ebiten.Image](backgroundCacheSize, func(k backgroundKey, img *ebiten.Image) {
		if img != nil {
			img.Deallocate()
		}
		c.log.Debug("background evicted", "w", k.W, "h", k.H, "view", k.View.String(), "game", k.Game.String())
	})
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic("board: background cache: " + err.Error())
	}
	c.lru = cache
	return c
}

// getOrRender returns the cached background for key, rendering and
// inserting it on a miss. A hit refreshes the entry's recency.
func (c *backgroundCache) getOrRender(key backgroundKey, render func() *ebiten.Image) *ebiten.Image {
	if img, ok := c.lru.Get(key); ok {
		return img
	}
	img := render()
	c.lru.Add(key, img)
	return img
}

// purge drops every entry. Called when the application resumes from a
// backgrounded state, where cached surfaces may no longer be valid.
func (c *backgroundCache) purge() {
	n := c.lru.Len()
	c.lru.Purge()
	if n > 0 {
		c.log.Debug("background cache purged", "entries", n)
	}
}

func (c *backgroundCache) len() int { return c.lru.Len() }
