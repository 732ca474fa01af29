package desktop

import (
	"container/list"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 64

type cachedTexture struct {
	key     string
	texture *sdl.Texture
}

// TextureCache keeps the most recently drawn text textures so unchanged labels
// are not rasterized every frame. Evicted textures are destroyed.
type TextureCache struct {
	entries map[string]*list.Element
	lru     *list.List // front is most recently used
	maxSize int
}

func NewTextureCache(maxSize int) *TextureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &TextureCache{
		entries: make(map[string]*list.Element),
		lru:     list.New(),
		maxSize: maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	el, ok := c.entries[key]
	if !ok {
		return nil
	}
	c.lru.MoveToFront(el)
	return el.Value.(*cachedTexture).texture
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cachedTexture)
		if entry.texture != texture {
			entry.texture.Destroy()
			entry.texture = texture
		}
		c.lru.MoveToFront(el)
		return
	}

	for c.lru.Len() >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = c.lru.PushFront(&cachedTexture{key: key, texture: texture})
}

func (c *TextureCache) Len() int {
	return c.lru.Len()
}

func (c *TextureCache) evictOldest() {
	el := c.lru.Back()
	if el == nil {
		return
	}
	entry := c.lru.Remove(el).(*cachedTexture)
	delete(c.entries, entry.key)
	entry.texture.Destroy()
}

func (c *TextureCache) Destroy() {
	for c.lru.Len() > 0 {
		c.evictOldest()
	}
}
