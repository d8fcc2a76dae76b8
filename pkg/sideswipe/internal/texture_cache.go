package internal

import "github.com/veandco/go-sdl2/sdl"

// Action buttons re-render the same label and icon textures every frame
// while a side is open, so a small LRU cache is enough.
const defaultTextureCacheSize = 16

// TextureCache is a least-recently-used cache of SDL textures keyed by
// string. Evicted textures are destroyed.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, defaultTextureCacheSize),
		maxSize:  defaultTextureCacheSize,
	}
}

// GetOrCreate returns the cached texture for key, calling create on a miss.
// A nil texture returned by create is not cached.
func (c *TextureCache) GetOrCreate(key string, create func() *sdl.Texture) *sdl.Texture {
	if texture, ok := c.textures[key]; ok {
		c.touch(key)
		return texture
	}

	texture := create()
	if texture == nil {
		return nil
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = texture
	c.order = append(c.order, key)
	return texture
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if texture, ok := c.textures[oldest]; ok {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

// Destroy releases every cached texture.
func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
