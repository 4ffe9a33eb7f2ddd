package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores rendered effects so repeated cues skip synthesis
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [soundCount]*beep.Buffer
}

func newSoundCache(format beep.Format) *soundCache {
	return &soundCache{format: format}
}

// get returns a fresh streamer over the cached buffer, rendering it on first use
func (c *soundCache) get(st SoundType, build func() beep.Streamer) beep.Streamer {
	if st < 0 || st >= soundCount {
		return build()
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()

	if buf == nil {
		c.mu.Lock()
		if buf = c.store[st]; buf == nil {
			buf = beep.NewBuffer(c.format)
			buf.Append(build())
			c.store[st] = buf
		}
		c.mu.Unlock()
	}
	return buf.Streamer(0, buf.Len())
}
