package orthography

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// CachedJoiner wraps a Joiner with a bounded LRU so a search/preview UI can
// call AddSuffix on every keystroke without re-running the orthography
// rules each time, while concurrent callers asking for the same
// (word, suffix) pair are coalesced into a single computation. The
// Translator itself never needs this — it is for callers outside the
// single-threaded core, such as a dictionary editor's live preview.
type CachedJoiner struct {
	joiner *Joiner
	cache  *lru.Cache[string, string]
	group  singleflight.Group
}

// NewCached wraps joiner with an LRU of the given size. size <= 0 falls
// back to a sane default.
func NewCached(joiner *Joiner, size int) (*CachedJoiner, error) {
	if size <= 0 {
		size = 4096
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedJoiner{joiner: joiner, cache: cache}, nil
}

// AddSuffix returns the cached result for (word, suffix) if present,
// otherwise computes it once (deduplicating concurrent identical requests)
// and caches the result.
func (c *CachedJoiner) AddSuffix(word, suffix string) string {
	key := word + "\x00" + suffix
	if v, ok := c.cache.Get(key); ok {
		return v
	}
	v, _, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.cache.Get(key); ok {
			return v, nil
		}
		result := c.joiner.AddSuffix(word, suffix)
		c.cache.Add(key, result)
		return result, nil
	})
	return v.(string)
}

// Purge drops every cached entry, e.g. after the wordlist is reloaded.
func (c *CachedJoiner) Purge() {
	c.cache.Purge()
}
