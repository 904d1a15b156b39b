package dictionary

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// FilterFunc returns true when a forward-lookup hit for (key, value) must
// be suppressed, even though some child dictionary holds it.
type FilterFunc func(key Key, value string) bool

// Found pairs a translation text with the keys that currently produce it
// under collection precedence.
type Found struct {
	Text string
	Keys KeySet
}

// Collection is an ordered, priority-ranked list of Single dictionaries:
// index 0 is highest priority. It aggregates their longest-key lengths and
// layers override semantics onto reverse lookups.
type Collection struct {
	dicts     []*Single
	filters   []FilterFunc
	wiring    map[*Single]ListenerHandle
	listeners map[ListenerHandle]LongestKeyFunc

	longestKey int
}

// NewCollection returns a Collection holding dicts in priority order
// (index 0 highest).
func NewCollection(dicts ...*Single) *Collection {
	c := &Collection{
		wiring:    make(map[*Single]ListenerHandle),
		listeners: make(map[ListenerHandle]LongestKeyFunc),
	}
	c.SetDicts(dicts)
	return c
}

// SetDicts replaces the collection's dictionaries wholesale, unwiring the
// old children's longest-key listeners and wiring the new ones. This is a
// one-way "child notifies parent" relationship: dictionaries never hold a
// reference back to any collection they're a member of.
func (c *Collection) SetDicts(dicts []*Single) {
	for _, d := range c.dicts {
		if h, ok := c.wiring[d]; ok {
			d.RemoveLongestKeyListener(h)
			delete(c.wiring, d)
		}
	}
	c.dicts = append([]*Single(nil), dicts...)
	for _, d := range c.dicts {
		c.wiring[d] = d.AddLongestKeyListener(func(int) { c.recomputeLongestKey() })
	}
	c.recomputeLongestKey()
}

// Dicts returns the collection's dictionaries in priority order. Callers
// must not mutate the returned slice.
func (c *Collection) Dicts() []*Single { return c.dicts }

func (c *Collection) recomputeLongestKey() {
	longest := 0
	for _, d := range c.dicts {
		if d.Enabled && d.LongestKey() > longest {
			longest = d.LongestKey()
		}
	}
	if longest == c.longestKey {
		return
	}
	c.longestKey = longest
	for _, cb := range c.listeners {
		cb(longest)
	}
}

// LongestKey returns the max LongestKey over enabled children, or 0.
func (c *Collection) LongestKey() int { return c.longestKey }

// AddLongestKeyListener registers callback for collection-level longest-key
// changes and returns a handle for removal.
func (c *Collection) AddLongestKeyListener(callback LongestKeyFunc) ListenerHandle {
	h := ListenerHandle(uuid.New())
	c.listeners[h] = callback
	return h
}

// RemoveLongestKeyListener deregisters a listener added with
// AddLongestKeyListener.
func (c *Collection) RemoveLongestKeyListener(h ListenerHandle) {
	delete(c.listeners, h)
}

// AddFilter registers a filter predicate consulted by Lookup.
func (c *Collection) AddFilter(f FilterFunc) { c.filters = append(c.filters, f) }

// Lookup performs a forward lookup in priority order. It returns the first
// hit from an enabled dictionary, "", false if nothing matched, or "",
// false immediately — without trying lower-priority dictionaries — if any
// filter rejects the matching (key, value) pair.
func (c *Collection) Lookup(key Key) (string, bool) {
	for _, d := range c.dicts {
		if !d.Enabled {
			continue
		}
		value, ok := d.Get(key)
		if !ok {
			continue
		}
		for _, f := range c.filters {
			if f(key, value) {
				return "", false
			}
		}
		return value, true
	}
	return "", false
}

// RawLookup is Lookup without filter consultation.
func (c *Collection) RawLookup(key Key) (string, bool) {
	for _, d := range c.dicts {
		if !d.Enabled {
			continue
		}
		if value, ok := d.Get(key); ok {
			return value, true
		}
	}
	return "", false
}

// ReverseLookup returns the set of keys that actually produce text under
// current precedence. Children are visited from lowest to highest
// priority; at each step, any key already accumulated that also exists in
// the current (higher-priority) child is dropped first, since a
// higher-priority dictionary redefining that same key makes the
// lower-priority key unreachable from a forward Lookup.
func (c *Collection) ReverseLookup(text string) KeySet {
	keys := make(KeySet)
	for i := len(c.dicts) - 1; i >= 0; i-- {
		d := c.dicts[i]
		if !d.Enabled {
			continue
		}
		if len(keys) > 0 {
			for k := range keys {
				if d.Has(k) {
					delete(keys, k)
				}
			}
		}
		for k := range d.ReverseLookup(text) {
			keys.Add(k)
		}
	}
	return keys
}

func (c *Collection) multiReverseLookup(values []string, maxCount int) []Found {
	sorted := append([]string(nil), values...)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i]) < strings.ToLower(sorted[j])
	})

	var out []Found
	var prev string
	havePrev := false
	for _, v := range sorted {
		if havePrev && v == prev {
			continue
		}
		havePrev, prev = true, v
		keys := c.ReverseLookup(v)
		if len(keys) == 0 {
			continue
		}
		out = append(out, Found{Text: v, Keys: keys})
		if maxCount > 0 && len(out) >= maxCount {
			break
		}
	}
	return out
}

// FindSimilar returns every translation case-insensitively equal to value
// across enabled dictionaries, paired with the keys that produce it.
func (c *Collection) FindSimilar(value string) []Found {
	var texts []string
	for _, d := range c.dicts {
		if d.Enabled {
			texts = append(texts, d.SimilarReverseLookup(value)...)
		}
	}
	return c.multiReverseLookup(texts, 0)
}

// FindPartial returns every translation having pattern as a
// case-insensitive prefix across enabled dictionaries, paired with the
// keys that produce it, up to count results (count <= 0 means unlimited).
func (c *Collection) FindPartial(pattern string, count int) []Found {
	var texts []string
	for _, d := range c.dicts {
		if d.Enabled {
			texts = append(texts, d.PartialReverseLookup(pattern, count)...)
		}
	}
	return c.multiReverseLookup(texts, count)
}

// FindRegex returns every translation matching pattern across enabled
// dictionaries, paired with the keys that produce it, up to count results
// (count <= 0 means unlimited).
func (c *Collection) FindRegex(pattern string, count int) ([]Found, error) {
	var texts []string
	for _, d := range c.dicts {
		if !d.Enabled {
			continue
		}
		hits, err := d.RegexReverseLookup(pattern, count)
		if err != nil {
			return nil, err
		}
		texts = append(texts, hits...)
	}
	return c.multiReverseLookup(texts, count), nil
}

// FirstWritable returns the highest-priority non-readonly dictionary, or
// ErrNoWritableDictionary if none exists.
func (c *Collection) FirstWritable() (*Single, error) {
	for _, d := range c.dicts {
		if !d.Readonly {
			return d, nil
		}
	}
	return nil, ErrNoWritableDictionary
}

// ByPath returns the dictionary registered under path, or
// ErrUnknownPath.
func (c *Collection) ByPath(path string) (*Single, error) {
	for _, d := range c.dicts {
		if d.Path == path {
			return d, nil
		}
	}
	return nil, ErrUnknownPath
}

// Set writes key/text into the dictionary identified by path, or into the
// highest-priority writable dictionary if path is "".
func (c *Collection) Set(key Key, text string, path string) error {
	var d *Single
	var err error
	if path == "" {
		d, err = c.FirstWritable()
	} else {
		d, err = c.ByPath(path)
	}
	if err != nil {
		return err
	}
	return d.Set(key, text)
}
