// Package dictionary implements the prioritized stroke-key to translation
// lookup structures the translator relies on: a single mapping with a
// reverse index, and an ordered, precedence-aware collection of them.
package dictionary

import (
	"time"

	"github.com/google/uuid"
)

// LongestKeyFunc is invoked with the new longest-key length whenever it
// changes.
type LongestKeyFunc func(newLongest int)

// ListenerHandle identifies a registered LongestKeyFunc for later removal.
// Using an opaque handle instead of comparing function values keeps
// registration independent of closures being individually comparable.
type ListenerHandle uuid.UUID

// KV is one key/value pair, used by BulkUpdate.
type KV struct {
	Key  Key
	Text string
}

// Single is a mapping from stroke-tuple keys to translation text, with a
// reverse index from text back to keys and longest-key change
// notification. It owns a plain map rather than embedding/subclassing one,
// so every mutating entry point can enforce the readonly invariant instead
// of requiring every built-in mutator to be overridden and forbidden.
type Single struct {
	forward    map[Key]string
	reverse    *reverseIndex
	longestKey int
	listeners  map[ListenerHandle]LongestKeyFunc

	Enabled  bool
	Readonly bool
	Path     string
	// Timestamp is the last-known modification time, maintained by the
	// caller for detecting external changes; the core never reads it.
	Timestamp time.Time
}

// New returns an empty, enabled, writable Single dictionary identified by
// path.
func New(path string) *Single {
	return &Single{
		forward:   make(map[Key]string),
		reverse:   newReverseIndex(),
		listeners: make(map[ListenerHandle]LongestKeyFunc),
		Enabled:   true,
		Path:      path,
	}
}

// LongestKey returns the length, in strokes, of the longest key currently
// present.
func (d *Single) LongestKey() int { return d.longestKey }

// AddLongestKeyListener registers callback to be invoked whenever
// LongestKey changes, and returns a handle for RemoveLongestKeyListener.
func (d *Single) AddLongestKeyListener(callback LongestKeyFunc) ListenerHandle {
	h := ListenerHandle(uuid.New())
	d.listeners[h] = callback
	return h
}

// RemoveLongestKeyListener deregisters a listener previously added with
// AddLongestKeyListener. Removing an unknown handle is a no-op.
func (d *Single) RemoveLongestKeyListener(h ListenerHandle) {
	delete(d.listeners, h)
}

func (d *Single) setLongestKey(n int) {
	if n == d.longestKey {
		return
	}
	d.longestKey = n
	for _, cb := range d.listeners {
		cb(n)
	}
}

// Get returns the translation for key, or "", false if absent.
func (d *Single) Get(key Key) (string, bool) {
	text, ok := d.forward[key]
	return text, ok
}

// Has reports whether key is present.
func (d *Single) Has(key Key) bool {
	_, ok := d.forward[key]
	return ok
}

// Len reports the number of keys in the dictionary.
func (d *Single) Len() int { return len(d.forward) }

// Set maps key to text, failing with ErrReadonly if the dictionary is
// readonly. If key already held a different value, the old reverse-index
// entry is removed first.
func (d *Single) Set(key Key, text string) error {
	if d.Readonly {
		return ErrReadonly
	}
	if old, ok := d.forward[key]; ok {
		d.reverse.removeKey(old, key)
	} else if key.Len() > d.longestKey {
		d.setLongestKey(key.Len())
	}
	d.forward[key] = text
	d.reverse.appendKey(text, key)
	return nil
}

// Delete removes key, failing with ErrReadonly if the dictionary is
// readonly. Deleting an absent key is a no-op.
func (d *Single) Delete(key Key) error {
	if d.Readonly {
		return ErrReadonly
	}
	text, ok := d.forward[key]
	if !ok {
		return nil
	}
	delete(d.forward, key)
	d.reverse.removeKey(text, key)
	if key.Len() == d.longestKey {
		d.recalculateLongestKey()
	}
	return nil
}

func (d *Single) recalculateLongestKey() {
	longest := 0
	for key := range d.forward {
		if n := key.Len(); n > longest {
			longest = n
		}
	}
	d.setLongestKey(longest)
}

// BulkUpdate applies every pair to the dictionary. If the dictionary is
// currently empty, all pairs are loaded in one pass and the reverse index
// and longest-key length are rebuilt afterward; otherwise each pair is
// applied one at a time via Set, so callers relying on per-key override
// semantics on a non-empty dictionary still get them.
func (d *Single) BulkUpdate(pairs []KV) error {
	if d.Readonly {
		return ErrReadonly
	}
	if len(d.forward) == 0 {
		longest := 0
		for _, kv := range pairs {
			d.forward[kv.Key] = kv.Text
			if n := kv.Key.Len(); n > longest {
				longest = n
			}
		}
		d.reverse.matchForward(d.forward)
		d.setLongestKey(longest)
		return nil
	}
	for _, kv := range pairs {
		if err := d.Set(kv.Key, kv.Text); err != nil {
			return err
		}
	}
	return nil
}

// Clear empties the dictionary and resets LongestKey to 0.
func (d *Single) Clear() error {
	if d.Readonly {
		return ErrReadonly
	}
	d.forward = make(map[Key]string)
	d.reverse.clear()
	d.setLongestKey(0)
	return nil
}

// ReverseLookup returns the exact set of keys that produce text.
func (d *Single) ReverseLookup(text string) KeySet {
	return d.reverse.exact(text)
}

// SimilarReverseLookup returns every translation text that is
// case-insensitively equal to text.
func (d *Single) SimilarReverseLookup(text string) []string {
	return d.reverse.similar(text)
}

// PartialReverseLookup returns every translation text having prefix as a
// case-insensitive prefix, up to max results (max <= 0 means unlimited).
func (d *Single) PartialReverseLookup(prefix string, max int) []string {
	return d.reverse.partial(prefix, max)
}

// RegexReverseLookup returns every translation text matching pattern, up
// to max results (max <= 0 means unlimited).
func (d *Single) RegexReverseLookup(pattern string, max int) ([]string, error) {
	return d.reverse.regex(pattern, max)
}
