package dictionary

import "strings"

const keySep = "\x1f"

// Key is a dictionary key: an outline, i.e. an ordered sequence of stroke
// RTFCRE forms, joined on a separator byte that never appears in RTFCRE
// text. Keys are comparable, so they can be used directly as Go map keys
// and set elements without a wrapper slice type.
type Key string

// NewKey joins one or more stroke RTFCRE strings into a Key.
func NewKey(strokes ...string) Key {
	return Key(strings.Join(strokes, keySep))
}

// Strokes splits the Key back into its stroke RTFCRE strings.
func (k Key) Strokes() []string {
	if k == "" {
		return nil
	}
	return strings.Split(string(k), keySep)
}

// Len reports the number of strokes this Key spans.
func (k Key) Len() int {
	if k == "" {
		return 0
	}
	return strings.Count(string(k), keySep) + 1
}

// KeySet is a set of Keys, used wherever the spec calls for "a set of
// stroke-tuples".
type KeySet map[Key]struct{}

// NewKeySet builds a KeySet from the given keys.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts k into the set.
func (s KeySet) Add(k Key) { s[k] = struct{}{} }

// Remove deletes k from the set, if present.
func (s KeySet) Remove(k Key) { delete(s, k) }

// Has reports whether k is a member.
func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Union returns a new set containing every key in s and other.
func (s KeySet) Union(other KeySet) KeySet {
	out := make(KeySet, len(s)+len(other))
	for k := range s {
		out[k] = struct{}{}
	}
	for k := range other {
		out[k] = struct{}{}
	}
	return out
}

// Slice returns the set's members in unspecified order.
func (s KeySet) Slice() []Key {
	out := make([]Key, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}
