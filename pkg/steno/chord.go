package steno

import "strings"

// Chord is a reference Stroke implementation good enough for tests and the
// demo binary. Real front ends (Plover itself, a hardware machine driver)
// would supply their own Stroke type; the engine never requires this one.
type Chord struct {
	rtfcre       string
	keys         []string
	isCorrection bool
}

// NewChord builds a Chord directly from its RTFCRE text and key set. Use
// ChordFactory.FromKeys when only the key set is known.
func NewChord(rtfcre string, keys []string, isCorrection bool) Chord {
	return Chord{rtfcre: rtfcre, keys: keys, isCorrection: isCorrection}
}

func (c Chord) RTFCRE() string         { return c.rtfcre }
func (c Chord) StenoKeys() []string    { return c.keys }
func (c Chord) IsCorrection() bool     { return c.isCorrection }
func (c Chord) String() string         { return c.rtfcre }

// ChordFactory builds Chords from key sets using a System's key ordering,
// mirroring the reference source's Stroke(keys) constructor closely enough
// to exercise affix folding in tests.
type ChordFactory struct {
	sys *System
}

// NewChordFactory returns a Factory bound to sys's key order and implicit
// hyphen rules.
func NewChordFactory(sys *System) ChordFactory {
	return ChordFactory{sys: sys}
}

func (f ChordFactory) FromKeys(keys []string) Stroke {
	ordered := make([]string, len(keys))
	copy(ordered, keys)
	order := f.sys.KeyOrder
	sortByOrder(ordered, order)

	var hasVowel bool
	var b strings.Builder
	needHyphen := false
	hyphenInserted := false
	for _, k := range ordered {
		_, bank := splitKeyName(k)
		if bank == 0 {
			hasVowel = true
		}
	}
	for _, k := range ordered {
		letter, bank := splitKeyName(k)
		if bank > 0 && !hasVowel && !hyphenInserted {
			if _, implicit := f.sys.ImplicitHyphenKeys[k]; !implicit {
				needHyphen = true
			}
		}
		if needHyphen && !hyphenInserted {
			b.WriteByte('-')
			hyphenInserted = true
			needHyphen = false
		}
		b.WriteString(letter)
	}
	return NewChord(b.String(), append([]string(nil), keys...), false)
}

// splitKeyName strips the bank-indicating hyphen from a key name and
// reports which bank the key belongs to: -1 left, 0 vowel/center, 1 right.
func splitKeyName(key string) (letter string, bank int) {
	switch {
	case strings.HasSuffix(key, "-"):
		return strings.TrimSuffix(key, "-"), -1
	case strings.HasPrefix(key, "-"):
		return strings.TrimPrefix(key, "-"), 1
	default:
		return key, 0
	}
}

func sortByOrder(keys []string, order KeyOrder) {
	// Small fixed alphabets (steno layouts rarely exceed ~42 keys):
	// insertion sort keeps this allocation-free and stable.
	for i := 1; i < len(keys); i++ {
		j := i
		for j > 0 && order.Ordinal(keys[j-1]) > order.Ordinal(keys[j]) {
			keys[j-1], keys[j] = keys[j], keys[j-1]
			j--
		}
	}
}
