// Package steno holds the collaborator contracts the translation engine
// consumes but never constructs on its own: strokes, steno key ordering and
// the other pieces of system configuration that a Plover-style front end
// would supply.
package steno

// Stroke is one simultaneously-depressed set of stenotype keys. The engine
// treats it as an opaque collaborator: it only ever reads the RTFCRE form,
// the set of keys actually pressed and the correction flag.
type Stroke interface {
	// RTFCRE is the canonical text form used as a dictionary key.
	RTFCRE() string
	// StenoKeys is the ordered list of individual key names pressed for
	// this stroke.
	StenoKeys() []string
	// IsCorrection reports whether this is the special "undo" chord
	// configured by System.UndoStrokeSteno.
	IsCorrection() bool
}

// Factory builds a Stroke from a raw set of key names. The translator uses
// this during affix folding, where a prefix or suffix key is removed from a
// stroke's key set and the remainder must be re-assembled into its RTFCRE
// form to use as a dictionary lookup key.
type Factory interface {
	FromKeys(keys []string) Stroke
}
