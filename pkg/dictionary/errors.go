package dictionary

import "errors"

var (
	// ErrReadonly is returned when a mutation is attempted on a readonly
	// dictionary.
	ErrReadonly = errors.New("dictionary: readonly violation")
	// ErrNoWritableDictionary is returned by Collection.Set when no path
	// is given and no child dictionary is writable.
	ErrNoWritableDictionary = errors.New("dictionary: no writable dictionary in collection")
	// ErrUnknownPath is returned when a path-qualified lookup names a
	// dictionary the collection doesn't hold.
	ErrUnknownPath = errors.New("dictionary: unknown dictionary path")
)
