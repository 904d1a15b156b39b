package dictionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrTrailingJSON is returned by LoadJSON when a dictionary file holds more
// than one JSON value.
var ErrTrailingJSON = errors.New("dictionary: trailing data after JSON object")

// LoadJSON reads a dictionary file in the on-disk JSON format: a single
// object mapping an RTFCRE outline (strokes separated by "/") to its
// translation text. Unknown top-level shapes and trailing data are
// rejected so a malformed file fails fast at load time instead of handing
// back a silently-partial dictionary.
func LoadJSON(path string) (*Single, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()
	d, err := ParseJSON(f)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	d.Path = path
	return d, nil
}

// ParseJSON is the io.Reader-based core of LoadJSON.
func ParseJSON(r io.Reader) (*Single, error) {
	raw := make(map[string]string)
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, ErrTrailingJSON
	}

	d := New("")
	pairs := make([]KV, 0, len(raw))
	for outline, text := range raw {
		pairs = append(pairs, KV{Key: outlineToKey(outline), Text: text})
	}
	if err := d.BulkUpdate(pairs); err != nil {
		return nil, err
	}
	return d, nil
}

// SaveJSON writes d's contents to path in the same format LoadJSON reads,
// sorted by outline for a stable, diff-friendly file.
func SaveJSON(d *Single, path string) error {
	buf, err := MarshalJSON(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write dictionary %s: %w", path, err)
	}
	return nil
}

// MarshalJSON renders d in the on-disk JSON format.
func MarshalJSON(d *Single) ([]byte, error) {
	raw := make(map[string]string, d.Len())
	for key, text := range d.forward {
		raw[keyToOutline(key)] = text
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const outlineSep = "/"

func outlineToKey(outline string) Key {
	return NewKey(strings.Split(outline, outlineSep)...)
}

func keyToOutline(k Key) string {
	return strings.Join(k.Strokes(), outlineSep)
}
