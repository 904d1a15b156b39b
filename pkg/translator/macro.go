package translator

import (
	"errors"
	"strings"

	"github.com/stenoforge/steno-translate/pkg/steno"
)

// ErrMissingMacro is returned when a stroke's mapping dispatches to a
// macro name that has no registered implementation. The stroke's side
// effects are rolled back: nothing has been appended to the translator's
// state yet when this is returned.
var ErrMissingMacro = errors.New("translator: macro not registered")

// MacroFunc is a named command that mutates a Translator. It receives the
// stroke that triggered it and, for "=name:cmdline" style mappings, the
// text after the colon.
type MacroFunc func(t *Translator, stroke steno.Stroke, cmdline string) error

// MacroRegistry resolves macro names to their implementations, the
// "macro dispatch" collaborator named in the spec.
type MacroRegistry struct {
	macros map[string]MacroFunc
}

// NewMacroRegistry returns a registry with the "undo" builtin already
// registered. The four legacy aliases below resolve to plain names that
// the embedder is expected to register; looking one up before it's
// registered returns ErrMissingMacro, same as any other unknown macro.
func NewMacroRegistry() *MacroRegistry {
	r := &MacroRegistry{macros: make(map[string]MacroFunc)}
	r.Register("undo", undoMacro)
	return r
}

// Register installs fn under name, overwriting any previous registration.
func (r *MacroRegistry) Register(name string, fn MacroFunc) {
	r.macros[name] = fn
}

// Get resolves name to its MacroFunc, or ErrMissingMacro if unregistered.
func (r *MacroRegistry) Get(name string) (MacroFunc, error) {
	fn, ok := r.macros[name]
	if !ok {
		return nil, ErrMissingMacro
	}
	return fn, nil
}

// legacyMacroAliases are the historical literal mapping strings that
// dispatch to a named macro instead of being treated as translation text.
var legacyMacroAliases = map[string]string{
	"{*}":  "retrospective_toggle_asterisk",
	"{*!}": "retrospective_delete_space",
	"{*?}": "retrospective_insert_space",
	"{*+}": "repeat_last_stroke",
}

type macroCall struct {
	name    string
	cmdline string
}

// mappingToMacro inspects a single-stroke lookup result and reports
// whether it dispatches to a macro, and which one.
func mappingToMacro(mapping string, hasMapping bool, stroke steno.Stroke) (macroCall, bool) {
	if !hasMapping {
		if stroke.IsCorrection() {
			return macroCall{name: "undo"}, true
		}
		return macroCall{}, false
	}
	if name, ok := legacyMacroAliases[mapping]; ok {
		return macroCall{name: name}, true
	}
	if strings.HasPrefix(mapping, "=") && len(mapping) > 1 {
		name, cmdline, _ := strings.Cut(mapping[1:], ":")
		return macroCall{name: name, cmdline: cmdline}, true
	}
	return macroCall{}, false
}

// undoMacro implements the built-in "undo" command: pop the newest record
// whose HasUndo is true — discarding any non-undoable records found on top
// of it along the way — queue it for emission as an undo, and restore
// whatever it had replaced.
func undoMacro(t *Translator, _ steno.Stroke, _ string) error {
	for len(t.state.Translations) > 0 {
		last := t.state.Translations[len(t.state.Translations)-1]
		t.Undo(last)
		if last.HasUndo() {
			t.Do(last.Replaced...)
			return nil
		}
	}
	return nil
}
