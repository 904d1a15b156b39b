// Package translator implements the core translation state machine: it
// turns a stream of steno strokes into a stream of TranslationRecords by
// greedy longest-match lookup over a dictionary.Collection, retroactively
// replacing earlier records as later strokes refine the match.
package translator

import (
	"github.com/stenoforge/steno-translate/pkg/dictionary"
	"github.com/stenoforge/steno-translate/pkg/steno"
)

// Annotation is one piece of formatter state attached to a Record. The
// core treats formatting as an opaque black box except for the two facts
// HasUndo needs: whether anything was actually emitted, and whether a
// backspace-replace command was issued.
type Annotation interface {
	EmittedText() string
	IsBackspaceReplace() bool
}

// Record is one step of translator output: the strokes that produced it,
// its text (if any), and the records it retroactively replaced.
type Record struct {
	// Strokes is the non-empty, ordered sequence of strokes this record
	// was produced from.
	Strokes []steno.Stroke
	// Key is the canonical dictionary key: the RTFCRE form of every
	// stroke in Strokes, in order.
	Key dictionary.Key
	// Text is the translation text. HasText is false when there is no
	// mapping, meaning downstream formatting should show raw steno.
	Text    string
	HasText bool
	// Replaced is the ordered sequence of records this one retroactively
	// replaced. If this record is itself undone, Replaced is restored in
	// its place.
	Replaced []*Record
	// Formatting is opaque annotation state attached by a downstream
	// formatter.
	Formatting []Annotation
	// IsRetrospectiveCommand marks records produced by certain macros for
	// special handling by the undo chord; the core only carries the flag.
	IsRetrospectiveCommand bool
}

// NewRecord builds a Record from the strokes that produced it and its
// mapping, if any.
func NewRecord(strokes []steno.Stroke, text string, hasText bool) *Record {
	rtfcre := make([]string, len(strokes))
	for i, s := range strokes {
		rtfcre[i] = s.RTFCRE()
	}
	return &Record{
		Strokes: strokes,
		Key:     dictionary.NewKey(rtfcre...),
		Text:    text,
		HasText: hasText,
	}
}

// StrokeCount is the number of strokes this record spans.
func (r *Record) StrokeCount() int { return len(r.Strokes) }

// DisplayText returns Text with any literal control characters and
// backslash-escape sequences escaped, safe to print or log on a single
// line. UnescapeText reverses it for a caller reading a displayed record
// back in, such as a session log replay.
func (r *Record) DisplayText() string { return EscapeText(r.Text) }

// HasUndo reports whether this record may be safely undone: it hasn't been
// seen by a formatter yet, it displaced earlier records that must be
// restored, or a formatter annotation shows it actually emitted text or a
// backspace-replace command. A record for which none of these hold is a
// pure no-op and undoing it would mis-target earlier text.
func (r *Record) HasUndo() bool {
	if len(r.Formatting) == 0 {
		return true
	}
	if len(r.Replaced) > 0 {
		return true
	}
	for _, a := range r.Formatting {
		if a.EmittedText() != "" || a.IsBackspaceReplace() {
			return true
		}
	}
	return false
}
