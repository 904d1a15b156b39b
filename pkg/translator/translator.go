package translator

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stenoforge/steno-translate/pkg/dictionary"
	"github.com/stenoforge/steno-translate/pkg/steno"
)

// ListenerFunc is invoked once per Flush with the records retracted since
// the last flush, the records newly emitted, and prev — the left context
// the newly emitted records were appended after, for a downstream
// formatter to anchor spacing/capitalization decisions on.
type ListenerFunc func(undo, do, prev []*Record)

// ListenerHandle identifies a registered ListenerFunc for later removal.
type ListenerHandle dictionary.ListenerHandle

const defaultMinUndoLength = 0

// Translator is the core state machine: it consumes one stroke at a time
// and turns it into a stream of Records by greedy longest-match lookup over
// a dictionary.Collection, retroactively replacing earlier records as later
// strokes extend the match.
type Translator struct {
	dict          *dictionary.Collection
	sys           *steno.System
	strokeFactory steno.Factory
	macros        *MacroRegistry
	log           *zap.Logger

	state         *State
	minUndoLength int

	// toUndo and toDo are the pending-emission bookkeeping a single
	// stroke's macro may touch more than once before Flush coalesces
	// everything into one listener notification. toUndo holds records
	// that were already emitted in a prior flush and must now be
	// retracted; toDo counts how many of the newest entries in
	// state.Translations have not yet been reported to listeners.
	toUndo []*Record
	toDo   int

	listeners          map[ListenerHandle]ListenerFunc
	dictListenerHandle dictionary.ListenerHandle
}

// New returns a Translator reading from dict under sys, using factory to
// rebuild strokes during affix folding and macros to dispatch non-mapping
// strokes. A nil log disables logging.
func New(dict *dictionary.Collection, sys *steno.System, factory steno.Factory, macros *MacroRegistry, log *zap.Logger) *Translator {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Translator{
		dict:          dict,
		sys:           sys,
		strokeFactory: factory,
		macros:        macros,
		log:           log,
		state:         NewState(),
		minUndoLength: defaultMinUndoLength,
		listeners:     make(map[ListenerHandle]ListenerFunc),
	}
	t.dictListenerHandle = dict.AddLongestKeyListener(func(int) { t.resizeState() })
	t.resizeState()
	return t
}

// Close unwires the Translator from its dictionary collection. Call this
// before discarding a Translator whose Collection outlives it.
func (t *Translator) Close() {
	t.dict.RemoveLongestKeyListener(t.dictListenerHandle)
}

// AddListener registers callback to be invoked after every stroke and
// returns a handle for RemoveListener.
func (t *Translator) AddListener(callback ListenerFunc) ListenerHandle {
	h := ListenerHandle(uuid.New())
	t.listeners[h] = callback
	return h
}

// RemoveListener deregisters a listener previously added with AddListener.
func (t *Translator) RemoveListener(h ListenerHandle) {
	delete(t.listeners, h)
}

// SetMinUndoLength sets the minimum number of strokes retained in state
// regardless of dictionary longest-key, so at least that many strokes can
// always be undone even against an empty dictionary.
func (t *Translator) SetMinUndoLength(n int) {
	t.minUndoLength = n
	t.resizeState()
}

func (t *Translator) horizon() int {
	longest := t.dict.LongestKey()
	if t.minUndoLength > longest {
		return t.minUndoLength
	}
	return longest
}

func (t *Translator) resizeState() {
	t.state.RestrictSize(t.horizon())
}

// Translate is the single entry point: feed one stroke, letting a macro or
// the greedy lookup mutate the pending undo/do bookkeeping, then flush
// exactly once so every registered listener sees one coalesced
// (undo, do, prev) notification for this stroke (a macro may still cause
// further notifications itself by flushing internally before returning).
func (t *Translator) Translate(stroke steno.Stroke) error {
	if err := t.translateStroke(stroke); err != nil {
		return err
	}
	t.Flush()
	return nil
}

func (t *Translator) translateStroke(stroke steno.Stroke) error {
	mapping, hasMapping := t.dict.Lookup(dictionary.NewKey(stroke.RTFCRE()))
	if call, isMacro := mappingToMacro(mapping, hasMapping, stroke); isMacro {
		fn, err := t.macros.Get(call.name)
		if err != nil {
			return err
		}
		return fn(t, stroke, call.cmdline)
	}
	record := t.findTranslation(stroke)
	t.Undo(record.Replaced...)
	t.Do(record)
	return nil
}

// Lookup looks up the exact outline formed by strokes (not yet fed to
// Translate) in the dictionary collection and reports whether it has a
// mapping. It does no affix folding, tries no shorter outlines, and leaves
// the translator's state untouched.
func (t *Translator) Lookup(strokes []steno.Stroke) (string, bool) {
	keys := make([]string, len(strokes))
	for i, s := range strokes {
		keys[i] = s.RTFCRE()
	}
	return t.dict.Lookup(dictionary.NewKey(keys...))
}

// findTranslation runs the three lookup modes in order — normal, suffix
// folding, prefix folding — against progressively more of the translator's
// existing state combined with the new stroke, and returns the first
// successful match, or a single unmapped Record for the stroke itself if
// none matched. All three modes share the same window of prior
// translations and the same flattened RTFCRE sequence built from it, since
// an affix can fold onto a base spanning more than one prior stroke.
func (t *Translator) findTranslation(stroke steno.Stroke) *Record {
	window := t.foldWindow()
	rtfcreSeq := make([]string, 0, len(window)+1)
	for _, r := range window {
		for _, s := range r.Strokes {
			rtfcreSeq = append(rtfcreSeq, s.RTFCRE())
		}
	}
	rtfcreSeq = append(rtfcreSeq, stroke.RTFCRE())

	if record := t.tryNormalMode(stroke, window, rtfcreSeq); record != nil {
		return record
	}
	if record := t.trySuffixMode(stroke, window, rtfcreSeq); record != nil {
		return record
	}
	if record := t.tryPrefixMode(stroke, window, rtfcreSeq); record != nil {
		return record
	}
	return NewRecord([]steno.Stroke{stroke}, "", false)
}

// foldWindow returns the suffix of state.Translations whose combined stroke
// count, plus the one new stroke, fits within the undo horizon.
func (t *Translator) foldWindow() []*Record {
	translations := t.state.Translations
	n := len(translations)
	horizon := t.horizon()
	strokeCount := 1
	included := 0
	for i := n - 1; i >= 0; i-- {
		strokeCount += translations[i].StrokeCount()
		if strokeCount > horizon {
			break
		}
		included++
	}
	return translations[n-included:]
}

// tryNormalMode tests windows of [window..., stroke] from longest to
// shortest, without any affix folding, returning the first hit.
func (t *Translator) tryNormalMode(stroke steno.Stroke, window []*Record, rtfcreSeq []string) *Record {
	testSeq := append([]string(nil), rtfcreSeq...)
	for i := 0; i <= len(window); i++ {
		if text, ok := t.dict.Lookup(dictionary.NewKey(testSeq...)); ok {
			return t.buildRecord(stroke, window[i:], text)
		}
		if i < len(window) {
			testSeq = testSeq[window[i].StrokeCount():]
		}
	}
	return nil
}

// trySuffixMode attempts to fold each suffix key present in the new
// stroke's key set onto a base that may span window and the new stroke
// itself, trying progressively shorter bases from the full window down to
// the new stroke alone. The candidate suffix keys are fixed upfront: a
// suffix can only ever come from the newly struck chord, never from an
// earlier one, so it does not need recomputing per window length.
func (t *Translator) trySuffixMode(stroke steno.Stroke, window []*Record, rtfcreSeq []string) *Record {
	pairs := affixPairs(stroke.StenoKeys(), t.sys.SuffixKeys, t.strokeFactory)
	if len(pairs) == 0 {
		return nil
	}
	testSeq := append([]string(nil), rtfcreSeq...)
	for i := 0; i <= len(window); i++ {
		if text, ok := t.lookupAffixes(testSeq, pairs, false); ok {
			return t.buildRecord(stroke, window[i:], text)
		}
		if i < len(window) {
			testSeq = testSeq[window[i].StrokeCount():]
		}
	}
	return nil
}

// tryPrefixMode mirrors trySuffixMode, but the candidate prefix keys come
// from the leftmost stroke of whatever base is currently under test, so
// they are recomputed on every iteration as the window shrinks.
func (t *Translator) tryPrefixMode(stroke steno.Stroke, window []*Record, rtfcreSeq []string) *Record {
	if len(t.sys.PrefixKeys) == 0 {
		return nil
	}
	testSeq := append([]string(nil), rtfcreSeq...)
	for i := 0; i <= len(window); i++ {
		leading := stroke
		if i < len(window) {
			leading = window[i].Strokes[0]
		}
		if pairs := affixPairs(leading.StenoKeys(), t.sys.PrefixKeys, t.strokeFactory); len(pairs) > 0 {
			if text, ok := t.lookupAffixes(testSeq, pairs, true); ok {
				return t.buildRecord(stroke, window[i:], text)
			}
		}
		if i < len(window) {
			testSeq = testSeq[window[i].StrokeCount():]
		}
	}
	return nil
}

// buildRecord assembles the Record for a successful match: the strokes of
// replaced (the window entries the match consumed) followed by stroke, with
// Replaced set so Undo can restore what was displaced.
func (t *Translator) buildRecord(stroke steno.Stroke, replaced []*Record, text string) *Record {
	strokeCount := 1
	for _, r := range replaced {
		strokeCount += r.StrokeCount()
	}
	strokes := make([]steno.Stroke, 0, strokeCount)
	for _, r := range replaced {
		strokes = append(strokes, r.Strokes...)
	}
	strokes = append(strokes, stroke)
	record := NewRecord(strokes, text, true)
	if len(replaced) > 0 {
		record.Replaced = append([]*Record(nil), replaced...)
	}
	return record
}

// affixPair is one candidate split of a chord into an affix key and the
// RTFCRE of its remaining keys, plus the affix key's own RTFCRE for the
// companion dictionary lookup.
type affixPair struct {
	altRTFCRE   string
	affixRTFCRE string
}

// affixPairs returns one affixPair per key in affixKeys present in
// strokeKeys, in affixKeys order, so every configured affix key borne by
// the chord gets a chance, not just the first one found.
func affixPairs(strokeKeys []string, affixKeys []string, factory steno.Factory) []affixPair {
	var pairs []affixPair
	for _, affixKey := range affixKeys {
		if !containsKey(strokeKeys, affixKey) {
			continue
		}
		remainder := removeFirst(strokeKeys, affixKey)
		pairs = append(pairs, affixPair{
			altRTFCRE:   factory.FromKeys(remainder).RTFCRE(),
			affixRTFCRE: factory.FromKeys([]string{affixKey}).RTFCRE(),
		})
	}
	return pairs
}

func removeFirst(keys []string, target string) []string {
	out := make([]string, 0, len(keys))
	removed := false
	for _, k := range keys {
		if !removed && k == target {
			removed = true
			continue
		}
		out = append(out, k)
	}
	return out
}

func containsKey(keys []string, k string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

// lookupAffixes substitutes each pair's base RTFCRE in turn at the
// prefix/suffix end of testSeq (index 0 for a prefix, the last index for a
// suffix) and returns the first pair for which both the substituted
// sequence and the affix key alone resolve in the dictionary, joined with a
// literal space.
func (t *Translator) lookupAffixes(testSeq []string, pairs []affixPair, isPrefix bool) (string, bool) {
	idx := len(testSeq) - 1
	if isPrefix {
		idx = 0
	}
	work := append([]string(nil), testSeq...)
	for _, p := range pairs {
		work[idx] = p.altRTFCRE
		mainMapping, ok := t.dict.Lookup(dictionary.NewKey(work...))
		if !ok {
			continue
		}
		affixMapping, ok := t.dict.Lookup(dictionary.NewKey(p.affixRTFCRE))
		if !ok {
			continue
		}
		if isPrefix {
			return affixMapping + " " + mainMapping, true
		}
		return mainMapping + " " + affixMapping, true
	}
	return "", false
}

// Do appends records to the translator's state and marks them as pending
// emission. Nothing is reported to listeners until Flush runs.
func (t *Translator) Do(records ...*Record) {
	t.state.Translations = append(t.state.Translations, records...)
	t.toDo += len(records)
}

// Undo pops records off the top of state.Translations, one at a time from
// the last argument to the first (mirroring the stack order they were
// pushed in), checking each is the current newest entry; a record that is
// not is logged as a warning and the newest entry is popped regardless. A
// record that was pushed by this same pending flush (toDo > 0) simply has
// toDo decremented, since it was never reported as emitted in the first
// place; otherwise it is queued in toUndo so Flush reports it as retracted.
func (t *Translator) Undo(records ...*Record) {
	for i := len(records) - 1; i >= 0; i-- {
		record := records[i]
		n := len(t.state.Translations)
		if n == 0 || t.state.Translations[n-1] != record {
			t.log.Warn("undo target is not the newest translation; state may be inconsistent")
		}
		if n > 0 {
			t.state.Translations = t.state.Translations[:n-1]
		}
		if t.toDo > 0 {
			t.toDo--
			continue
		}
		t.toUndo = append([]*Record{record}, t.toUndo...)
	}
}

// Flush coalesces every pending Do/Undo call since the last Flush into a
// single listener notification: the records to retract (toUndo), the
// records newly emitted (the toDo newest entries of state.Translations,
// plus any extra records that are emitted but never stored), and prev —
// the left context those new records were appended after. Listeners are
// skipped entirely when there is nothing to report. The undo horizon is
// re-enforced last, after listeners have had a chance to see everything
// state currently holds.
func (t *Translator) Flush(extra ...*Record) {
	prev := t.state.Prev(t.toDo, true)

	var doList []*Record
	if t.toDo > 0 {
		doList = append(doList, t.state.Translations[len(t.state.Translations)-t.toDo:]...)
	}
	doList = append(doList, extra...)

	undoList := t.toUndo
	t.toUndo = nil
	t.toDo = 0

	if len(undoList) > 0 || len(doList) > 0 {
		for _, cb := range t.listeners {
			cb(undoList, doList, prev)
		}
	}
	t.state.RestrictSize(t.horizon())
}
