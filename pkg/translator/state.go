package translator

// State is the translator's bounded FIFO of undoable records, plus a
// single "tail" record retained past the undo horizon purely as left
// context for a downstream formatter.
type State struct {
	// Translations holds every still-undoable record, oldest first.
	Translations []*Record
	// Tail is the single most-recently-evicted record, or nil.
	Tail *Record
}

// NewState returns an empty State.
func NewState() *State { return &State{} }

// Prev returns the left context for a formatter. When hasCount is true, it
// returns the view of Translations excluding the last count entries — what
// was there before those were added. When hasCount is false, it returns
// the full Translations slice. If that view is empty, the single Tail
// record is returned instead (if any); otherwise nil.
func (s *State) Prev(count int, hasCount bool) []*Record {
	var prev []*Record
	switch {
	case !hasCount:
		prev = s.Translations
	case count <= 0:
		prev = s.Translations
	case count >= len(s.Translations):
		prev = nil
	default:
		prev = s.Translations[:len(s.Translations)-count]
	}
	if len(prev) > 0 {
		return prev
	}
	if s.Tail != nil {
		return []*Record{s.Tail}
	}
	return nil
}

// RestrictSize walks Translations from newest to oldest, accumulating
// stroke counts, and stops at the first record whose inclusion brings the
// running total to at least n. Every older record is discarded; the most
// recently discarded one (if any) becomes the new Tail.
func (s *State) RestrictSize(n int) {
	strokeCount := 0
	translationCount := 0
	for i := len(s.Translations) - 1; i >= 0; i-- {
		strokeCount += s.Translations[i].StrokeCount()
		translationCount++
		if strokeCount >= n {
			break
		}
	}
	translationIndex := len(s.Translations) - translationCount
	if translationIndex > 0 {
		s.Tail = s.Translations[translationIndex-1]
	}
	s.Translations = s.Translations[translationIndex:]
}
