package translator

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// DumpRecord prints r to stdout, then descends through the records it
// replaced, outermost first, following only the last entry of each
// Replaced list. Intended for debugging undo chains that aren't
// behaving as expected; not used on any hot path.
func DumpRecord(r *Record) {
	depth := 0
	for cur := r; cur != nil; {
		fmt.Printf("[%d] key=%q text=%q hasText=%v replaced=%d\n",
			depth, cur.Key, cur.DisplayText(), cur.HasText, len(cur.Replaced))
		spew.Dump(cur.Strokes)
		if len(cur.Replaced) == 0 {
			break
		}
		cur = cur.Replaced[len(cur.Replaced)-1]
		depth++
	}
}

// DumpState pretty-prints a State's full translation buffer, for use from
// a debugger or a failing test.
func DumpState(s *State) {
	spew.Dump(s.Translations)
	if s.Tail != nil {
		fmt.Println("tail:")
		spew.Dump(s.Tail)
	}
}
