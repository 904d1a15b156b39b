package dictionary

import (
	"sort"
	"strings"

	"github.com/coregx/coregex"
)

// reverseIndex maps translation text back to the keys that produce it, and
// supports the exact/case-folded/prefix/regex search modes a dictionary
// editor's reverse lookup needs. It is a flat map plus a secondary
// case-folded grouping, per the "reverse index with multiple lookup modes"
// design note: a trie would pay for itself only at a scale this engine
// isn't built for.
type reverseIndex struct {
	byText map[string]KeySet
	// folded groups texts that compare equal case-insensitively, so
	// similar is an O(1) group lookup instead of a full scan.
	folded map[string]map[string]struct{}
}

func newReverseIndex() *reverseIndex {
	return &reverseIndex{
		byText: make(map[string]KeySet),
		folded: make(map[string]map[string]struct{}),
	}
}

func (r *reverseIndex) appendKey(text string, key Key) {
	set, ok := r.byText[text]
	if !ok {
		set = make(KeySet, 1)
		r.byText[text] = set
	}
	set.Add(key)

	fold := strings.ToLower(text)
	group, ok := r.folded[fold]
	if !ok {
		group = make(map[string]struct{}, 1)
		r.folded[fold] = group
	}
	group[text] = struct{}{}
}

func (r *reverseIndex) removeKey(text string, key Key) {
	set, ok := r.byText[text]
	if !ok {
		return
	}
	set.Remove(key)
	if len(set) > 0 {
		return
	}
	delete(r.byText, text)

	fold := strings.ToLower(text)
	if group, ok := r.folded[fold]; ok {
		delete(group, text)
		if len(group) == 0 {
			delete(r.folded, fold)
		}
	}
}

func (r *reverseIndex) clear() {
	r.byText = make(map[string]KeySet)
	r.folded = make(map[string]map[string]struct{})
}

// matchForward rebuilds the entire reverse index from a forward map. Used
// by the fast path of bulkUpdate, where every key is new.
func (r *reverseIndex) matchForward(forward map[Key]string) {
	r.clear()
	for key, text := range forward {
		r.appendKey(text, key)
	}
}

// exact returns the set of keys that exactly produce text.
func (r *reverseIndex) exact(text string) KeySet {
	set, ok := r.byText[text]
	if !ok {
		return nil
	}
	out := make(KeySet, len(set))
	for k := range set {
		out[k] = struct{}{}
	}
	return out
}

// similar returns every translation text that is case-insensitively equal
// to text, including text itself if present.
func (r *reverseIndex) similar(text string) []string {
	group, ok := r.folded[strings.ToLower(text)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(group))
	for t := range group {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// partial returns every translation text with prefix as a case-insensitive
// prefix, up to max results (max <= 0 means unlimited).
func (r *reverseIndex) partial(prefix string, max int) []string {
	lowered := strings.ToLower(prefix)
	var out []string
	for text := range r.byText {
		if !strings.HasPrefix(strings.ToLower(text), lowered) {
			continue
		}
		out = append(out, text)
		if max > 0 && len(out) >= max {
			break
		}
	}
	sort.Strings(out)
	return out
}

// regex returns every translation text matching pattern, up to max results
// (max <= 0 means unlimited). Matching is delegated to coregex, whose
// prefilter-accelerated scanning is the point of choosing it over stdlib
// regexp for a pattern that may need to be tested against every text in a
// large reverse index.
func (r *reverseIndex) regex(pattern string, max int) ([]string, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	var out []string
	for text := range r.byText {
		if !re.MatchString(text) {
			continue
		}
		out = append(out, text)
		if max > 0 && len(out) >= max {
			break
		}
	}
	sort.Strings(out)
	return out, nil
}
