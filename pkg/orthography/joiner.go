// Package orthography applies English morphological rules to join a
// suffix onto a stem word, the way a steno stroke like "{^ed}" needs to
// become "liked" rather than "likeed".
package orthography

import (
	"strings"

	"github.com/stenoforge/steno-translate/pkg/steno"
)

// Joiner merges suffixes into stems using a system's orthography rules and
// frequency wordlist.
type Joiner struct {
	sys *steno.System
}

// New returns a Joiner bound to sys's orthography rules, rule aliases and
// wordlist.
func New(sys *steno.System) *Joiner {
	return &Joiner{sys: sys}
}

// AddSuffix joins suffix onto word. Only the text before the first space in
// suffix is subject to orthography rules; anything from the first space on
// is re-appended verbatim, so callers can pass a suffix like "ed extra" and
// have "extra" pass through untouched.
func (j *Joiner) AddSuffix(word, suffix string) string {
	token, rest, hasRest := strings.Cut(suffix, " ")
	expanded := j.addSuffix(word, token)
	if hasRest {
		return expanded + " " + rest
	}
	return expanded
}

func (j *Joiner) addSuffix(word, suffix string) string {
	simple := word + suffix

	var candidates []string
	if _, ok := j.sys.OrthographyWords[simple]; ok {
		candidates = append(candidates, simple)
	}
	candidates = j.appendRuleCandidates(candidates, word, suffix)
	if alias, ok := j.sys.OrthographyRulesAliases[suffix]; ok {
		candidates = j.appendRuleCandidates(candidates, word, alias)
	}

	if len(candidates) == 0 {
		return simple
	}

	best := ""
	bestRank := 0
	haveBest := false
	firstCandidate := candidates[0]
	for _, c := range candidates {
		rank, ok := j.sys.OrthographyWords[c]
		if !ok {
			continue
		}
		if !haveBest || rank < bestRank {
			best = c
			bestRank = rank
			haveBest = true
		}
	}
	if haveBest {
		return best
	}
	return firstCandidate
}

func (j *Joiner) appendRuleCandidates(candidates []string, word, suffix string) []string {
	input := word + " ^ " + suffix
	for _, rule := range j.sys.OrthographyRules {
		loc := rule.Pattern.FindStringSubmatchIndex(input)
		if loc == nil {
			continue
		}
		expanded := rule.Pattern.ExpandString(nil, rule.Replacement, input, loc)
		candidates = append(candidates, string(expanded))
	}
	return candidates
}
