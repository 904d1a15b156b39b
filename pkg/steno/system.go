package steno

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
)

// OrthographyRule is one regex+replacement rule evaluated against the
// literal string "stem ^ suffix". Pattern is always applied
// case-insensitively, matching the source system's compilation of each
// pattern with re.I.
type OrthographyRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// System is the process-wide, immutable-during-operation configuration a
// Plover-style front end loads once at startup. The translation engine only
// ever reads from it.
type System struct {
	// Keys is the ordered sequence of steno key names this system defines,
	// e.g. "S-", "T-", "K-", ..., "A", "O", ..., "-F", "-R", ...
	Keys []string

	// NumberKey is the name of the key that, when present in a stroke,
	// turns the digit-bearing keys into their numeral form (usually "#").
	NumberKey string
	// Numbers maps a digit key to the letter key it stands in for when
	// NumberKey is held, e.g. "1-" -> "S-".
	Numbers map[string]string

	// KeyOrder maps a key name to its ordinal position. Keys that double
	// as numbers share the ordinal of their base letter key; unknown keys
	// resolve to -1.
	KeyOrder KeyOrder

	// ImplicitHyphenKeys is the set of key names that never need an
	// explicit "-" separator in RTFCRE form even without a vowel present.
	ImplicitHyphenKeys map[string]struct{}
	// ImplicitHyphens is ImplicitHyphenKeys with the "-" stripped from
	// each key name.
	ImplicitHyphens map[string]struct{}

	// UndoStrokeSteno is the RTFCRE form of the built-in correction chord.
	UndoStrokeSteno string

	// PrefixKeys and SuffixKeys are the keys usable for prefix/suffix
	// folding.
	PrefixKeys []string
	SuffixKeys []string

	// OrthographyRules is evaluated in order against "stem ^ suffix".
	OrthographyRules []OrthographyRule
	// OrthographyRulesAliases maps a suffix to an alternate suffix text
	// also tried against the orthography rules.
	OrthographyRulesAliases map[string]string
	// OrthographyWords maps a word to its frequency rank; smaller is more
	// frequent. Ties are broken by insertion order by the caller.
	OrthographyWords map[string]int
}

// KeyOrder maps a key name to its ordinal position in a stroke. Unknown
// keys report -1, mirroring the source system's defaultdict(lambda: -1).
type KeyOrder map[string]int

// Ordinal returns the ordinal of key, or -1 if key is unknown.
func (o KeyOrder) Ordinal(key string) int {
	if v, ok := o[key]; ok {
		return v
	}
	return -1
}

// NewKeyOrder builds a KeyOrder from an ordered key list and a number-key
// alias table. Keys used as numbers share the ordinal of the key they
// alias, exactly like the source's _key_order.
func NewKeyOrder(keys []string, numbers map[string]string) KeyOrder {
	order := make(KeyOrder, len(keys)+len(numbers))
	for i, k := range keys {
		order[k] = i
	}
	for numberKey, baseKey := range numbers {
		if ord, ok := order[baseKey]; ok {
			order[numberKey] = ord
		}
	}
	return order
}

// LoadWordlist parses a whitespace-delimited file of alternating
// word/rank tokens, where the rank token is a single printable character
// interpreted by its code point — the same format the source system reads
// its orthography frequency list from.
func LoadWordlist(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()
	return ParseWordlist(f)
}

// ParseWordlist is the io.Reader-based core of LoadWordlist.
func ParseWordlist(r io.Reader) (map[string]int, error) {
	words := make(map[string]int)
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var pendingWord string
	haveWord := false
	for scanner.Scan() {
		tok := scanner.Text()
		if !haveWord {
			pendingWord = tok
			haveWord = true
			continue
		}
		runes := []rune(tok)
		if len(runes) == 0 {
			return nil, fmt.Errorf("wordlist: empty rank token for %q", pendingWord)
		}
		words[pendingWord] = int(runes[0])
		haveWord = false
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan wordlist: %w", err)
	}
	if haveWord {
		return nil, fmt.Errorf("wordlist: dangling word %q with no rank", pendingWord)
	}
	return words, nil
}

// CompileOrthographyRules compiles (pattern, replacement) pairs into
// OrthographyRules, matching case-insensitively like the source system's
// re.compile(pattern, re.I).
func CompileOrthographyRules(pairs [][2]string) ([]OrthographyRule, error) {
	rules := make([]OrthographyRule, 0, len(pairs))
	for _, p := range pairs {
		re, err := regexp.Compile("(?i)" + p[0])
		if err != nil {
			return nil, fmt.Errorf("compile orthography rule %q: %w", p[0], err)
		}
		rules = append(rules, OrthographyRule{Pattern: re, Replacement: p[1]})
	}
	return rules, nil
}
