package steno

// NewEnglishStenoSystem builds a small, self-contained steno system
// configuration good enough to drive the demo binary and the end-to-end
// tests in this module. It is modeled on the shape of a standard English
// stenotype layout and a handful of the most common orthography rules; it
// is not a faithful reproduction of any particular commercial system and a
// real deployment would load its system config from disk via the
// out-of-scope configuration layer instead.
func NewEnglishStenoSystem() (*System, error) {
	keys := []string{
		"#",
		"S-", "T-", "K-", "P-", "W-", "H-", "R-",
		"A", "O", "*", "E", "U",
		"-F", "-R", "-P", "-B", "-L", "-G", "-T", "-S", "-D", "-Z",
	}
	numbers := map[string]string{
		"1-": "S-", "2-": "T-", "3-": "P-", "4-": "H-",
		"5": "A", "0": "O",
		"-6": "-F", "-7": "-P", "-8": "-L", "-9": "-T",
	}

	implicitHyphenKeys := map[string]struct{}{"*": {}}
	implicitHyphens := map[string]struct{}{"*": {}}

	rules, err := CompileOrthographyRules([][2]string{
		// double the final consonant before -ing/-ed: run -> running
		{`^(.*[^aeiou])([aeiou])([bcdfghjklmnpqrstvwxyz]) \^ (ing|ed)$`, `${1}${2}${3}${3}${4}`},
		// drop silent e before a vowel-leading suffix: like -> liking
		{`^(.*[bcdfghjklmnpqrstvwxyz])e \^ ([aeiouy].*)$`, `${1}${2}`},
		// y -> i before -ed/-es/-er/-est/-ly when preceded by a consonant: try -> tried
		{`^(.*[bcdfghjklmnpqrstvwxyz])y \^ (ed|es|er|est|ly)$`, `${1}i${2}`},
		// default: straight concatenation
		{`^(.*) \^ (.*)$`, `${1}${2}`},
	})
	if err != nil {
		return nil, err
	}

	sys := &System{
		Keys:               keys,
		NumberKey:          "#",
		Numbers:            numbers,
		ImplicitHyphenKeys: implicitHyphenKeys,
		ImplicitHyphens:    implicitHyphens,
		UndoStrokeSteno:    "*",
		PrefixKeys:         []string{"R-"},
		SuffixKeys:         []string{"-D", "-S", "-G", "-Z"},
		OrthographyRules:   rules,
		OrthographyRulesAliases: map[string]string{
			"ings": "ing",
		},
		OrthographyWords: map[string]int{
			"running": 1, "runing": 200,
			"hello": 1, "liking": 5, "like": 1,
			"tried": 2, "tryed": 180,
			"catalogue": 10, "cat": 1, "work": 1, "worked": 3,
		},
	}
	sys.KeyOrder = NewKeyOrder(keys, numbers)
	return sys, nil
}
