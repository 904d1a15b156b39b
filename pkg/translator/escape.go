package translator

import "strings"

// EscapeText turns real control characters (tab, newline, carriage
// return) in a translation's display text into their backslash escapes,
// and doubles the backslash on any literal backslash-escape sequence
// already present, so the two never collide. UnescapeText is its inverse.
func EscapeText(s string) string {
	if !strings.ContainsAny(s, "\n\r\t\\") {
		return s
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && isEscapeLetter(runes[i+1]) {
			b.WriteString(`\\`)
			b.WriteRune(runes[i+1])
			i += 2
			continue
		}
		if esc, ok := controlEscape(r); ok {
			b.WriteString(esc)
			i++
			continue
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

// UnescapeText reverses EscapeText: a single backslash-escape becomes its
// real control character, and a doubled backslash-escape collapses back to
// a single literal backslash-escape.
func UnescapeText(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); {
		if runes[i] == '\\' && i+2 < len(runes) && runes[i+1] == '\\' && isEscapeLetter(runes[i+2]) {
			b.WriteByte('\\')
			b.WriteRune(runes[i+2])
			i += 3
			continue
		}
		if runes[i] == '\\' && i+1 < len(runes) && isEscapeLetter(runes[i+1]) {
			b.WriteRune(controlChar(runes[i+1]))
			i += 2
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

func isEscapeLetter(r rune) bool {
	return r == 'n' || r == 'r' || r == 't'
}

func controlEscape(r rune) (string, bool) {
	switch r {
	case '\n':
		return `\n`, true
	case '\r':
		return `\r`, true
	case '\t':
		return `\t`, true
	}
	return "", false
}

func controlChar(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	}
	return r
}
