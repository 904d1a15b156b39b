package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEscapeUnescapeRoundTrip is spec.md §8 testable property 6: escaping
// and unescaping literal control sequences are inverses.
func TestEscapeUnescapeRoundTrip(t *testing.T) {
	cases := []string{
		"plain text",
		"line one\nline two",
		"a\treal\ttab",
		"carriage\rreturn",
		`already \n escaped`,
		`mixed` + "\n" + `and \t literal`,
		"",
	}
	for _, text := range cases {
		escaped := EscapeText(text)
		assert.Equal(t, text, UnescapeText(escaped), "round trip of %q via %q", text, escaped)
	}
}

func TestEscapeTextEscapesControlCharacters(t *testing.T) {
	assert.Equal(t, `a\nb`, EscapeText("a\nb"))
	assert.Equal(t, `a\rb`, EscapeText("a\rb"))
	assert.Equal(t, `a\tb`, EscapeText("a\tb"))
}

func TestEscapeTextDoublesExistingEscapeSequence(t *testing.T) {
	assert.Equal(t, `a\\nb`, EscapeText(`a\nb`))
}

func TestUnescapeTextCollapsesDoubledEscape(t *testing.T) {
	assert.Equal(t, `a\nb`, UnescapeText(`a\\nb`))
}

func TestUnescapeTextRestoresControlCharacter(t *testing.T) {
	assert.Equal(t, "a\nb", UnescapeText(`a\nb`))
}

func TestEscapeTextNoOpWithoutControlOrBackslash(t *testing.T) {
	assert.Equal(t, "plain", EscapeText("plain"))
	assert.Equal(t, "plain", UnescapeText("plain"))
}
