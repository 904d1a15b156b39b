package steno

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChordFactoryFromKeys(t *testing.T) {
	sys, err := NewEnglishStenoSystem()
	require.NoError(t, err)
	factory := NewChordFactory(sys)

	cat := factory.FromKeys([]string{"K-", "A", "-T"})
	assert.Equal(t, "KAT", cat.RTFCRE())
	assert.False(t, cat.IsCorrection())

	// A stroke with only a right-bank key and no vowel needs an explicit
	// hyphen, since "-G" is not in ImplicitHyphenKeys.
	suffix := factory.FromKeys([]string{"-G"})
	assert.Equal(t, "-G", suffix.RTFCRE())

	// The asterisk key is implicitly hyphenated and needs no separator
	// even without a vowel present.
	star := factory.FromKeys([]string{"*"})
	assert.Equal(t, "*", star.RTFCRE())
}

func TestNewChord(t *testing.T) {
	c := NewChord("TPHOPB", []string{"T-", "P-", "H-", "O", "-P", "-B"}, false)
	assert.Equal(t, "TPHOPB", c.RTFCRE())
	assert.Equal(t, "TPHOPB", c.String())
	assert.False(t, c.IsCorrection())
	assert.Len(t, c.StenoKeys(), 6)
}
