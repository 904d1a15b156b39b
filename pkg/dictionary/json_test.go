package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONRoundTrip(t *testing.T) {
	d, err := ParseJSON(strings.NewReader(`{"KAT": "cat", "KAT/HROG": "catalogue"}`))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	text, ok := d.Get(NewKey("KAT", "HROG"))
	require.True(t, ok)
	assert.Equal(t, "catalogue", text)

	buf, err := MarshalJSON(d)
	require.NoError(t, err)

	reparsed, err := ParseJSON(strings.NewReader(string(buf)))
	require.NoError(t, err)
	assert.Equal(t, d.Len(), reparsed.Len())
	text, ok = reparsed.Get(NewKey("KAT"))
	require.True(t, ok)
	assert.Equal(t, "cat", text)
}

func TestParseJSONRejectsTrailingData(t *testing.T) {
	_, err := ParseJSON(strings.NewReader(`{"KAT": "cat"}{"KOU": "cow"}`))
	assert.ErrorIs(t, err, ErrTrailingJSON)
}

func TestParseJSONRejectsNonObjectTopLevel(t *testing.T) {
	_, err := ParseJSON(strings.NewReader(`["KAT", "cat"]`))
	assert.Error(t, err)
}
