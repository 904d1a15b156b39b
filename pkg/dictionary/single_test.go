package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleSetGetDelete(t *testing.T) {
	d := New("test.json")
	k1 := NewKey("TPHOPB")
	require.NoError(t, d.Set(k1, "nothing"))

	text, ok := d.Get(k1)
	require.True(t, ok)
	assert.Equal(t, "nothing", text)
	assert.Equal(t, 1, d.LongestKey())

	require.NoError(t, d.Delete(k1))
	_, ok = d.Get(k1)
	assert.False(t, ok)
	assert.Equal(t, 0, d.LongestKey())
}

func TestSingleReadonly(t *testing.T) {
	d := New("test.json")
	d.Readonly = true
	err := d.Set(NewKey("TPHOPB"), "nothing")
	assert.ErrorIs(t, err, ErrReadonly)
	assert.ErrorIs(t, d.Delete(NewKey("TPHOPB")), ErrReadonly)
}

func TestSingleLongestKeyRecalculatedOnDelete(t *testing.T) {
	d := New("test.json")
	long := NewKey("WORP", "-G")
	short := NewKey("KAT")
	require.NoError(t, d.Set(long, "working"))
	require.NoError(t, d.Set(short, "cat"))
	require.Equal(t, 2, d.LongestKey())

	require.NoError(t, d.Delete(long))
	assert.Equal(t, 1, d.LongestKey())
}

func TestSingleLongestKeyListener(t *testing.T) {
	d := New("test.json")
	var seen []int
	handle := d.AddLongestKeyListener(func(n int) { seen = append(seen, n) })

	require.NoError(t, d.Set(NewKey("KAT"), "cat"))
	require.NoError(t, d.Set(NewKey("WORP", "-G"), "working"))
	assert.Equal(t, []int{1, 2}, seen)

	d.RemoveLongestKeyListener(handle)
	require.NoError(t, d.Set(NewKey("WORP", "-G", "-S"), "workings"))
	assert.Equal(t, []int{1, 2}, seen)
}

func TestSingleBulkUpdateFastPathOnEmpty(t *testing.T) {
	d := New("test.json")
	err := d.BulkUpdate([]KV{
		{Key: NewKey("KAT"), Text: "cat"},
		{Key: NewKey("WORP", "-G"), Text: "working"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 2, d.LongestKey())
	text, ok := d.Get(NewKey("KAT"))
	require.True(t, ok)
	assert.Equal(t, "cat", text)
}

func TestSingleReverseLookup(t *testing.T) {
	d := New("test.json")
	require.NoError(t, d.Set(NewKey("KAT"), "cat"))
	require.NoError(t, d.Set(NewKey("KA", "-T"), "cat"))

	keys := d.ReverseLookup("cat")
	assert.Len(t, keys, 2)
	assert.True(t, keys.Has(NewKey("KAT")))
}

func TestSingleSimilarReverseLookup(t *testing.T) {
	d := New("test.json")
	require.NoError(t, d.Set(NewKey("KAT"), "Cat"))
	require.NoError(t, d.Set(NewKey("KAUT"), "cat"))

	similar := d.SimilarReverseLookup("CAT")
	assert.ElementsMatch(t, []string{"Cat", "cat"}, similar)
}

func TestSinglePartialReverseLookup(t *testing.T) {
	d := New("test.json")
	require.NoError(t, d.Set(NewKey("KAT"), "catalogue"))
	require.NoError(t, d.Set(NewKey("KAUT"), "category"))
	require.NoError(t, d.Set(NewKey("KOU"), "cow"))

	partial := d.PartialReverseLookup("cat", 0)
	assert.ElementsMatch(t, []string{"catalogue", "category"}, partial)
}

func TestSingleRegexReverseLookup(t *testing.T) {
	d := New("test.json")
	require.NoError(t, d.Set(NewKey("KAT"), "cat"))
	require.NoError(t, d.Set(NewKey("KOU"), "cow"))

	hits, err := d.RegexReverseLookup("^c", 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cat", "cow"}, hits)
}

func TestSingleClear(t *testing.T) {
	d := New("test.json")
	require.NoError(t, d.Set(NewKey("KAT"), "cat"))
	require.NoError(t, d.Clear())
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0, d.LongestKey())
}
