package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionLookupPriority(t *testing.T) {
	user := New("user.json")
	main := New("main.json")
	require.NoError(t, main.Set(NewKey("KAT"), "cat"))
	require.NoError(t, user.Set(NewKey("KAT"), "custom cat"))

	c := NewCollection(user, main)
	text, ok := c.Lookup(NewKey("KAT"))
	require.True(t, ok)
	assert.Equal(t, "custom cat", text)
}

func TestCollectionLookupFallsThrough(t *testing.T) {
	user := New("user.json")
	main := New("main.json")
	require.NoError(t, main.Set(NewKey("KAT"), "cat"))

	c := NewCollection(user, main)
	text, ok := c.Lookup(NewKey("KAT"))
	require.True(t, ok)
	assert.Equal(t, "cat", text)
}

func TestCollectionLookupSkipsDisabledDict(t *testing.T) {
	user := New("user.json")
	main := New("main.json")
	require.NoError(t, user.Set(NewKey("KAT"), "custom cat"))
	require.NoError(t, main.Set(NewKey("KAT"), "cat"))
	user.Enabled = false

	c := NewCollection(user, main)
	text, ok := c.Lookup(NewKey("KAT"))
	require.True(t, ok)
	assert.Equal(t, "cat", text)
}

func TestCollectionLookupFilterRejects(t *testing.T) {
	main := New("main.json")
	require.NoError(t, main.Set(NewKey("KAT"), "cat"))

	c := NewCollection(main)
	c.AddFilter(func(key Key, value string) bool { return value == "cat" })

	_, ok := c.Lookup(NewKey("KAT"))
	assert.False(t, ok)
}

func TestCollectionLongestKeyAggregatesChildren(t *testing.T) {
	user := New("user.json")
	main := New("main.json")
	c := NewCollection(user, main)
	assert.Equal(t, 0, c.LongestKey())

	require.NoError(t, main.Set(NewKey("WORP", "-G"), "working"))
	assert.Equal(t, 2, c.LongestKey())

	require.NoError(t, user.Set(NewKey("A", "B", "C"), "abc"))
	assert.Equal(t, 3, c.LongestKey())
}

func TestCollectionLongestKeyIgnoresDisabledChild(t *testing.T) {
	user := New("user.json")
	main := New("main.json")
	require.NoError(t, main.Set(NewKey("WORP", "-G"), "working"))
	main.Enabled = false

	c := NewCollection(user, main)
	assert.Equal(t, 0, c.LongestKey())
}

func TestCollectionReverseLookupOverride(t *testing.T) {
	user := New("user.json")
	main := New("main.json")
	require.NoError(t, main.Set(NewKey("KAT"), "cat"))
	require.NoError(t, user.Set(NewKey("KAT"), "override"))

	c := NewCollection(user, main)
	keys := c.ReverseLookup("cat")
	assert.Empty(t, keys, "the user dict's redefinition of KAT makes main's KAT->cat unreachable")

	keys = c.ReverseLookup("override")
	assert.True(t, keys.Has(NewKey("KAT")))
}

func TestCollectionReverseLookupUnaffectedKeyStillReachable(t *testing.T) {
	user := New("user.json")
	main := New("main.json")
	require.NoError(t, main.Set(NewKey("KAT"), "cat"))
	require.NoError(t, main.Set(NewKey("KOU"), "cow"))
	require.NoError(t, user.Set(NewKey("KAT"), "override"))

	c := NewCollection(user, main)
	keys := c.ReverseLookup("cow")
	assert.True(t, keys.Has(NewKey("KOU")))
}

func TestCollectionFirstWritable(t *testing.T) {
	readonly := New("main.json")
	readonly.Readonly = true
	writable := New("user.json")

	c := NewCollection(readonly, writable)
	d, err := c.FirstWritable()
	require.NoError(t, err)
	assert.Same(t, writable, d)
}

func TestCollectionFirstWritableNone(t *testing.T) {
	readonly := New("main.json")
	readonly.Readonly = true
	c := NewCollection(readonly)
	_, err := c.FirstWritable()
	assert.ErrorIs(t, err, ErrNoWritableDictionary)
}

func TestCollectionSetByPath(t *testing.T) {
	user := New("user.json")
	c := NewCollection(user)
	require.NoError(t, c.Set(NewKey("KAT"), "cat", "user.json"))
	text, ok := user.Get(NewKey("KAT"))
	require.True(t, ok)
	assert.Equal(t, "cat", text)
}

func TestCollectionSetUnknownPath(t *testing.T) {
	user := New("user.json")
	c := NewCollection(user)
	err := c.Set(NewKey("KAT"), "cat", "nope.json")
	assert.ErrorIs(t, err, ErrUnknownPath)
}

func TestCollectionFindPartial(t *testing.T) {
	main := New("main.json")
	require.NoError(t, main.Set(NewKey("KAT"), "catalogue"))
	require.NoError(t, main.Set(NewKey("KAUT"), "category"))

	c := NewCollection(main)
	found := c.FindPartial("cat", 0)
	require.Len(t, found, 2)
	assert.Equal(t, "catalogue", found[0].Text)
	assert.Equal(t, "category", found[1].Text)
}
