package jpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		var d Document
		require.Len(t, d, 0)
		require.Nil(t, d) // zero value of Document is nil slice
	})

	t.Run("initialized document is not nil", func(t *testing.T) {
		d := Document{}
		require.Len(t, d, 0)
		require.NotNil(t, d)
	})

	t.Run("set appends absent keys in insertion order", func(t *testing.T) {
		d := &Document{}
		d.Set("first", 1)
		d.Set("second", 2)
		d.Set("third", 3)
		require.Equal(t, []string{"first", "second", "third"}, d.Keys())
		require.Equal(t, 3, d.Len())
	})

	t.Run("set overwrites existing key in place", func(t *testing.T) {
		d := &Document{{Key: "a", Value: 1}, {Key: "b", Value: 2}}
		d.Set("a", 10)
		require.Equal(t, []string{"a", "b"}, d.Keys())
		v, ok := d.Get("a")
		require.True(t, ok)
		require.Equal(t, 10, v)
	})

	t.Run("get reports presence", func(t *testing.T) {
		d := &Document{{Key: "a", Value: nil}}
		v, ok := d.Get("a")
		require.True(t, ok)
		require.Nil(t, v)

		_, ok = d.Get("missing")
		require.False(t, ok)
	})

	t.Run("index of absent key is -1", func(t *testing.T) {
		d := &Document{{Key: "a", Value: 1}}
		require.Equal(t, 0, d.Index("a"))
		require.Equal(t, -1, d.Index("b"))
	})

	t.Run("delete removes entry and keeps order", func(t *testing.T) {
		d := &Document{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3}}
		require.True(t, d.Delete("b"))
		require.Equal(t, []string{"a", "c"}, d.Keys())
		require.False(t, d.Delete("b"))
	})

	t.Run("document can contain any value types", func(t *testing.T) {
		nested := &Document{{Key: "nested", Value: "value"}}
		arr := &Array{1, 2, 3}
		d := Document{
			{Key: "string", Value: "text"},
			{Key: "number", Value: 42},
			{Key: "boolean", Value: true},
			{Key: "null", Value: nil},
			{Key: "document", Value: nested},
			{Key: "array", Value: arr},
		}
		require.Len(t, d, 6)
		require.Equal(t, nested, d[4].Value)
		require.Equal(t, arr, d[5].Value)
	})
}

func TestArray(t *testing.T) {
	t.Run("empty array", func(t *testing.T) {
		var a Array
		require.Len(t, a, 0)
		require.Nil(t, a)
	})

	t.Run("at bounds checks", func(t *testing.T) {
		a := &Array{"x", "y"}
		v, ok := a.At(0)
		require.True(t, ok)
		require.Equal(t, "x", v)

		_, ok = a.At(2)
		require.False(t, ok)
		_, ok = a.At(-1)
		require.False(t, ok)
	})

	t.Run("append grows by one", func(t *testing.T) {
		a := &Array{}
		a.Append("x")
		a.Append("y")
		require.Equal(t, 2, a.Len())
		require.Equal(t, &Array{"x", "y"}, a)
	})
}
