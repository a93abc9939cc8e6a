package jpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindAll(t *testing.T) {
	t.Run("absent key matches nothing", func(t *testing.T) {
		s := nestedFixture()
		require.Empty(t, FindAll(s, "zzz"))
	})

	t.Run("single occurrence at depth", func(t *testing.T) {
		s := nestedFixture()
		require.Equal(t, []Keypath{{0, "a", "c", "d"}}, FindAll(s, "d"))
	})

	t.Run("every occurrence is found, in discovery order", func(t *testing.T) {
		root := &Document{
			{Key: "k", Value: 1},
			{Key: "list", Value: &Array{
				&Document{{Key: "k", Value: 2}},
				"scalar",
				&Document{{Key: "deep", Value: &Document{{Key: "k", Value: 3}}}},
			}},
		}
		want := []Keypath{
			{"k"},
			{"list", 0, "k"},
			{"list", 2, "deep", "k"},
		}
		require.Equal(t, want, FindAll(root, "k"))
	})

	t.Run("a matched key's own value is still searched", func(t *testing.T) {
		root := &Document{
			{Key: "k", Value: &Document{{Key: "k", Value: 1}}},
		}
		require.Equal(t, []Keypath{{"k"}, {"k", "k"}}, FindAll(root, "k"))
	})

	t.Run("returned paths are independent", func(t *testing.T) {
		root := &Document{
			{Key: "outer", Value: &Document{
				{Key: "k", Value: 1},
				{Key: "inner", Value: &Document{{Key: "k", Value: 2}}},
			}},
		}
		paths := FindAll(root, "k")
		require.Len(t, paths, 2)

		paths[0][0] = "mutated"
		require.Equal(t, Keypath{"outer", "inner", "k"}, paths[1])
	})

	t.Run("every found path traverses back to the matched value", func(t *testing.T) {
		root := &Document{
			{Key: "k", Value: "top"},
			{Key: "list", Value: &Array{
				&Document{{Key: "k", Value: "elem"}},
			}},
		}
		paths := FindAll(root, "k")
		matches := FindAllWithValues(root, "k")
		require.Len(t, matches, len(paths))
		for i, p := range paths {
			require.Equal(t, matches[i].Path, p)
			v, err := Traverse(root, p)
			require.NoError(t, err)
			require.Equal(t, matches[i].Value, v)
		}
	})
}

func TestFindAllWithValues(t *testing.T) {
	t.Run("values alias the structure", func(t *testing.T) {
		s := nestedFixture()
		matches := FindAllWithValues(s, "a")
		require.Len(t, matches, 1)
		require.Equal(t, Keypath{0, "a"}, matches[0].Path)

		sub, ok := matches[0].Value.(*Document)
		require.True(t, ok)
		require.Equal(t, &Document{
			{Key: "b", Value: "v1"},
			{Key: "c", Value: &Document{{Key: "d", Value: "v2"}}},
		}, sub)

		// writes through the matched value are visible from the root
		sub.Set("e", "v3")
		v, err := Traverse(s, Keypath{0, "a", "e"})
		require.NoError(t, err)
		require.Equal(t, "v3", v)
	})

	t.Run("scalar values are returned as-is", func(t *testing.T) {
		s := nestedFixture()
		matches := FindAllWithValues(s, "b")
		require.Len(t, matches, 1)
		require.Equal(t, "v1", matches[0].Value)
	})

	t.Run("scalar root matches nothing", func(t *testing.T) {
		require.Empty(t, FindAllWithValues("scalar", "k"))
	})
}
