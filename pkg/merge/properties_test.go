// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package merge_test

import (
	"fmt"
	"sort"
	"testing"

	"carvel.dev/ymlbuilder/pkg/document"
	"carvel.dev/ymlbuilder/pkg/merge"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var (
	// Each key always holds the same shape across generated documents,
	// which keeps per-key deep merge associative.
	scalarKeys  = []string{"s1", "s2", "s3"}
	mappingKeys = []string{"m1", "m2"}
)

func genMapping(depth int) *rapid.Generator[document.Value] {
	return rapid.Custom(func(t *rapid.T) document.Value {
		keys := append([]string{}, scalarKeys...)
		if depth > 0 {
			keys = append(keys, mappingKeys...)
		}

		result := document.NewMapping()

		for _, key := range rapid.Permutation(keys).Draw(t, "keys") {
			if !rapid.Bool().Draw(t, "include-"+key) {
				continue
			}
			if key[0] == 'm' {
				result.Set(key, genMapping(depth-1).Draw(t, key))
			} else {
				result.Set(key, document.NewInt(rapid.IntRange(0, 9).Draw(t, key)))
			}
		}

		return result
	})
}

func genAny() *rapid.Generator[document.Value] {
	return rapid.OneOf(
		genMapping(2),
		rapid.Custom(func(t *rapid.T) document.Value {
			items := rapid.SliceOfN(rapid.IntRange(0, 100), 0, 5).Draw(t, "items")
			result := document.NewSequence()
			for _, item := range items {
				result = result.Append(document.NewInt(item))
			}
			return result
		}),
		rapid.Custom(func(t *rapid.T) document.Value {
			return document.NewString(rapid.StringN(0, 10, -1).Draw(t, "scalar"))
		}),
	)
}

func mustCombine(t require.TestingT, values ...document.Value) document.Value {
	result, err := merge.Combine(values)
	require.NoError(t, err)
	return result
}

func TestPropertyMappingAssociativity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genMapping(2).Draw(t, "a")
		b := genMapping(2).Draw(t, "b")
		c := genMapping(2).Draw(t, "c")

		flat := mustCombine(t, a, b, c)
		left := mustCombine(t, mustCombine(t, a, b), c)
		right := mustCombine(t, a, mustCombine(t, b, c))

		if !document.Equal(flat, left) {
			t.Fatalf("Expected [a,b,c] == [[a,b],c]:\n%s\nvs\n%s", flat, left)
		}
		if !document.Equal(flat, right) {
			t.Fatalf("Expected [a,b,c] == [a,[b,c]]:\n%s\nvs\n%s", flat, right)
		}
	})
}

func TestPropertyAbsentIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := genAny().Draw(t, "x")

		for _, values := range [][]document.Value{
			{document.NewAbsent(), x},
			{x},
			{x, document.NewAbsent()},
		} {
			result := mustCombine(t, values...)
			if !document.Equal(x, result) {
				t.Fatalf("Expected absent to be identity for:\n%s\nbut got:\n%s", x, result)
			}
		}
	})
}

func TestPropertyShapeConflictIsOrderIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mapping := genMapping(1).Draw(t, "mapping")
		seq := document.NewSequence(document.NewInt(rapid.Int().Draw(t, "item")))

		_, err := merge.Combine([]document.Value{mapping, seq})
		require.Error(t, err)

		_, err = merge.Combine([]document.Value{seq, mapping})
		require.Error(t, err)
	})
}

func TestFuzzedSequencesKeepOrder(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 6)

	for i := 0; i < 50; i++ {
		var lists [][]string
		f.Fuzz(&lists)

		var values []document.Value
		var expected []interface{}

		for _, list := range lists {
			seq := document.NewSequence()
			for _, item := range list {
				seq = seq.Append(document.NewString(item))
				expected = append(expected, item)
			}
			values = append(values, seq)
		}

		result := mustCombine(t, values...)
		if len(lists) == 0 {
			require.True(t, result.IsAbsent())
			continue
		}
		if expected == nil {
			expected = []interface{}{}
		}
		require.Equal(t, expected, result.AsInterface(), fmt.Sprintf("lists: %#v", lists))
	}
}

func TestFuzzedFlatMappingsLastWins(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 8)

	for i := 0; i < 50; i++ {
		var first, second map[string]int
		f.Fuzz(&first)
		f.Fuzz(&second)

		result := mustCombine(t, mappingFromGo(first), mappingFromGo(second))

		expected := map[string]interface{}{}
		for k, v := range first {
			expected[k] = v
		}
		for k, v := range second {
			expected[k] = v
		}

		require.Equal(t, expected, result.AsInterface())

		// keys from the first mapping keep their leading positions
		keys := result.Keys()
		firstKeys := sortedKeys(first)
		require.Equal(t, firstKeys, keys[:len(firstKeys)])
	}
}

func mappingFromGo(m map[string]int) document.Value {
	result := document.NewMapping()
	for _, k := range sortedKeys(m) {
		result.Set(k, document.NewInt(m[k]))
	}
	return result
}

func sortedKeys(m map[string]int) []string {
	keys := []string{}
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
