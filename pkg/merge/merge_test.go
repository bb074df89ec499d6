// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package merge_test

import (
	"errors"
	"strings"
	"testing"

	"carvel.dev/ymlbuilder/pkg/document"
	"carvel.dev/ymlbuilder/pkg/merge"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/require"
)

func parseAll(docs ...string) []document.Value {
	var result []document.Value
	for _, doc := range docs {
		result = append(result, document.MustParse(doc))
	}
	return result
}

func requireCombined(t *testing.T, expected string, docs ...string) {
	t.Helper()

	result, err := merge.Combine(parseAll(docs...))
	require.NoError(t, err)

	expectedVal := document.MustParse(expected)
	if !document.Equal(expectedVal, result) {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n", difflib.PPDiff(
			strings.Split(expectedVal.String(), "\n"), strings.Split(result.String(), "\n")))
	}
}

func TestCombineEmptyAndAbsent(t *testing.T) {
	result, err := merge.Combine(nil)
	require.NoError(t, err)
	require.True(t, result.IsAbsent())

	result, err = merge.Combine([]document.Value{document.NewAbsent(), document.NewAbsent()})
	require.NoError(t, err)
	require.True(t, result.IsAbsent())

	result, err = merge.Combine([]document.Value{document.NewAbsent()})
	require.NoError(t, err)
	require.True(t, result.IsAbsent())
}

func TestCombineSequencesConcatenate(t *testing.T) {
	requireCombined(t, "[1, 2, 3, 4]", "[1, 2]", "[3, 4]")
	requireCombined(t, "[1, 1, 1]", "[1]", "[1, 1]")
	requireCombined(t, "[a, b]", "[]", "[a]", "[]", "[b]")
}

func TestCombineMappingOverride(t *testing.T) {
	result, err := merge.Combine(parseAll("{a: 1, b: 2}", "{a: 9, c: 3}"))
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b", "c"}, result.Keys())
	require.Equal(t, map[string]interface{}{"a": 9, "b": 2, "c": 3}, result.AsInterface())
}

func TestCombineDeepMerge(t *testing.T) {
	requireCombined(t, "{a: {x: 1, y: 2}}", "{a: {x: 1}}", "{a: {y: 2}}")

	requireCombined(t, `
server:
  host: example.com
  port: 8443
  tls:
    enabled: true
    cert: /etc/cert
replicas: 3
`, `
server:
  host: localhost
  port: 8080
  tls:
    enabled: false
`, `
replicas: 3
server:
  tls:
    cert: /etc/cert
    enabled: true
  host: example.com
  port: 8443
`)
}

func TestCombineNonMappingOverwritesInPlace(t *testing.T) {
	// nested sequences are replaced, not concatenated
	requireCombined(t, "{list: [3], after: 1}", "{list: [1, 2], after: 1}", "{list: [3]}")
	// mapping replaced by scalar and scalar by mapping
	requireCombined(t, "{a: 1, b: {x: 1}}", "{a: {x: 1}, b: 2}", "{a: 1, b: {x: 1}}")
	// explicit null overwrites too
	requireCombined(t, "{a: ~, b: 2}", "{a: {x: 1}, b: 2}", "{a: ~}")
}

func TestCombineAbsentIsTransparent(t *testing.T) {
	withAbsent := []document.Value{
		document.MustParse("{b: 1}"),
		document.NewAbsent(),
		document.MustParse("{a: 2}"),
	}
	withoutAbsent := []document.Value{withAbsent[0], withAbsent[2]}

	r1, err := merge.Combine(withAbsent)
	require.NoError(t, err)
	r2, err := merge.Combine(withoutAbsent)
	require.NoError(t, err)

	require.True(t, document.Equal(r1, r2))
	require.Equal(t, []string{"b", "a"}, r1.Keys())
}

func TestCombineScalars(t *testing.T) {
	requireCombined(t, "second", "first", "second")
	requireCombined(t, "42", "first", "", "42")
}

func TestCombineShapeConflicts(t *testing.T) {
	cases := []struct {
		docs     []string
		existing document.Kind
		incoming document.Kind
		index    int
	}{
		{[]string{"{a: 1}", "[1]"}, document.KindMapping, document.KindSequence, 1},
		{[]string{"[1]", "{a: 1}"}, document.KindSequence, document.KindMapping, 1},
		{[]string{"", "[1]", "", "scalar"}, document.KindSequence, document.KindScalar, 3},
		{[]string{"scalar", "{a: 1}"}, document.KindScalar, document.KindMapping, 1},
		{[]string{"{a: 1}", "{b: 2}", "text"}, document.KindMapping, document.KindScalar, 2},
	}

	for _, tc := range cases {
		result, err := merge.Combine(parseAll(tc.docs...))
		require.Error(t, err)
		require.True(t, result.IsAbsent(), "Expected no partial result")

		var conflictErr *merge.ShapeConflictError
		require.True(t, errors.As(err, &conflictErr))
		require.Equal(t, tc.existing, conflictErr.Existing)
		require.Equal(t, tc.incoming, conflictErr.Incoming)
		require.Equal(t, tc.index, conflictErr.Index)
		require.Contains(t, err.Error(), tc.existing.String())
		require.Contains(t, err.Error(), tc.incoming.String())
	}
}

func TestMergerStaysFailed(t *testing.T) {
	m := merge.NewMerger()
	require.NoError(t, m.Add(document.MustParse("[1]")))

	err := m.Add(document.MustParse("{a: 1}"))
	require.EqualError(t, err, "Cannot combine a sequence with a mapping (value at index 1)")

	require.Equal(t, err, m.Add(document.MustParse("[2]")))
	require.True(t, m.Result().IsAbsent())
}

func TestCombineDoesNotModifyInputs(t *testing.T) {
	inputs := parseAll("{a: {x: 1}, list: [1]}", "{a: {y: 2}, list: [2]}", "{a: {x: 3}}")
	snapshots := make([]string, len(inputs))
	for i, input := range inputs {
		snapshots[i] = input.String()
	}

	result, err := merge.Combine(inputs)
	require.NoError(t, err)

	for i, input := range inputs {
		require.Equal(t, snapshots[i], input.String())
	}

	// result does not alias inputs either
	a, _ := result.Get("a")
	a.Set("z", document.NewInt(0))
	require.Equal(t, snapshots[0], inputs[0].String())
}
