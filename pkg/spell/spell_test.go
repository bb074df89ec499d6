// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell_test

import (
	"testing"

	"carvel.dev/ymlbuilder/pkg/spell"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		dist int
	}{
		{"", "", 0},
		{"input", "input", 0},
		{"inptu", "input", 1},
		{"indnet", "indent", 1},
		{"otput", "output", 1},
		{"", "diff", 4},
		{"strict", "strcit", 1},
		{"kitten", "sitting", 3},
	}

	for _, tc := range cases {
		require.Equal(t, tc.dist, spell.Distance(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
		require.Equal(t, tc.dist, spell.Distance(tc.b, tc.a), "%q vs %q", tc.b, tc.a)
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"input", "output", "indent", "strict", "diff", "required_version"}

	suggestion, ok := spell.Suggest("inptu", candidates)
	require.True(t, ok)
	require.Equal(t, "input", suggestion)

	suggestion, ok = spell.Suggest("Required_Versoin", candidates)
	require.True(t, ok)
	require.Equal(t, "required_version", suggestion)

	_, ok = spell.Suggest("colors", candidates)
	require.False(t, ok)

	_, ok = spell.Suggest("df", candidates)
	require.False(t, ok)
}
