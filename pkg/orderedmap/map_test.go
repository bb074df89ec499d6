// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"testing"

	"carvel.dev/ymlbuilder/pkg/orderedmap"
	"github.com/stretchr/testify/require"
)

func TestSetKeepsFirstSeenPosition(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 9)
	m.Set("c", 3)

	require.Equal(t, []string{"a", "b", "c"}, m.Keys())

	val, found := m.Get("a")
	require.True(t, found)
	require.Equal(t, 9, val)
	require.Equal(t, 3, m.Len())
}

func TestDeleteReindexes(t *testing.T) {
	m := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3},
	})

	require.True(t, m.Delete("a"))
	require.False(t, m.Delete("a"))

	m.Set("c", 30)
	m.Set("d", 4)

	require.Equal(t, []string{"b", "c", "d"}, m.Keys())

	val, found := m.Get("c")
	require.True(t, found)
	require.Equal(t, 30, val)

	_, found = m.Get("a")
	require.False(t, found)
}

func TestZeroValueMapIsUsable(t *testing.T) {
	var m orderedmap.Map
	m.Set("x", "y")

	val, found := m.Get("x")
	require.True(t, found)
	require.Equal(t, "y", val)
}

func TestIterateErrStopsOnError(t *testing.T) {
	m := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "a"}, {Key: "b"}, {Key: "c"}})

	var seen []string
	err := m.IterateErr(func(k string, _ interface{}) error {
		seen = append(seen, k)
		if k == "b" {
			return errStop
		}
		return nil
	})
	require.Equal(t, errStop, err)
	require.Equal(t, []string{"a", "b"}, seen)
}

type stopErr struct{}

func (stopErr) Error() string { return "stop" }

var errStop error = stopErr{}
