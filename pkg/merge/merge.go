// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package merge

import (
	"fmt"

	"carvel.dev/ymlbuilder/pkg/document"
)

type ShapeConflictError struct {
	Existing document.Kind
	Incoming document.Kind
	// Index is the position of the incoming value within the fold
	Index int
}

func (e *ShapeConflictError) Error() string {
	return fmt.Sprintf("Cannot combine a %s with a %s (value at index %d)", e.Existing, e.Incoming, e.Index)
}

// Merger is a left fold over Values. The zero Merger is ready to use.
type Merger struct {
	result document.Value
	added  int
	err    error
}

func NewMerger() *Merger { return &Merger{} }

// Add folds val into the result. Once Add fails, the Merger stays failed.
func (m *Merger) Add(val document.Value) error {
	if m.err != nil {
		return m.err
	}

	idx := m.added
	m.added++

	result, err := combine(m.result, val, idx)
	if err != nil {
		m.err = err
		m.result = document.Value{}
		return err
	}

	m.result = result
	return nil
}

// Result returns the combined value; Absent when nothing but absent values were added.
func (m *Merger) Result() document.Value { return m.result }

// Combine merges values in order.
func Combine(values []document.Value) (document.Value, error) {
	m := NewMerger()
	for _, val := range values {
		err := m.Add(val)
		if err != nil {
			return document.Value{}, err
		}
	}
	return m.Result(), nil
}

// combine owns result (it is a private deep copy) and never retains incoming storage.
func combine(result, incoming document.Value, idx int) (document.Value, error) {
	if incoming.IsAbsent() {
		return result, nil
	}

	conflictErr := &ShapeConflictError{Existing: result.Kind(), Incoming: incoming.Kind(), Index: idx}

	switch result.Kind() {
	case document.KindAbsent:
		return incoming.DeepCopy(), nil

	case document.KindSequence:
		if !incoming.IsSequence() {
			return document.Value{}, conflictErr
		}
		return result.Append(incoming.DeepCopy().Items()...), nil

	case document.KindMapping:
		if !incoming.IsMapping() {
			return document.Value{}, conflictErr
		}
		mergeMappings(result, incoming)
		return result, nil

	case document.KindScalar:
		if !incoming.IsScalar() {
			return document.Value{}, conflictErr
		}
		return incoming, nil

	default:
		panic(fmt.Sprintf("Unexpected value kind %s", result.Kind()))
	}
}

func mergeMappings(dst, src document.Value) {
	src.Iterate(func(key string, srcVal document.Value) {
		dstVal, found := dst.Get(key)
		if found && dstVal.IsMapping() && srcVal.IsMapping() {
			mergeMappings(dstVal, srcVal)
			return
		}
		dst.Set(key, srcVal.DeepCopy())
	})
}
