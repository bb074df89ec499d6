// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"

	"carvel.dev/ymlbuilder/pkg/orderedmap"
	"gopkg.in/yaml.v3"
)

type Kind int

const (
	KindAbsent Kind = iota
	KindMapping
	KindSequence
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	default:
		return fmt.Sprintf("unknown kind (%d)", int(k))
	}
}

// Scalar is a YAML leaf. Tag is the resolved short tag (eg !!str, !!int).
type Scalar struct {
	Tag  string
	Text string

	style yaml.Style
}

const (
	TagNull  = "!!null"
	TagStr   = "!!str"
	TagInt   = "!!int"
	TagFloat = "!!float"
	TagBool  = "!!bool"
)

// Value is a tagged union over Absent, Mapping, Sequence and Scalar.
// Mapping entries are stored as Values inside an *orderedmap.Map.
type Value struct {
	kind     Kind
	mapping  *orderedmap.Map
	sequence []Value
	scalar   Scalar
}

func NewAbsent() Value { return Value{} }

// NewMapping returns an empty Mapping.
func NewMapping() Value {
	return Value{kind: KindMapping, mapping: orderedmap.NewMap()}
}

func NewSequence(items ...Value) Value {
	return Value{kind: KindSequence, sequence: append([]Value{}, items...)}
}

func NewScalar(tag, text string) Value {
	return Value{kind: KindScalar, scalar: Scalar{Tag: tag, Text: text}}
}

func NewString(text string) Value { return NewScalar(TagStr, text) }

func NewInt(i int) Value { return NewScalar(TagInt, fmt.Sprintf("%d", i)) }

func NewBool(b bool) Value { return NewScalar(TagBool, fmt.Sprintf("%t", b)) }

func NewNull() Value { return NewScalar(TagNull, "null") }

func (v Value) Kind() Kind       { return v.kind }
func (v Value) IsAbsent() bool   { return v.kind == KindAbsent }
func (v Value) IsMapping() bool  { return v.kind == KindMapping }
func (v Value) IsSequence() bool { return v.kind == KindSequence }
func (v Value) IsScalar() bool   { return v.kind == KindScalar }

func (v Value) Scalar() Scalar {
	v.mustBe(KindScalar)
	return v.scalar
}

// Items returns the elements of a Sequence. The slice must not be modified.
func (v Value) Items() []Value {
	v.mustBe(KindSequence)
	return v.sequence
}

func (v Value) Len() int {
	switch v.kind {
	case KindMapping:
		return v.mapping.Len()
	case KindSequence:
		return len(v.sequence)
	default:
		return 0
	}
}

func (v Value) Keys() []string {
	v.mustBe(KindMapping)
	return v.mapping.Keys()
}

func (v Value) Get(key string) (Value, bool) {
	v.mustBe(KindMapping)
	val, found := v.mapping.Get(key)
	if !found {
		return Value{}, false
	}
	return val.(Value), true
}

// Set replaces key's value in place, or appends key when it is new.
// Mappings share storage between copies of a Value, so Set is visible through all of them.
func (v Value) Set(key string, val Value) {
	v.mustBe(KindMapping)
	if val.IsAbsent() {
		panic(fmt.Sprintf("Unexpected absent value for key '%s'", key))
	}
	v.mapping.Set(key, val)
}

func (v Value) Iterate(iterFunc func(key string, val Value)) {
	v.mustBe(KindMapping)
	v.mapping.Iterate(func(k string, val interface{}) {
		iterFunc(k, val.(Value))
	})
}

// Append returns a Sequence with items added after v's own items.
func (v Value) Append(items ...Value) Value {
	v.mustBe(KindSequence)
	result := make([]Value, 0, len(v.sequence)+len(items))
	result = append(result, v.sequence...)
	result = append(result, items...)
	return Value{kind: KindSequence, sequence: result}
}

// DeepCopy returns a Value that shares no mutable storage with v.
func (v Value) DeepCopy() Value {
	switch v.kind {
	case KindAbsent, KindScalar:
		return v

	case KindMapping:
		result := NewMapping()
		v.Iterate(func(k string, val Value) {
			result.mapping.Set(k, val.DeepCopy())
		})
		return result

	case KindSequence:
		items := make([]Value, len(v.sequence))
		for i, item := range v.sequence {
			items[i] = item.DeepCopy()
		}
		return Value{kind: KindSequence, sequence: items}

	default:
		panic(fmt.Sprintf("Unexpected value kind %s", v.kind))
	}
}

// AsInterface converts v into plain Go values: map[string]interface{},
// []interface{}, and scalars decoded by their YAML tag (string, int, float64,
// bool, nil). Absent converts to nil.
func (v Value) AsInterface() interface{} {
	switch v.kind {
	case KindAbsent:
		return nil

	case KindMapping:
		result := map[string]interface{}{}
		v.Iterate(func(k string, val Value) {
			result[k] = val.AsInterface()
		})
		return result

	case KindSequence:
		result := []interface{}{}
		for _, item := range v.sequence {
			result = append(result, item.AsInterface())
		}
		return result

	case KindScalar:
		var result interface{}
		err := scalarNode(v.scalar).Decode(&result)
		if err != nil {
			return v.scalar.Text
		}
		return result

	default:
		panic(fmt.Sprintf("Unexpected value kind %s", v.kind))
	}
}

func (v Value) String() string {
	bs, err := v.AsBytes(PrinterOpts{})
	if err != nil {
		return fmt.Sprintf("<%s: %s>", v.kind, err)
	}
	return string(bs)
}

func (v Value) mustBe(kind Kind) {
	if v.kind != kind {
		panic(fmt.Sprintf("Expected value to be a %s, but was a %s", kind, v.kind))
	}
}

// Equal reports whether a and b have the same shape, key order and scalar
// tag/text. Scalar presentation (quoting style) is ignored.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindAbsent:
		return true

	case KindScalar:
		return a.scalar.Tag == b.scalar.Tag && a.scalar.Text == b.scalar.Text

	case KindSequence:
		if len(a.sequence) != len(b.sequence) {
			return false
		}
		for i := range a.sequence {
			if !Equal(a.sequence[i], b.sequence[i]) {
				return false
			}
		}
		return true

	case KindMapping:
		aKeys, bKeys := a.Keys(), b.Keys()
		if len(aKeys) != len(bKeys) {
			return false
		}
		for i, key := range aKeys {
			if bKeys[i] != key {
				return false
			}
			aVal, _ := a.Get(key)
			bVal, _ := b.Get(key)
			if !Equal(aVal, bVal) {
				return false
			}
		}
		return true

	default:
		panic(fmt.Sprintf("Unexpected value kind %s", a.kind))
	}
}
