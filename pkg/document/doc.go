// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package document holds the format-agnostic representation of one parsed YAML
file (a Value) together with the Parser that produces it and the printer that
turns it back into YAML text.

A Value is exactly one of four kinds:

	KindAbsent    the file had no content (empty, comments only, or a bare null)
	KindMapping   string keys in insertion order (see pkg/orderedmap)
	KindSequence  an ordered list of Values
	KindScalar    a leaf: literal text plus its resolved YAML tag

Absent is distinct from an empty mapping ({}) or an empty sequence ([]).
The zero Value is Absent.

YAML parsing and encoding is delegated to gopkg.in/yaml.v3 working at the
yaml.Node level so that key order is never lost.
*/
package document
