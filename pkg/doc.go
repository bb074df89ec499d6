// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of ymlbuilder.

Packages are layered; each depends on the ones below it only as much as
required.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

ymlbuilder is built into a single command-line tool:

	./cmd/ymlbuilder

# Commands

The root command builds; "build" is the same command under its own name.
"fmt" and "version" round out the set.

	(1) => pkg/cmd => (6)
	(1) => pkg/cmd/build => (6)

# Building

The builder validates the output target, lists input files, and folds each
parsed file into the merge engine before writing the result atomically.

	(1) => pkg/builder => (4)
	(1) => pkg/merge => (1)

# YAML Structures

YAML is parsed with gopkg.in/yaml.v3 at the node level and converted into
document.Value, a small tagged union (absent, mapping, sequence, scalar)
that keeps mapping key order through orderedmap.Map.

	(5) => pkg/document => (2)
	(1) => pkg/orderedmap => (0)
	(1) => pkg/filepos => (0)

# Utilities

	(4) => pkg/files => (0)
	(4) => pkg/cmd/ui => (0)
	(1) => pkg/config => (1)
	(1) => pkg/spell => (0)
	(2) => pkg/version => (0)

# Dependencies

	pkg/cmd:
	- pkg/cmd/build
	- pkg/cmd/ui
	- pkg/document
	- pkg/files
	- pkg/version
	pkg/cmd/build:
	- pkg/builder
	- pkg/cmd/ui
	- pkg/config
	- pkg/files
	- pkg/version
	pkg/builder:
	- pkg/cmd/ui
	- pkg/document
	- pkg/files
	- pkg/merge
	pkg/merge:
	- pkg/document
	pkg/document:
	- pkg/orderedmap
	- pkg/filepos
	pkg/config:
	- pkg/spell
*/
package pkg
