// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package builder sequences a build: validate the output target, discover YAML
files under the input directory, parse and fold them one at a time into a
merge.Merger, serialize the result and write it out.

Every failure is reported as a single *Error whose Kind is one of a closed set
(see ErrorKind). A missing input directory is not a failure: it produces an
output document with no content.
*/
package builder
