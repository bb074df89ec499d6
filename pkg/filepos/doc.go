// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a file)
and line number (optionally a column) within that source.

File positions are used when reporting YAML errors to the user. The
zero-value of Position (can be created using NewUnknownPosition()) represents
a location that is not known.
*/
package filepos
