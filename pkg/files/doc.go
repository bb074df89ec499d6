// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading data from file
or file-like Sources and for writing the output file.

All filesystem access goes through the FS interface so that the rest of
ymlbuilder can be exercised without touching disk. OSFS is the real
implementation; it walks directories in lexical order, which is the order
that later determines merge precedence.

Files are classified by Type. Only TypeYAML files (.yml or .yaml, in any
letter case) take part in a build.
*/
package files
