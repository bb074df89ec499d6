// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

This flavor of map is crucial in keeping the output of ymlbuilder deterministic
and stable: keys appear in the merged document in the order they were first seen.
*/
package orderedmap
