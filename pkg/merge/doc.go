// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package merge folds an ordered sequence of document.Values into one.

Rules, applied left to right:

	absent    + anything   -> anything (absent values are skipped)
	sequence  + sequence   -> concatenation, earlier items first
	mapping   + mapping    -> deep merge: new keys appended, nested mappings
	                          merged recursively, any other value overwritten in place
	scalar    + scalar     -> the later scalar
	otherwise              -> *ShapeConflictError

The package has no side effects: inputs are never modified, and a conflict
aborts the fold without a partial result.
*/
package merge
