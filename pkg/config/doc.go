// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads optional defaults for ymlbuilder from a TOML file.

Lookup order for the file: the --config flag, then the environment variable
named by Env, then DefaultFileName in the working directory (only if it exists).

	input  = "config/parts"
	output = "build/config.yml"
	indent = 2
	strict = false
	diff   = false

	required_version = ">= 0.2.0"

Command-line flags always win over values from the file.
*/
package config
