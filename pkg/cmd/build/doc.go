// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package build implements the "build" command: it merges every YAML file found
under an input directory into a single output file.

Flag values may be defaulted from a configuration file (see pkg/config);
flags given explicitly on the command line always win.
*/
package build
