// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build version of ymlbuilder.
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X carvel.dev/ymlbuilder/pkg/version.Version=0.1.0" ./cmd/ymlbuilder
var Version = "develop"
