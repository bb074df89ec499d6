// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	cmdbuild "carvel.dev/ymlbuilder/pkg/cmd/build"
	"carvel.dev/ymlbuilder/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type YmlbuilderOptions struct{}

func NewDefaultYmlbuilderOptions() *YmlbuilderOptions {
	return &YmlbuilderOptions{}
}

func NewDefaultYmlbuilderCmd() *cobra.Command {
	return NewYmlbuilderCmd(NewDefaultYmlbuilderOptions())
}

func NewYmlbuilderCmd(o *YmlbuilderOptions) *cobra.Command {
	cmd := cmdbuild.NewCmd(cmdbuild.NewOptions())

	cmd.Use = "ymlbuilder"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "ymlbuilder merges a directory of YAML files into one"
	cmd.Long = `ymlbuilder merges a directory of YAML files into one.

Files are read recursively in lexical order; later files take precedence.
Mappings are merged key by key, top-level sequences are concatenated,
and scalars are replaced.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdbuild.NewCmd(cmdbuild.NewOptions()))
	cmd.AddCommand(NewFmtCmd(NewFmtOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
