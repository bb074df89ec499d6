// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package build

import (
	"fmt"
	"time"

	"carvel.dev/ymlbuilder/pkg/builder"
	"carvel.dev/ymlbuilder/pkg/cmd/ui"
	"carvel.dev/ymlbuilder/pkg/config"
	"carvel.dev/ymlbuilder/pkg/files"
	"carvel.dev/ymlbuilder/pkg/version"
	"github.com/spf13/cobra"
)

const (
	inputFlagName  = "input"
	outputFlagName = "output"
	indentFlagName = "indent"
	strictFlagName = "strict"
	diffFlagName   = "diff"
)

type BuildOptions struct {
	Input      string
	Output     string
	ConfigPath string
	Indent     int
	StrictYAML bool
	Diff       bool
	Debug      bool

	// flagChanged reports explicitly set flags; nil when options are
	// populated programmatically, in which case non-zero values count as set
	flagChanged func(name string) bool
}

func NewOptions() *BuildOptions {
	return &BuildOptions{}
}

func NewCmd(o *BuildOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "build",
		Aliases: []string{"b"},
		Short:   "Merge YAML files from a directory into one file (same as top-level command)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			o.flagChanged = cmd.Flags().Changed
			return o.Run()
		},
	}
	o.Set(cmd.Flags())
	return cmd
}

func (o *BuildOptions) Set(flags CmdFlags) {
	flags.StringVarP(&o.Input, inputFlagName, "i", "", "Directory to read YAML files from (recursively)")
	flags.StringVarP(&o.Output, outputFlagName, "o", "", "File to write the merged YAML to (.yml or .yaml)")
	flags.StringVar(&o.ConfigPath, "config", "",
		fmt.Sprintf("Configuration file (defaults to $%s or ./%s when present)", config.Env, config.DefaultFileName))
	flags.IntVar(&o.Indent, indentFlagName, 0, "Number of spaces used for indentation in the output (default 2)")
	flags.BoolVarP(&o.StrictYAML, strictFlagName, "s", false, "Configure to use _strict_ YAML subset")
	flags.BoolVar(&o.Diff, diffFlagName, false, "Print changes to the output file before writing it")
	flags.BoolVar(&o.Debug, "debug", false, "Enable debug output")
}

func (o *BuildOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug), files.NewOSFS())
}

func (o *BuildOptions) RunWithUI(ui ui.UI, fs files.FS) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	if len(cfg.Path) > 0 {
		ui.Debugf("config: %s\n", cfg.Path)
	}

	checked, err := cfg.CheckVersion(version.Version)
	if err != nil {
		return err
	}
	if !checked {
		ui.Debugf("skipping required_version check for version %s\n", version.Version)
	}

	resolved := o.withConfig(cfg)

	if len(resolved.Input) == 0 {
		return fmt.Errorf("Expected --%s (or '%s' in configuration file) to be specified", inputFlagName, inputFlagName)
	}
	if len(resolved.Output) == 0 {
		return fmt.Errorf("Expected --%s (or '%s' in configuration file) to be specified", outputFlagName, outputFlagName)
	}

	opts := builder.Opts{
		Indent:     resolved.Indent,
		StrictYAML: resolved.StrictYAML,
		ShowDiff:   resolved.Diff,
	}

	err = builder.NewBuilder(fs, ui, opts).Execute(resolved.Input, resolved.Output)
	if err != nil {
		ui.Errorf("Operation failed")
		return err
	}

	ui.Successf("Operation completed successfully")

	return nil
}

// withConfig fills every option not given explicitly from cfg.
func (o *BuildOptions) withConfig(cfg config.Config) BuildOptions {
	result := *o

	if !o.isSet(inputFlagName, len(o.Input) > 0) {
		result.Input = cfg.Input
	}
	if !o.isSet(outputFlagName, len(o.Output) > 0) {
		result.Output = cfg.Output
	}
	if !o.isSet(indentFlagName, o.Indent != 0) {
		result.Indent = cfg.Indent
	}
	if !o.isSet(strictFlagName, o.StrictYAML) {
		result.StrictYAML = cfg.Strict
	}
	if !o.isSet(diffFlagName, o.Diff) {
		result.Diff = cfg.Diff
	}

	return result
}

func (o *BuildOptions) isSet(name string, nonZero bool) bool {
	if o.flagChanged != nil {
		return o.flagChanged(name)
	}
	return nonZero
}
