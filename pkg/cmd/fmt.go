// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"carvel.dev/ymlbuilder/pkg/cmd/ui"
	"carvel.dev/ymlbuilder/pkg/document"
	"carvel.dev/ymlbuilder/pkg/files"
	"github.com/spf13/cobra"
)

type FmtOptions struct {
	Files      []string
	StrictYAML bool
	Indent     int
	Debug      bool
}

func NewFmtOptions() *FmtOptions {
	return &FmtOptions{}
}

func NewFmtCmd(o *FmtOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Format YAML files",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil, "File (ie local path, directory, -) (can be specified multiple times)")
	cmd.Flags().BoolVarP(&o.StrictYAML, "strict", "s", false, "Configure to use _strict_ YAML subset")
	cmd.Flags().IntVar(&o.Indent, "indent", 0, "Number of spaces used for indentation (default 2)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *FmtOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug), files.NewOSFS())
}

// RunWithUI prints each YAML file as its own document, in the order given.
func (o *FmtOptions) RunWithUI(ui ui.UI, fs files.FS) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	filesToProcess, err := files.NewFiles(fs, o.Files, true)
	if err != nil {
		return err
	}

	parser := document.NewParser(document.ParserOpts{Strict: o.StrictYAML})
	printed := 0

	for _, file := range filesToProcess {
		if file.Type() != files.TypeYAML {
			ui.Warnf("'%s' is not a yml file, skipping...", file.Path())
			continue
		}

		data, err := file.Bytes()
		if err != nil {
			return err
		}

		val, err := parser.ParseBytes(data, file.Path())
		if err != nil {
			return err
		}

		bs, err := val.AsBytes(document.PrinterOpts{Indent: o.Indent})
		if err != nil {
			return err
		}

		if printed > 0 {
			ui.Printf("---\n")
		}
		ui.Printf("%s", bs)
		printed++
	}

	return nil
}
