// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package builder

import (
	"fmt"
	"path/filepath"
	"strings"

	"carvel.dev/ymlbuilder/pkg/cmd/ui"
	"carvel.dev/ymlbuilder/pkg/document"
	"carvel.dev/ymlbuilder/pkg/files"
	"carvel.dev/ymlbuilder/pkg/merge"
	"github.com/k14s/difflib"
)

type Opts struct {
	Indent     int
	StrictYAML bool
	// ShowDiff prints the difference between the previous and the new output
	ShowDiff bool
}

// Builder holds no per-run state; Execute may be called repeatedly.
type Builder struct {
	fs   files.FS
	ui   ui.UI
	opts Opts
}

func NewBuilder(fs files.FS, ui ui.UI, opts Opts) *Builder {
	return &Builder{fs, ui, opts}
}

// Execute merges every YAML file under inputDir into the file at outputPath.
// Relative paths are resolved against the working directory.
func (b *Builder) Execute(inputDir, outputPath string) error {
	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return newError(KindInvalidOutputPath, err, "Resolving output path")
	}

	b.ui.Infof("Checking output file path...")

	if !files.IsYAML(outputPath) {
		return newError(KindInvalidOutputFile, nil,
			"Expected output file '%s' to have a .yml or .yaml extension", outputPath)
	}

	inputDir, err = filepath.Abs(inputDir)
	if err != nil {
		return newError(KindReadFiles, err, "Resolving input directory")
	}

	b.ui.Infof("Checking input directory...")

	hasInput := b.fs.IsDirectory(inputDir)
	if hasInput {
		b.ui.Successf("Input directory found")
	} else {
		b.ui.Warnf("Input directory '%s' does not exist or is not a directory, nothing to merge", inputDir)
	}

	err = b.prepareOutputDir(outputPath)
	if err != nil {
		return err
	}

	b.ui.Successf("Output file seems valid")

	var sources []*files.File

	if hasInput {
		sources, err = b.sourceFiles(inputDir, outputPath)
		if err != nil {
			return err
		}
	}

	b.ui.Infof("Building ymls...")

	result, err := b.combine(sources)
	if err != nil {
		return err
	}

	resultBytes, err := result.AsBytes(document.PrinterOpts{Indent: b.opts.Indent})
	if err != nil {
		return newError(KindYmlBuild, err, "Serializing combined document")
	}

	b.ui.Successf("Build successful")

	if b.opts.ShowDiff {
		b.printDiff(outputPath, resultBytes)
	}

	b.ui.Infof("Writing file '%s'...", outputPath)

	err = b.fs.WriteText(outputPath, resultBytes)
	if err != nil {
		b.ui.Errorf("%s (%s)", err, KindWriteOutputFile.Code())
		return newError(KindWriteOutputFile, err, "Unable to write file '%s'", outputPath)
	}

	b.ui.Successf("Write successful")

	return nil
}

func (b *Builder) prepareOutputDir(outputPath string) error {
	parentDir := filepath.Dir(outputPath)

	if b.fs.IsDirectory(parentDir) {
		return nil
	}

	b.ui.Warnf("Output directory '%s' does not exist, creating...", parentDir)

	err := b.fs.MakeDirectories(parentDir)
	if err != nil {
		return newError(KindInvalidOutputPath, err, "Unable to create the output directory '%s'", parentDir)
	}

	return nil
}

// sourceFiles lists YAML files under inputDir in traversal order.
func (b *Builder) sourceFiles(inputDir, outputPath string) ([]*files.File, error) {
	srcs, err := files.NewSourcesFromDir(b.fs, inputDir)
	if err != nil {
		return nil, newError(KindReadFiles, err, "An error occurred while reading source directory '%s'", inputDir)
	}

	var result []*files.File

	for _, src := range srcs {
		file, err := files.NewFileFromSource(src)
		if err != nil {
			return nil, newError(KindReadFiles, err, "An error occurred while reading source directory '%s'", inputDir)
		}

		switch {
		case file.Path() == outputPath:
			b.ui.Warnf("'%s' is the output file, skipping...", file.Path())

		case file.Type() != files.TypeYAML:
			b.ui.Warnf("'%s' is not a yml file, skipping...", file.Path())

		default:
			result = append(result, file)
		}
	}

	debugOut := b.ui.DebugWriter()
	for i, file := range result {
		fmt.Fprintf(debugOut, "source %d: %s\n", i, file.RelativePath())
	}

	return result, nil
}

// combine reads, parses and folds each file before touching the next one;
// file order is merge precedence.
func (b *Builder) combine(sources []*files.File) (document.Value, error) {
	merger := merge.NewMerger()
	parser := document.NewParser(document.ParserOpts{Strict: b.opts.StrictYAML})

	for _, file := range sources {
		data, err := file.Bytes()
		if err != nil {
			return document.Value{}, newError(KindReadFiles, err, "Reading file '%s'", file.Path())
		}

		val, err := parser.ParseBytes(data, file.Path())
		if err != nil {
			b.ui.Errorf("Invalid yml: %s", err)
			return document.Value{}, newError(KindYmlBuild, err, "Failed when building ymls")
		}

		b.ui.Debugf("merging %s (%s)\n", file.RelativePath(), val.Kind())

		err = merger.Add(val)
		if err != nil {
			b.ui.Errorf("Invalid yml: '%s': %s", file.Path(), err)
			return document.Value{}, newError(KindYmlBuild, err, "Failed when building ymls: combining file '%s'", file.Path())
		}
	}

	return merger.Result(), nil
}

func (b *Builder) printDiff(outputPath string, newBytes []byte) {
	var oldLines []string

	if oldBytes, err := b.fs.ReadText(outputPath); err == nil {
		oldLines = strings.Split(string(oldBytes), "\n")
	}
	newLines := strings.Split(string(newBytes), "\n")

	changed := false
	for _, record := range difflib.Diff(oldLines, newLines) {
		if record.Delta != difflib.Common {
			changed = true
			break
		}
	}

	if !changed {
		b.ui.Infof("No changes to '%s'", outputPath)
		return
	}

	b.ui.Infof("Changes to '%s':", outputPath)
	b.ui.Printf("%s\n", difflib.PPDiff(oldLines, newLines))
}
