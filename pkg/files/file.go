// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"path/filepath"
	"strings"
)

var (
	yamlExts = []string{".yaml", ".yml"}
)

type Type int

const (
	TypeUnknown Type = iota
	TypeYAML
)

// IsYAML reports whether path carries a YAML file extension (case-insensitive).
func IsYAML(path string) bool {
	return matchesExt(path, yamlExts)
}

type File struct {
	src     Source
	relPath string
}

// NewFiles expands paths into Files. "-" stands for stdin. Directories are
// walked recursively when recursive is set, in FS listing order.
func NewFiles(fs FS, paths []string, recursive bool) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewStdinSource())

		case fs.IsDirectory(path):
			if !recursive {
				return nil, fmt.Errorf("Expected file '%s' to not be a directory", path)
			}

			dirSrcs, err := NewSourcesFromDir(fs, path)
			if err != nil {
				return nil, err
			}
			fileSrcs = append(fileSrcs, dirSrcs...)

		default:
			fileSrcs = append(fileSrcs, NewLocalSource(fs, path, ""))
		}
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(fileSrc)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

// NewSourcesFromDir lists every file under dir (recursively) as a LocalSource.
func NewSourcesFromDir(fs FS, dir string) ([]Source, error) {
	paths, err := fs.ListFilesRecursively(dir)
	if err != nil {
		return nil, err
	}

	var srcs []Source
	for _, path := range paths {
		srcs = append(srcs, NewLocalSource(fs, path, dir))
	}
	return srcs, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

// Path is the filesystem path for local files and the relative path otherwise.
func (r *File) Path() string {
	if local, ok := r.src.(LocalSource); ok {
		return local.Path()
	}
	return r.relPath
}

func (r *File) Type() Type {
	switch {
	case matchesExt(r.RelativePath(), yamlExts):
		return TypeYAML
	default:
		return TypeUnknown
	}
}

func matchesExt(path string, exts []string) bool {
	filename := strings.ToLower(filepath.Base(path))
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
