// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"path/filepath"
)

type Source interface {
	Description() string
	RelativePath() (string, error)
	Bytes() ([]byte, error)
}

var _ []Source = []Source{BytesSource{}, StdinSource{}, LocalSource{}}

type BytesSource struct {
	path string
	data []byte
}

func NewBytesSource(path string, data []byte) BytesSource { return BytesSource{path, data} }

func (s BytesSource) Description() string           { return s.path }
func (s BytesSource) RelativePath() (string, error) { return s.path, nil }
func (s BytesSource) Bytes() ([]byte, error)        { return s.data, nil }

type StdinSource struct{}

func NewStdinSource() StdinSource { return StdinSource{} }

func (s StdinSource) Description() string           { return "stdin.yml" }
func (s StdinSource) RelativePath() (string, error) { return "stdin.yml", nil }
func (s StdinSource) Bytes() ([]byte, error)        { return ReadStdin() }

type LocalSource struct {
	fs   FS
	path string
	dir  string
}

// NewLocalSource reads path through fs; dir (possibly empty) is the directory
// that path was discovered under.
func NewLocalSource(fs FS, path, dir string) LocalSource { return LocalSource{fs, path, dir} }

func (s LocalSource) Path() string { return s.path }

func (s LocalSource) Description() string { return fmt.Sprintf("file '%s'", s.path) }

func (s LocalSource) RelativePath() (string, error) {
	if s.dir == "" {
		return filepath.Base(s.path), nil
	}

	cleanPath, err := filepath.Abs(filepath.Clean(s.path))
	if err != nil {
		return "", err
	}

	cleanDir, err := filepath.Abs(filepath.Clean(s.dir))
	if err != nil {
		return "", err
	}

	result, err := filepath.Rel(cleanDir, cleanPath)
	if err != nil {
		return "", fmt.Errorf("unknown relative path for %s: %s", s.path, err)
	}

	return filepath.ToSlash(result), nil
}

func (s LocalSource) Bytes() ([]byte, error) { return s.fs.ReadText(s.path) }
