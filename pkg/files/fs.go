// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the set of filesystem operations ymlbuilder depends on.
type FS interface {
	IsDirectory(path string) bool
	// ListFilesRecursively returns every non-directory entry under path.
	// The order defines merge precedence and must be deterministic.
	ListFilesRecursively(path string) ([]string, error)
	ReadText(path string) ([]byte, error)
	WriteText(path string, data []byte) error
	MakeDirectories(path string) error
}

type OSFS struct{}

var _ FS = OSFS{}

func NewOSFS() OSFS { return OSFS{} }

func (OSFS) IsDirectory(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

// ListFilesRecursively walks path depth-first with entries of each
// directory visited in lexical order.
func (OSFS) ListFilesRecursively(path string) ([]string, error) {
	var selectedPaths []string

	err := filepath.WalkDir(path, func(walkedPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		selectedPaths = append(selectedPaths, walkedPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Listing files '%s': %s", path, err)
	}

	return selectedPaths, nil
}

func (OSFS) ReadText(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSFS) WriteText(path string, data []byte) error {
	return NewOutputFile(path, data).Create()
}

func (OSFS) MakeDirectories(path string) error {
	return os.MkdirAll(path, 0755)
}
