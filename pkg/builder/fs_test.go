// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package builder_test

import (
	"fmt"

	"carvel.dev/ymlbuilder/pkg/files"
)

// fakeFS is an in-memory files.FS with injectable failures. Paths are used verbatim.
type fakeFS struct {
	dirs  []string
	files map[string]string
	// order is the listing order of every directory in dirs
	order []string

	listErr  error
	readErr  map[string]error
	mkdirErr error
	writeErr error

	written map[string]string
	calls   []string
}

var _ files.FS = &fakeFS{}

func (f *fakeFS) IsDirectory(path string) bool {
	f.calls = append(f.calls, "IsDirectory "+path)
	for _, dir := range f.dirs {
		if dir == path {
			return true
		}
	}
	return false
}

func (f *fakeFS) ListFilesRecursively(path string) ([]string, error) {
	f.calls = append(f.calls, "ListFilesRecursively "+path)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.order, nil
}

func (f *fakeFS) ReadText(path string) ([]byte, error) {
	f.calls = append(f.calls, "ReadText "+path)
	if err, found := f.readErr[path]; found {
		return nil, err
	}
	if content, found := f.written[path]; found {
		return []byte(content), nil
	}
	if content, found := f.files[path]; found {
		return []byte(content), nil
	}
	return nil, fmt.Errorf("open %s: no such file or directory", path)
}

func (f *fakeFS) WriteText(path string, data []byte) error {
	f.calls = append(f.calls, "WriteText "+path)
	if f.writeErr != nil {
		return f.writeErr
	}
	if f.written == nil {
		f.written = map[string]string{}
	}
	f.written[path] = string(data)
	return nil
}

func (f *fakeFS) MakeDirectories(path string) error {
	f.calls = append(f.calls, "MakeDirectories "+path)
	if f.mkdirErr != nil {
		return f.mkdirErr
	}
	f.dirs = append(f.dirs, path)
	return nil
}
