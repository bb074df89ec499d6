// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
)

const outputFileMode = 0644

type OutputFile struct {
	path string
	data []byte
}

func NewOutputFile(path string, data []byte) OutputFile {
	return OutputFile{path, data}
}

func (f OutputFile) Path() string  { return f.path }
func (f OutputFile) Bytes() []byte { return f.data }

// Create writes data next to the destination and renames it into place,
// so the destination either keeps its previous contents or has all of data.
func (f OutputFile) Create() error {
	dir, base := filepath.Split(f.path)
	if dir == "" {
		dir = "."
	}

	fd, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}

	tmpPath := fd.Name()
	renamed := false

	defer func() {
		if !renamed {
			os.Remove(tmpPath)
		}
	}()

	_, err = fd.Write(f.data)
	if err == nil {
		err = fd.Sync()
	}
	closeErr := fd.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}

	err = os.Chmod(tmpPath, outputFileMode)
	if err != nil {
		return err
	}

	err = os.Rename(tmpPath, f.path)
	if err != nil {
		return fmt.Errorf("Renaming into place: %s", err)
	}

	renamed = true
	return nil
}
