// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package builder

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindInvalidOutputFile ErrorKind = iota + 1
	KindInvalidOutputPath
	KindReadFiles
	KindYmlBuild
	KindWriteOutputFile
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidOutputFile:
		return "InvalidOutputFileError"
	case KindInvalidOutputPath:
		return "InvalidOutputPathError"
	case KindReadFiles:
		return "ReadFilesError"
	case KindYmlBuild:
		return "YmlBuildError"
	case KindWriteOutputFile:
		return "WriteOutputFileError"
	default:
		return fmt.Sprintf("UnknownError(%d)", int(k))
	}
}

// Code is a stable identifier suitable for scripts and logs.
func (k ErrorKind) Code() string {
	switch k {
	case KindInvalidOutputFile:
		return "INVALID_OUTPUT_FILE"
	case KindInvalidOutputPath:
		return "INVALID_OUTPUT_PATH"
	case KindReadFiles:
		return "READ_FILES_ERROR"
	case KindYmlBuild:
		return "YML_BUILD_ERROR"
	case KindWriteOutputFile:
		return "WRITE_OUTPUT_FILE_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Error is the only error type returned by Builder.Execute.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func newError(kind ErrorKind, cause error, msg string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(msg, args...), Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Msg, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var builderErr *Error
	if errors.As(err, &builderErr) {
		return builderErr.Kind, true
	}
	return 0, false
}
