// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"io"
)

// UI is the operator-facing notification sink. It is never used for control flow.
type UI interface {
	Printf(string, ...interface{})

	Infof(str string, args ...interface{})
	Warnf(str string, args ...interface{})
	Errorf(str string, args ...interface{})
	Successf(str string, args ...interface{})

	Debugf(string, ...interface{})
	DebugWriter() io.Writer
}

type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
	LevelSuccess
	LevelDebug
)

func (l Level) Title() string {
	switch l {
	case LevelInfo:
		return "⊚ INFO"
	case LevelWarning:
		return "⚠ WARNING"
	case LevelError:
		return "⨯ ERROR"
	case LevelSuccess:
		return "✓ OK"
	case LevelDebug:
		return "DEBUG"
	default:
		return "?"
	}
}
