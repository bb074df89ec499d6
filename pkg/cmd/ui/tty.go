// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var levelColors = map[Level]lipgloss.Color{
	LevelInfo:    lipgloss.Color("4"),
	LevelWarning: lipgloss.Color("3"),
	LevelError:   lipgloss.Color("1"),
	LevelSuccess: lipgloss.Color("2"),
	LevelDebug:   lipgloss.Color("8"),
}

type TTY struct {
	debug  bool
	stdout io.Writer
	stderr io.Writer

	badges map[Level]string
}

var _ UI = TTY{}

func NewTTY(debug bool) TTY {
	return NewCustomWriterTTY(debug, os.Stdout, os.Stderr)
}

// Used for testing whether TTY writes correct output to stdout/stderr
func NewCustomWriterTTY(debug bool, stdout, stderr io.Writer) TTY {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	t := TTY{debug: debug, stdout: stdout, stderr: stderr, badges: map[Level]string{}}

	for level, color := range levelColors {
		// colors are only emitted when the destination is a terminal
		renderer := lipgloss.NewRenderer(t.writerFor(level))
		t.badges[level] = renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(color).
			Padding(0, 1).
			Render(level.Title())
	}

	return t
}

func (t TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.stdout, str, args...)
}

func (t TTY) Infof(str string, args ...interface{})    { t.notify(LevelInfo, str, args...) }
func (t TTY) Warnf(str string, args ...interface{})    { t.notify(LevelWarning, str, args...) }
func (t TTY) Errorf(str string, args ...interface{})   { t.notify(LevelError, str, args...) }
func (t TTY) Successf(str string, args ...interface{}) { t.notify(LevelSuccess, str, args...) }

func (t TTY) Debugf(str string, args ...interface{}) {
	if t.debug {
		fmt.Fprintf(t.stderr, str, args...)
	}
}

func (t TTY) DebugWriter() io.Writer {
	if t.debug {
		return t.stderr
	}
	return noopWriter{}
}

func (t TTY) notify(level Level, str string, args ...interface{}) {
	msg := strings.TrimRight(fmt.Sprintf(str, args...), "\n")
	fmt.Fprintf(t.writerFor(level), "%s %s\n", t.badges[level], msg)
}

func (t TTY) writerFor(level Level) io.Writer {
	switch level {
	case LevelInfo, LevelSuccess:
		return t.stdout
	default:
		return t.stderr
	}
}

type noopWriter struct{}

var _ io.Writer = noopWriter{}

func (w noopWriter) Write(data []byte) (int, error) { return len(data), nil }
