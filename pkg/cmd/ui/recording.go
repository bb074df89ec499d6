// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

type Notice struct {
	Level   Level
	Message string
}

// RecordingUI keeps every notice in memory. Useful for tests and for
// callers that want to render notices themselves.
type RecordingUI struct {
	lock    sync.Mutex
	notices []Notice
	printed strings.Builder
}

var _ UI = &RecordingUI{}

func NewRecordingUI() *RecordingUI { return &RecordingUI{} }

func (r *RecordingUI) Printf(str string, args ...interface{}) {
	r.lock.Lock()
	defer r.lock.Unlock()
	fmt.Fprintf(&r.printed, str, args...)
}

func (r *RecordingUI) Infof(str string, args ...interface{})    { r.record(LevelInfo, str, args...) }
func (r *RecordingUI) Warnf(str string, args ...interface{})    { r.record(LevelWarning, str, args...) }
func (r *RecordingUI) Errorf(str string, args ...interface{})   { r.record(LevelError, str, args...) }
func (r *RecordingUI) Successf(str string, args ...interface{}) { r.record(LevelSuccess, str, args...) }
func (r *RecordingUI) Debugf(str string, args ...interface{})   { r.record(LevelDebug, str, args...) }

// DebugWriter records each written line as a debug notice.
func (r *RecordingUI) DebugWriter() io.Writer { return recordingWriter{r} }

func (r *RecordingUI) Notices() []Notice {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Notice{}, r.notices...)
}

// Messages returns the messages recorded at level, in order.
func (r *RecordingUI) Messages(level Level) []string {
	var result []string
	for _, notice := range r.Notices() {
		if notice.Level == level {
			result = append(result, notice.Message)
		}
	}
	return result
}

func (r *RecordingUI) Printed() string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.printed.String()
}

func (r *RecordingUI) record(level Level, str string, args ...interface{}) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.notices = append(r.notices, Notice{level, strings.TrimRight(fmt.Sprintf(str, args...), "\n")})
}

type recordingWriter struct {
	ui *RecordingUI
}

func (w recordingWriter) Write(data []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		w.ui.record(LevelDebug, "%s", line)
	}
	return len(data), nil
}
