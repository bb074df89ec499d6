// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
)

type Position struct {
	lineNum int // 1 based
	column  int // 1 based; 0 when not tracked
	file    string
	known   bool
}

func NewPosition(lineNum int) *Position {
	if lineNum <= 0 {
		panic("Lines are 1 based")
	}
	return &Position{lineNum: lineNum, known: true}
}

// NewPositionInFile returns the Position of line "lineNum" within the file "file"
func NewPositionInFile(lineNum int, file string) *Position {
	p := NewPosition(lineNum)
	p.file = file
	return p
}

// NewUnknownPosition is equivalent of zero value *Position
func NewUnknownPosition() *Position {
	return &Position{}
}

// NewUnknownPositionInFile produces a Position of a known file at an unknown line.
func NewUnknownPositionInFile(file string) *Position {
	return &Position{file: file}
}

// WithColumn returns a copy of p pointing at column within the same line.
func (p *Position) WithColumn(column int) *Position {
	newPos := p.DeepCopy()
	if column > 0 {
		newPos.column = column
	}
	return newPos
}

func (p *Position) IsKnown() bool { return p != nil && p.known }

func (p *Position) LineNum() int {
	if !p.IsKnown() {
		panic("Position is unknown")
	}
	return p.lineNum
}

func (p *Position) Column() int {
	if p == nil {
		return 0
	}
	return p.column
}

func (p *Position) GetFile() string {
	if p == nil {
		return ""
	}
	return p.file
}

// AsString renders the line only ("line 3"); the file is reported separately.
func (p *Position) AsString() string {
	if p.IsKnown() {
		return fmt.Sprintf("line %d", p.LineNum())
	}
	return "line ?"
}

func (p *Position) AsCompactString() string {
	filePrefix := p.GetFile()
	if len(filePrefix) > 0 {
		filePrefix += ":"
	}
	if !p.IsKnown() {
		return fmt.Sprintf("%s?", filePrefix)
	}
	if p.column > 0 {
		return fmt.Sprintf("%s%d:%d", filePrefix, p.LineNum(), p.column)
	}
	return fmt.Sprintf("%s%d", filePrefix, p.LineNum())
}

func (p *Position) DeepCopy() *Position {
	if p == nil {
		return nil
	}
	newPos := *p
	return &newPos
}
