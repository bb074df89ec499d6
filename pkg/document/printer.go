// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const DefaultIndent = 2

// AbsentBytes is how a document without content is written out.
var AbsentBytes = []byte("null\n")

type PrinterOpts struct {
	Indent int
}

type Printer struct {
	writer io.Writer
	opts   PrinterOpts
}

func NewPrinter(writer io.Writer, opts PrinterOpts) Printer {
	if opts.Indent <= 0 {
		opts.Indent = DefaultIndent
	}
	return Printer{writer, opts}
}

// Print writes val as a single YAML document. Keys and items are written in
// their stored order.
func (p Printer) Print(val Value) error {
	if val.IsAbsent() {
		_, err := p.writer.Write(AbsentBytes)
		return err
	}

	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(p.opts.Indent)

	err := enc.Encode(toNode(val))
	if err != nil {
		return fmt.Errorf("Encoding YAML: %s", err)
	}

	return enc.Close()
}

func (v Value) AsBytes(opts PrinterOpts) ([]byte, error) {
	buf := new(bytes.Buffer)

	err := NewPrinter(buf, opts).Print(v)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func toNode(val Value) *yaml.Node {
	switch val.kind {
	case KindAbsent:
		return scalarNode(Scalar{Tag: TagNull, Text: "null"})

	case KindMapping:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		val.Iterate(func(k string, v Value) {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: TagStr, Value: k}, toNode(v))
		})
		return node

	case KindSequence:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range val.sequence {
			node.Content = append(node.Content, toNode(item))
		}
		return node

	case KindScalar:
		return scalarNode(val.scalar)

	default:
		panic(fmt.Sprintf("Unexpected value kind %s", val.kind))
	}
}

func scalarNode(s Scalar) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: s.Tag, Value: s.Text, Style: s.style}
}
