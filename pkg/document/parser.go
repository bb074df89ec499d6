// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"carvel.dev/ymlbuilder/pkg/filepos"
	"gopkg.in/yaml.v3"
)

var (
	// Plain scalars that YAML 1.1 consumers read as booleans
	ambiguousBoolValues = map[string]struct{}{
		"y": {}, "n": {}, "yes": {}, "no": {}, "on": {}, "off": {},
	}
)

type ParserOpts struct {
	// Strict rejects plain scalars whose meaning differs between YAML 1.1 and 1.2
	Strict bool
}

type Parser struct {
	opts           ParserOpts
	associatedName string
	expanding      map[*yaml.Node]struct{}

	// counters for the aliasing budget; reset by ParseBytes
	convertCount int
	aliasCount   int
	aliasDepth   int
}

func NewParser(opts ParserOpts) *Parser {
	return &Parser{opts: opts}
}

// ParseError is returned for malformed YAML. Path is the associated file name.
// Position is nil for syntax errors reported by the YAML decoder.
type ParseError struct {
	Path     string
	Position *filepos.Position
	Err      error
}

func (e *ParseError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("Parsing YAML: %s", e.Err)
	}
	return fmt.Sprintf("Parsing file '%s': %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseBytes turns data into exactly one Value. Documents without content
// (empty, whitespace or comments only, bare null) become Absent.
func (p *Parser) ParseBytes(data []byte, associatedName string) (Value, error) {
	p.associatedName = associatedName
	p.expanding = map[*yaml.Node]struct{}{}
	p.convertCount, p.aliasCount, p.aliasDepth = 0, 0, 0

	dec := yaml.NewDecoder(bytes.NewReader(data))

	var docs []*yaml.Node

	for {
		doc := &yaml.Node{}

		err := dec.Decode(doc)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Value{}, p.newErr(err)
		}

		docs = append(docs, doc)
	}

	switch len(docs) {
	case 0:
		return Value{}, nil
	case 1:
		// continue below
	default:
		return Value{}, p.newErr(fmt.Errorf("Expected at most one YAML document, but found %d", len(docs)))
	}

	doc := docs[0]
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Value{}, nil
	}

	root := p.resolveAlias(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.ShortTag() == TagNull {
		return Value{}, nil
	}

	return p.convert(doc.Content[0])
}

func (p *Parser) convert(node *yaml.Node) (Value, error) {
	p.convertCount++
	if p.aliasDepth > 0 {
		p.aliasCount++
	}
	if p.aliasCount > 100 && p.convertCount > 1000 &&
		float64(p.aliasCount)/float64(p.convertCount) > allowedAliasRatio(p.convertCount) {
		return Value{}, p.newNodeErr(node, "Document contains excessive aliasing")
	}

	switch node.Kind {
	case yaml.DocumentNode:
		return Value{}, p.newNodeErr(node, "Unexpected nested document")

	case yaml.AliasNode:
		target := node.Alias
		if _, found := p.expanding[target]; found {
			return Value{}, p.newNodeErr(node, fmt.Sprintf("Recursive alias '*%s'", node.Value))
		}
		p.expanding[target] = struct{}{}
		p.aliasDepth++
		defer func() {
			delete(p.expanding, target)
			p.aliasDepth--
		}()

		return p.convert(target)

	case yaml.MappingNode:
		return p.convertMapping(node)

	case yaml.SequenceNode:
		result := NewSequence()
		for _, itemNode := range node.Content {
			item, err := p.convert(itemNode)
			if err != nil {
				return Value{}, err
			}
			result.sequence = append(result.sequence, item)
		}
		return result, nil

	case yaml.ScalarNode:
		return p.convertScalar(node)

	default:
		return Value{}, p.newNodeErr(node, fmt.Sprintf("Unknown YAML node kind %d", node.Kind))
	}
}

func (p *Parser) convertMapping(node *yaml.Node) (Value, error) {
	result := NewMapping()
	explicitKeys := map[string]struct{}{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := p.resolveAlias(node.Content[i])
		valNode := node.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return Value{}, p.newNodeErr(keyNode, "Expected mapping key to be a scalar")
		}

		if keyNode.ShortTag() == "!!merge" {
			err := p.mergeInto(result, valNode)
			if err != nil {
				return Value{}, err
			}
			continue
		}

		key := keyNode.Value
		if _, found := explicitKeys[key]; found {
			return Value{}, p.newNodeErr(keyNode, fmt.Sprintf("Duplicate mapping key '%s'", key))
		}
		explicitKeys[key] = struct{}{}

		val, err := p.convert(valNode)
		if err != nil {
			return Value{}, err
		}

		result.Set(key, val)
	}

	return result, nil
}

// mergeInto applies '<<' merge keys: keys already present win over merged ones.
func (p *Parser) mergeInto(result Value, valNode *yaml.Node) error {
	var sources []*yaml.Node

	switch resolved := p.resolveAlias(valNode); resolved.Kind {
	case yaml.MappingNode:
		sources = append(sources, valNode)
	case yaml.SequenceNode:
		sources = append(sources, resolved.Content...)
	default:
		return p.newNodeErr(valNode, "Expected merge key value to be a mapping or a sequence of mappings")
	}

	for _, srcNode := range sources {
		src, err := p.convert(srcNode)
		if err != nil {
			return err
		}
		if !src.IsMapping() {
			return p.newNodeErr(srcNode, "Expected merge key value to be a mapping or a sequence of mappings")
		}
		src.Iterate(func(k string, v Value) {
			if _, found := result.Get(k); !found {
				result.Set(k, v)
			}
		})
	}

	return nil
}

func (p *Parser) convertScalar(node *yaml.Node) (Value, error) {
	tag := node.ShortTag()

	if p.opts.Strict && tag == TagStr && node.Style == 0 {
		if _, found := ambiguousBoolValues[strings.ToLower(node.Value)]; found {
			return Value{}, p.newNodeErr(node, fmt.Sprintf(
				"Ambiguous value '%s' is not allowed in strict mode (quote it to keep it a string)", node.Value))
		}
	}

	return Value{kind: KindScalar, scalar: Scalar{
		Tag:   tag,
		Text:  node.Value,
		style: node.Style &^ yaml.TaggedStyle,
	}}, nil
}

const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
)

// allowedAliasRatio is the share of converted nodes that may come from alias
// expansion. Small documents may be almost entirely aliases; large ones much less.
func allowedAliasRatio(convertCount int) float64 {
	switch {
	case convertCount <= aliasRatioRangeLow:
		return 0.99
	case convertCount >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(convertCount-aliasRatioRangeLow)/(aliasRatioRangeHigh-aliasRatioRangeLow))
	}
}

func (p *Parser) resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func (p *Parser) newNodeErr(node *yaml.Node, msg string) error {
	pos := filepos.NewUnknownPositionInFile(p.associatedName)
	if node.Line > 0 {
		pos = filepos.NewPositionInFile(node.Line, p.associatedName).WithColumn(node.Column)
	}
	return &ParseError{
		Path:     p.associatedName,
		Position: pos,
		Err:      fmt.Errorf("%s: %s", pos.AsString(), msg),
	}
}

func (p *Parser) newErr(err error) error {
	return &ParseError{Path: p.associatedName, Err: err}
}

// MustParse parses data or panics. Intended for tests and literals.
func MustParse(data string) Value {
	val, err := NewParser(ParserOpts{}).ParseBytes([]byte(data), "")
	if err != nil {
		panic(err)
	}
	return val
}
