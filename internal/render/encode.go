// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zimsendapi/docs/internal/errors"
)

// Format selects the sidebar file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTS   Format = "ts"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatJSON, FormatYAML, FormatTS}

// ParseFormat validates a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "ts", "typescript":
		return FormatTS, nil
	}
	return "", errors.Errorf(errors.KindValidation, "unknown format %q (want json, yaml or ts)", s)
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return "." + string(f)
}

// MarshalJSON writes sidebars as one object whose keys keep tree order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sb := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		items := sb.Items
		if items == nil {
			items = []Item{}
		}
		if err := writeJSON(&buf, sb.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, items); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSON keeps labels such as "SDKs & Exemples" unescaped.
func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // trailing newline
	return nil
}

// Encode renders a document in the given format. Output is deterministic.
func Encode(d Document, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return encodeJSON(d)
	case FormatYAML:
		return encodeYAML(d)
	case FormatTS:
		body, err := encodeJSON(d)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		buf.WriteString("const sidebars = ")
		buf.Write(bytes.TrimRight(body, "\n"))
		buf.WriteString(";\nexport default sidebars;\n")
		return buf.Bytes(), nil
	}
	return nil, errors.Errorf(errors.KindValidation, "unknown format %q", f)
}

func encodeJSON(d Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "encode sidebars")
	}
	return buf.Bytes(), nil
}

func encodeYAML(d Document) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, sb := range d {
		root.Content = append(root.Content, strNode(sb.Name), itemsNode(sb.Items))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "encode sidebars")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "encode sidebars")
	}
	return buf.Bytes(), nil
}

// itemsNode mirrors the JSON field order so both encodings read the same.
func itemsNode(items []Item) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	if len(items) == 0 {
		seq.Style = yaml.FlowStyle
	}
	for _, it := range items {
		m := &yaml.Node{Kind: yaml.MappingNode}
		add := func(k string, v *yaml.Node) { m.Content = append(m.Content, strNode(k), v) }

		add("type", strNode(it.Type))
		if it.ID != "" {
			add("id", strNode(it.ID))
		}
		if it.Label != "" {
			add("label", strNode(it.Label))
		}
		if it.ClassName != "" {
			add("className", strNode(it.ClassName))
		}
		if it.Href != "" {
			add("href", strNode(it.Href))
		}
		if it.Collapsed != nil {
			add("collapsed", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(*it.Collapsed)})
		}
		if it.Link != nil {
			add("link", &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
				strNode("type"), strNode(it.Link.Type),
				strNode("id"), strNode(it.Link.ID),
			}})
		}
		if it.Items != nil {
			add("items", itemsNode(it.Items))
		}
		seq.Content = append(seq.Content, m)
	}
	return seq
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
