// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package openapi reads the parts of an OpenAPI document that drive navigation:
// tags, paths, and the operationId and summary of every operation.
package openapi

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/slug"
)

// rawOperation holds the operation fields we consume.
type rawOperation struct {
	OperationID string   `yaml:"operationId"`
	Summary     string   `yaml:"summary"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Deprecated  bool     `yaml:"deprecated"`
}

type rawTag struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Load reads and parses the OpenAPI document at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, errors.KindLoad, "load %s", path)
		return nil, errors.Attr(err, "source", path)
	}
	return Parse(data, path)
}

// Parse builds a Catalog from an OpenAPI document in YAML or JSON form.
// source names the document in error messages.
//
// The document is decoded into a yaml.Node tree rather than Go maps so that the
// order of paths and of methods inside a path item survives.
func Parse(data []byte, source string) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		err = errors.Wrapf(err, errors.KindLoad, "load %s: malformed document", source)
		return nil, errors.Attr(err, "source", source)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.LoadError(source, "document is empty")
	}
	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, errors.LoadError(source, "document root is not a mapping")
	}

	if lookup(root, "openapi") == nil && lookup(root, "swagger") == nil {
		return nil, errors.LoadError(source, "missing openapi version field")
	}

	cat := &Catalog{Source: source}
	if info := lookup(root, "info"); info != nil && info.Kind == yaml.MappingNode {
		cat.Title = scalar(lookup(info, "title"))
		cat.Version = scalar(lookup(info, "version"))
	}

	b := newCatalogBuilder()
	if tags := lookup(root, "tags"); tags != nil {
		if tags.Kind != yaml.SequenceNode {
			return nil, errors.LoadError(source, "tags is not a list")
		}
		for i, n := range tags.Content {
			var t rawTag
			if err := resolve(n).Decode(&t); err != nil {
				return nil, errors.LoadErrorf(source, "tags[%d]: %v", i, err)
			}
			if strings.TrimSpace(t.Name) == "" {
				return nil, errors.LoadErrorf(source, "tags[%d]: missing name", i)
			}
			b.declare(t)
		}
	}

	paths := lookup(root, "paths")
	if paths == nil {
		return nil, errors.LoadError(source, "missing paths")
	}
	if paths.Kind != yaml.MappingNode {
		return nil, errors.LoadError(source, "paths is not a mapping")
	}

	for i := 0; i+1 < len(paths.Content); i += 2 {
		path := paths.Content[i].Value
		item := resolve(paths.Content[i+1])
		if strings.TrimSpace(path) == "" {
			return nil, errors.LoadErrorf(source, "paths[%d]: empty path", i/2)
		}
		if item.Kind != yaml.MappingNode {
			return nil, pathError(source, path, "", "path item is not a mapping")
		}
		if lookup(item, "$ref") != nil {
			return nil, pathError(source, path, "", "$ref path items are not supported")
		}

		for j := 0; j+1 < len(item.Content); j += 2 {
			method, ok := ParseMethod(item.Content[j].Value)
			if !ok {
				continue // parameters, servers, head, options...
			}
			opNode := resolve(item.Content[j+1])
			if opNode.Kind != yaml.MappingNode {
				return nil, pathError(source, path, method, "operation is not a mapping")
			}
			var raw rawOperation
			if err := opNode.Decode(&raw); err != nil {
				return nil, pathError(source, path, method, err.Error())
			}

			label := strings.TrimSpace(raw.Summary)
			if label == "" {
				label = strings.TrimSpace(raw.OperationID)
			}
			if label == "" {
				return nil, pathError(source, path, method, "operation has neither summary nor operationId")
			}

			tags := raw.Tags
			if len(tags) == 0 {
				tags = []string{UntaggedTag}
			}
			for _, tag := range tags {
				b.add(Operation{
					ID:          slug.Make(label),
					Method:      method,
					Tag:         tag,
					Label:       label,
					Path:        path,
					OperationID: raw.OperationID,
					Summary:     raw.Summary,
					Description: raw.Description,
					Deprecated:  raw.Deprecated,
				})
			}
		}
	}

	cat.Tags = b.build()
	return cat, nil
}

func pathError(source, path string, method Method, reason string) error {
	where := path
	if method != "" {
		where = string(method) + " " + path
	}
	err := errors.LoadErrorf(source, "%s: %s", where, reason)
	err = errors.Attr(err, "path", path)
	if method != "" {
		err = errors.Attr(err, "method", string(method))
	}
	return err
}

// catalogBuilder groups operations by tag. Declared tags come first, in
// declaration order, followed by undeclared tags in order of first use.
type catalogBuilder struct {
	declared []rawTag
	seen     map[string]bool
	used     []string
	ops      map[string][]Operation
}

func newCatalogBuilder() *catalogBuilder {
	return &catalogBuilder{
		seen: make(map[string]bool),
		ops:  make(map[string][]Operation),
	}
}

func (b *catalogBuilder) declare(t rawTag) {
	for _, d := range b.declared {
		if d.Name == t.Name {
			return
		}
	}
	b.declared = append(b.declared, t)
}

func (b *catalogBuilder) add(op Operation) {
	if !b.seen[op.Tag] {
		b.seen[op.Tag] = true
		b.used = append(b.used, op.Tag)
	}
	b.ops[op.Tag] = append(b.ops[op.Tag], op)
}

func (b *catalogBuilder) build() []Tag {
	tags := make([]Tag, 0, len(b.used))
	isDeclared := make(map[string]bool, len(b.declared))
	for _, d := range b.declared {
		isDeclared[d.Name] = true
		if ops := b.ops[d.Name]; len(ops) > 0 {
			tags = append(tags, Tag{Name: d.Name, Description: d.Description, Operations: ops})
		}
	}
	for _, name := range b.used {
		if !isDeclared[name] {
			tags = append(tags, Tag{Name: name, Operations: b.ops[name]})
		}
	}
	return tags
}

// lookup returns the value for key in a mapping node, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	m = resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return resolve(m.Content[i+1])
		}
	}
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func scalar(n *yaml.Node) string {
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}
