// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package apidoc writes the markdown pages behind the synthesized API
// navigation: the API overview, one overview per tag and one page per
// operation. Page ids match the ids produced by package synth.
package apidoc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/openapi"
	"github.com/zimsendapi/docs/internal/synth"
)

// Options controls page generation.
type Options struct {
	// Title of the API overview page. Defaults to the document title.
	Title string
}

// Output is a set of generated pages keyed by file name.
type Output struct {
	Files map[string]string
}

// Names returns the file names in lexical order.
func (o *Output) Names() []string {
	names := make([]string, 0, len(o.Files))
	for name := range o.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate renders every page for cat. File names are relative to the
// directory the base prefix maps to. An operation listed under several tags
// gets a single page, written for the first tag. Identifiers shared by
// distinct pages fail with the synthesizer's slug collision before anything
// is rendered.
func Generate(cat *openapi.Catalog, opts Options) (*Output, error) {
	local := synth.Options{}
	if _, err := synth.Synthesize(cat, local); err != nil {
		return nil, err
	}
	out := &Output{Files: make(map[string]string)}

	title := opts.Title
	if title == "" {
		title = cat.Title
	}
	if title == "" {
		title = "API Reference"
	}
	out.Files[local.APIOverviewID()+".md"] = overviewPage(cat, title, local)

	for i, tag := range cat.Tags {
		out.Files[local.OverviewID(tag.Name)+".md"] = tagPage(tag, i+1)
		for j, op := range tag.Operations {
			name := op.ID + ".md"
			if _, done := out.Files[name]; done {
				continue
			}
			out.Files[name] = operationPage(op, j+1)
		}
	}
	return out, nil
}

// WriteToDir writes every page below dir, creating it when needed.
func (o *Output) WriteToDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, errors.KindInternal, "create %s", dir)
	}
	for _, name := range o.Names() {
		full := filepath.Join(dir, name)
		if err := os.WriteFile(full, []byte(o.Files[name]), 0o644); err != nil {
			return errors.Wrapf(err, errors.KindInternal, "write %s", full)
		}
	}
	return nil
}

func overviewPage(cat *openapi.Catalog, title string, local synth.Options) string {
	var sb strings.Builder
	writeFrontMatter(&sb, []field{
		{"id", local.APIOverviewID()},
		{"title", title},
		{"sidebar_label", "Overview"},
		{"sidebar_position", 0},
	})

	if cat.Version != "" {
		sb.WriteString(fmt.Sprintf("**Version:** %s\n\n", cat.Version))
	}
	sb.WriteString("| Section | Operations | Description |\n")
	sb.WriteString("|---------|------------|-------------|\n")
	for _, tag := range cat.Tags {
		sb.WriteString(fmt.Sprintf("| [%s](./%s.md) | %d | %s |\n",
			tag.Name, local.OverviewID(tag.Name), len(tag.Operations), cell(tag.Description)))
	}
	return sb.String()
}

func tagPage(tag openapi.Tag, position int) string {
	var sb strings.Builder
	fields := []field{
		{"id", synth.Options{}.OverviewID(tag.Name)},
		{"title", tag.Name},
		{"sidebar_position", position},
	}
	if tag.Description != "" {
		fields = append(fields, field{"description", tag.Description})
	}
	writeFrontMatter(&sb, fields)

	if tag.Description != "" {
		sb.WriteString(tag.Description + "\n\n")
	}
	sb.WriteString("| Method | Path | Operation |\n")
	sb.WriteString("|--------|------|-----------|\n")
	for _, op := range tag.Operations {
		label := fmt.Sprintf("[%s](./%s.md)", op.Label, op.ID)
		if op.Deprecated {
			label = "~~" + label + "~~"
		}
		sb.WriteString(fmt.Sprintf("| %s | `%s` | %s |\n", badge(op.Method), op.Path, label))
	}
	return sb.String()
}

func operationPage(op openapi.Operation, position int) string {
	var sb strings.Builder
	fields := []field{
		{"id", op.ID},
		{"title", op.Label},
		{"sidebar_label", op.Label},
		{"sidebar_class_name", synth.MethodClass(op.Method)},
		{"sidebar_position", position},
		{"api_method", op.Method.Lower()},
		{"api_path", op.Path},
	}
	if op.OperationID != "" {
		fields = append(fields, field{"operation_id", op.OperationID})
	}
	if op.Deprecated {
		fields = append(fields, field{"deprecated", true})
	}
	writeFrontMatter(&sb, fields)

	sb.WriteString(fmt.Sprintf("%s `%s`\n\n", badge(op.Method), op.Path))
	if op.Deprecated {
		sb.WriteString(":::caution Deprecated\n\nThis operation will be removed in a future version.\n\n:::\n\n")
	}
	if op.Description != "" {
		sb.WriteString(strings.TrimSpace(op.Description) + "\n")
	} else if op.Summary != "" && op.Summary != op.Label {
		sb.WriteString(op.Summary + "\n")
	}
	return sb.String()
}

type field struct {
	key   string
	value any
}

// writeFrontMatter emits fields in order. Values go through the YAML encoder
// so labels with quotes or colons stay valid.
func writeFrontMatter(sb *strings.Builder, fields []field) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		var val yaml.Node
		if err := val.Encode(f.value); err != nil {
			panic(fmt.Sprintf("apidoc: encode %s: %v", f.key, err))
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.key},
			&val)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		panic(fmt.Sprintf("apidoc: encode front matter: %v", err))
	}
	_ = enc.Close()

	sb.WriteString("---\n")
	sb.Write(buf.Bytes())
	sb.WriteString("---\n\n")
}

func badge(m openapi.Method) string {
	return fmt.Sprintf(`<span className="badge api-method %s">%s</span>`, m.Lower(), m)
}

// cell flattens text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
