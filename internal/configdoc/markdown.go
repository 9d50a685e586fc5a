// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package configdoc

import (
	"fmt"
	"strings"
)

// SidebarEntries describes the blocks accepted inside a sidebar body.
var SidebarEntries = []*Block{
	{
		HCLName:     "doc",
		Description: "A hand-written page. The label is the page id, relative to docs_dir and without extension.",
		Labels:      []string{"id"},
		Multiple:    true,
		Fields: []*Field{
			{HCLName: "label", HCLType: "string", Optional: true, Description: "Display text. Defaults to the page title."},
			{HCLName: "class_name", HCLType: "string", Optional: true, Description: "CSS class of the entry."},
		},
	},
	{
		HCLName:     "category",
		Description: "A collapsible group. Children listed in items come first, nested blocks follow in source order.",
		Labels:      []string{"label"},
		Multiple:    true,
		Fields: []*Field{
			{HCLName: "collapsed", HCLType: "bool", Optional: true, Description: "Initial display state."},
			{HCLName: "link", HCLType: "string", Optional: true, Description: "Page id opened when the category label is clicked."},
			{HCLName: "items", HCLType: "list(string)", Optional: true, Description: "Page ids shown as doc entries."},
		},
	},
	{
		HCLName:     "link",
		Description: "An external link.",
		Labels:      []string{"label"},
		Multiple:    true,
		Fields: []*Field{
			{HCLName: "href", HCLType: "string", Description: "Link target."},
		},
	},
}

// GenerateMarkdown renders ref as a Markdown page.
func GenerateMarkdown(ref *Reference) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", ref.Title))
	if ref.Description != "" {
		sb.WriteString(ref.Description + "\n\n")
	}

	sb.WriteString("## Table of Contents\n\n")
	sb.WriteString("- [Attributes](#attributes)\n")
	for _, block := range ref.Blocks {
		sb.WriteString(fmt.Sprintf("- [%s](#%s)\n", block.HCLName, anchor(block.HCLName)))
	}
	sb.WriteString("\n")

	if len(ref.Attributes) > 0 {
		sb.WriteString("## Attributes\n\n")
		sb.WriteString("Relative paths are resolved against the directory of the project file.\n\n")
		writeFieldsTable(&sb, ref.Attributes)
	}

	for _, block := range ref.Blocks {
		writeBlock(&sb, block, 2)
		if block.FreeForm {
			sb.WriteString("**Entries:**\n\n")
			sb.WriteString("Entries are displayed in the order they are written.\n\n")
			for _, entry := range SidebarEntries {
				writeBlock(&sb, entry, 3)
			}
		}
	}

	return sb.String()
}

func writeBlock(sb *strings.Builder, block *Block, level int) {
	sb.WriteString(fmt.Sprintf("%s %s\n\n", strings.Repeat("#", level), block.HCLName))
	if block.Description != "" {
		sb.WriteString(block.Description + "\n\n")
	}

	sb.WriteString("```hcl\n")
	sb.WriteString(block.HCLName)
	for _, label := range block.Labels {
		sb.WriteString(fmt.Sprintf(" \"<%s>\"", label))
	}
	sb.WriteString(" {\n")
	for _, f := range block.Fields {
		sb.WriteString(fmt.Sprintf("  %s = %s\n", f.HCLName, exampleValue(f)))
	}
	if block.FreeForm {
		sb.WriteString("  # doc, category and link blocks\n")
	}
	sb.WriteString("}\n```\n\n")

	if block.Multiple {
		sb.WriteString("May appear more than once.\n\n")
	}
	if len(block.Fields) > 0 {
		writeFieldsTable(sb, block.Fields)
	}
	for _, nested := range block.Blocks {
		writeBlock(sb, nested, level+1)
	}
}

func writeFieldsTable(sb *strings.Builder, fields []*Field) {
	sb.WriteString("| Attribute | Type | Required | Description |\n")
	sb.WriteString("|-----------|------|----------|-------------|\n")
	for _, f := range fields {
		req := "Yes"
		if f.Optional {
			req = "No"
			if f.Default != "" {
				req = fmt.Sprintf("No (default: `%s`)", f.Default)
			}
		}
		desc := strings.ReplaceAll(f.Description, "\n", " ")
		if len(f.Enum) > 0 {
			desc = strings.TrimSpace(desc + fmt.Sprintf(" Values: `%s`", strings.Join(f.Enum, "`, `")))
		}
		sb.WriteString(fmt.Sprintf("| `%s` | `%s` | %s | %s |\n", f.HCLName, f.HCLType, req, desc))
	}
	sb.WriteString("\n")
}

func exampleValue(f *Field) string {
	switch {
	case f.Example != "":
		return f.Example
	case f.Default != "":
		return f.Default
	case len(f.Enum) > 0:
		return fmt.Sprintf("%q", f.Enum[0])
	}
	switch f.HCLType {
	case "string":
		return `"..."`
	case "bool":
		return "false"
	case "number":
		return "0"
	default:
		return "[...]"
	}
}

func anchor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", "-"))
}
