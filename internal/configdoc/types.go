// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package configdoc

// Reference is the documented layout of the project file.
type Reference struct {
	Title       string
	Description string
	Attributes  []*Field
	// Blocks keep their declaration order.
	Blocks []*Block
}

// Block is an HCL block type such as api_reference or sidebar.
type Block struct {
	Name        string
	HCLName     string
	Description string
	Labels      []string
	Fields      []*Field
	Blocks      []*Block
	Multiple    bool // Can appear multiple times
	// FreeForm is set when the body is decoded by hand (hcl ",remain").
	FreeForm bool
}

// Field is an HCL attribute.
type Field struct {
	Name        string
	HCLName     string
	GoType      string
	HCLType     string // string, bool, number, list(...), object
	Description string
	Optional    bool
	Default     string
	Enum        []string
	Example     string
}

// FieldAnnotation holds the @-annotations of a doc comment:
//
//	// @default: "json"
//	// @enum: json, yaml, ts
//	// @example: "site/openapi.yaml"
type FieldAnnotation struct {
	Default string
	Enum    []string
	Example string
}

// ParsedStruct is a Go struct carrying HCL tags.
type ParsedStruct struct {
	Name       string
	Doc        string
	Fields     []ParsedField
	SourceFile string
}

// ParsedField is one tagged struct field.
type ParsedField struct {
	Name       string
	GoType     string
	HCLTag     HCLTag
	Doc        string
	Annotation FieldAnnotation
}

// HCLTag is a parsed hcl struct tag.
type HCLTag struct {
	Name     string
	Optional bool
	Block    bool
	Label    bool
	Remain   bool
}
