// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package configdoc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/zimsendapi/docs/internal/errors"
)

// Parser extracts HCL struct definitions from Go source files.
type Parser struct {
	fset    *token.FileSet
	structs map[string]*ParsedStruct
}

// NewParser creates a new documentation parser.
func NewParser() *Parser {
	return &Parser{
		fset:    token.NewFileSet(),
		structs: make(map[string]*ParsedStruct),
	}
}

// ParseDir parses the non-test Go files of dir.
func (p *Parser) ParseDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.KindNotFound, "read %s", dir)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		file, err := parser.ParseFile(p.fset, path, nil, parser.ParseComments)
		if err != nil {
			return errors.Wrapf(err, errors.KindLoad, "parse %s", path)
		}
		p.extractStructs(file, name)
	}
	return nil
}

// extractStructs records every struct of file that has HCL tags.
func (p *Parser) extractStructs(file *ast.File, name string) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok || !hasHCLTags(structType) {
				continue
			}

			doc := genDecl.Doc
			if typeSpec.Doc != nil {
				doc = typeSpec.Doc
			}
			parsed := p.parseStruct(typeSpec.Name.Name, structType, doc)
			parsed.SourceFile = name
			p.structs[parsed.Name] = parsed
		}
	}
}

func hasHCLTags(s *ast.StructType) bool {
	if s.Fields == nil {
		return false
	}
	for _, field := range s.Fields.List {
		if field.Tag != nil && strings.Contains(field.Tag.Value, "hcl:") {
			return true
		}
	}
	return false
}

func (p *Parser) parseStruct(name string, s *ast.StructType, doc *ast.CommentGroup) *ParsedStruct {
	parsed := &ParsedStruct{
		Name: name,
		Doc:  extractDocComment(doc),
	}
	for _, field := range s.Fields.List {
		if len(field.Names) == 0 {
			continue // embedded field
		}
		pf := parseField(field)
		if pf.HCLTag.Name != "" || pf.HCLTag.Remain {
			parsed.Fields = append(parsed.Fields, pf)
		}
	}
	return parsed
}

func parseField(field *ast.Field) ParsedField {
	pf := ParsedField{
		Name:   field.Names[0].Name,
		GoType: typeToString(field.Type),
		Doc:    extractDocComment(field.Doc),
	}
	if field.Comment != nil {
		if inline := extractDocComment(field.Comment); pf.Doc == "" {
			pf.Doc = inline
		} else if inline != "" {
			pf.Doc += " " + inline
		}
	}
	if field.Tag != nil {
		tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		pf.HCLTag = parseHCLTag(tag.Get("hcl"))
	}
	pf.Annotation = parseAnnotations(pf.Doc)
	return pf
}

// parseHCLTag parses an HCL struct tag value.
func parseHCLTag(tag string) HCLTag {
	if tag == "" {
		return HCLTag{}
	}
	parts := strings.Split(tag, ",")
	ht := HCLTag{Name: parts[0]}
	for _, part := range parts[1:] {
		switch part {
		case "optional":
			ht.Optional = true
		case "block":
			ht.Block = true
		case "label":
			ht.Label = true
		case "remain":
			ht.Remain = true
		}
	}
	return ht
}

// parseAnnotations extracts @default, @enum and @example lines.
func parseAnnotations(doc string) FieldAnnotation {
	var ann FieldAnnotation
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "@default:"):
			ann.Default = strings.TrimSpace(strings.TrimPrefix(line, "@default:"))
		case strings.HasPrefix(line, "@enum:"):
			for _, e := range strings.Split(strings.TrimPrefix(line, "@enum:"), ",") {
				if e = strings.TrimSpace(e); e != "" {
					ann.Enum = append(ann.Enum, e)
				}
			}
		case strings.HasPrefix(line, "@example:"):
			ann.Example = strings.TrimSpace(strings.TrimPrefix(line, "@example:"))
		}
	}
	return ann
}

func extractDocComment(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	return strings.TrimSpace(cg.Text())
}

// typeToString converts an AST type expression to a string.
func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	case *ast.ArrayType:
		return "[]" + typeToString(t.Elt)
	case *ast.MapType:
		return "map[" + typeToString(t.Key) + "]" + typeToString(t.Value)
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	default:
		return "unknown"
	}
}

// GetStruct returns a parsed struct by name.
func (p *Parser) GetStruct(name string) *ParsedStruct {
	return p.structs[name]
}

// BuildReference builds the reference rooted at rootType. It returns a
// KindNotFound error when rootType was not parsed.
func (p *Parser) BuildReference(rootType string) (*Reference, error) {
	root := p.structs[rootType]
	if root == nil {
		return nil, errors.Errorf(errors.KindNotFound, "struct %s not found", rootType)
	}

	ref := &Reference{
		Title:       "navgen.hcl reference",
		Description: root.Doc,
	}
	for _, field := range root.Fields {
		if field.HCLTag.Block {
			ref.Blocks = append(ref.Blocks, p.buildBlock(field))
		} else if !field.HCLTag.Remain {
			ref.Attributes = append(ref.Attributes, buildField(field))
		}
	}
	return ref, nil
}

func (p *Parser) buildBlock(field ParsedField) *Block {
	typeName := strings.TrimPrefix(strings.TrimPrefix(field.GoType, "*"), "[]")
	block := &Block{
		Name:        field.Name,
		HCLName:     field.HCLTag.Name,
		Description: cleanDescription(field.Doc),
		Multiple:    strings.HasPrefix(field.GoType, "[]"),
	}

	refStruct := p.structs[typeName]
	if refStruct == nil {
		return block
	}
	if block.Description == "" {
		block.Description = refStruct.Doc
	}
	for _, f := range refStruct.Fields {
		switch {
		case f.HCLTag.Label:
			block.Labels = append(block.Labels, f.HCLTag.Name)
		case f.HCLTag.Remain:
			block.FreeForm = true
		case f.HCLTag.Block:
			block.Blocks = append(block.Blocks, p.buildBlock(f))
		default:
			block.Fields = append(block.Fields, buildField(f))
		}
	}
	return block
}

func buildField(pf ParsedField) *Field {
	return &Field{
		Name:        pf.Name,
		HCLName:     pf.HCLTag.Name,
		GoType:      pf.GoType,
		HCLType:     goTypeToHCLType(pf.GoType),
		Description: cleanDescription(pf.Doc),
		Optional:    pf.HCLTag.Optional,
		Default:     pf.Annotation.Default,
		Enum:        pf.Annotation.Enum,
		Example:     pf.Annotation.Example,
	}
}

// goTypeToHCLType maps Go types to HCL types.
func goTypeToHCLType(goType string) string {
	goType = strings.TrimPrefix(goType, "*")
	if strings.HasPrefix(goType, "[]") {
		return "list(" + goTypeToHCLType(strings.TrimPrefix(goType, "[]")) + ")"
	}
	switch goType {
	case "string":
		return "string"
	case "bool":
		return "bool"
	case "int", "int64", "float64":
		return "number"
	default:
		return "object"
	}
}

// cleanDescription removes annotation lines from doc.
func cleanDescription(doc string) string {
	var clean []string
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "@") {
			continue
		}
		clean = append(clean, line)
	}
	return strings.TrimSpace(strings.Join(clean, "\n"))
}
