// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/zimsendapi/docs/internal/nav"
)

// Allowed arguments per block type.
var (
	sidebarArgs  = map[string]bool{}
	docArgs      = map[string]bool{"label": true, "class_name": true}
	categoryArgs = map[string]bool{"collapsed": true, "link": true, "items": true}
	linkArgs     = map[string]bool{"href": true}
)

// decodeSidebar turns the remaining body of a sidebar block into nodes.
// gohcl would split doc, category and link blocks into separate slices and
// lose their interleaving, so the syntax tree is walked directly.
func decodeSidebar(body hcl.Body) ([]nav.Node, hcl.Diagnostics) {
	syn, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported sidebar syntax",
			Detail:   "Sidebars must be written in native HCL syntax.",
		}}
	}
	diags := checkArgs(syn, sidebarArgs, "sidebar")
	nodes, more := decodeBlocks(syn.Blocks)
	return nodes, append(diags, more...)
}

func decodeBlocks(blocks hclsyntax.Blocks) ([]nav.Node, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	nodes := make([]nav.Node, 0, len(blocks))

	for _, blk := range blocks {
		if len(blk.Labels) != 1 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Wrong number of labels",
				Detail:   fmt.Sprintf("A %s block takes exactly one label.", blk.Type),
				Subject:  blk.DefRange().Ptr(),
			})
			continue
		}
		label := blk.Labels[0]

		switch blk.Type {
		case "doc":
			diags = append(diags, checkArgs(blk.Body, docArgs, "doc")...)
			diags = append(diags, noBlocks(blk)...)
			doc := &nav.DocRef{ID: label}
			doc.Label, _, diags = stringArg(blk.Body, "label", diags)
			doc.ClassName, _, diags = stringArg(blk.Body, "class_name", diags)
			nodes = append(nodes, doc)

		case "category":
			diags = append(diags, checkArgs(blk.Body, categoryArgs, "category")...)
			cat := &nav.Category{Label: label}

			var set bool
			var collapsed bool
			collapsed, set, diags = boolArg(blk.Body, "collapsed", diags)
			if set {
				cat.Collapsed = nav.Bool(collapsed)
			}
			var link string
			link, set, diags = stringArg(blk.Body, "link", diags)
			if set {
				cat.Link = &nav.DocRef{ID: link}
			}
			var items []string
			items, diags = stringListArg(blk.Body, "items", diags)
			for _, id := range items {
				cat.Items = append(cat.Items, &nav.DocRef{ID: id})
			}

			children, more := decodeBlocks(blk.Body.Blocks)
			diags = append(diags, more...)
			cat.Items = append(cat.Items, children...)
			nodes = append(nodes, cat)

		case "link":
			diags = append(diags, checkArgs(blk.Body, linkArgs, "link")...)
			diags = append(diags, noBlocks(blk)...)
			l := &nav.Link{Label: label}
			var set bool
			l.Href, set, diags = stringArg(blk.Body, "href", diags)
			if !set {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Missing required argument",
					Detail:   `The argument "href" is required in a link block.`,
					Subject:  blk.Body.MissingItemRange().Ptr(),
				})
			}
			nodes = append(nodes, l)

		default:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported block type",
				Detail:   fmt.Sprintf("Blocks of type %q are not expected here; use doc, category or link.", blk.Type),
				Subject:  blk.TypeRange.Ptr(),
			})
		}
	}
	return nodes, diags
}

func checkArgs(body *hclsyntax.Body, allowed map[string]bool, where string) hcl.Diagnostics {
	var diags hcl.Diagnostics
	names := make([]string, 0, len(body.Attributes))
	for name := range body.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if allowed[name] {
			continue
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported argument",
			Detail:   fmt.Sprintf("An argument named %q is not expected in a %s block.", name, where),
			Subject:  body.Attributes[name].NameRange.Ptr(),
		})
	}
	return diags
}

func noBlocks(blk *hclsyntax.Block) hcl.Diagnostics {
	if len(blk.Body.Blocks) == 0 {
		return nil
	}
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Unexpected nested block",
		Detail:   fmt.Sprintf("A %s block cannot contain other blocks.", blk.Type),
		Subject:  blk.Body.Blocks[0].DefRange().Ptr(),
	}}
}

// argValue evaluates an attribute and converts it to ty. ok is false when the
// attribute is absent or invalid.
func argValue(body *hclsyntax.Body, name string, ty cty.Type, diags hcl.Diagnostics) (cty.Value, bool, hcl.Diagnostics) {
	attr, exists := body.Attributes[name]
	if !exists {
		return cty.NilVal, false, diags
	}
	val, valDiags := attr.Expr.Value(nil)
	diags = append(diags, valDiags...)
	if valDiags.HasErrors() {
		return cty.NilVal, false, diags
	}
	val, err := convert.Convert(val, ty)
	if err != nil || val.IsNull() || !val.IsWhollyKnown() {
		detail := fmt.Sprintf("The argument %q must be a %s.", name, ty.FriendlyName())
		if err != nil {
			detail = fmt.Sprintf("The argument %q must be a %s: %s.", name, ty.FriendlyName(), err)
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Incorrect attribute value type",
			Detail:   detail,
			Subject:  attr.Expr.Range().Ptr(),
		})
		return cty.NilVal, false, diags
	}
	return val, true, diags
}

func stringArg(body *hclsyntax.Body, name string, diags hcl.Diagnostics) (string, bool, hcl.Diagnostics) {
	val, ok, diags := argValue(body, name, cty.String, diags)
	if !ok {
		return "", false, diags
	}
	return val.AsString(), true, diags
}

func boolArg(body *hclsyntax.Body, name string, diags hcl.Diagnostics) (bool, bool, hcl.Diagnostics) {
	val, ok, diags := argValue(body, name, cty.Bool, diags)
	if !ok {
		return false, false, diags
	}
	return val.True(), true, diags
}

func stringListArg(body *hclsyntax.Body, name string, diags hcl.Diagnostics) ([]string, hcl.Diagnostics) {
	val, ok, diags := argValue(body, name, cty.List(cty.String), diags)
	if !ok {
		return nil, diags
	}
	var out []string
	if err := gocty.FromCtyValue(val, &out); err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid list",
			Detail:   fmt.Sprintf("The argument %q: %s.", name, err),
			Subject:  body.Attributes[name].Expr.Range().Ptr(),
		})
		return nil, diags
	}
	return out, diags
}
