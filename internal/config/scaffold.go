// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/zimsendapi/docs/internal/merge"
)

// Scaffold describes a starter project file. Empty fields are left out so
// the load-time defaults apply.
type Scaffold struct {
	SpecPath   string
	DocsDir    string
	BasePrefix string
	Output     string
	Format     string
	APIMode    string
	APILabel   string
	// Docs lists the page ids of the docs sidebar, in display order.
	Docs []string
}

// HCL renders s as formatted project file source.
func (s Scaffold) HCL() []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	setString(body, "spec_path", s.SpecPath)
	setString(body, "docs_dir", s.DocsDir)
	setString(body, "base_prefix", s.BasePrefix)
	setString(body, "output", s.Output)
	setString(body, "format", s.Format)

	if s.APIMode != "" || s.APILabel != "" {
		body.AppendNewline()
		api := body.AppendNewBlock("api_reference", nil).Body()
		setString(api, "mode", s.APIMode)
		setString(api, "label", s.APILabel)
	}

	body.AppendNewline()
	sidebar := body.AppendNewBlock("sidebar", []string{merge.DefaultDocsSidebar}).Body()
	for _, id := range s.Docs {
		sidebar.AppendNewBlock("doc", []string{id})
	}

	return hclwrite.Format(f.Bytes())
}

func setString(body *hclwrite.Body, name, value string) {
	if value != "" {
		body.SetAttributeValue(name, cty.StringVal(value))
	}
}
