// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package config loads the navgen project file (navgen.hcl).
package config

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/zimsendapi/docs/internal/merge"
	"github.com/zimsendapi/docs/internal/nav"
)

// DefaultFile is the project file looked up when no -config flag is given.
const DefaultFile = "navgen.hcl"

// File mirrors the HCL layout of the project file.
type File struct {
	// Path of the OpenAPI document, relative to the project file.
	// @default: "openapi.yaml"
	SpecPath string `hcl:"spec_path,optional"`
	// Directory holding hand-written pages.
	// @default: "docs"
	DocsDir string `hcl:"docs_dir,optional"`
	// Prefix of every generated API page id.
	// @default: "api-reference"
	BasePrefix string `hcl:"base_prefix,optional"`
	// Where generated API pages are written. Defaults to docs_dir/base_prefix.
	APIDocsDir string `hcl:"api_docs_dir,optional"`
	// Sidebar file written by `navgen generate`.
	// @default: "sidebars.json"
	Output string `hcl:"output,optional"`
	// Sidebar file encoding.
	// @enum: json, yaml, ts
	// @default: "json"
	Format string `hcl:"format,optional"`
	// Name of the standalone API sidebar.
	// @default: "apisidebar"
	APISidebar string `hcl:"api_sidebar,optional"`

	APIReference *APIReferenceBlock `hcl:"api_reference,block"`
	Sidebars     []SidebarBlock     `hcl:"sidebar,block"`
}

// APIReferenceBlock configures the API entry at the end of the docs sidebar.
type APIReferenceBlock struct {
	// Presentation of the API reference inside the docs sidebar.
	// @enum: nested, link
	// @default: "nested"
	Mode string `hcl:"mode,optional"`
	// @default: "API Reference"
	Label string `hcl:"label,optional"`
	// Link target in link mode. Defaults to /<base_prefix>/api-overview.
	Href string `hcl:"href,optional"`
	// Display flag of the nested API category.
	Collapsed *bool `hcl:"collapsed,optional"`
	// Display flag copied onto every generated tag category.
	CategoriesCollapsed *bool `hcl:"categories_collapsed,optional"`
}

// SidebarBlock is a hand-authored sidebar. Its body holds doc, category and
// link blocks whose order is the display order.
type SidebarBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// APIReference is the resolved api_reference block.
type APIReference struct {
	Mode                merge.Mode
	Label               string
	Href                string
	Collapsed           *bool
	CategoriesCollapsed *bool
}

// Config is a loaded and validated project file. Paths are resolved against
// the directory of the project file.
type Config struct {
	Path       string
	SpecPath   string
	DocsDir    string
	BasePrefix string
	APIDocsDir string
	Output     string
	Format     string

	DocsSidebar string
	APISidebar  string
	API         APIReference

	// Manual holds the hand-authored docs sidebar nodes in display order.
	Manual []nav.Node
}
