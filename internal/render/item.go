// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package render converts navigation trees into the sidebar files consumed by
// the docs site.
package render

import (
	"fmt"

	"github.com/zimsendapi/docs/internal/nav"
)

// Item types as they appear in sidebar files.
const (
	TypeDoc      = "doc"
	TypeCategory = "category"
	TypeLink     = "link"
)

// Item is the wire form of one sidebar node.
type Item struct {
	Type      string    `json:"type" jsonschema:"enum=doc,enum=category,enum=link"`
	ID        string    `json:"id,omitempty" jsonschema_description:"Document id, set on doc items"`
	Label     string    `json:"label,omitempty"`
	ClassName string    `json:"className,omitempty"`
	Href      string    `json:"href,omitempty" jsonschema_description:"Target URL, set on link items"`
	Collapsed *bool     `json:"collapsed,omitempty"`
	Link      *ItemLink `json:"link,omitempty" jsonschema_description:"Document opened when the category label is clicked"`
	Items     []Item    `json:"items,omitzero" jsonschema_description:"Children, always present on category items"`
}

// ItemLink is the landing page of a category.
type ItemLink struct {
	Type string `json:"type" jsonschema:"enum=doc"`
	ID   string `json:"id"`
}

// Sidebar is one named sidebar in wire form.
type Sidebar struct {
	Name  string
	Items []Item
}

// Document is a whole sidebar file. Sidebars keep the order of the tree.
type Document []Sidebar

// ToItems converts navigation nodes to wire items.
func ToItems(nodes []nav.Node) []Item {
	items := make([]Item, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, toItem(n))
	}
	return items
}

func toItem(n nav.Node) Item {
	switch n := n.(type) {
	case *nav.DocRef:
		return Item{Type: TypeDoc, ID: n.ID, Label: n.Label, ClassName: n.ClassName}
	case *nav.Category:
		it := Item{
			Type:      TypeCategory,
			Label:     n.Label,
			Collapsed: n.Collapsed,
			Items:     ToItems(n.Items),
		}
		if n.Link != nil {
			it.Link = &ItemLink{Type: TypeDoc, ID: n.Link.ID}
		}
		return it
	case *nav.Link:
		return Item{Type: TypeLink, Label: n.Label, Href: n.Href}
	default:
		panic(fmt.Sprintf("render: unknown node type %T", n))
	}
}

// FromTree converts every sidebar of a tree.
func FromTree(t *nav.Tree) Document {
	doc := make(Document, 0, len(t.Sidebars))
	for _, sb := range t.Sidebars {
		doc = append(doc, Sidebar{Name: sb.Name, Items: ToItems(sb.Items)})
	}
	return doc
}
