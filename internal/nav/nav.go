// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package nav defines the navigation model handed to the site renderer.
//
// A sidebar is an ordered list of nodes. A node is exactly one of:
//   - *DocRef: a link to one content page or generated operation page
//   - *Category: a labelled group of nodes, optionally linked to an overview page
//   - *Link: an absolute or site-relative URL
//
// The set is closed; code consuming nodes switches over these three types.
package nav

// Node is a sidebar entry.
type Node interface {
	isNode()
}

// DocRef points at one content identifier.
type DocRef struct {
	ID        string
	Label     string // optional, renderer falls back to the page title
	ClassName string // optional
}

// Category groups child nodes.
type Category struct {
	Label     string
	Link      *DocRef // optional overview page
	Collapsed *bool   // nil leaves the renderer default
	Items     []Node
}

// Link is an external or site-relative URL.
type Link struct {
	Label string
	Href  string
}

func (*DocRef) isNode()   {}
func (*Category) isNode() {}
func (*Link) isNode()     {}

// Sidebar is a named top-level navigation list.
type Sidebar struct {
	Name  string
	Items []Node
}

// Tree is the complete navigation model of one site build.
type Tree struct {
	Sidebars []Sidebar
}

// Sidebar returns the sidebar called name.
func (t *Tree) Sidebar(name string) (Sidebar, bool) {
	for _, s := range t.Sidebars {
		if s.Name == name {
			return s, true
		}
	}
	return Sidebar{}, false
}

// Bool returns a pointer to b, for Category.Collapsed.
func Bool(b bool) *bool {
	return &b
}
