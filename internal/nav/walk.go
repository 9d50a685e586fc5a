// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package nav

import "fmt"

// Walk calls fn for every node in depth-first, display order. A category's
// overview link is visited right after the category itself.
func Walk(nodes []Node, fn func(Node)) {
	for _, n := range nodes {
		fn(n)
		switch v := n.(type) {
		case *DocRef, *Link:
		case *Category:
			if v.Link != nil {
				fn(v.Link)
			}
			Walk(v.Items, fn)
		default:
			panic(fmt.Sprintf("nav: unexpected node type %T", n))
		}
	}
}

// DocIDs returns every DocRef id under nodes, in display order, repeats included.
func DocIDs(nodes []Node) []string {
	var ids []string
	Walk(nodes, func(n Node) {
		if d, ok := n.(*DocRef); ok {
			ids = append(ids, d.ID)
		}
	})
	return ids
}

// Count returns the number of nodes under nodes, overview links excluded.
func Count(nodes []Node) int {
	total := 0
	for _, n := range nodes {
		total++
		if c, ok := n.(*Category); ok {
			total += Count(c.Items)
		}
	}
	return total
}

// Categories adapts a category slice to a node slice.
func Categories(cats []*Category) []Node {
	nodes := make([]Node, len(cats))
	for i, c := range cats {
		nodes[i] = c
	}
	return nodes
}
