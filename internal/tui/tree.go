// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/nav"
	"github.com/zimsendapi/docs/internal/openapi"
)

// TreeOptions controls RenderTree.
type TreeOptions struct {
	// Sidebar limits output to one sidebar when set.
	Sidebar string
	// ShowIDs prints document ids next to labelled entries.
	ShowIDs bool
}

// RenderTree draws every sidebar of t as a box containing an indented tree.
func RenderTree(t *nav.Tree, opts TreeOptions) (string, error) {
	var blocks []string
	for _, sb := range t.Sidebars {
		if opts.Sidebar != "" && sb.Name != opts.Sidebar {
			continue
		}
		root := tree.Root(StyleHeader.Render(sb.Name)).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(StyleBranch)
		addNodes(root, sb.Items, opts)

		summary := StyleSubtle.Render(fmt.Sprintf("%d entries", nav.Count(sb.Items)))
		blocks = append(blocks, StyleCard.Render(lipgloss.JoinVertical(lipgloss.Left, root.String(), "", summary)))
	}
	if len(blocks) == 0 {
		return "", errors.Errorf(errors.KindNotFound, "sidebar %q not found", opts.Sidebar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n", nil
}

func addNodes(parent *tree.Tree, nodes []nav.Node, opts TreeOptions) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *nav.DocRef:
			parent.Child(docLine(n, opts))
		case *nav.Category:
			label := StyleCategory.Render(n.Label)
			if n.Collapsed != nil && !*n.Collapsed {
				label += StyleSubtle.Render(" (expanded)")
			}
			if n.Link != nil {
				label += StyleSubtle.Render(" → " + n.Link.ID)
			}
			child := tree.Root(label).
				Enumerator(tree.RoundedEnumerator).
				EnumeratorStyle(StyleBranch)
			addNodes(child, n.Items, opts)
			parent.Child(child)
		case *nav.Link:
			parent.Child(StyleLink.Render(n.Label) + StyleSubtle.Render(" ↗ "+n.Href))
		default:
			panic(fmt.Sprintf("tui: unknown node type %T", n))
		}
	}
}

func docLine(d *nav.DocRef, opts TreeOptions) string {
	var sb strings.Builder
	if m, ok := methodOf(d.ClassName); ok {
		sb.WriteString(StyleMethod(m).Render(string(m)))
	}
	if d.Label == "" {
		sb.WriteString(d.ID)
		return sb.String()
	}
	sb.WriteString(d.Label)
	if opts.ShowIDs {
		sb.WriteString(StyleSubtle.Render("  " + d.ID))
	}
	return sb.String()
}

// methodOf reads the HTTP method from an "api-method <verb>" class name.
func methodOf(className string) (openapi.Method, bool) {
	verb, ok := strings.CutPrefix(className, "api-method ")
	if !ok {
		return "", false
	}
	return openapi.ParseMethod(verb)
}
