// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNodes() []Node {
	return []Node{
		&DocRef{ID: "intro", Label: "Introduction"},
		&Category{
			Label:     "Guides",
			Collapsed: Bool(false),
			Items: []Node{
				&DocRef{ID: "guides/quickstart"},
				&DocRef{ID: "guides/otp"},
			},
		},
		&Category{
			Label: "SMS",
			Link:  &DocRef{ID: "api-reference/sms-overview"},
			Items: []Node{
				&DocRef{ID: "api-reference/envoyer-un-sms", ClassName: "api-method post"},
			},
		},
		&Link{Label: "Status", Href: "https://status.example.com"},
	}
}

func TestDocIDs_DisplayOrder(t *testing.T) {
	ids := DocIDs(sampleNodes())
	assert.Equal(t, []string{
		"intro",
		"guides/quickstart",
		"guides/otp",
		"api-reference/sms-overview",
		"api-reference/envoyer-un-sms",
	}, ids)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 7, Count(sampleNodes()))
	assert.Equal(t, 0, Count(nil))
}

func TestTree_Sidebar(t *testing.T) {
	tree := &Tree{Sidebars: []Sidebar{
		{Name: "docsSidebar", Items: sampleNodes()},
		{Name: "apisidebar"},
	}}

	s, ok := tree.Sidebar("docsSidebar")
	require.True(t, ok)
	assert.Len(t, s.Items, 4)

	_, ok = tree.Sidebar("missing")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	cats := []*Category{{Label: "A"}, {Label: "B"}}
	nodes := Categories(cats)
	require.Len(t, nodes, 2)
	assert.Same(t, cats[1], nodes[1])
}
