// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zimsendapi/docs/internal/content"
	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/nav"
	"github.com/zimsendapi/docs/internal/synth"
)

func manualNodes() []nav.Node {
	return []nav.Node{
		&nav.DocRef{ID: "intro", Label: "👋 Introduction"},
		&nav.Category{
			Label:     "🚀 Guides",
			Collapsed: nav.Bool(false),
			Items: []nav.Node{
				&nav.DocRef{ID: "guides/quickstart"},
				&nav.DocRef{ID: "guides/otp"},
			},
		},
		&nav.Category{
			Label: "📚 Référence",
			Items: []nav.Node{&nav.DocRef{ID: "faq"}, &nav.DocRef{ID: "errors"}},
		},
	}
}

func apiCategories() []*nav.Category {
	return []*nav.Category{
		{
			Label: "SMS",
			Link:  &nav.DocRef{ID: "api-reference/sms-overview"},
			Items: []nav.Node{
				&nav.DocRef{ID: "api-reference/envoyer-un-sms", Label: "Envoyer un SMS", ClassName: "api-method post"},
			},
		},
		{
			Label: "OTP",
			Link:  &nav.DocRef{ID: "api-reference/otp-overview"},
			Items: []nav.Node{
				&nav.DocRef{ID: "api-reference/verifier-un-code-otp", Label: "Vérifier un code OTP", ClassName: "api-method post"},
			},
		},
	}
}

var synthOpts = synth.Options{BasePrefix: "api-reference"}

func TestMerge_Nested(t *testing.T) {
	manual := manualNodes()
	api := apiCategories()

	tree, err := Merge(manual, api, Options{Label: "📡 API Reference", Synth: synthOpts})
	require.NoError(t, err)
	require.Len(t, tree.Sidebars, 2)

	docs := tree.Sidebars[0]
	assert.Equal(t, DefaultDocsSidebar, docs.Name)
	require.Len(t, docs.Items, 4)
	for i := range manual {
		assert.Same(t, manual[i], docs.Items[i])
	}

	last, ok := docs.Items[3].(*nav.Category)
	require.True(t, ok, "nested mode ends with a category")
	assert.Equal(t, "📡 API Reference", last.Label)
	assert.Equal(t, "api-reference/api-overview", last.Link.ID)
	require.Len(t, last.Items, 2)
	assert.Same(t, api[0], last.Items[0])
	assert.Same(t, api[1], last.Items[1])

	apiBar := tree.Sidebars[1]
	assert.Equal(t, DefaultAPISidebar, apiBar.Name)
	require.Len(t, apiBar.Items, 3)
	assert.Equal(t, &nav.DocRef{ID: "api-reference/api-overview"}, apiBar.Items[0])
	assert.Same(t, api[0], apiBar.Items[1])
}

func TestMerge_Link(t *testing.T) {
	tree, err := Merge(manualNodes(), apiCategories(), Options{
		Mode:  ModeLink,
		Label: "API Reference",
		Synth: synthOpts,
	})
	require.NoError(t, err)

	docs := tree.Sidebars[0]
	link, ok := docs.Items[len(docs.Items)-1].(*nav.Link)
	require.True(t, ok, "link mode ends with a link")
	assert.Equal(t, "API Reference", link.Label)
	assert.Equal(t, "/api-reference/api-overview", link.Href)

	// The API sidebar is identical in both modes.
	apiBar, ok := tree.Sidebar(DefaultAPISidebar)
	require.True(t, ok)
	assert.Len(t, apiBar.Items, 3)
}

func TestMerge_LinkCustomHref(t *testing.T) {
	tree, err := Merge(nil, nil, Options{Mode: ModeLink, Href: "https://api.zimsend.example/docs"})
	require.NoError(t, err)
	link := tree.Sidebars[0].Items[0].(*nav.Link)
	assert.Equal(t, "https://api.zimsend.example/docs", link.Href)
	assert.Equal(t, DefaultAPILabel, link.Label)
}

func TestMerge_UnknownReference(t *testing.T) {
	manual := append(manualNodes(), &nav.Category{
		Label: "Broken",
		Items: []nav.Node{&nav.DocRef{ID: "guides/nonexistent"}},
	})
	set := content.NewSet("intro", "guides/quickstart", "guides/otp", "faq", "errors")

	_, err := Merge(manual, apiCategories(), Options{Synth: synthOpts, Content: set})
	require.Error(t, err)
	assert.Equal(t, errors.KindMergeConfig, errors.GetKind(err))
	assert.Contains(t, err.Error(), "guides/nonexistent")
	assert.Equal(t, []string{"guides/nonexistent"}, errors.GetAttributes(err)["ids"])
}

func TestMerge_DuplicateIDsAllowed(t *testing.T) {
	manual := []nav.Node{
		&nav.DocRef{ID: "api-reference/envoyer-un-sms", Label: "Envoyer un SMS"},
	}
	set := content.NewSet("api-reference/envoyer-un-sms")

	tree, err := Merge(manual, apiCategories(), Options{Synth: synthOpts, Content: set})
	require.NoError(t, err)
	assert.Len(t, tree.Sidebars[0].Items, 2)
}

func TestMerge_SameSidebarNames(t *testing.T) {
	_, err := Merge(nil, nil, Options{DocsSidebar: "main", APISidebar: "main"})
	require.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))
}

func TestMerge_BadMode(t *testing.T) {
	_, err := Merge(nil, nil, Options{Mode: "sideways"})
	require.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("link")
	require.NoError(t, err)
	assert.Equal(t, ModeLink, m)

	_, err = ParseMode("inline")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tree, err := Merge(manualNodes(), apiCategories(), Options{Synth: synthOpts})
	require.NoError(t, err)

	set := content.NewSet("intro", "guides/quickstart", "guides/otp", "faq", "errors")
	set.Add(synth.GeneratedIDs(apiCategories(), synthOpts)...)
	assert.NoError(t, Validate(tree, set))

	delete(set, "api-reference/otp-overview")
	err = Validate(tree, set)
	require.Error(t, err)
	assert.Equal(t, errors.KindMergeConfig, errors.GetKind(err))
	assert.Contains(t, err.Error(), "api-reference/otp-overview")
	assert.Contains(t, err.Error(), DefaultDocsSidebar)
}

func TestMissing_NoRepeats(t *testing.T) {
	nodes := []nav.Node{
		&nav.DocRef{ID: "a"},
		&nav.DocRef{ID: "b"},
		&nav.Category{Label: "c", Items: []nav.Node{&nav.DocRef{ID: "a"}}},
	}
	assert.Equal(t, []string{"a", "b"}, Missing(nodes, content.NewSet()))
}

func TestDescribe(t *testing.T) {
	tree, err := Merge(manualNodes(), apiCategories(), Options{Synth: synthOpts})
	require.NoError(t, err)
	assert.Equal(t, "docsSidebar=12, apisidebar=5", Describe(tree))
}
