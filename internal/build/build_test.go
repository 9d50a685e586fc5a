// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zimsendapi/docs/internal/config"
	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/logging"
	"github.com/zimsendapi/docs/internal/nav"
)

const smallSpec = `
openapi: 3.0.0
paths:
  /sms:
    post:
      tags: [SMS]
      summary: Envoyer un SMS
`

// writeSite lays out a project in a temp dir and returns its loaded config.
func writeSite(t *testing.T, hcl, spec string, pages ...string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi.yaml"), []byte(spec), 0o644))
	for _, p := range pages {
		full := filepath.Join(dir, "docs", filepath.FromSlash(p)+".md")
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("# "+p+"\n"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))

	path := filepath.Join(dir, config.DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(hcl), 0o644))
	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	return cfg
}

func TestRun_Site(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join("..", "..", "site", config.DefaultFile))
	require.NoError(t, err)

	res, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 13, res.Catalog.OperationCount())
	assert.True(t, res.Content.Has("guides/quickstart"))
	assert.True(t, res.Content.Has("api-reference/api-overview"))
	assert.False(t, res.Content.Has("_shared"))

	docs, ok := res.Tree.Sidebar("docsSidebar")
	require.True(t, ok)
	require.Len(t, docs.Items, 6)
	assert.Equal(t, &nav.DocRef{ID: "intro", Label: "👋 Introduction"}, docs.Items[0])

	apiRef := docs.Items[5].(*nav.Category)
	assert.Equal(t, "📡 API Reference", apiRef.Label)
	assert.Equal(t, "api-reference/api-overview", apiRef.Link.ID)
	require.Len(t, apiRef.Items, 3)

	sms := apiRef.Items[0].(*nav.Category)
	assert.Equal(t, "api-reference/sms-overview", sms.Link.ID)
	assert.Equal(t, []string{
		"api-reference/envoyer-un-sms",
		"api-reference/envoyer-des-sms-en-masse",
		"api-reference/obtenir-le-statut-dun-sms",
		"api-reference/historique-des-sms",
		"api-reference/renvoyer-un-sms-echoue",
		"api-reference/annuler-un-sms-programme",
	}, nav.DocIDs(sms.Items))

	api, ok := res.Tree.Sidebar("apisidebar")
	require.True(t, ok)
	require.Len(t, api.Items, 4)
	assert.Equal(t, &nav.DocRef{ID: "api-reference/api-overview"}, api.Items[0])
}

func TestRun_Deterministic(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join("..", "..", "site", config.DefaultFile))
	require.NoError(t, err)

	first, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	second, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, first.Tree, second.Tree)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRun_LinkMode(t *testing.T) {
	cfg := writeSite(t, `
api_reference {
  mode = "link"
}
sidebar "docsSidebar" {
  doc "intro" {}
}
`, smallSpec, "intro")

	res, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)

	docs := res.Tree.Sidebars[0]
	require.Len(t, docs.Items, 2)
	assert.Equal(t, &nav.Link{Label: "API Reference", Href: "/api-reference/api-overview"}, docs.Items[1])
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		hcl   string
		spec  string
		pages []string
		kind  errors.Kind
		msg   string
	}{
		{
			name:  "unknown page",
			hcl:   "sidebar \"docsSidebar\" {\n  category \"Guides\" {\n    items = [\"guides/nonexistent\"]\n  }\n}\n",
			spec:  smallSpec,
			pages: []string{"intro"},
			kind:  errors.KindMergeConfig,
			msg:   "guides/nonexistent",
		},
		{
			name: "malformed spec",
			hcl:  `sidebar "docsSidebar" {}`,
			spec: "openapi: [",
			kind: errors.KindLoad,
			msg:  "malformed",
		},
		{
			name: "slug collision",
			hcl:  `sidebar "docsSidebar" {}`,
			spec: `
openapi: 3.0.0
paths:
  /a:
    post:
      tags: [Webhooks]
      summary: Tester
  /b:
    post:
      tags: [Webhooks]
      summary: Tester
`,
			kind: errors.KindSlugCollision,
			msg:  "tester",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := writeSite(t, tt.hcl, tt.spec, tt.pages...)
			_, err := Run(context.Background(), cfg, logging.Discard())
			require.Error(t, err)
			assert.Equal(t, tt.kind, errors.GetKind(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestRun_MissingDocsDir(t *testing.T) {
	cfg := writeSite(t, `sidebar "docsSidebar" {}`, smallSpec)
	require.NoError(t, os.RemoveAll(cfg.DocsDir))

	_, err := Run(context.Background(), cfg, logging.Discard())
	require.Error(t, err)
	assert.Equal(t, errors.KindNotFound, errors.GetKind(err))
}

func TestRun_Cancelled(t *testing.T) {
	cfg := writeSite(t, `sidebar "docsSidebar" {}`, smallSpec)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, cfg, logging.Discard())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptions(t *testing.T) {
	cfg := &config.Config{
		BasePrefix:  "ref",
		DocsSidebar: "docs",
		APISidebar:  "api",
		API:         config.APIReference{Label: "API", CategoriesCollapsed: nav.Bool(true)},
	}
	sopts := SynthOptions(cfg)
	assert.Equal(t, "ref/api-overview", sopts.APIOverviewID())
	assert.True(t, *sopts.Collapsed)

	mopts := MergeOptions(cfg)
	assert.Equal(t, "docs", mopts.DocsSidebar)
	assert.Equal(t, "api", mopts.APISidebar)
	assert.Nil(t, mopts.Content)
}
