// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zimsendapi/docs/internal/merge"
	"github.com/zimsendapi/docs/internal/nav"
)

func TestScaffold_LoadsBack(t *testing.T) {
	src := Scaffold{
		SpecPath: "spec/openapi.yaml",
		Format:   "ts",
		APIMode:  "link",
		APILabel: "API",
		Docs:     []string{"intro", "guides/quickstart"},
	}.HCL()

	assert.Contains(t, string(src), `spec_path = "spec/openapi.yaml"`)
	assert.Contains(t, string(src), `doc "guides/quickstart" {`)
	assert.NotContains(t, string(src), "docs_dir")

	dir := t.TempDir()
	cfg, err := LoadHCL(src, filepath.Join(dir, DefaultFile))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "spec", "openapi.yaml"), cfg.SpecPath)
	assert.Equal(t, filepath.Join(dir, DefaultDocsDir), cfg.DocsDir)
	assert.Equal(t, "ts", cfg.Format)
	assert.Equal(t, merge.ModeLink, cfg.API.Mode)
	assert.Equal(t, "API", cfg.API.Label)
	assert.Equal(t, merge.DefaultDocsSidebar, cfg.DocsSidebar)
	assert.Equal(t, []string{"intro", "guides/quickstart"}, nav.DocIDs(cfg.Manual))
}

func TestScaffold_Minimal(t *testing.T) {
	src := Scaffold{}.HCL()
	assert.NotContains(t, string(src), "api_reference")

	cfg, err := LoadHCL(src, filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, merge.ModeNested, cfg.API.Mode)
	assert.Empty(t, cfg.Manual)
}
