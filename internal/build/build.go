// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package build runs the navigation pipeline: load the OpenAPI document,
// synthesize the API categories, index the docs, merge and validate.
package build

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zimsendapi/docs/internal/config"
	"github.com/zimsendapi/docs/internal/content"
	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/logging"
	"github.com/zimsendapi/docs/internal/merge"
	"github.com/zimsendapi/docs/internal/nav"
	"github.com/zimsendapi/docs/internal/openapi"
	"github.com/zimsendapi/docs/internal/synth"
)

// Result is the outcome of one build. It is never modified after Run returns.
type Result struct {
	ID       string
	Tree     *nav.Tree
	Catalog  *openapi.Catalog
	API      []*nav.Category
	Synth    synth.Options
	Content  content.Set
	Duration time.Duration
}

// SynthOptions returns the id scheme used for cfg.
func SynthOptions(cfg *config.Config) synth.Options {
	return synth.Options{
		BasePrefix: cfg.BasePrefix,
		Collapsed:  cfg.API.CategoriesCollapsed,
	}
}

// MergeOptions returns the merge settings for cfg. Content is left unset.
func MergeOptions(cfg *config.Config) merge.Options {
	return merge.Options{
		DocsSidebar: cfg.DocsSidebar,
		APISidebar:  cfg.APISidebar,
		Mode:        cfg.API.Mode,
		Label:       cfg.API.Label,
		Href:        cfg.API.Href,
		Collapsed:   cfg.API.Collapsed,
		Synth:       SynthOptions(cfg),
	}
}

// Run builds the navigation tree from scratch. Every stage runs to completion;
// ctx is checked between stages.
func Run(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.Default()
	}
	start := time.Now()
	res := &Result{ID: uuid.NewString()}
	log := logger.WithComponent("build").With("build_id", res.ID)

	log.Debug("loading openapi document", "path", cfg.SpecPath)
	cat, err := openapi.Load(cfg.SpecPath)
	if err != nil {
		return nil, err
	}
	res.Catalog = cat
	log.Debug("openapi document loaded", "tags", len(cat.Tags), "operations", cat.OperationCount())

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "build cancelled")
	}

	sopts := SynthOptions(cfg)
	res.Synth = sopts
	api, err := synth.Synthesize(cat, sopts)
	if err != nil {
		return nil, err
	}
	res.API = api
	log.Debug("api navigation synthesized", "categories", len(api))

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "build cancelled")
	}

	pages, err := content.Scan(cfg.DocsDir)
	if err != nil {
		return nil, err
	}
	// Generated pages count as content even before gen-api-docs has run.
	res.Content = pages.Union(content.NewSet(synth.GeneratedIDs(api, sopts)...))
	log.Debug("content indexed", "dir", cfg.DocsDir, "pages", len(pages))

	mopts := MergeOptions(cfg)
	mopts.Content = res.Content
	tree, err := merge.Merge(cfg.Manual, api, mopts)
	if err != nil {
		return nil, err
	}
	if err := merge.Validate(tree, res.Content); err != nil {
		return nil, err
	}
	res.Tree = tree
	res.Duration = time.Since(start)

	log.Info("navigation built",
		"sidebars", merge.Describe(tree),
		"operations", cat.OperationCount(),
		"duration", res.Duration)
	return res, nil
}
