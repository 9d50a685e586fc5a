// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package synth turns an OpenAPI catalog into the API-reference navigation subtree.
package synth

import (
	"path"

	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/nav"
	"github.com/zimsendapi/docs/internal/openapi"
	"github.com/zimsendapi/docs/internal/slug"
)

// Options controls identifier construction.
type Options struct {
	// BasePrefix is prepended to every generated id, e.g. "api-reference".
	BasePrefix string
	// Collapsed, when set, is copied onto every generated category.
	Collapsed *bool
}

// MethodClass returns the style class of an operation entry.
func MethodClass(m openapi.Method) string {
	return "api-method " + m.Lower()
}

// DocID joins the base prefix and a page id.
func (o Options) DocID(id string) string {
	if o.BasePrefix == "" {
		return id
	}
	return path.Join(o.BasePrefix, id)
}

// OverviewID returns the id of a tag's overview page.
func (o Options) OverviewID(tag string) string {
	return o.DocID(slug.Make(tag) + "-overview")
}

// APIOverviewID returns the id of the API-reference landing page.
func (o Options) APIOverviewID() string {
	return o.DocID("api-overview")
}

// owner records which page claimed an id.
type owner struct {
	tag   string
	label string
	page  string // method and path of an operation, or the overview it names
}

// Synthesize builds one category per tag, in catalog order, with one entry per
// operation in document order. Ids are unique across the whole API sidebar:
// an operation listed under several tags keeps one id, and any two distinct
// pages producing the same id fail with a slug collision.
func Synthesize(cat *openapi.Catalog, opts Options) ([]*nav.Category, error) {
	claimed := map[string]owner{
		"api-overview": {label: "API overview", page: "api-overview"},
	}
	claim := func(id string, o owner) error {
		prev, dup := claimed[id]
		if !dup {
			claimed[id] = o
			return nil
		}
		if prev.page == o.page {
			return nil
		}
		return errors.SlugCollisionError(id, prev.tag, prev.label, o.tag, o.label)
	}

	cats := make([]*nav.Category, 0, len(cat.Tags))
	for _, tag := range cat.Tags {
		tagSlug := slug.Make(tag.Name)
		if tagSlug == "" {
			err := errors.LoadErrorf(cat.Source, "tag %q has no usable characters for an overview identifier", tag.Name)
			return nil, errors.Attr(err, "tag", tag.Name)
		}
		overview := tagSlug + "-overview"
		if err := claim(overview, owner{tag: tag.Name, label: tag.Name + " overview", page: "overview " + tag.Name}); err != nil {
			return nil, err
		}

		items := make([]nav.Node, 0, len(tag.Operations))
		for _, op := range tag.Operations {
			if op.ID == "" {
				err := errors.LoadErrorf(cat.Source, "%s %s: label %q has no usable characters for an identifier",
					op.Method, op.Path, op.Label)
				err = errors.Attr(err, "method", string(op.Method))
				err = errors.Attr(err, "path", op.Path)
				return nil, errors.Attr(err, "tag", tag.Name)
			}
			if err := claim(op.ID, owner{tag: tag.Name, label: op.Label, page: string(op.Method) + " " + op.Path}); err != nil {
				return nil, err
			}

			items = append(items, &nav.DocRef{
				ID:        opts.DocID(op.ID),
				Label:     op.Label,
				ClassName: MethodClass(op.Method),
			})
		}

		cats = append(cats, &nav.Category{
			Label:     tag.Name,
			Link:      &nav.DocRef{ID: opts.DocID(overview)},
			Collapsed: opts.Collapsed,
			Items:     items,
		})
	}
	return cats, nil
}

// APISidebar returns the content of the standalone API sidebar: the API
// overview page followed by the synthesized categories.
func APISidebar(cats []*nav.Category, opts Options) []nav.Node {
	nodes := make([]nav.Node, 0, len(cats)+1)
	nodes = append(nodes, &nav.DocRef{ID: opts.APIOverviewID()})
	return append(nodes, nav.Categories(cats)...)
}

// GeneratedIDs lists every page id the synthesized tree points at, overview
// pages included, in display order.
func GeneratedIDs(cats []*nav.Category, opts Options) []string {
	ids := []string{opts.APIOverviewID()}
	return append(ids, nav.DocIDs(nav.Categories(cats))...)
}
