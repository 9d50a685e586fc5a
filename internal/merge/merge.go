// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package merge combines hand-authored navigation with the synthesized API reference.
package merge

import (
	"fmt"
	"strings"

	"github.com/zimsendapi/docs/internal/content"
	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/nav"
	"github.com/zimsendapi/docs/internal/synth"
)

// Mode selects how the API reference appears at the end of the docs sidebar.
type Mode string

const (
	// ModeNested embeds the whole API subtree as a category.
	ModeNested Mode = "nested"
	// ModeLink adds a single link to the API reference root.
	ModeLink Mode = "link"
)

// ParseMode validates a configured mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNested, ModeLink:
		return Mode(s), nil
	}
	return "", errors.Errorf(errors.KindValidation, "unknown api reference mode %q (want %q or %q)", s, ModeNested, ModeLink)
}

const (
	DefaultDocsSidebar = "docsSidebar"
	DefaultAPISidebar  = "apisidebar"
	DefaultAPILabel    = "API Reference"
)

// Options configures the merge.
type Options struct {
	DocsSidebar string
	APISidebar  string

	Mode      Mode
	Label     string // label of the final docs sidebar entry
	Href      string // target of the link in ModeLink
	Collapsed *bool  // display flag of the nested category in ModeNested

	// Synth gives the id scheme of the synthesized pages.
	Synth synth.Options

	// Content, when set, is checked against the ids referenced by the
	// hand-authored nodes.
	Content content.Set
}

func (o Options) withDefaults() Options {
	if o.DocsSidebar == "" {
		o.DocsSidebar = DefaultDocsSidebar
	}
	if o.APISidebar == "" {
		o.APISidebar = DefaultAPISidebar
	}
	if o.Mode == "" {
		o.Mode = ModeNested
	}
	if o.Label == "" {
		o.Label = DefaultAPILabel
	}
	// Docs are served from the site root.
	if o.Href == "" {
		o.Href = "/" + o.Synth.APIOverviewID()
	}
	return o
}

// Merge returns the navigation tree: the docs sidebar holds the manual nodes
// followed by the API reference entry, and the API sidebar holds the API
// overview followed by the synthesized categories. Nodes are shared between
// both sidebars, which is fine since the tree is never mutated.
func Merge(manual []nav.Node, api []*nav.Category, opts Options) (*nav.Tree, error) {
	opts = opts.withDefaults()
	if opts.DocsSidebar == opts.APISidebar {
		return nil, errors.Errorf(errors.KindValidation, "docs and api sidebars share the name %q", opts.DocsSidebar)
	}

	if opts.Content != nil {
		if missing := Missing(manual, opts.Content); len(missing) > 0 {
			return nil, errors.MergeConfigError(opts.DocsSidebar, missing)
		}
	}

	var entry nav.Node
	switch opts.Mode {
	case ModeNested:
		entry = &nav.Category{
			Label:     opts.Label,
			Link:      &nav.DocRef{ID: opts.Synth.APIOverviewID()},
			Collapsed: opts.Collapsed,
			Items:     nav.Categories(api),
		}
	case ModeLink:
		entry = &nav.Link{Label: opts.Label, Href: opts.Href}
	default:
		return nil, errors.Errorf(errors.KindValidation, "unknown api reference mode %q", opts.Mode)
	}

	docs := make([]nav.Node, 0, len(manual)+1)
	docs = append(docs, manual...)
	docs = append(docs, entry)

	return &nav.Tree{Sidebars: []nav.Sidebar{
		{Name: opts.DocsSidebar, Items: docs},
		{Name: opts.APISidebar, Items: synth.APISidebar(api, opts.Synth)},
	}}, nil
}

// Missing returns the DocRef ids under nodes that are not in set, in display
// order, without repeats.
func Missing(nodes []nav.Node, set content.Set) []string {
	var missing []string
	reported := make(map[string]bool)
	for _, id := range nav.DocIDs(nodes) {
		if !set.Has(id) && !reported[id] {
			reported[id] = true
			missing = append(missing, id)
		}
	}
	return missing
}

// Validate checks every sidebar of tree against set.
func Validate(tree *nav.Tree, set content.Set) error {
	for _, s := range tree.Sidebars {
		if missing := Missing(s.Items, set); len(missing) > 0 {
			return errors.MergeConfigError(s.Name, missing)
		}
	}
	return nil
}

// Describe renders a one-line summary of tree for logs.
func Describe(tree *nav.Tree) string {
	parts := make([]string, len(tree.Sidebars))
	for i, sb := range tree.Sidebars {
		parts[i] = fmt.Sprintf("%s=%d", sb.Name, nav.Count(sb.Items))
	}
	return strings.Join(parts, ", ")
}
