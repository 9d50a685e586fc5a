// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/zimsendapi/docs/internal/nav"
	"github.com/zimsendapi/docs/internal/render"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validate checks the semantic rules HCL decoding cannot express.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if _, err := render.ParseFormat(c.Format); err != nil {
		errs = append(errs, ValidationError{Field: "format", Message: err.Error()})
	}
	if c.DocsSidebar == c.APISidebar {
		errs = append(errs, ValidationError{
			Field:   "api_sidebar",
			Message: fmt.Sprintf("sidebar %q is already used by the docs sidebar", c.APISidebar),
		})
	}
	if p := path.Clean(c.BasePrefix); strings.HasPrefix(p, "../") || p == ".." || path.IsAbs(c.BasePrefix) {
		errs = append(errs, ValidationError{Field: "base_prefix", Message: "must be a relative document path"})
	}

	errs = append(errs, validateNodes("sidebar."+c.DocsSidebar, c.Manual)...)
	return errs
}

func validateNodes(field string, nodes []nav.Node) ValidationErrors {
	var errs ValidationErrors
	for i, n := range nodes {
		f := fmt.Sprintf("%s[%d]", field, i)
		switch n := n.(type) {
		case *nav.DocRef:
			if strings.TrimSpace(n.ID) == "" {
				errs = append(errs, ValidationError{Field: f, Message: "doc id is empty"})
			}
		case *nav.Category:
			if strings.TrimSpace(n.Label) == "" {
				errs = append(errs, ValidationError{Field: f, Message: "category label is empty"})
			}
			if n.Link != nil && strings.TrimSpace(n.Link.ID) == "" {
				errs = append(errs, ValidationError{Field: f + ".link", Message: "doc id is empty"})
			}
			errs = append(errs, validateNodes(f, n.Items)...)
		case *nav.Link:
			if strings.TrimSpace(n.Href) == "" {
				errs = append(errs, ValidationError{Field: f, Message: "link href is empty"})
			}
		}
	}
	return errs
}
