// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/merge"
)

// Defaults applied to omitted project file arguments.
const (
	DefaultSpecPath   = "openapi.yaml"
	DefaultDocsDir    = "docs"
	DefaultBasePrefix = "api-reference"
	DefaultOutput     = "sidebars.json"
	DefaultFormat     = "json"
)

// LoadFile reads and decodes a project file. Relative paths inside it are
// resolved against the file's directory.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindNotFound, "read config %s", path)
	}
	return LoadHCL(data, path)
}

// LoadHCL decodes project file source. filename is used in diagnostics and
// as the base for relative paths.
func LoadHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	var raw File
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	cfg, diags := resolve(&raw, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	if errs := cfg.Validate(); errs.HasErrors() {
		return nil, errors.Attr(
			errors.Wrap(errs, errors.KindValidation, "invalid config "+filename),
			"file", filename,
		)
	}
	return cfg, nil
}

func resolve(raw *File, filename string) (*Config, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	base := filepath.Dir(filename)

	cfg := &Config{
		Path:       filename,
		SpecPath:   joinPath(base, orDefault(raw.SpecPath, DefaultSpecPath)),
		DocsDir:    joinPath(base, orDefault(raw.DocsDir, DefaultDocsDir)),
		BasePrefix: strings.Trim(orDefault(raw.BasePrefix, DefaultBasePrefix), "/"),
		Output:     joinPath(base, orDefault(raw.Output, DefaultOutput)),
		Format:     strings.ToLower(orDefault(raw.Format, DefaultFormat)),
		APISidebar: orDefault(raw.APISidebar, merge.DefaultAPISidebar),
		API: APIReference{
			Mode:  merge.ModeNested,
			Label: merge.DefaultAPILabel,
		},
	}
	if raw.APIDocsDir != "" {
		cfg.APIDocsDir = joinPath(base, raw.APIDocsDir)
	} else {
		cfg.APIDocsDir = filepath.Join(cfg.DocsDir, filepath.FromSlash(cfg.BasePrefix))
	}

	if ar := raw.APIReference; ar != nil {
		if ar.Mode != "" {
			mode, err := merge.ParseMode(ar.Mode)
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid api_reference mode",
					Detail:   err.Error(),
				})
			}
			cfg.API.Mode = mode
		}
		cfg.API.Label = orDefault(ar.Label, cfg.API.Label)
		cfg.API.Href = ar.Href
		cfg.API.Collapsed = ar.Collapsed
		cfg.API.CategoriesCollapsed = ar.CategoriesCollapsed
	}

	switch len(raw.Sidebars) {
	case 0:
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing sidebar block",
			Detail:   "Exactly one sidebar block describing the hand-written docs is required.",
		})
	case 1:
		sb := raw.Sidebars[0]
		cfg.DocsSidebar = sb.Name
		nodes, more := decodeSidebar(sb.Body)
		diags = append(diags, more...)
		cfg.Manual = nodes
	default:
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Duplicate sidebar block",
			Detail:   "Only one sidebar block may be defined; the API sidebar is generated.",
			Subject:  raw.Sidebars[1].Body.MissingItemRange().Ptr(),
		})
	}
	return cfg, diags
}

// diagError converts HCL diagnostics into a validation error that keeps the
// individual diagnostics as an attribute.
func diagError(filename string, diags hcl.Diagnostics) error {
	var msgs []string
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		msg := d.Summary
		if d.Detail != "" {
			msg += "; " + d.Detail
		}
		if d.Subject != nil {
			msg = d.Subject.String() + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	return errors.Attr(
		errors.Errorf(errors.KindValidation, "invalid config %s: %s", filename, strings.Join(msgs, "; ")),
		"file", filename,
	)
}

func joinPath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, filepath.FromSlash(p))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
