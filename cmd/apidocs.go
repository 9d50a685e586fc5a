// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

import (
	"github.com/zimsendapi/docs/internal/apidoc"
	"github.com/zimsendapi/docs/internal/config"
	"github.com/zimsendapi/docs/internal/logging"
	"github.com/zimsendapi/docs/internal/openapi"
)

// APIDocsOptions configures RunGenAPIDocs.
type APIDocsOptions struct {
	ConfigPath string
	// OutputDir overrides the project file's api_docs_dir.
	OutputDir string
	Logger    *logging.Logger
}

// RunGenAPIDocs writes the overview and operation pages for the OpenAPI
// document. It refuses to write anything when identifiers collide.
func RunGenAPIDocs(opts APIDocsOptions) error {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultFile
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	cat, err := openapi.Load(cfg.SpecPath)
	if err != nil {
		return err
	}
	out, err := apidoc.Generate(cat, apidoc.Options{})
	if err != nil {
		return err
	}

	dir := cfg.APIDocsDir
	if opts.OutputDir != "" {
		dir = opts.OutputDir
	}
	if err := out.WriteToDir(dir); err != nil {
		return err
	}

	logger.WithComponent("apidoc").Debug("pages written", "dir", dir, "files", out.Names())
	Printer.Printf("Generated %d pages in %s\n", len(out.Files), dir)
	return nil
}
