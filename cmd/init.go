// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/zimsendapi/docs/internal/config"
	"github.com/zimsendapi/docs/internal/content"
	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/merge"
	"github.com/zimsendapi/docs/internal/tui"
)

// InitAnswers are the questions asked by `navgen init`.
type InitAnswers struct {
	SpecPath   string `tui:"title=OpenAPI document;desc=Path relative to the project file;validate=relative"`
	DocsDir    string `tui:"title=Docs directory;desc=Hand-written pages live here;validate=relative"`
	BasePrefix string `tui:"title=API page prefix;desc=Generated API page ids start with this path;validate=relative"`
	Format     string `tui:"title=Sidebar format;options=JSON:json|YAML:yaml|TypeScript:ts"`
	APIMode    string `tui:"title=API reference in the docs sidebar;options=Nested category:nested|Single link:link"`
	APILabel   string `tui:"title=API reference label;validate=required"`
}

// DefaultInitAnswers returns the answers used without a form.
func DefaultInitAnswers() InitAnswers {
	return InitAnswers{
		SpecPath:   config.DefaultSpecPath,
		DocsDir:    config.DefaultDocsDir,
		BasePrefix: config.DefaultBasePrefix,
		Format:     config.DefaultFormat,
		APIMode:    string(merge.ModeNested),
		APILabel:   merge.DefaultAPILabel,
	}
}

// InitOptions configures RunInit.
type InitOptions struct {
	Path string
	// Interactive asks the questions in a terminal form.
	Interactive bool
	// Force overwrites an existing project file.
	Force bool
}

// RunInit writes a starter project file whose docs sidebar lists the pages
// already present in the docs directory.
func RunInit(opts InitOptions) error {
	path := opts.Path
	if path == "" {
		path = config.DefaultFile
	}
	if _, err := os.Stat(path); err == nil && !opts.Force {
		return errors.Attr(errors.Errorf(errors.KindValidation, "%s already exists, use -force to overwrite", path), "file", path)
	}

	answers := DefaultInitAnswers()
	if opts.Interactive {
		if err := tui.AutoForm(&answers).Run(); err != nil {
			return errors.Wrap(err, errors.KindInternal, "init form")
		}
	}

	docs, err := starterDocs(filepath.Join(filepath.Dir(path), answers.DocsDir), answers.BasePrefix)
	if err != nil {
		return err
	}
	src := config.Scaffold{
		SpecPath:   answers.SpecPath,
		DocsDir:    answers.DocsDir,
		BasePrefix: answers.BasePrefix,
		Format:     answers.Format,
		APIMode:    answers.APIMode,
		APILabel:   answers.APILabel,
		Docs:       docs,
	}.HCL()

	if _, err := config.LoadHCL(src, path); err != nil {
		return err
	}
	return writeOutput(path, src)
}

// starterDocs returns the sorted page ids of dir, generated API pages
// excluded. A missing directory yields no pages.
func starterDocs(dir, basePrefix string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	set, err := content.Scan(dir)
	if err != nil {
		return nil, err
	}
	prefix := strings.Trim(basePrefix, "/") + "/"
	var ids []string
	for _, id := range set.Sorted() {
		if !strings.HasPrefix(id, prefix) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
