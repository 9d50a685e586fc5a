// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

import (
	"github.com/zimsendapi/docs/internal/configdoc"
)

// DefaultConfigSourceDir holds the project file structs, relative to the
// repository root.
const DefaultConfigSourceDir = "internal/config"

// RunConfigDocs writes the navgen.hcl reference page generated from the
// config structs in sourceDir. An empty output prints to the printer.
func RunConfigDocs(sourceDir, output string) error {
	if sourceDir == "" {
		sourceDir = DefaultConfigSourceDir
	}
	parser := configdoc.NewParser()
	if err := parser.ParseDir(sourceDir); err != nil {
		return err
	}
	ref, err := parser.BuildReference("File")
	if err != nil {
		return err
	}
	if output == "" {
		output = StdoutPath
	}
	return writeOutput(output, []byte(configdoc.GenerateMarkdown(ref)))
}
