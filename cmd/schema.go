// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

import (
	"github.com/zimsendapi/docs/internal/render"
)

// RunSchema writes the JSON Schema of the sidebar file to output, or to the
// printer when output is empty or "-".
func RunSchema(output string) error {
	data, err := render.SchemaJSON()
	if err != nil {
		return err
	}
	if output == "" {
		output = StdoutPath
	}
	return writeOutput(output, data)
}
