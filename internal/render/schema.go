// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package render

import (
	"encoding/json"
	"slices"

	"github.com/invopop/jsonschema"

	"github.com/zimsendapi/docs/internal/errors"
)

// SchemaID identifies the published sidebar file schema.
const SchemaID = "https://docs.zimsend.example/schemas/sidebars.json"

// Schema describes the JSON sidebar file: an object mapping sidebar names to
// item lists.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	s := r.Reflect(map[string][]Item{})
	s.ID = SchemaID
	s.Title = "Docs sidebars"
	s.Description = "Sidebar definitions generated by navgen"

	// items is omitted on doc and link entries.
	if def, ok := s.Definitions["Item"]; ok {
		def.Required = slices.DeleteFunc(def.Required, func(f string) bool { return f == "items" })
	}
	return s
}

// SchemaJSON returns the indented schema document.
func SchemaJSON() ([]byte, error) {
	out, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "encode schema")
	}
	return append(out, '\n'), nil
}
