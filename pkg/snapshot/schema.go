package snapshot

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of an exported tree.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		FieldNameTag:              "json",
	}

	schema := r.Reflect(&Record{})
	schema.Title = "Tab Groups Snapshot"
	schema.Description = "A tab group tree as written by 'tg export'."

	return json.MarshalIndent(schema, "", "  ")
}
