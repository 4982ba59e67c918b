package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-realtime/internal/errors"
)

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, "failed to open catalog").
			WithMeta("path", path)
	}
	defer func() { _ = f.Close() }()

	m, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog").WithMeta("path", path)
	}
	return m, nil
}

// Load decodes a YAML catalog. Unknown fields are rejected.
func Load(r io.Reader) (*Memory, error) {
	var data Data

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed catalog")
	}

	return New(&data)
}

// Schema reflects the JSON schema of a catalog document
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(new(Data))
	schema.Title = "rpg-realtime catalog"
	schema.Description = "Skills, items, states and battler templates consumed by the combat simulation."
	return schema
}

// WriteSchema writes the indented JSON schema to w
func WriteSchema(w io.Writer) error {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal schema")
	}

	if _, err := io.Copy(w, bytes.NewReader(append(data, '\n'))); err != nil {
		return errors.Wrap(err, "failed to write schema")
	}
	return nil
}
