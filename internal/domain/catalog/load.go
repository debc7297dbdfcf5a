package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

//go:embed catalog.schema.json
var catalogSchemaJSON string

var documentSchema = jsonschema.MustCompileString("catalog.schema.json", catalogSchemaJSON)

func LoadFile(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse validates raw YAML against the catalog schema before decoding it.
func Parse(raw []byte) (*Registry, error) {
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("catalog.yaml: %w", err)
	}
	if err := validateDocument(generic); err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("catalog.yaml: %w", err)
	}
	return NewRegistry(doc)
}

func MustDefault() *Registry {
	r, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("default catalog: %v", err))
	}
	return r
}

func validateDocument(generic any) error {
	// The validator expects encoding/json values, not yaml.v3 ones.
	b, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := documentSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}
