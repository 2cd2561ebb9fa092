package odatnote

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// schemas holds the compiled wrongData schema of every item type.
type schemas map[domain.ItemType]*jsonschema.Schema

func compileSchemas() (schemas, error) {
	c := jsonschema.NewCompiler()
	out := make(schemas, len(domain.ItemTypes))

	for _, t := range domain.ItemTypes {
		raw, err := schemaFS.ReadFile("schemas/" + string(t) + ".json")
		if err != nil {
			return nil, fmt.Errorf("read %s schema: %w", t, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parse %s schema: %w", t, err)
		}

		url := fmt.Sprintf("schema://wrong-data/%s.json", t)
		if err := c.AddResource(url, doc); err != nil {
			return nil, fmt.Errorf("add %s schema: %w", t, err)
		}
		compiled, err := c.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", t, err)
		}
		out[t] = compiled
	}
	return out, nil
}

// validate checks a wrongData payload against the schema of its item type.
// An empty payload is accepted.
func (s schemas) validate(t domain.ItemType, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	sch, ok := s[t]
	if !ok {
		return domain.NewValidationError("type", "must be vocab, grammar, reading or listening")
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return domain.NewValidationError("wrong_data", "must be valid JSON")
	}
	if err := sch.Validate(doc); err != nil {
		return domain.NewValidationError("wrong_data", fmt.Sprintf("does not match the %s payload: %v", t, err))
	}
	return nil
}
