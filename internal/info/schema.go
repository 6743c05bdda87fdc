package info

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaURL = "schema://gopherlings-info.json"

// infoSchema describes the info file. Types are checked here so that a
// hand-edited file gets a readable error instead of a decode failure.
const infoSchema = `{
	"type": "object",
	"required": ["format_version", "exercises"],
	"properties": {
		"format_version": {"type": "integer", "minimum": 1},
		"welcome_message": {"type": "string"},
		"final_message": {"type": "string"},
		"exercises": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "hint"],
				"additionalProperties": false,
				"properties": {
					"name": {"type": "string", "pattern": "^[A-Za-z0-9_]+$"},
					"dir": {"type": "string", "pattern": "^[A-Za-z0-9_]*$"},
					"test": {"type": "boolean"},
					"strict_vet": {"type": "boolean"},
					"hint": {"type": "string"},
					"skip_check_unsolved": {"type": "boolean"}
				}
			}
		}
	}
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(infoSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validate checks raw YAML against the info schema.
func validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	// The validator expects JSON values, so route the YAML tree through
	// encoding/json to normalise maps and numbers.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert info file: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("convert info file: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile info schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("info file validation failed: %w", err)
	}
	return nil
}
