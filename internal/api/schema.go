package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionsSchema guards the shape of a questions payload before the
// quiz package normalizes it: every record needs a prompt, at least
// two options, and a fix or answer index. Bounds on the index are
// checked after normalization, where the option count is known.
const questionsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["q", "options"],
		"properties": {
			"q": {"$ref": "#/$defs/flexText"},
			"options": {
				"type": "array",
				"minItems": 2,
				"items": {"$ref": "#/$defs/flexText"}
			},
			"fix": {"type": "integer"},
			"answer": {"type": "integer"},
			"explain": {"type": "string"}
		},
		"anyOf": [
			{"required": ["fix"]},
			{"required": ["answer"]}
		]
	},
	"$defs": {
		"flexText": {
			"anyOf": [
				{"type": "string"},
				{
					"type": "object",
					"required": ["text"],
					"properties": {"text": {"type": "string"}}
				}
			]
		}
	}
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledQuestionsSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(questionsSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse questions schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://questions.json", doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://questions.json")
	})
	return compiledSchema, compileErr
}

// validateQuestionsPayload checks raw question JSON against the
// schema. A failure means the backend served something we refuse to
// score, surfaced at load time instead of crashing mid-quiz.
func validateQuestionsPayload(raw json.RawMessage) error {
	schema, err := compiledQuestionsSchema()
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid questions JSON: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("questions payload failed validation: %w", err)
	}
	return nil
}
