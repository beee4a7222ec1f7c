// Package schemas validates recommendation provider payloads against JSON
// Schemas before they are decoded into typed structs.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// programSchema describes one program record. Almost everything is optional;
// the scoring rules degrade field by field, so the schema only rejects shapes
// that would make decoding itself unsafe.
const programSchema = `{
	"type": "object",
	"required": ["id", "title"],
	"properties": {
		"id": {"type": "string"},
		"title": {"type": "string"},
		"description": {"type": "string"},
		"degree_type": {"type": "string"},
		"student_count": {"type": ["string", "number"]},
		"difficulty_rating": {"type": "integer", "minimum": 1, "maximum": 5},
		"rating": {"type": "number", "minimum": 0, "maximum": 5},
		"university": {
			"type": "object",
			"required": ["name"],
			"properties": {
				"name": {"type": "string"},
				"location": {"type": "string"},
				"dormitories_rating": {"type": "number"},
				"facilities_rating": {"type": "number"}
			}
		},
		"faculty": {
			"type": "object",
			"required": ["name"],
			"properties": {"name": {"type": "string"}}
		}
	}
}`

// ResponseSchema accepts both provider payload shapes: the current
// strict/relaxed object and the legacy bare program array.
const ResponseSchema = `{
	"oneOf": [
		{
			"type": "object",
			"required": ["strict_programs"],
			"properties": {
				"strict_programs": {"type": "array", "items": ` + programSchema + `},
				"relaxed_programs": {"type": "array", "items": ` + programSchema + `}
			}
		},
		{"type": "array", "items": ` + programSchema + `}
	]
}`

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the field errors of one payload.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("provider payload validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateProviderResponse checks a raw provider payload against
// ResponseSchema. A schema error here means the payload shape is
// unrecognized, which the caller surfaces as a provider failure.
func ValidateProviderResponse(payload []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(ResponseSchema)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate provider payload: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
