package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidSnapshot is wrapped by every SnapshotError.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// SnapshotError reports a snapshot that does not match the schema.
type SnapshotError struct {
	Err error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidSnapshot, e.Err)
}

func (e *SnapshotError) Unwrap() []error { return []error{ErrInvalidSnapshot, e.Err} }

const schemaURL = "schema://trifactor/snapshot.json"

var snapshotSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"run_id": map[string]any{"type": "string"},
		"lens":   map[string]any{"type": "string", "enum": []any{"Interpersonal", "Financial", "Big Picture"}},
		"phase":  map[string]any{"type": "string", "enum": []any{"after_25", "after_25_plus_10"}},
		"round":  map[string]any{"type": "integer", "minimum": 0},
		"overall": map[string]any{
			"type": "number", "minimum": 0, "maximum": 100,
		},
		"variables": map[string]any{
			"type":          "object",
			"minProperties": 1,
			"propertyNames": map[string]any{
				"enum": []any{"Baseline", "Clarity", "Resources", "Boundaries", "Execution", "Feedback"},
			},
			"additionalProperties": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
		},
		"answers": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "integer", "minimum": 0, "maximum": 4},
		},
		"targets": map[string]any{
			"type":     "array",
			"maxItems": 3,
			"items":    map[string]any{"type": "string"},
		},
	},
	"required":             []any{"lens", "phase", "overall", "variables", "answers", "targets"},
	"additionalProperties": false,
}

var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a decoded JSON value, not Go literals with typed
	// slices, so round-trip the definition first.
	raw, err := json.Marshal(snapshotSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// Validate checks raw JSON against the snapshot schema.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &SnapshotError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	schema, err := compiled()
	if err != nil {
		return fmt.Errorf("compile snapshot schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return &SnapshotError{Err: err}
	}
	return nil
}
