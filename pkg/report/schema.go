package report

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// SchemaDraft is the JSON Schema dialect emitted by GenerateSchema.
const SchemaDraft = "http://json-schema.org/draft-07/schema#"

// Schema represents a JSON Schema.
type Schema struct {
	Schema      string             `json:"$schema,omitempty"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Ref         string             `json:"$ref,omitempty"`
	Definitions map[string]*Schema `json:"definitions,omitempty"`
}

// Schemas returns the schemas of the machine-readable outputs, keyed by the
// command that produces them.
func Schemas() map[string]*Schema {
	return map[string]*Schema{
		"run":  GenerateSchema("aoc run", Document{}),
		"list": GenerateSchema("aoc list", Catalog{}),
	}
}

// GenerateSchema derives a schema from the json tags of the struct v.
func GenerateSchema(title string, v any) *Schema {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	defs := make(map[string]*Schema)
	props, required := structToProperties(t, defs)

	schema := &Schema{
		Schema:      SchemaDraft,
		Title:       title,
		Description: fmt.Sprintf("JSON output of %s --format json", title),
		Type:        "object",
		Properties:  props,
		Required:    required,
	}

	if len(defs) > 0 {
		schema.Definitions = defs
	}

	return schema
}

// MarshalSchema encodes the schema as indented JSON.
func MarshalSchema(schema *Schema) ([]byte, error) {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return data, nil
}

func structToProperties(t reflect.Type, defs map[string]*Schema) (map[string]*Schema, []string) {
	props := make(map[string]*Schema)

	var required []string

	for i := range t.NumField() {
		field := t.Field(i)

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" || jsonTag == "" {
			continue
		}

		jsonName, opts, _ := strings.Cut(jsonTag, ",")

		props[jsonName] = typeToSchema(field.Type, defs)

		if !strings.Contains(opts, "omitempty") {
			required = append(required, jsonName)
		}
	}

	return props, required
}

func typeToSchema(t reflect.Type, defs map[string]*Schema) *Schema {
	switch t.Kind() {
	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if t == reflect.TypeOf(time.Duration(0)) {
			return &Schema{Type: "integer", Description: "Duration in nanoseconds"}
		}

		return &Schema{Type: "integer"}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Slice:
		return &Schema{Type: "array", Items: typeToSchema(t.Elem(), defs)}

	case reflect.Struct:
		defName := t.Name()
		if defName == "" {
			props, required := structToProperties(t, defs)

			return &Schema{Type: "object", Properties: props, Required: required}
		}

		if _, exists := defs[defName]; !exists {
			// Reserve the name first so recursive types terminate.
			defs[defName] = &Schema{}

			props, required := structToProperties(t, defs)
			defs[defName] = &Schema{Type: "object", Properties: props, Required: required}
		}

		return &Schema{Ref: "#/definitions/" + defName}

	case reflect.Ptr:
		return typeToSchema(t.Elem(), defs)

	default:
		return &Schema{Type: "object"}
	}
}
