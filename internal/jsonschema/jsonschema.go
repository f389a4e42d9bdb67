package jsonschema

import (
	"reflect"
	"strings"
)

// Schema represents the structure of JSON Schema used for defining arguments and responses.
// It follows the JSON Schema standard, supporting various types, properties, and validation rules.
// This structure is typically used to define the expected format of arguments for tools or functions
// and to validate that incoming data conforms to the expected structure.
type Schema struct {
	// Type specifies the data type (e.g., "object", "array", "string", "number")
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the arguments, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
	// Enum contains the list of allowed values for the parameter
	Enum []any `json:"enum,omitempty"`
	// Default value for the parameter
	Default any `json:"default,omitempty"`
}

// GenerateJSONSchema derives a JSON schema from the Go type T via reflection.
// Struct fields are mapped through their json tags; additional metadata is
// read from the jsonschema struct tag, which supports comma-separated
// directives: "description=...", "required", and repeated "enum=..." values.
//
// Example:
//
//	type Input struct {
//	    Query string `json:"query" jsonschema:"description=The search query,required"`
//	}
//	schema := jsonschema.GenerateJSONSchema[Input]()
func GenerateJSONSchema[T any]() *Schema {
	return generate(reflect.TypeFor[T](), make(map[reflect.Type]bool))
}

// generate builds the schema for t. The visited set breaks self-referential
// struct cycles by emitting a bare object schema for repeated types.
func generate(t reflect.Type, visited map[reflect.Type]bool) *Schema {
	switch t.Kind() {
	case reflect.Ptr:
		return generate(t.Elem(), visited)

	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: generate(t.Elem(), visited)}

	case reflect.Map:
		return &Schema{Type: "object"}

	case reflect.Struct:
		if visited[t] {
			return &Schema{Type: "object"}
		}
		visited[t] = true
		return generateStruct(t, visited)

	default:
		// Channels, funcs, and other non-serializable kinds have no schema
		// representation; fall back to string so the output stays valid.
		return &Schema{Type: "string"}
	}
}

// generateStruct builds the object schema for a struct type, honoring json
// and jsonschema field tags.
func generateStruct(t reflect.Type, visited map[reflect.Type]bool) *Schema {
	schema := &Schema{
		Type:       "object",
		Properties: map[string]*Schema{},
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		fieldName, omit := jsonFieldName(field)
		if omit {
			continue
		}

		fieldSchema := generate(field.Type, visited)
		required := applyFieldTag(fieldSchema, field.Tag.Get("jsonschema"))

		schema.Properties[fieldName] = fieldSchema
		if required {
			schema.Required = append(schema.Required, fieldName)
		}
	}

	return schema
}

// jsonFieldName resolves the property name for a struct field from its json
// tag, falling back to the Go field name. The second return value reports
// whether the field is excluded via json:"-".
func jsonFieldName(field reflect.StructField) (string, bool) {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "-" {
		return "", true
	}

	name := field.Name
	if jsonTag != "" {
		if tagName := strings.Split(jsonTag, ",")[0]; tagName != "" {
			name = tagName
		}
	}
	return name, false
}

// applyFieldTag parses the jsonschema struct tag into the field schema and
// reports whether the field is marked required.
func applyFieldTag(schema *Schema, tag string) bool {
	if tag == "" {
		return false
	}

	required := false
	for _, directive := range strings.Split(tag, ",") {
		switch {
		case directive == "required":
			required = true
		case strings.HasPrefix(directive, "description="):
			schema.Description = strings.TrimPrefix(directive, "description=")
		case strings.HasPrefix(directive, "enum="):
			schema.Enum = append(schema.Enum, strings.TrimPrefix(directive, "enum="))
		case strings.HasPrefix(directive, "default="):
			schema.Default = strings.TrimPrefix(directive, "default=")
		}
	}
	return required
}
