package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// JSONSchema represents a JSON Schema document
type JSONSchema struct {
	Schema      string                 `json:"$schema,omitempty"`
	ID          string                 `json:"$id,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type"`
	Required    []string               `json:"required,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Items       *JSONSchema            `json:"items,omitempty"`
	Enum        []interface{}          `json:"enum,omitempty"`
	Default     interface{}            `json:"default,omitempty"`
	Pattern     string                 `json:"pattern,omitempty"`
	Minimum     *int                   `json:"minimum,omitempty"`
	MinLength   *int                   `json:"minLength,omitempty"`
	MaxLength   *int                   `json:"maxLength,omitempty"`
	MinItems    *int                   `json:"minItems,omitempty"`
	MaxItems    *int                   `json:"maxItems,omitempty"`
}

const schemaRef = "https://json-schema.org/draft/2020-12/schema"

// Generator generates JSON schemas from Go structs. Property names come
// from yaml tags, falling back to json tags and then the field name.
type Generator struct {
	idBase string
	enums  map[reflect.Type][]string
}

func NewGenerator(idBase string) *Generator {
	return &Generator{
		idBase: strings.TrimRight(idBase, "/"),
		enums:  make(map[reflect.Type][]string),
	}
}

// Enum makes every value of type t a string restricted to values. Use it
// for types that marshal to text, such as named integer enums.
func (g *Generator) Enum(t reflect.Type, values []string) *Generator {
	g.enums[t] = values
	return g
}

// GenerateSchema generates a JSON schema from a Go type
func (g *Generator) GenerateSchema(t reflect.Type) (*JSONSchema, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("root type must be a struct, got %s", t.Kind())
	}

	root, err := g.generateStructSchema(t)
	if err != nil {
		return nil, err
	}
	root.Schema = schemaRef
	root.Title = t.Name()
	if g.idBase != "" {
		root.ID = fmt.Sprintf("%s/%s", g.idBase, strings.ToLower(t.Name()))
	}
	return root, nil
}

func (g *Generator) generateSchemaForType(t reflect.Type) (*JSONSchema, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if values, ok := g.enums[t]; ok {
		s := &JSONSchema{Type: "string", Enum: make([]interface{}, len(values))}
		for i, v := range values {
			s.Enum[i] = v
		}
		return s, nil
	}

	switch t.Kind() {
	case reflect.Struct:
		return g.generateStructSchema(t)
	case reflect.Slice:
		return g.generateSliceSchema(t)
	case reflect.String:
		return &JSONSchema{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &JSONSchema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &JSONSchema{Type: "number"}, nil
	case reflect.Bool:
		return &JSONSchema{Type: "boolean"}, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}
}

func (g *Generator) generateStructSchema(t reflect.Type) (*JSONSchema, error) {
	schema := &JSONSchema{
		Type:       "object",
		Properties: make(map[string]*JSONSchema),
	}

	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		fieldName := fieldName(field)
		if fieldName == "" {
			continue
		}

		fieldSchema, err := g.generateFieldSchema(field)
		if err != nil {
			return nil, fmt.Errorf("failed to generate schema for field %s: %w", field.Name, err)
		}

		schema.Properties[fieldName] = fieldSchema

		if isFieldRequired(field) {
			required = append(required, fieldName)
		}
	}

	if len(required) > 0 {
		schema.Required = required
	}

	return schema, nil
}

func (g *Generator) generateSliceSchema(t reflect.Type) (*JSONSchema, error) {
	itemSchema, err := g.generateSchemaForType(t.Elem())
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema for array items: %w", err)
	}

	return &JSONSchema{Type: "array", Items: itemSchema}, nil
}

func (g *Generator) generateFieldSchema(field reflect.StructField) (*JSONSchema, error) {
	fieldSchema, err := g.generateSchemaForType(field.Type)
	if err != nil {
		return nil, err
	}

	if desc := field.Tag.Get("description"); desc != "" {
		fieldSchema.Description = desc
	}

	if schemaTag := field.Tag.Get("schema"); schemaTag != "" {
		parseSchemaTag(schemaTag, fieldSchema)
	}

	return fieldSchema, nil
}

func parseSchemaTag(tag string, schema *JSONSchema) {
	for _, part := range strings.Split(tag, ",") {
		key, value, _ := strings.Cut(strings.TrimSpace(part), "=")

		switch key {
		case "enum":
			enums := strings.Split(value, "|")
			schema.Enum = make([]interface{}, len(enums))
			for i, e := range enums {
				schema.Enum[i] = e
			}
		case "default":
			schema.Default = value
		case "pattern":
			schema.Pattern = value
		case "minimum":
			schema.Minimum = atoiPtr(value)
		case "minLength":
			schema.MinLength = atoiPtr(value)
		case "maxLength":
			schema.MaxLength = atoiPtr(value)
		case "minItems":
			schema.MinItems = atoiPtr(value)
		case "maxItems":
			schema.MaxItems = atoiPtr(value)
		}
	}
}

func atoiPtr(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func fieldName(field reflect.StructField) string {
	for _, key := range []string{"yaml", "json"} {
		tag, ok := field.Tag.Lookup(key)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return strings.ToLower(field.Name[:1]) + field.Name[1:]
}

func isFieldRequired(field reflect.StructField) bool {
	for _, part := range strings.Split(field.Tag.Get("schema"), ",") {
		if strings.TrimSpace(part) == "required" {
			return true
		}
	}
	return false
}

// GenerateJSONSchema generates the schema of v's type as indented JSON.
func (g *Generator) GenerateJSONSchema(v interface{}) (string, error) {
	schema, err := g.GenerateSchema(reflect.TypeOf(v))
	if err != nil {
		return "", err
	}

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}

	return string(jsonBytes), nil
}
