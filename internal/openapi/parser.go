// Package openapi extracts renderable form definitions from OpenAPI
// documents using kin-openapi. It gives the module a form source: callers
// point at an API description and get back forms.Form values ready for a
// helper and a render pass.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-crispy/pkg/forms"
)

// Operation captures the slice of an OpenAPI operation the form builder
// needs: identity, submission endpoint, and the request body schema.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string

	schema *openapi3.Schema
}

// Operations loads an OpenAPI document from raw JSON/YAML bytes and indexes
// its operations by operationId. Operations without an explicit id are keyed
// "method:path".
func Operations(ctx context.Context, raw []byte) (map[string]Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}

	operations := make(map[string]Operation)
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		collectOperation(operations, "GET", path, item.Get)
		collectOperation(operations, "PUT", path, item.Put)
		collectOperation(operations, "POST", path, item.Post)
		collectOperation(operations, "DELETE", path, item.Delete)
		collectOperation(operations, "PATCH", path, item.Patch)
	}

	if len(operations) == 0 {
		return nil, errors.New("openapi: no operations extracted")
	}
	return operations, nil
}

// Form builds a forms.Form from the operation's request body schema. Fields
// are ordered alphabetically by property name so repeated builds are
// deterministic.
func (op Operation) Form() (*forms.Form, error) {
	if op.schema == nil {
		return nil, fmt.Errorf("openapi: operation %q has no request schema", op.ID)
	}

	required := make(map[string]struct{}, len(op.schema.Required))
	for _, name := range op.schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(op.schema.Properties))
	for name := range op.schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	form := &forms.Form{Fields: make([]forms.Field, 0, len(names))}
	for _, name := range names {
		ref := op.schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := required[name]
		form.Fields = append(form.Fields, buildField(name, ref.Value, isRequired))
	}
	return form, nil
}

func collectOperation(target map[string]Operation, method, path string, operation *openapi3.Operation) {
	if operation == nil {
		return
	}

	id := operation.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}

	target[id] = Operation{
		ID:          id,
		Method:      method,
		Path:        path,
		Summary:     operation.Summary,
		Description: operation.Description,
		schema:      extractRequestSchema(operation.RequestBody),
	}
}

func extractRequestSchema(requestBody *openapi3.RequestBodyRef) *openapi3.Schema {
	if requestBody == nil || requestBody.Value == nil {
		return nil
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func buildField(name string, src *openapi3.Schema, required bool) forms.Field {
	field := forms.Field{
		Name:     name,
		Type:     fieldType(src.Type),
		Format:   src.Format,
		Required: required,
		Label:    src.Title,
		Help:     src.Description,
		Value:    src.Default,
	}
	if len(src.Enum) > 0 {
		field.Enum = append([]any(nil), src.Enum...)
	}
	return field
}

func fieldType(types *openapi3.Types) forms.FieldType {
	if types == nil {
		return forms.FieldTypeString
	}
	values := types.Slice()
	if len(values) == 0 {
		return forms.FieldTypeString
	}
	switch values[0] {
	case "integer":
		return forms.FieldTypeInteger
	case "number":
		return forms.FieldTypeNumber
	case "boolean":
		return forms.FieldTypeBoolean
	case "array":
		return forms.FieldTypeArray
	case "object":
		return forms.FieldTypeObject
	default:
		return forms.FieldTypeString
	}
}
