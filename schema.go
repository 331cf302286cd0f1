// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	// DefaultContentType is used when request or response does not declare one.
	DefaultContentType = "application/json"
	// DefaultStatusCode is used when a response does not declare one.
	DefaultStatusCode = "200"
	// requestBodyDescription is the fixed description of synthesized request bodies.
	requestBodyDescription = "Request body"
)

const (
	parameterInPath   = "path"
	parameterInQuery  = "query"
	parameterInHeader = "header"
)

// Schema is an OpenAPI 3.0 schema object.
type Schema struct {
	Type        string           `json:"type,omitempty" yaml:"type,omitempty"`
	Description *string          `json:"description,omitempty" yaml:"description,omitempty"`
	Format      string           `json:"format,omitempty" yaml:"format,omitempty"`
	Example     any              `json:"example,omitempty" yaml:"example,omitempty"`
	Default     any              `json:"default,omitempty" yaml:"default,omitempty"`
	Minimum     *float64         `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum     *float64         `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Enum        []any            `json:"enum,omitempty" yaml:"enum,omitempty"`
	Deprecated  bool             `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Items       *Schema          `json:"items,omitempty" yaml:"items,omitempty"`
	Properties  SchemaProperties `json:"properties,omitzero" yaml:"properties,omitempty"`
	Required    []string         `json:"required,omitempty" yaml:"required,omitempty"`
}

// SchemaProperties maps property names to schemas.
//
// An empty non-nil map is serialized as {}; only nil is omitted.
type SchemaProperties map[string]*Schema

// IsZero reports whether properties are unset.
func (p SchemaProperties) IsZero() bool {
	return p == nil
}

// ParameterObject is an OpenAPI 3.0 parameter object.
type ParameterObject struct {
	Name        string  `json:"name" yaml:"name"`
	In          string  `json:"in" yaml:"in"`
	Description string  `json:"description" yaml:"description"`
	Required    bool    `json:"required" yaml:"required"`
	Deprecated  bool    `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Schema      *Schema `json:"schema" yaml:"schema"`
}

// MediaType is an OpenAPI 3.0 media type object.
type MediaType struct {
	Schema *Schema `json:"schema" yaml:"schema"`
}

// RequestBodyObject is an OpenAPI 3.0 request body object.
type RequestBodyObject struct {
	Description string               `json:"description" yaml:"description"`
	Required    bool                 `json:"required" yaml:"required"`
	Content     map[string]MediaType `json:"content" yaml:"content"`
}

// ResponseObject is an OpenAPI 3.0 response object.
type ResponseObject struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// ConvertParameters converts path, query and header parameters of a request.
//
// Output order is path, query, header, each in declared order.
func ConvertParameters(request RequestSpec) []*ParameterObject {
	groups := []struct {
		in     string
		params []Parameter
	}{
		{in: parameterInPath, params: request.Path},
		{in: parameterInQuery, params: request.Query},
		{in: parameterInHeader, params: request.Header},
	}

	var out []*ParameterObject
	for _, group := range groups {
		for _, param := range group.params {
			out = append(out, convertParameter(param, group.in))
		}
	}

	return out
}

// convertParameter builds one parameter object for location in.
func convertParameter(param Parameter, in string) *ParameterObject {
	schema := &Schema{
		Type:    schemaType(param.ValueType),
		Example: param.Value,
		Format:  schemaFormat(param),
	}
	applyOptions(schema, param.Options)

	if param.ValueType == ValueArray {
		schema.Items = arrayItemsSchema(param.Items)
	}

	return &ParameterObject{
		Name:        param.Name,
		In:          in,
		Description: param.Description,
		Required:    param.IsRequired || in == parameterInPath,
		Deprecated:  param.Options.Deprecated,
		Schema:      schema,
	}
}

// ConvertBodySchema converts a body field list into an object schema.
//
// required is attached only when at least one field is required.
func ConvertBodySchema(params []Parameter) *Schema {
	schema := &Schema{
		Type:       string(ValueObject),
		Properties: make(SchemaProperties, len(params)),
	}

	for _, param := range params {
		schema.Properties[param.Name] = ConvertSchemaItem(param)
		if param.IsRequired {
			schema.Required = append(schema.Required, param.Name)
		}
	}

	return schema
}

// ConvertSchemaItem converts one parameter into a schema, recursing into nested parameters.
func ConvertSchemaItem(param Parameter) *Schema {
	description := param.Description
	schema := &Schema{
		Type:        schemaType(param.ValueType),
		Description: &description,
		Format:      schemaFormat(param),
	}

	if param.Value != nil {
		schema.Example = ConvertItemValue(param)
	}

	applyOptions(schema, param.Options)

	switch param.ValueType {
	case ValueArray:
		schema.Items = arrayItemsSchema(param.Items)
	case ValueObject:
		schema.Properties = make(SchemaProperties, len(param.Children))
		for _, child := range param.Children {
			schema.Properties[child.Name] = ConvertSchemaItem(child)
		}
	}

	return schema
}

// arrayItemsSchema builds the items schema of an array from its declared items.
//
// Items are sampled by the first element. When it is composite, the fields of
// every item are merged one level down into a single object schema.
func arrayItemsSchema(items []Parameter) *Schema {
	if len(items) == 0 {
		return &Schema{}
	}

	if !items[0].isComposite() {
		return ConvertSchemaItem(items[0])
	}

	merged := &Schema{
		Type:       string(ValueObject),
		Properties: make(SchemaProperties),
	}

	for _, item := range items {
		for _, field := range item.nested() {
			merged.Properties[field.Name] = ConvertSchemaItem(field)
		}
	}

	return merged
}

// applyOptions copies default, bounds, enum and deprecation flags from option bag.
func applyOptions(schema *Schema, options ParameterOptions) {
	schema.Default = options.Default
	schema.Minimum = options.Minimum.float()
	schema.Maximum = options.Maximum.float()
	schema.Deprecated = options.Deprecated

	if len(options.EnumValues) > 0 {
		schema.Enum = make([]any, 0, len(options.EnumValues))
		for _, value := range options.EnumValues {
			schema.Enum = append(schema.Enum, value.Value)
		}
	}
}

// schemaType maps parameter type tag to OpenAPI 3.0 type keyword.
func schemaType(valueType ValueType) string {
	switch valueType {
	case ValueNumber, ValueInteger, ValueBoolean, ValueArray, ValueObject:
		return string(valueType)
	default:
		return string(ValueString)
	}
}

// schemaFormat returns declared format, or "binary" for binary/file values.
func schemaFormat(param Parameter) string {
	if format := strings.TrimSpace(param.Options.Format); format != "" {
		return format
	}

	if param.ValueType == ValueBinary || param.ValueType == ValueFile {
		return "binary"
	}

	return ""
}

// contentTypeOrDefault returns contentType or application/json when empty.
func contentTypeOrDefault(contentType string) string {
	if contentType = strings.TrimSpace(contentType); contentType != "" {
		return contentType
	}

	return DefaultContentType
}

// methodAcceptsBody reports whether a request body is attached for method.
func methodAcceptsBody(method string) bool {
	switch strings.ToLower(method) {
	case "post", "put", "patch":
		return true
	default:
		return false
	}
}

// RequestBody wraps request body fields into a request body object.
//
// It returns nil when method does not carry a body or no body fields exist.
func RequestBody(method string, request RequestSpec) *RequestBodyObject {
	if !methodAcceptsBody(method) || len(request.Body) == 0 {
		return nil
	}

	return &RequestBodyObject{
		Description: requestBodyDescription,
		Required:    true,
		Content: map[string]MediaType{
			contentTypeOrDefault(request.ContentType): {Schema: ConvertBodySchema(request.Body)},
		},
	}
}

// Responses converts declared responses keyed by status code.
//
// Later responses with the same status code replace earlier ones. With no
// declared responses a single content-less "200" response is returned.
func Responses(responses []ResponseSpec) map[string]*ResponseObject {
	out := make(map[string]*ResponseObject, len(responses))
	if len(responses) == 0 {
		out[DefaultStatusCode] = &ResponseObject{Description: responseDescription("", DefaultStatusCode)}
		return out
	}

	for _, response := range responses {
		code := strings.TrimSpace(string(response.StatusCode))
		if code == "" {
			code = DefaultStatusCode
		}

		out[code] = &ResponseObject{
			Description: responseDescription(response.Description, code),
			Content: map[string]MediaType{
				contentTypeOrDefault(response.ContentType): {Schema: ConvertBodySchema(response.Body)},
			},
		}
	}

	return out
}

// responseDescription returns declared description or HTTP status text for code.
func responseDescription(description, code string) string {
	if description = strings.TrimSpace(description); description != "" {
		return description
	}

	if status := statusText(code); status != "" {
		return status
	}

	return "Response"
}

// statusText returns standard reason phrase for a numeric code.
func statusText(code string) string {
	value, err := strconv.Atoi(code)
	if err != nil {
		return ""
	}

	return http.StatusText(value)
}
