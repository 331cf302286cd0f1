// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	// ValueString is a plain text value.
	ValueString ValueType = "string"
	// ValueNumber is a floating point value.
	ValueNumber ValueType = "number"
	// ValueInteger is an integral value.
	ValueInteger ValueType = "integer"
	// ValueBoolean is a true/false value.
	ValueBoolean ValueType = "boolean"
	// ValueArray holds its element shape in Parameter.Items.
	ValueArray ValueType = "array"
	// ValueObject holds its fields in Parameter.Children.
	ValueObject ValueType = "object"
	// ValueBinary is raw binary content.
	ValueBinary ValueType = "binary"
	// ValueFile is an uploaded file.
	ValueFile ValueType = "file"
)

// ValueType is the closed set of parameter type tags used by exported sections.
type ValueType string

// UnmarshalText decodes a type tag. Empty and unknown tags decode as ValueString.
func (t *ValueType) UnmarshalText(text []byte) error {
	*t = parseValueType(string(text))
	return nil
}

// parseValueType normalizes raw type tags into the closed ValueType set.
func parseValueType(raw string) ValueType {
	switch normalized := ValueType(strings.ToLower(strings.TrimSpace(raw))); normalized {
	case ValueString, ValueNumber, ValueInteger, ValueBoolean,
		ValueArray, ValueObject, ValueBinary, ValueFile:
		return normalized
	default:
		return ValueString
	}
}

// Manifest is the root document of an export: title plus ordered top-level sections.
type Manifest struct {
	Name        string        `json:"name"`
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Sections    []SectionNode `json:"sections"`
}

// SectionNode is one declared node of the section tree.
//
// Slug is the directory name of the node under its parent directory.
type SectionNode struct {
	Name     string        `json:"name"`
	Slug     string        `json:"slug"`
	Children []SectionNode `json:"children"`
}

// SectionDescriptor is the per-directory descriptor file.
type SectionDescriptor struct {
	Description string         `json:"description"`
	HTTPMethod  string         `json:"httpMethod"`
	URLPath     string         `json:"urlPath"`
	Deprecated  bool           `json:"deprecated"`
	Request     RequestSpec    `json:"request"`
	Responses   []ResponseSpec `json:"responses"`
}

// HasEndpoint reports whether descriptor binds the section to an HTTP operation.
func (d SectionDescriptor) HasEndpoint() bool {
	return strings.TrimSpace(d.URLPath) != ""
}

// Method returns lowercase HTTP method; missing method defaults to "get".
func (d SectionDescriptor) Method() string {
	method := strings.ToLower(strings.TrimSpace(d.HTTPMethod))
	if method == "" {
		return "get"
	}

	return method
}

// RequestSpec describes request parameters and body of an operation.
type RequestSpec struct {
	ContentType string      `json:"contentType"`
	Path        []Parameter `json:"path"`
	Query       []Parameter `json:"query"`
	Header      []Parameter `json:"header"`
	Body        []Parameter `json:"body"`
}

// ResponseSpec describes one declared response of an operation.
type ResponseSpec struct {
	StatusCode  StatusCode  `json:"statusCode"`
	Description string      `json:"description"`
	ContentType string      `json:"contentType"`
	Body        []Parameter `json:"body"`
}

// StatusCode is a response code that decodes from JSON numbers and strings alike.
type StatusCode string

// UnmarshalJSON accepts numeric and string codes; null decodes as empty.
func (c *StatusCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}

		*c = StatusCode(strings.TrimSpace(text))
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("status code %s: %w", data, err)
	}

	*c = StatusCode(number.String())
	return nil
}

// Parameter is one recursive field description of a request or response.
//
// Arrays keep their element shape in Items, objects keep their fields in
// Children. Value is the raw example as found in the export.
type Parameter struct {
	Name        string           `json:"name"`
	ValueType   ValueType        `json:"valueType"`
	IsRequired  bool             `json:"isRequired"`
	Description string           `json:"description"`
	Value       any              `json:"value"`
	Items       []Parameter      `json:"items"`
	Children    []Parameter      `json:"children"`
	Options     ParameterOptions `json:"options"`
}

// nested returns the child list that belongs to parameter type.
func (p Parameter) nested() []Parameter {
	switch p.ValueType {
	case ValueArray:
		return p.Items
	case ValueObject:
		return p.Children
	default:
		return nil
	}
}

// isComposite reports whether parameter carries nested parameters.
func (p Parameter) isComposite() bool {
	return p.ValueType == ValueArray || p.ValueType == ValueObject
}

// ParameterOptions is the option bag attached to a parameter.
type ParameterOptions struct {
	Format     string      `json:"format"`
	Minimum    Number      `json:"minimum"`
	Maximum    Number      `json:"maximum"`
	EnumValues []EnumValue `json:"enumValues"`
	Default    any         `json:"default"`
	Deprecated bool        `json:"deprecated"`
}

// EnumValue is one allowed value with optional human description.
type EnumValue struct {
	Value       any    `json:"value"`
	Description string `json:"description"`
}

// Number is an optional numeric option that accepts JSON numbers and numeric strings.
//
// null and empty strings leave it unset.
type Number struct {
	Value float64
	Valid bool
}

// UnmarshalJSON decodes number or numeric string values.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}

		text = strings.TrimSpace(text)
		if text == "" {
			return nil
		}

		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("numeric option %q: %w", text, err)
		}

		*n = Number{Value: value, Valid: true}
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*n = Number{Value: value, Valid: true}
	return nil
}

// float returns option value as float pointer, nil when unset.
func (n Number) float() *float64 {
	if !n.Valid {
		return nil
	}

	value := n.Value
	return &value
}
