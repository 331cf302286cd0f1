// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ConvertItemValue materializes the example value of a parameter.
//
// Arrays collect item examples, objects map child names to child examples,
// numbers coerce the raw value (0 when empty or not numeric), booleans are
// true only for the exact string "true", everything else passes the raw value
// through ("" when absent).
func ConvertItemValue(param Parameter) any {
	switch param.ValueType {
	case ValueArray:
		out := make([]any, 0, len(param.Items))
		for _, item := range param.Items {
			out = append(out, ConvertItemValue(item))
		}

		return out
	case ValueObject:
		out := make(map[string]any, len(param.Children))
		for _, child := range param.Children {
			out[child.Name] = ConvertItemValue(child)
		}

		return out
	case ValueInteger, ValueNumber:
		return exampleNumber(param.Value)
	case ValueBoolean:
		text, ok := param.Value.(string)
		return ok && text == "true"
	default:
		if param.Value == nil {
			return ""
		}

		return param.Value
	}
}

// exampleNumber coerces raw example value to a finite float, 0 on failure.
func exampleNumber(raw any) float64 {
	var value float64

	switch typed := raw.(type) {
	case float64:
		value = typed
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return 0
		}

		value = parsed
	case int:
		value = float64(typed)
	case int64:
		value = float64(typed)
	case bool:
		if typed {
			value = 1
		}
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0
		}

		value = parsed
	default:
		return 0
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}
