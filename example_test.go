// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertItemValueBooleanRequiresExactTrue(t *testing.T) {
	t.Parallel()

	cases := map[any]bool{
		"true":  true,
		"TRUE":  false,
		"True":  false,
		"1":     false,
		"":      false,
		" true": false,
		nil:     false,
		true:    false,
	}

	for raw, want := range cases {
		got := ConvertItemValue(Parameter{ValueType: ValueBoolean, Value: raw})
		assert.Equalf(t, want, got, "raw %#v", raw)
	}
}

func TestConvertItemValueNumericFallsBackToZero(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  any
		want float64
	}{
		{raw: "42", want: 42},
		{raw: " 1.5 ", want: 1.5},
		{raw: float64(7), want: 7},
		{raw: json.Number("3"), want: 3},
		{raw: "", want: 0},
		{raw: nil, want: 0},
		{raw: "abc", want: 0},
		{raw: "NaN", want: 0},
		{raw: "Inf", want: 0},
		{raw: "1e999", want: 0},
		{raw: []any{"1"}, want: 0},
	}

	for _, valueType := range []ValueType{ValueInteger, ValueNumber} {
		for _, tc := range cases {
			got := ConvertItemValue(Parameter{ValueType: valueType, Value: tc.raw})
			assert.Equalf(t, tc.want, got, "%s raw %#v", valueType, tc.raw)
		}
	}
}

func TestConvertItemValueStringPassThrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", ConvertItemValue(Parameter{ValueType: ValueString}))
	assert.Equal(t, "abc", ConvertItemValue(Parameter{ValueType: ValueString, Value: "abc"}))
	assert.Equal(t, "", ConvertItemValue(Parameter{Value: nil}))
	assert.Equal(t, float64(5), ConvertItemValue(Parameter{ValueType: ValueFile, Value: float64(5)}))
}

func TestConvertItemValueComposite(t *testing.T) {
	t.Parallel()

	param := Parameter{
		Name:      "user",
		ValueType: ValueObject,
		Children: []Parameter{
			{Name: "name", ValueType: ValueString, Value: "ann"},
			{Name: "age", ValueType: ValueInteger, Value: "31"},
			{Name: "roles", ValueType: ValueArray, Items: []Parameter{
				{ValueType: ValueString, Value: "admin"},
				{ValueType: ValueString, Value: "dev"},
			}},
			{Name: "active", ValueType: ValueBoolean, Value: "true"},
			{Name: "meta", ValueType: ValueObject},
		},
	}

	want := map[string]any{
		"name":   "ann",
		"age":    float64(31),
		"roles":  []any{"admin", "dev"},
		"active": true,
		"meta":   map[string]any{},
	}

	assert.Equal(t, want, ConvertItemValue(param))
}

func TestConvertItemValueEmptyArray(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{}, ConvertItemValue(Parameter{ValueType: ValueArray}))
}
