// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/oastools/parser"
	"gopkg.in/yaml.v3"
)

const (
	// FormatYAML writes YAML output.
	FormatYAML Format = "yaml"
	// FormatJSON writes JSON output.
	FormatJSON Format = "json"
)

// Format selects output serialization.
type Format string

// outputBaseName is the output file name without extension.
const outputBaseName = "openapi_spec"

// ParseFormat validates and normalizes a format name. Empty selects YAML.
func ParseFormat(name string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(name)))
	switch normalized {
	case "", "yml":
		return FormatYAML, nil
	case FormatYAML, FormatJSON:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
}

// OutputFileName returns the fixed output file name for format.
func OutputFileName(format Format) string {
	return outputBaseName + "." + string(format)
}

// Marshal serializes value in selected format with two-space indentation.
func Marshal(value any, format Format) ([]byte, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case FormatJSON:
		data, err = marshalJSON(value)
	default:
		data, err = marshalYAML(value)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeDocument, err)
	}

	return data, nil
}

// marshalJSON serializes value as pretty JSON without HTML escaping.
func marshalJSON(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// marshalYAML serializes value as YAML.
func marshalYAML(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Write serializes doc into outputDir and returns the absolute output path.
//
// The file is written to a temporary sibling and renamed into place, then
// re-read as an OpenAPI document. A failed check returns *WriteVerificationError.
func Write(doc *Document, outputDir string, format Format) (string, error) {
	data, err := Marshal(doc, format)
	if err != nil {
		return "", err
	}

	format, _ = ParseFormat(string(format))
	if strings.TrimSpace(outputDir) == "" {
		outputDir = "."
	}

	outputDir, err = filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrCreateOutputDir, outputDir, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrCreateOutputDir, outputDir, err)
	}

	path := filepath.Join(outputDir, OutputFileName(format))
	if err := writeFileAtomic(path, data); err != nil {
		return "", err
	}

	if err := verifyOutput(path, int64(len(data))); err != nil {
		return "", err
	}

	return path, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}

	tmpPath := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}

	return nil
}

// verifyOutput checks that path is a regular file of wantSize bytes that parses as OpenAPI 3.x.
func verifyOutput(path string, wantSize int64) error {
	info, err := os.Stat(path)
	if err != nil {
		return &WriteVerificationError{Path: path, Message: "stat output", Cause: err}
	}

	if !info.Mode().IsRegular() {
		return &WriteVerificationError{Path: path, Message: "output is not a regular file"}
	}

	if info.Size() != wantSize {
		return &WriteVerificationError{
			Path:    path,
			Message: fmt.Sprintf("output size %d, want %d", info.Size(), wantSize),
		}
	}

	result, err := parser.ParseWithOptions(
		parser.WithFilePath(path),
		parser.WithResolveRefs(false),
		parser.WithValidateStructure(false),
	)
	if err != nil {
		return &WriteVerificationError{Path: path, Message: "parse output", Cause: err}
	}

	if !result.IsOAS3() {
		return &WriteVerificationError{
			Path:    path,
			Message: fmt.Sprintf("output parsed as OpenAPI %q, want %s", result.Version, OpenAPIVersion),
		}
	}

	return nil
}
