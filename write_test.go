// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Format
	}{
		{name: "", want: FormatYAML},
		{name: "yaml", want: FormatYAML},
		{name: "yml", want: FormatYAML},
		{name: " JSON ", want: FormatJSON},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := ParseFormat("toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestOutputFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "openapi_spec.yaml", OutputFileName(FormatYAML))
	assert.Equal(t, "openapi_spec.json", OutputFileName(FormatJSON))
}

func TestMarshalJSONDoesNotEscapeHTML(t *testing.T) {
	t.Parallel()

	data, err := Marshal(map[string]string{"path": "/a?b=<c>&d"}, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"path\": \"/a?b=<c>&d\"\n}\n", string(data))
}

func TestWriteCreatesDirectoryAndVerifies(t *testing.T) {
	t.Parallel()

	doc, err := Build(usersExport(t), Options{})
	require.NoError(t, err)

	outputDir := filepath.Join(t.TempDir(), "nested", "out")
	for _, format := range []Format{FormatYAML, FormatJSON} {
		path, err := Write(doc, outputDir, format)
		require.NoError(t, err, format)
		assert.True(t, filepath.IsAbs(path))
		assert.Equal(t, OutputFileName(format), filepath.Base(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	}

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"), entry.Name())
	}
}

func TestWriteYAMLKeyOrder(t *testing.T) {
	t.Parallel()

	doc, err := Build(usersExport(t), Options{})
	require.NoError(t, err)

	path, err := Write(doc, t.TempDir(), FormatYAML)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "openapi: 3.0.2\n"), string(data))

	var root yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &root))
	require.Len(t, root.Content, 1)

	var keys []string
	mapping := root.Content[0]
	for i := 0; i < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}

	assert.Equal(t, []string{"openapi", "info", "paths", "components", "tags", NavigationExtension}, keys)
}

func TestWriteOverwritesExistingOutput(t *testing.T) {
	t.Parallel()

	outputDir := t.TempDir()
	stale := filepath.Join(outputDir, OutputFileName(FormatJSON))
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o600))

	doc, err := Build(usersExport(t), Options{})
	require.NoError(t, err)

	path, err := Write(doc, outputDir, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, stale, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3.0.2", decodeJSONMap(t, data)["openapi"])
}

func TestVerifyOutputRejectsMismatches(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.yaml")
	body := "openapi: 3.0.2\ninfo:\n  title: T\n  version: 1.0.0\npaths: {}\n"
	require.NoError(t, os.WriteFile(valid, []byte(body), 0o600))
	require.NoError(t, verifyOutput(valid, int64(len(body))))

	err := verifyOutput(valid, int64(len(body))+1)
	var verifyErr *WriteVerificationError
	require.ErrorAs(t, err, &verifyErr)
	assert.Equal(t, valid, verifyErr.Path)
	assert.ErrorIs(t, err, ErrWriteVerification)

	garbage := filepath.Join(dir, "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte("hello: world\n"), 0o600))
	assert.ErrorIs(t, verifyOutput(garbage, int64(len("hello: world\n"))), ErrWriteVerification)

	assert.ErrorIs(t, verifyOutput(dir, 0), ErrWriteVerification)
	assert.ErrorIs(t, verifyOutput(filepath.Join(dir, "missing.yaml"), 0), ErrWriteVerification)
}

func TestWriteFailsWhenOutputDirIsFile(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := Write(&Document{OpenAPI: OpenAPIVersion}, blocker, FormatYAML)
	assert.ErrorIs(t, err, ErrCreateOutputDir)
}
