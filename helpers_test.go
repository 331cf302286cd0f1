// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeExport creates an export directory from relative path to content pairs.
func writeExport(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	}

	return root
}

// usersExport is the single-operation export used across tests.
func usersExport(t *testing.T) string {
	t.Helper()

	return writeExport(t, map[string]string{
		"manifest.json": `{
  "name": "Demo API",
  "sections": [
    {"name": "Users", "slug": "users", "children": [
      {"name": "Create", "slug": "create", "children": []}
    ]}
  ]
}`,
		"users/create/section.json": `{
  "httpMethod": "POST",
  "urlPath": "/users",
  "request": {
    "body": [
      {"name": "email", "valueType": "string", "isRequired": true, "value": ""}
    ]
  },
  "responses": [
    {"statusCode": 201, "body": [{"name": "id", "valueType": "integer", "value": "42"}]}
  ]
}`,
	})
}

// decodeJSONMap decodes a JSON object for structural assertions.
func decodeJSONMap(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

// dig walks nested maps by keys.
func dig(t *testing.T, value any, keys ...string) any {
	t.Helper()

	current := value
	for _, key := range keys {
		object, ok := current.(map[string]any)
		require.Truef(t, ok, "value at %q is %T, want object", key, current)

		current, ok = object[key]
		require.Truef(t, ok, "missing key %q", key)
	}

	return current
}
