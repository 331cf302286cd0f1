// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

/*
Package oasexport converts exported documentation sections into an OpenAPI 3.0
document with a navigation menu extension.

An export is a directory with a manifest and one directory per section:

	export/
	  manifest.json
	  users/
	    index.md
	    create/
	      section.json

Sections whose descriptor declares httpMethod and urlPath become operations.
Parameters, request bodies and responses are converted to inline schemas with
example values; nothing is extracted into components.

Convert a directory in one call:

	path, err := oasexport.Convert("export", "out", oasexport.Options{
		Format: oasexport.FormatYAML,
	})
	if err != nil {
		return err
	}

	fmt.Println(path) // .../out/openapi_spec.yaml

Build the document in memory and inspect the menu:

	doc, err := oasexport.Build("export", oasexport.Options{})
	if err != nil {
		return err
	}

	for _, entry := range doc.Navigation.Menu {
		fmt.Println(entry.Name)
	}

Convert a single field description:

	schema := oasexport.ConvertSchemaItem(oasexport.Parameter{
		Name:      "tags",
		ValueType: oasexport.ValueArray,
		Items:     []oasexport.Parameter{{ValueType: oasexport.ValueString}},
	})

Output is deterministic: the same export always produces byte-identical files.
*/
package oasexport
