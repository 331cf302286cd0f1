// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

import "strings"

const (
	// OpenAPIVersion is the version string written to every document.
	OpenAPIVersion = "3.0.2"
	// NavigationExtension is the vendor extension key holding the menu tree.
	NavigationExtension = "x-navigation"
	// defaultTitle is used when neither options nor manifest name a title.
	defaultTitle = "API reference"
	// defaultInfoVersion is used when neither options nor manifest carry a version.
	defaultInfoVersion = "1.0.0"
)

// Document is the generated OpenAPI 3.0 document.
//
// Field order is the serialized key order.
type Document struct {
	OpenAPI    string     `json:"openapi" yaml:"openapi"`
	Info       Info       `json:"info" yaml:"info"`
	Paths      Paths      `json:"paths" yaml:"paths"`
	Components Components `json:"components" yaml:"components"`
	Tags       []Tag      `json:"tags" yaml:"tags"`
	Navigation Navigation `json:"x-navigation" yaml:"x-navigation"`
}

// Info is the OpenAPI info object.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
}

// Components is always written empty; schemas are inlined.
type Components struct{}

// Tag is one OpenAPI tag derived from a top-level section.
type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Navigation is the vendor extension payload with the menu tree.
type Navigation struct {
	Menu []*NavigationNode `json:"menu" yaml:"menu"`
}

// Paths maps URL paths to path items.
type Paths map[string]PathItem

// PathItem maps lowercase HTTP methods to operations.
type PathItem map[string]*Operation

// Operation is an OpenAPI 3.0 operation object.
type Operation struct {
	Tags        []string                   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string                     `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string                     `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string                     `json:"operationId" yaml:"operationId"`
	Parameters  []*ParameterObject         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBodyObject         `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]*ResponseObject `json:"responses" yaml:"responses"`
	Deprecated  bool                       `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// Assemble builds the document shell from manifest metadata and walk output.
//
// Tags map one-to-one to top-level manifest sections, including sections
// without content.
func Assemble(manifest Manifest, result *WalkResult, opt Options) *Document {
	doc := &Document{
		OpenAPI: OpenAPIVersion,
		Info: Info{
			Title:       firstNonEmpty(opt.Title, manifest.Name, defaultTitle),
			Description: strings.TrimSpace(manifest.Description),
			Version:     firstNonEmpty(opt.Version, manifest.Version, defaultInfoVersion),
		},
		Paths:      make(Paths),
		Tags:       make([]Tag, 0, len(manifest.Sections)),
		Navigation: Navigation{Menu: []*NavigationNode{}},
	}

	for _, section := range manifest.Sections {
		tag := Tag{Name: section.Name}
		if result != nil {
			tag.Description = result.SectionDescriptions[section.Slug]
		}

		doc.Tags = append(doc.Tags, tag)
	}

	if result == nil {
		return doc
	}

	if result.Paths != nil {
		doc.Paths = result.Paths
	}

	if len(result.Menu) > 0 {
		doc.Navigation.Menu = result.Menu
	}

	return doc
}

// firstNonEmpty returns the first value that is not blank.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}

	return ""
}
