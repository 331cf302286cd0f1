// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

import (
	"strings"
)

// tagPathSeparator joins section names into tag paths.
const tagPathSeparator = "/"

// Logger is the structured logger used by the converter.
//
// Arguments are alternating key/value pairs. go-logger's glog.Logger and
// oastools' parser.Logger both satisfy it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// nopLogger discards every entry.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}

// loggerOrNop returns logger, or a no-op logger when nil.
func loggerOrNop(logger Logger) Logger {
	if logger == nil {
		return nopLogger{}
	}

	return logger
}

// NavigationNode is one menu entry mirroring a content-bearing section.
type NavigationNode struct {
	Name        string               `json:"name" yaml:"name"`
	Slug        string               `json:"slug" yaml:"slug"`
	TagPath     string               `json:"tagPath" yaml:"tagPath"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Operation   *NavigationOperation `json:"operation,omitempty" yaml:"operation,omitempty"`
	Children    []*NavigationNode    `json:"children,omitempty" yaml:"children,omitempty"`
}

// NavigationOperation links a menu entry to the operation it documents.
type NavigationOperation struct {
	Method      string `json:"method" yaml:"method"`
	Path        string `json:"path" yaml:"path"`
	OperationID string `json:"operationId" yaml:"operationId"`
}

// WalkResult is the output of a section tree walk.
type WalkResult struct {
	// Paths holds every registered operation.
	Paths Paths
	// Menu holds top-level navigation entries in declared order.
	Menu []*NavigationNode
	// SectionDescriptions holds descriptions of top-level sections keyed by slug.
	SectionDescriptions map[string]string
}

// walker carries the accumulator through one depth-first walk.
type walker struct {
	source *Source
	log    Logger
	result *WalkResult
}

// Walk traverses the manifest section tree against the export directory.
//
// Operations are registered in depth-first declared order; a later section
// bound to the same (path, method) replaces the earlier one. Sections with no
// directory on disk are skipped.
func Walk(source *Source, logger Logger) (*WalkResult, error) {
	w := walker{
		source: source,
		log:    loggerOrNop(logger),
		result: &WalkResult{
			Paths:               make(Paths),
			Menu:                make([]*NavigationNode, 0, len(source.Manifest.Sections)),
			SectionDescriptions: make(map[string]string),
		},
	}

	if err := w.visitRoot(); err != nil {
		return nil, err
	}

	menu := newMenuList()
	for _, section := range source.Manifest.Sections {
		node, description, err := w.visitDir(source.Root, section, nil)
		if err != nil {
			return nil, err
		}

		if description != "" {
			w.result.SectionDescriptions[section.Slug] = description
		}

		menu.add(node)
	}

	w.result.Menu = menu.nodes
	w.log.Info("section tree walked", "operations", w.result.operationCount(), "menu", len(w.result.Menu))

	return w.result, nil
}

// visitRoot registers the operation declared directly in the export root.
//
// The root has no tag path; the manifest name serves as tag, summary and
// operation id. It never produces a navigation node.
func (w *walker) visitRoot() error {
	descriptor, hasDescriptor, err := w.source.LoadDescriptor(w.source.Root)
	if err != nil {
		return err
	}

	if !hasDescriptor || !descriptor.HasEndpoint() {
		return nil
	}

	name := firstNonEmpty(w.source.Manifest.Name, defaultTitle)
	w.register(operationEntry{
		tag:         name,
		summary:     name,
		operationID: OperationID("", name),
		description: strings.TrimSpace(descriptor.Description),
	}, descriptor)

	return nil
}

// visitDir resolves the directory of section under parent and visits it.
//
// A section without a directory returns no node and no description.
func (w *walker) visitDir(parent string, section SectionNode, ancestors []string) (*NavigationNode, string, error) {
	dir, ok := w.source.SectionDir(parent, section.Slug)
	if !ok {
		w.log.Warn("section slug is not a local path, skipped", "name", section.Name, "slug", section.Slug)
		return nil, "", nil
	}

	exists, err := w.source.HasSection(dir)
	if err != nil {
		return nil, "", err
	}

	if !exists {
		w.log.Debug("section directory missing, skipped", "dir", dir)
		return nil, "", nil
	}

	return w.visit(dir, section, ancestors)
}

// visit registers the operation of one section and walks its children.
//
// It returns the navigation node, or nil when neither the section nor any
// descendant carries content, plus the section description.
func (w *walker) visit(dir string, section SectionNode, ancestors []string) (*NavigationNode, string, error) {
	descriptor, hasDescriptor, err := w.source.LoadDescriptor(dir)
	if err != nil {
		return nil, "", err
	}

	longDescription, _, err := w.source.LoadDescription(dir)
	if err != nil {
		return nil, "", err
	}

	description := sectionDescription(longDescription, descriptor.Description)
	path := append(ancestors[:len(ancestors):len(ancestors)], section.Name)
	node := &NavigationNode{
		Name:        section.Name,
		Slug:        section.Slug,
		TagPath:     strings.Join(path, tagPathSeparator),
		Description: description,
	}

	if hasDescriptor && descriptor.HasEndpoint() {
		node.Operation = w.register(sectionEntry(section, description, ancestors), descriptor)
	}

	for _, child := range section.Children {
		childNode, _, err := w.visitDir(dir, child, path)
		if err != nil {
			return nil, "", err
		}

		if childNode != nil {
			node.Children = append(node.Children, childNode)
		}
	}

	if node.Operation == nil && node.Description == "" && len(node.Children) == 0 {
		return nil, description, nil
	}

	return node, description, nil
}

// operationEntry carries the naming of one operation to register.
type operationEntry struct {
	tag         string
	summary     string
	operationID string
	description string
}

// sectionEntry names the operation of section nested under ancestors.
//
// Top-level sections tag themselves; nested ones take the ancestor path.
func sectionEntry(section SectionNode, description string, ancestors []string) operationEntry {
	tag := strings.Join(ancestors, tagPathSeparator)
	operationID := OperationID(tag, section.Slug)
	if tag == "" {
		tag = section.Name
	}

	return operationEntry{
		tag:         tag,
		summary:     section.Name,
		operationID: operationID,
		description: description,
	}
}

// register builds the operation described by descriptor and stores it in the accumulator.
func (w *walker) register(entry operationEntry, descriptor SectionDescriptor) *NavigationOperation {
	method := descriptor.Method()
	urlPath := strings.TrimSpace(descriptor.URLPath)
	operation := &Operation{
		Tags:        []string{entry.tag},
		Summary:     entry.summary,
		Description: entry.description,
		OperationID: entry.operationID,
		Parameters:  ConvertParameters(descriptor.Request),
		RequestBody: RequestBody(method, descriptor.Request),
		Responses:   Responses(descriptor.Responses),
		Deprecated:  descriptor.Deprecated,
	}

	item, ok := w.result.Paths[urlPath]
	if !ok {
		item = make(PathItem)
		w.result.Paths[urlPath] = item
	}

	if previous, exists := item[method]; exists {
		w.log.Warn("operation replaced", "path", urlPath, "method", method,
			"previous", previous.OperationID, "operation", entry.operationID)
	}

	item[method] = operation
	w.log.Debug("operation registered", "path", urlPath, "method", method, "operation", entry.operationID)

	return &NavigationOperation{
		Method:      method,
		Path:        urlPath,
		OperationID: entry.operationID,
	}
}

// OperationID derives a deterministic operation id from tag path and slug.
func OperationID(tagPath, slug string) string {
	if tagPath == "" {
		return slug
	}

	return tagPath + tagPathSeparator + slug
}

// operationCount returns the number of registered (path, method) pairs.
func (r *WalkResult) operationCount() int {
	count := 0
	for _, item := range r.Paths {
		count += len(item)
	}

	return count
}

// menuList is the ordered top-level navigation list, unique by name.
type menuList struct {
	seen  map[string]struct{}
	nodes []*NavigationNode
}

// newMenuList returns an empty menu list.
func newMenuList() *menuList {
	return &menuList{seen: make(map[string]struct{})}
}

// add appends node unless it is nil or a node with the same name was added before.
func (l *menuList) add(node *NavigationNode) {
	if node == nil {
		return
	}

	if _, exists := l.seen[node.Name]; exists {
		return
	}

	l.seen[node.Name] = struct{}{}
	l.nodes = append(l.nodes, node)
}
