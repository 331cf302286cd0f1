// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultManifestName is the root manifest file name inside the export directory.
	DefaultManifestName = "manifest.json"
	// DefaultDescriptorName is the per-section descriptor file name.
	DefaultDescriptorName = "section.json"
	// DefaultDescriptionName is the per-section long description file name.
	DefaultDescriptionName = "index.md"
)

// SourceOptions configures export file names.
type SourceOptions struct {
	// ManifestName is relative to the export root unless absolute.
	ManifestName string
	// DescriptorName is looked up inside every section directory.
	DescriptorName string
	// DescriptionName is looked up inside every section directory.
	DescriptionName string
}

// normalized returns options with empty fields replaced by defaults.
func (opt SourceOptions) normalized() SourceOptions {
	if strings.TrimSpace(opt.ManifestName) == "" {
		opt.ManifestName = DefaultManifestName
	}

	if strings.TrimSpace(opt.DescriptorName) == "" {
		opt.DescriptorName = DefaultDescriptorName
	}

	if strings.TrimSpace(opt.DescriptionName) == "" {
		opt.DescriptionName = DefaultDescriptionName
	}

	return opt
}

// Source is an opened export directory with its decoded manifest.
type Source struct {
	Manifest Manifest
	Root     string
	options  SourceOptions
}

// OpenSource reads the manifest of an export directory.
//
// A missing manifest returns *ManifestNotFoundError.
func OpenSource(root string, opt SourceOptions) (*Source, error) {
	opt = opt.normalized()

	manifestPath := opt.ManifestName
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(root, manifestPath)
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ManifestNotFoundError{Path: manifestPath, Cause: err}
		}

		return nil, fmt.Errorf("%w %q: %w", ErrReadManifest, manifestPath, err)
	}

	var manifest Manifest
	if err := json.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &manifest); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrDecodeManifest, manifestPath, err)
	}

	return &Source{
		Root:     root,
		Manifest: manifest,
		options:  opt,
	}, nil
}

// SectionDir returns the directory of a section under parent, or false when
// slug does not name a local directory entry.
func (s *Source) SectionDir(parent, slug string) (string, bool) {
	slug = strings.TrimSpace(slug)
	if slug == "" || !filepath.IsLocal(slug) {
		return "", false
	}

	return filepath.Join(parent, slug), true
}

// HasSection reports whether dir exists and is a directory.
func (s *Source) HasSection(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("%w %q: %w", ErrReadSection, dir, err)
	}

	return info.IsDir(), nil
}

// LoadDescriptor reads the descriptor of the section in dir.
//
// A missing file returns false without error; an undecodable one returns
// *MalformedDescriptorError.
func (s *Source) LoadDescriptor(dir string) (SectionDescriptor, bool, error) {
	path := filepath.Join(dir, s.options.DescriptorName)
	data, ok, err := readOptionalFile(path)
	if err != nil || !ok {
		return SectionDescriptor{}, false, err
	}

	var descriptor SectionDescriptor
	if err := json.Unmarshal(data, &descriptor); err != nil {
		return SectionDescriptor{}, false, &MalformedDescriptorError{Path: path, Cause: err}
	}

	return descriptor, true, nil
}

// LoadDescription reads the long description of the section in dir.
//
// A leading front matter block is stripped; its summary is used when the
// body is empty.
func (s *Source) LoadDescription(dir string) (string, bool, error) {
	path := filepath.Join(dir, s.options.DescriptionName)
	data, ok, err := readOptionalFile(path)
	if err != nil || !ok {
		return "", false, err
	}

	text, err := parseDescriptionFile(data)
	if err != nil {
		return "", false, fmt.Errorf("%w %q: %w", ErrReadSection, path, err)
	}

	return text, true, nil
}

// utf8BOM is stripped from every file read from an export.
var utf8BOM = []byte("\xef\xbb\xbf")

// readOptionalFile reads a regular file; a missing path is not an error.
func readOptionalFile(path string) ([]byte, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("%w %q: %w", ErrReadSection, path, err)
	}

	if info.IsDir() {
		return nil, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("%w %q: %w", ErrReadSection, path, err)
	}

	return bytes.TrimPrefix(data, utf8BOM), true, nil
}
