// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

// Options configures a conversion run.
type Options struct {
	// Title overrides info.title; defaults to the manifest name.
	Title string
	// Version overrides info.version; defaults to the manifest version or 1.0.0.
	Version string
	// Format selects output syntax; empty selects YAML.
	Format Format
	// Source configures export file names.
	Source SourceOptions
	// Logger receives walk diagnostics; nil disables logging.
	Logger Logger
}

// Build loads the export in inputDir and assembles the document in memory.
func Build(inputDir string, opt Options) (*Document, error) {
	source, err := OpenSource(inputDir, opt.Source)
	if err != nil {
		return nil, err
	}

	result, err := Walk(source, opt.Logger)
	if err != nil {
		return nil, err
	}

	return Assemble(source.Manifest, result, opt), nil
}

// Convert converts the export in inputDir and writes it into outputDir.
//
// It returns the absolute path of the written file.
func Convert(inputDir, outputDir string, opt Options) (string, error) {
	format, err := ParseFormat(string(opt.Format))
	if err != nil {
		return "", err
	}

	doc, err := Build(inputDir, opt)
	if err != nil {
		return "", err
	}

	path, err := Write(doc, outputDir, format)
	if err != nil {
		return "", err
	}

	loggerOrNop(opt.Logger).Info("openapi document written", "path", path, "format", string(format))
	return path, nil
}
