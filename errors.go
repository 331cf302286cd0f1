// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

import (
	"errors"
	"fmt"
)

var (
	// ErrManifestNotFound is matched by *ManifestNotFoundError.
	ErrManifestNotFound = errors.New("manifest not found")
	// ErrMalformedDescriptor is matched by *MalformedDescriptorError.
	ErrMalformedDescriptor = errors.New("malformed section descriptor")
	// ErrWriteVerification is matched by *WriteVerificationError.
	ErrWriteVerification = errors.New("output verification failed")
	// ErrReadManifest is returned when the manifest exists but cannot be read.
	ErrReadManifest = errors.New("read manifest")
	// ErrDecodeManifest is returned when manifest JSON decoding fails.
	ErrDecodeManifest = errors.New("decode manifest")
	// ErrReadSection is returned when a section file or directory exists but cannot be read.
	ErrReadSection = errors.New("read section")
	// ErrUnknownFormat is returned when output format is not yaml or json.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrEncodeDocument is returned when document serialization fails.
	ErrEncodeDocument = errors.New("encode document")
	// ErrCreateOutputDir is returned when the output directory cannot be created.
	ErrCreateOutputDir = errors.New("create output directory")
	// ErrWriteOutput is returned when the output file cannot be written.
	ErrWriteOutput = errors.New("write output")
)

// ManifestNotFoundError reports a missing root manifest file.
type ManifestNotFoundError struct {
	// Path is the manifest path that was looked up.
	Path string
	// Cause is the underlying stat/open error.
	Cause error
}

// Error returns a human-readable error message.
func (e *ManifestNotFoundError) Error() string {
	return fmt.Sprintf("manifest not found: %s", e.Path)
}

// Unwrap returns the underlying cause.
func (e *ManifestNotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ManifestNotFoundError) Is(target error) bool {
	return target == ErrManifestNotFound
}

// MalformedDescriptorError reports a section descriptor that exists but does not decode.
type MalformedDescriptorError struct {
	// Path is the descriptor file path.
	Path string
	// Cause is the decoder error.
	Cause error
}

// Error returns a human-readable error message.
func (e *MalformedDescriptorError) Error() string {
	msg := "malformed section descriptor " + e.Path
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *MalformedDescriptorError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *MalformedDescriptorError) Is(target error) bool {
	return target == ErrMalformedDescriptor
}

// WriteVerificationError reports an output file that could not be confirmed after writing.
type WriteVerificationError struct {
	// Path is the output file path.
	Path string
	// Message describes which check failed.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *WriteVerificationError) Error() string {
	msg := "output verification failed for " + e.Path
	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *WriteVerificationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WriteVerificationError) Is(target error) bool {
	return target == ErrWriteVerification
}
