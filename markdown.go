// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

package oasexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// descriptionMatter is the optional front matter block of a description file.
type descriptionMatter struct {
	Summary string `yaml:"summary" toml:"summary" json:"summary"`
}

// parseDescriptionFile strips front matter from a description file and
// returns the normalized body, or the front matter summary when the body is empty.
func parseDescriptionFile(data []byte) (string, error) {
	var matter descriptionMatter

	body, err := frontmatter.Parse(bytes.NewReader(data), &matter)
	if err != nil {
		return "", fmt.Errorf("parse front matter: %w", err)
	}

	if text := normalizeDescription(string(body)); text != "" {
		return text, nil
	}

	return strings.TrimSpace(matter.Summary), nil
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// normalizeDescription trims trailing spaces and collapses blank line runs outside fenced blocks.
func normalizeDescription(text string) string {
	text = normalizeLineEndings(text)
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	blankCount := 0
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			out = append(out, line)
			blankCount = 0
			continue
		}

		if !inFence && trimmed == "" {
			if blankCount == 0 {
				out = append(out, "")
			}

			blankCount++
			continue
		}

		blankCount = 0
		out = append(out, line)
	}

	return strings.Trim(strings.Join(out, "\n"), "\n")
}

// sectionDescription picks long description text over descriptor summary.
func sectionDescription(long, short string) string {
	if long = strings.TrimSpace(long); long != "" {
		return long
	}

	return strings.TrimSpace(short)
}
