// Package textfile converts raw file bytes into newline-terminated lines and back.
package textfile

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Decode validates that data is UTF-8 text and returns it as a string.
// Invalid input returns an error wrapping encoding.ErrInvalidUTF8.
func Decode(data []byte) (string, error) {
	valid, _, err := transform.Bytes(encoding.UTF8Validator, data)
	if err != nil {
		return "", fmt.Errorf("invalid UTF-8 text: %w", err)
	}
	return string(valid), nil
}

// Encode returns the UTF-8 bytes for content.
func Encode(content string) []byte {
	return []byte(content)
}

// NormalizeNewlines converts \r\n and lone \r line endings to \n.
func NormalizeNewlines(content string) string {
	if !strings.Contains(content, "\r") {
		return content
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

// SplitLines splits content after every \n, keeping the separator.
// A trailing fragment without a newline becomes the last line.
// Empty content yields no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines concatenates lines produced by SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}
