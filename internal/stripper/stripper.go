package stripper

import (
	"strings"
	"unicode"

	"github.com/vvka-141/decomment/internal/files/textfile"
)

const (
	blockOpen   = "/*"
	blockClose  = "*/"
	lineComment = "//"

	// inlineComment requires surrounding spaces so that URL schemes such as
	// http:// and constructs like a//b are left alone.
	inlineComment = " // "
)

// CommentStripper removes block and line comments from a file's lines.
type CommentStripper interface {
	// Strip returns the lines with comments removed and whether any line
	// was altered or dropped. Input lines keep their trailing newline.
	Strip(lines []string) (out []string, modified bool)
}

// commentStripper implements CommentStripper with a line scanner whose only
// state is whether the previous line left a block comment open.
type commentStripper struct{}

// NewCommentStripper creates a new CommentStripper instance.
func NewCommentStripper() CommentStripper {
	return &commentStripper{}
}

// Strip processes lines in order. It does not understand string literals:
// markers inside quotes are treated as comments.
func (c *commentStripper) Strip(lines []string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	inBlockComment := false
	modified := false

	for _, line := range lines {
		original := line

		if inBlockComment {
			end := strings.Index(line, blockClose)
			if end == -1 {
				modified = true
				continue
			}
			inBlockComment = false
			line = line[end+len(blockClose):]
		}

		line, inBlockComment = stripBlockComments(line)

		if !inBlockComment {
			if strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), lineComment) {
				modified = true
				continue
			}
			if idx := strings.Index(line, inlineComment); idx != -1 {
				line = line[:idx] + "\n"
			}
		}

		if line != original {
			modified = true
		}
		out = append(out, line)
	}

	return out, modified
}

// stripBlockComments removes every complete /* ... */ span from line. If an
// opener is left without a terminator the line is cut before it, terminated
// with a newline, and open is true.
//
// The terminator is searched from the opener onwards, so "/*/" closes itself
// and a stray "*/" before the opener is ignored.
func stripBlockComments(line string) (string, bool) {
	for {
		start := strings.Index(line, blockOpen)
		if start == -1 {
			return line, false
		}
		end := strings.Index(line[start:], blockClose)
		if end == -1 {
			return line[:start] + "\n", true
		}
		line = line[:start] + line[start+end+len(blockClose):]
	}
}

// StripContent strips comments from a whole decoded text. Newlines are
// normalized to \n first. The returned flag reports whether the stripped
// lines differ from the normalized input.
func StripContent(s CommentStripper, content string) (string, bool) {
	lines := textfile.SplitLines(textfile.NormalizeNewlines(content))
	out, modified := s.Strip(lines)
	return textfile.JoinLines(out), modified
}
