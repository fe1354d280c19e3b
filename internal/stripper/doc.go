// Package stripper removes C-style comments from source text line by line.
//
// The scanner recognizes three constructs:
//   - Block comments: /* ... */, possibly spanning lines, never nested
//   - Full-line comments: lines whose first non-blank characters are //
//   - Inline comments: the first " // " (with spaces) and everything after it
//
// It is deliberately not language aware. Markers inside string or character
// literals and regular expressions are treated as comments, and a file that
// ends inside an unterminated block comment loses every line after the opener.
package stripper
