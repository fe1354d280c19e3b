package stripper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentStripper_Strip_LineComments(t *testing.T) {
	stripper := NewCommentStripper()

	tests := []struct {
		name         string
		input        []string
		expected     []string
		wantModified bool
	}{
		{
			name:         "Full-line comment is dropped",
			input:        []string{"  // hello\n"},
			expected:     []string{},
			wantModified: true,
		},
		{
			name:         "Tab indented full-line comment",
			input:        []string{"func f() {\n", "\t// explain\n", "}\n"},
			expected:     []string{"func f() {\n", "}\n"},
			wantModified: true,
		},
		{
			name:         "Inline comment with spacing",
			input:        []string{"x = 1 // note\n"},
			expected:     []string{"x = 1\n"},
			wantModified: true,
		},
		{
			name:         "Inline comment without leading space is kept",
			input:        []string{"x=1 //note\n"},
			expected:     []string{"x=1 //note\n"},
			wantModified: false,
		},
		{
			name:         "Double slash inside a token is kept",
			input:        []string{"a//b\n"},
			expected:     []string{"a//b\n"},
			wantModified: false,
		},
		{
			name:         "URL is preserved",
			input:        []string{"url = \"http://example.com\"\n"},
			expected:     []string{"url = \"http://example.com\"\n"},
			wantModified: false,
		},
		{
			name:         "Inline marker inside string literal is stripped",
			input:        []string{"s := \"a // b\"\n"},
			expected:     []string{"s := \"a\n"},
			wantModified: true,
		},
		{
			name:         "Last line without newline gains one when truncated",
			input:        []string{"x := 1\n", "y := 2 // end"},
			expected:     []string{"x := 1\n", "y := 2\n"},
			wantModified: true,
		},
		{
			name:         "Last line without newline is kept verbatim when untouched",
			input:        []string{"x := 1\n", "y := 2"},
			expected:     []string{"x := 1\n", "y := 2"},
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, modified := stripper.Strip(tt.input)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.wantModified, modified)
		})
	}
}

func TestCommentStripper_Strip_BlockComments(t *testing.T) {
	stripper := NewCommentStripper()

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "Single-line block comment",
			input:    []string{"a /* b */ c\n"},
			expected: []string{"a  c\n"},
		},
		{
			name:     "Multiple block comments on one line",
			input:    []string{"a /*x*/ b /*y*/ c\n"},
			expected: []string{"a  b  c\n"},
		},
		{
			name:     "Multi-line block comment span",
			input:    []string{"x /* start\n", "middle\n", "end */ y\n"},
			expected: []string{"x \n", " y\n"},
		},
		{
			name:     "Block comment opening at line start leaves an empty line",
			input:    []string{"/**\n", " * Doc.\n", " */\n", "func f() {}\n"},
			expected: []string{"\n", "\n", "func f() {}\n"},
		},
		{
			name:     "Remainder after block end is scanned for full-line comment",
			input:    []string{"/* a\n", "b */ // tail\n", "keep\n"},
			expected: []string{"\n", "keep\n"},
		},
		{
			name:     "Remainder after block end is scanned for inline comment",
			input:    []string{"int x; /* a\n", "b */ y = 2 // c\n"},
			expected: []string{"int x; \n", " y = 2\n"},
		},
		{
			name:     "Remainder after block end is scanned for another block",
			input:    []string{"/* a\n", "b */ c /* d */ e /* f\n", "g */ h\n"},
			expected: []string{"\n", " c  e \n", " h\n"},
		},
		{
			name:     "Block then inline comment on one line",
			input:    []string{"a /* b */ c // d\n"},
			expected: []string{"a  c\n"},
		},
		{
			name:     "Terminator before opener is ignored",
			input:    []string{"a */ b /* c */ d\n"},
			expected: []string{"a */ b  d\n"},
		},
		{
			name:     "Opener sharing its star with the terminator",
			input:    []string{"/*/ x\n"},
			expected: []string{" x\n"},
		},
		{
			name:     "Block opener after inline marker wins",
			input:    []string{"x // see /* foo\n", "y\n"},
			expected: []string{"x // see \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, modified := stripper.Strip(tt.input)
			assert.Equal(t, tt.expected, out)
			assert.True(t, modified)
		})
	}
}

func TestCommentStripper_Strip_UnterminatedBlockDropsRest(t *testing.T) {
	stripper := NewCommentStripper()

	out, modified := stripper.Strip([]string{"code\n", "/* open\n", "more\n", "lines"})

	require.True(t, modified)
	require.Equal(t, []string{"code\n", "\n"}, out)
}

func TestCommentStripper_Strip_NoComments(t *testing.T) {
	stripper := NewCommentStripper()
	input := []string{
		"package main\n",
		"\n",
		"func main() {\n",
		"\tprintln(\"https://example.com/a/b\")\n",
		"}\n",
	}

	out, modified := stripper.Strip(input)

	require.False(t, modified)
	require.Equal(t, input, out)
}

func TestCommentStripper_Strip_Empty(t *testing.T) {
	stripper := NewCommentStripper()

	out, modified := stripper.Strip(nil)

	require.False(t, modified)
	require.Empty(t, out)
}

func TestCommentStripper_Strip_DoesNotMutateInput(t *testing.T) {
	stripper := NewCommentStripper()
	input := []string{"a // b\n", "// c\n"}
	snapshot := append([]string(nil), input...)

	stripper.Strip(input)

	require.Equal(t, snapshot, input)
}

func TestCommentStripper_Strip_Idempotent(t *testing.T) {
	stripper := NewCommentStripper()

	inputs := [][]string{
		{"package main\n", "\n", "// Package doc.\n", "import \"fmt\" // fmt\n", "\n", "/* block\n", " spanning */\n", "func main() { fmt.Println(\"http://x\") /* inline */ }\n"},
		{"export const a = 1; // one\n", "/** @type {number} */\n", "let b = a /* two */ + 1;\n", "   // trailing\n"},
		{"x /* start\n", "middle\n", "end */ y\n"},
		{"a /*x*/ b /*y*/ c"},
	}

	for i, input := range inputs {
		once, _ := stripper.Strip(input)
		twice, modified := stripper.Strip(once)
		assert.False(t, modified, "input %d: second pass should not modify", i)
		assert.Equal(t, once, twice, "input %d", i)
	}
}

func TestStripContent(t *testing.T) {
	stripper := NewCommentStripper()

	tests := []struct {
		name         string
		input        string
		expected     string
		wantModified bool
	}{
		{
			name:         "LF content with comment",
			input:        "a\nb // c\n",
			expected:     "a\nb\n",
			wantModified: true,
		},
		{
			name:         "CRLF content with comment is normalized",
			input:        "a\r\nb // c\r\n",
			expected:     "a\nb\n",
			wantModified: true,
		},
		{
			name:         "CRLF content without comment reports no change",
			input:        "a\r\nb\r\n",
			expected:     "a\nb\n",
			wantModified: false,
		},
		{
			name:         "Empty content",
			input:        "",
			expected:     "",
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, modified := StripContent(stripper, tt.input)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.wantModified, modified)
		})
	}
}

func BenchmarkCommentStripper_Strip(b *testing.B) {
	stripper := NewCommentStripper()
	lines := []string{
		"package main\n",
		"/* header\n",
		" * license\n",
		" */\n",
		"import \"fmt\" // fmt\n",
		"func main() { fmt.Println(\"http://x\") /* a */ /* b */ }\n",
		"// trailing\n",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stripper.Strip(lines)
	}
}
