package decomment

// FileResult describes the outcome of stripping one candidate file.
type FileResult struct {
	// Path is relative to the walk root, slash separated, with a ./ prefix.
	Path string

	// LinesBefore and LinesAfter count lines before and after stripping.
	LinesBefore int
	LinesAfter  int

	// Modified reports whether the file content changed and was rewritten.
	Modified bool
}

// Summary aggregates the results of one walk.
type Summary struct {
	FilesVisited       int // regular files seen outside excluded subtrees
	FilesProcessed     int // files whose name matched an extension
	FilesRewritten     int
	DirectoriesSkipped int
	Results            []FileResult
}
