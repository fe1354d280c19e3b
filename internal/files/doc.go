// Package files groups the file handling used by the comment stripper into
// sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - textfile: Strict UTF-8 decoding, newline normalization and line splitting
//   - walker: Directory traversal, exclusion and in-place rewriting
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/decomment/internal/files/walker"
//	    "github.com/vvka-141/decomment/internal/stripper"
//	)
//
//	w := walker.NewWalker(stripper.NewCommentStripper(), logger, walker.DefaultOptions())
//	summary, err := w.Walk(".")
package files
