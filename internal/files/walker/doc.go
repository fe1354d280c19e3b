// Package walker finds candidate source files under a root directory and
// strips their comments in place.
//
// The walker is responsible for:
//   - Recursively traversing a directory tree
//   - Skipping subtrees whose path contains an excluded substring
//   - Selecting files by name suffix
//   - Decoding, stripping and rewriting files whose content changed
//
// The walker is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, so tests run against an in-memory filesystem that records every
// read and write.
package walker
