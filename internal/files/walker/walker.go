package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/decomment/internal/files/filesystem"
	"github.com/vvka-141/decomment/internal/files/textfile"
	"github.com/vvka-141/decomment/internal/logging"
	"github.com/vvka-141/decomment/internal/stripper"
	"github.com/vvka-141/decomment/pkg/decomment"
)

// Options selects which files a Walker processes.
type Options struct {
	// Extensions are file name suffixes, matched case-sensitively.
	Extensions []string

	// Exclude are substrings; a directory whose ./-prefixed relative path
	// contains any of them is not descended into.
	Exclude []string
}

// DefaultOptions returns the extension and exclusion sets used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Extensions: decomment.DefaultExtensions(),
		Exclude:    decomment.DefaultExclude(),
	}
}

// Walker strips comments from candidate files under a root directory.
// Files are processed one at a time; each is read, stripped and, if
// changed, rewritten before the next is opened.
type Walker struct {
	stripper   stripper.CommentStripper
	fsProvider filesystem.FileSystemProvider
	logger     decomment.Logger
	opts       Options
}

// NewWalker creates a Walker over the OS filesystem.
// A nil logger discards all messages.
// Panics if commentStripper is nil.
func NewWalker(commentStripper stripper.CommentStripper, logger decomment.Logger, opts Options) *Walker {
	return NewWalkerWithFS(commentStripper, filesystem.NewOSFileSystem(), logger, opts)
}

// NewWalkerWithFS creates a Walker with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if commentStripper or fsProvider is nil.
func NewWalkerWithFS(commentStripper stripper.CommentStripper, fsProvider filesystem.FileSystemProvider, logger decomment.Logger, opts Options) *Walker {
	if commentStripper == nil {
		panic("commentStripper cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Walker{
		stripper:   commentStripper,
		fsProvider: fsProvider,
		logger:     logger,
		opts:       opts,
	}
}

// Walk strips comments from every candidate file under root.
//
// The first read, decode or write failure stops the walk. Files rewritten
// before the failure stay rewritten.
func (w *Walker) Walk(root string) (decomment.Summary, error) {
	dir, err := w.fsProvider.Open(root)
	if err != nil {
		return decomment.Summary{}, fmt.Errorf("failed to open directory: %w", err)
	}

	var summary decomment.Summary

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		relPath := toUnixPath(file.RelativePath())

		if file.Info().IsDir() {
			if w.IsExcluded(relPath) {
				summary.DirectoriesSkipped++
				w.logger.Verbose("Skipping %s", relPath)
				return fs.SkipDir
			}
			return nil
		}

		if w.isDirectoryLink(file) {
			return nil
		}

		summary.FilesVisited++
		if !w.HasExtension(file.Info().Name()) {
			return nil
		}

		result, err := w.processFile(file, relPath)
		if err != nil {
			return err
		}

		summary.FilesProcessed++
		if result.Modified {
			summary.FilesRewritten++
			w.logger.Verbose("Stripped %s (%d -> %d lines)", result.Path, result.LinesBefore, result.LinesAfter)
		}
		summary.Results = append(summary.Results, result)
		return nil
	})

	if err != nil {
		return summary, err
	}

	w.logger.Verbose("Processed %d file(s), rewrote %d, skipped %d director(ies)",
		summary.FilesProcessed, summary.FilesRewritten, summary.DirectoriesSkipped)

	return summary, nil
}

// processFile reads, strips and conditionally rewrites one file.
func (w *Walker) processFile(file filesystem.File, relPath string) (decomment.FileResult, error) {
	data, err := file.ReadContent()
	if err != nil {
		return decomment.FileResult{}, fmt.Errorf("%w: %s: %w", decomment.ErrReadFailed, relPath, err)
	}

	content, err := textfile.Decode(data)
	if err != nil {
		return decomment.FileResult{}, fmt.Errorf("%w: %s: %w", decomment.ErrDecodeFailed, relPath, err)
	}

	lines := textfile.SplitLines(textfile.NormalizeNewlines(content))
	stripped, modified := w.stripper.Strip(lines)

	result := decomment.FileResult{
		Path:        relPath,
		LinesBefore: len(lines),
		LinesAfter:  len(stripped),
		Modified:    modified,
	}

	if !modified {
		return result, nil
	}

	if err := w.fsProvider.WriteFile(file.Path(), textfile.Encode(textfile.JoinLines(stripped))); err != nil {
		return decomment.FileResult{}, fmt.Errorf("%w: %s: %w", decomment.ErrWriteFailed, relPath, err)
	}

	return result, nil
}

// IsExcluded reports whether a ./-prefixed, slash-separated directory path
// contains one of the excluded substrings. The walk root is never excluded.
func (w *Walker) IsExcluded(relPath string) bool {
	if relPath == "." {
		return false
	}
	for _, sub := range w.opts.Exclude {
		if sub != "" && strings.Contains(relPath, sub) {
			return true
		}
	}
	return false
}

// HasExtension reports whether name ends with one of the configured extensions.
func (w *Walker) HasExtension(name string) bool {
	for _, ext := range w.opts.Extensions {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// isDirectoryLink reports whether file is a symlink to a directory. Such
// links are neither followed nor opened.
func (w *Walker) isDirectoryLink(file filesystem.File) bool {
	if file.Info().Mode()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := w.fsProvider.Stat(file.Path())
	return err == nil && info.IsDir()
}

// toUnixPath converts a root-relative path to forward slashes with a ./ prefix.
// The root itself stays ".".
func toUnixPath(relPath string) string {
	unixPath := filepath.ToSlash(relPath)
	if unixPath == "." || unixPath == "" {
		return "."
	}
	if !strings.HasPrefix(unixPath, "./") {
		unixPath = "./" + unixPath
	}
	return unixPath
}

// Verify Walker implements the interface at compile time
var _ decomment.Walker = (*Walker)(nil)
