package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/decomment/internal/config"
	"github.com/vvka-141/decomment/internal/files/walker"
	"github.com/vvka-141/decomment/internal/logging"
	"github.com/vvka-141/decomment/internal/stripper"
	"github.com/vvka-141/decomment/pkg/decomment"
)

var rootFlags struct {
	extensions []string
	exclude    []string
}

func resetRootFlags() {
	rootFlags.extensions = nil
	rootFlags.exclude = nil
}

// runStrip resolves configuration and walks the root, stopping at the first
// file that cannot be read, decoded or written.
func runStrip(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	// A missing .env is the common case.
	_ = godotenv.Load()

	cfg, err := config.Resolve(root, config.Overrides{
		Extensions: rootFlags.extensions,
		Exclude:    rootFlags.exclude,
		Verbose:    getVerboseFlag(cmd),
	})
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)
	logger.Verbose("Root: %s", cfg.Root)
	logger.Verbose("Extensions: %v", cfg.Extensions)
	logger.Verbose("Excluded substrings: %v", cfg.Exclude)

	w := walker.NewWalker(stripper.NewCommentStripper(), logger, walker.Options{
		Extensions: cfg.Extensions,
		Exclude:    cfg.Exclude,
	})

	summary, err := w.Walk(cfg.Root)
	if err != nil {
		return err
	}

	logger.Info("Rewrote %d of %d file(s)", summary.FilesRewritten, summary.FilesProcessed)
	return nil
}

// newLogger returns a console logger in verbose mode and a silent one otherwise.
func newLogger(verbose bool) decomment.Logger {
	if verbose {
		return logging.NewConsoleLogger(true)
	}
	return logging.NewNullLogger()
}
