package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "decomment [path]",
	Short: "Strip // and /* */ comments from source files in place",
	Long: `decomment walks a directory tree (the current directory by default) and
removes block comments (/* ... */) and line comments (//) from source files,
rewriting only the files whose content changes.

It is a line scanner, not a parser. Comment markers inside string literals
are stripped like any other, and an inline comment is only recognized when
written as " // " with a space on each side, so URLs survive.

Files ending in .go, .ts or .tsx are processed. Directories whose path
contains node_modules, .git or dist are skipped. Both sets can be changed
with flags, the DECOMMENT_EXTENSIONS and DECOMMENT_EXCLUDE environment
variables (comma separated, also read from .env), or a .decomment.yaml file
in the walked directory.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - A file could not be read
  21 - A file is not valid UTF-8
  22 - A file could not be written`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runStrip,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log skipped directories and rewritten files to stderr")
	rootCmd.Flags().StringSliceVar(&rootFlags.extensions, "ext", nil, "File name suffixes to process (default .go,.ts,.tsx)")
	rootCmd.Flags().StringSliceVar(&rootFlags.exclude, "exclude", nil, "Path substrings whose directories are skipped (default node_modules,.git,dist)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
