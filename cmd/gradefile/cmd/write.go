package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkessler/gradefile/pkg/fs"
)

var writeAppend bool

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write <file> <line>...",
	Short: "Write lines of text to a file",
	Long: `Write one or more lines of text to a file. By default the file is
appended to; use --append=false to replace its contents.

Example:
  gradefile write notes.txt "first line" "second line"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := writeLines(fs.NewOS(), args[0], args[1:], writeAppend); err != nil {
			return err
		}

		fmt.Printf("Wrote %d lines to %s\n", len(args)-1, args[0])
		return nil
	},
}

// writeLines writes each line followed by a newline, releasing the file
// handle on every exit path.
func writeLines(fsys fs.FS, path string, lines []string, appendTo bool) error {
	var (
		f   fs.File
		err error
	)
	if appendTo {
		f, err = fsys.OpenAppend(path)
	} else {
		f, err = fsys.Create(path)
	}
	if err != nil {
		return fmt.Errorf("unable to open %s for writing: %w", path, err)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	return f.Close()
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().BoolVar(&writeAppend, "append", true, "Append to the file instead of replacing it")
}
