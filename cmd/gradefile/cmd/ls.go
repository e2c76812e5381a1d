package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mkessler/gradefile/pkg/fs"
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls <dir>",
	Short: "List the contents of a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return listDirectory(fs.NewOS(), args[0], cmd.OutOrStdout())
	},
}

func listDirectory(fsys fs.FS, dir string, out io.Writer) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	fmt.Fprintf(out, "Contents of %s:\n", dir)
	for _, entry := range entries {
		switch {
		case entry.IsDir():
			fmt.Fprintf(out, "  Directory: %s\n", entry.Name())
		case entry.Type().IsRegular():
			fmt.Fprintf(out, "  File: %s\n", entry.Name())
		default:
			fmt.Fprintf(out, "  Other: %s\n", entry.Name())
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
