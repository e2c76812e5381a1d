package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mkessler/gradefile/pkg/fs"
)

// catCmd represents the cat command
var catCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "Print a text file line by line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLines(fs.NewOS(), args[0], cmd.OutOrStdout())
	},
}

func printLines(fsys fs.FS, path string, out io.Writer) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open %s for reading: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fmt.Fprintln(out, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(catCmd)
}
