package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkessler/gradefile/pkg/fs"
)

// mvCmd represents the mv command
var mvCmd = &cobra.Command{
	Use:   "mv <old> <new>",
	Short: "Rename or move a file or directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := fs.NewOS().Rename(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to rename %s: %w", args[0], err)
		}

		fmt.Printf("Renamed %s to %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mvCmd)
}
