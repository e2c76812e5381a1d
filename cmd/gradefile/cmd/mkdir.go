package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkessler/gradefile/pkg/fs"
)

// mkdirCmd represents the mkdir command
var mkdirCmd = &cobra.Command{
	Use:   "mkdir <dir>",
	Short: "Create a directory",
	Long: `Create a directory, including any missing parents. An already
existing directory is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := fs.NewOS().MkdirAll(args[0], 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", args[0], err)
		}

		fmt.Printf("Created directory %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
}
