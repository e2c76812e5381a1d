package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkessler/gradefile/pkg/fs"
)

var rmRecursive bool

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Remove a file or directory",
	Long: `Remove a file or an empty directory. With --recursive the path and
everything under it is removed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys := fs.NewOS()

		var err error
		if rmRecursive {
			err = fsys.RemoveAll(args[0])
		} else {
			err = fsys.Remove(args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to remove %s: %w", args[0], err)
		}

		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVarP(&rmRecursive, "recursive", "r", false, "Remove directories and their contents recursively")
}
