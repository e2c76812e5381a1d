package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkessler/gradefile/pkg/fs"
)

// existsCmd represents the exists command
var existsCmd = &cobra.Command{
	Use:   "exists <path>",
	Short: "Check whether a file or directory exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := fs.NewOS().Exists(args[0])
		if err != nil {
			return err
		}

		if ok {
			fmt.Printf("%s exists\n", args[0])
		} else {
			fmt.Printf("%s does not exist\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(existsCmd)
}
