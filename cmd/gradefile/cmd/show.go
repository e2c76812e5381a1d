package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkessler/gradefile/pkg/fs"
	"github.com/mkessler/gradefile/pkg/studentfile"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Decode and print a student record",
	Long: `Decode a binary student record file and print its fields.

Example:
  gradefile show alice.student`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := studentfile.NewStore(fs.NewOS())

		student, err := store.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID: %d, Name: %s, GPA: %g\n", student.ID, student.Name, student.GPA)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
