package cmd

import "github.com/spf13/cobra"

// dedupCmd groups duplicate-suppression utilities.
var dedupCmd = &cobra.Command{
	Use:   "dedup",
	Short: "Duplicate-suppression utilities",
}

func init() {
	rootCmd.AddCommand(dedupCmd)
}
