package cmd

import (
	"fmt"

	"content-loop/internal/store"

	"github.com/spf13/cobra"
)

// migrateCmd applies the database schema and exits.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		pg, err := store.Open(cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer pg.Close()

		if err := pg.Migrate(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
