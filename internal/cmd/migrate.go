package cmd

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the relational schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, cfg, dbService, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		log.Info("Migrating schema", "driver", cfg.DB.Driver)
		return dbService.AutoMigrateAll()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
