package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hqlam/laptopshop/internal/data/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate and load the demo fixture set",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, _, dbService, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := dbService.AutoMigrateAll(); err != nil {
			return err
		}
		return seed.Apply(context.Background(), dbService.DB(), log)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
