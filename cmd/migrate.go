package cmd

import (
	"fmt"

	"realty-backend/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{database.DirectionUp, database.DirectionDown},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		direction := database.DirectionUp
		if len(args) == 1 {
			direction = args[0]
		}

		if err := database.Migrate(config.Database.URL(), direction); err != nil {
			return fmt.Errorf("migrate %s: %w", direction, err)
		}
		logger.Info("Migrations applied", zap.String("direction", direction))
		return nil
	},
}
