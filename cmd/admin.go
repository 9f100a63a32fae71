package cmd

import (
	"context"
	"fmt"
	"time"

	"realty-backend/internal/data/repository"
	"realty-backend/internal/usecase"
	"realty-backend/pkg/database"
	"realty-backend/pkg/token"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a staff account for the admin portal",
	RunE:  runCreateAdmin,
}

func init() {
	createAdminCmd.Flags().String("username", "", "staff username")
	createAdminCmd.Flags().String("password", "", "staff password (min 8 chars)")
	createAdminCmd.Flags().String("name", "", "full name")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("password")
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	name, _ := cmd.Flags().GetString("name")

	config, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	repos := repository.NewRepository(db, logger)
	admin := usecase.NewAdminService(repos.Staff, config, usecase.Deps{Tokens: token.NewManager(config.JWT), Now: time.Now}, logger)

	staff, err := admin.CreateStaff(ctx, username, password, name)
	if err != nil {
		return err
	}

	logger.Info("Staff account created", zap.String("id", staff.ID), zap.String("username", staff.Username))
	fmt.Fprintf(cmd.OutOrStdout(), "created staff %s (%s)\n", staff.Username, staff.ID)
	return nil
}
