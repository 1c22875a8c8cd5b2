package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones embebidas (goose)",
}

func newMigrateSubcommand(direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   direction,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if err := postgres.Migrate(cmd.Context(), cfg.DB, direction); err != nil {
				return err
			}
			log.Info().Str("direction", direction).Msg("migraciones ejecutadas")
			return nil
		},
	}
}

func init() {
	migrateCmd.AddCommand(newMigrateSubcommand(postgres.MigrateUp, "Aplica todas las migraciones pendientes"))
	migrateCmd.AddCommand(newMigrateSubcommand(postgres.MigrateDown, "Revierte la última migración"))
	migrateCmd.AddCommand(newMigrateSubcommand(postgres.MigrateStatus, "Muestra el estado de las migraciones"))
}
