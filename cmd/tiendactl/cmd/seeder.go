package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
)

var (
	superuserName     string
	superuserEmail    string
	superuserPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga datos iniciales",
}

var seedUsersCmd = &cobra.Command{
	Use:   "usuarios",
	Short: "Crea vendedor1, gerente1 y admin1 con sus perfiles",
	Long:  `Crea un usuario de prueba por rol. Los usuarios existentes se informan sin modificarse.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		pool, err := postgres.NewPool(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		userRepo := postgres.NewUserRepository(pool)
		profileRepo := postgres.NewProfileRepository(pool)
		uc := usecase.NewProfileUseCase(postgres.NewTxRunner(pool), userRepo, profileRepo)

		seeds := usecase.DefaultStaff()
		results, err := uc.Seed(cmd.Context(), seeds)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, r := range results {
			if r.Created {
				fmt.Fprintf(out, "✓ Usuario %s creado (%s) - contraseña: %s\n", r.Username, r.Role.Display(), seeds[i].Password)
			} else {
				fmt.Fprintf(out, "• Usuario %s ya existe\n", r.Username)
			}
		}
		return nil
	},
}

var seedSuperuserCmd = &cobra.Command{
	Use:   "superuser",
	Short: "Crea un superusuario (sin perfil)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		pool, err := postgres.NewPool(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), postgres.NewProfileRepository(pool), auth.JWTConfig{})
		user, err := uc.CreateSuperuser(cmd.Context(), superuserName, superuserEmail, superuserPassword)
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			fmt.Fprintf(cmd.OutOrStdout(), "• Usuario %s ya existe\n", superuserName)
			return nil
		case errors.Is(err, domain.ErrInvalidInput):
			return errors.New("username requerido y password de al menos 8 caracteres")
		case err != nil:
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Superusuario %s creado\n", user.Username)
		return nil
	},
}

func init() {
	seedSuperuserCmd.Flags().StringVar(&superuserName, "username", "admin", "nombre de usuario")
	seedSuperuserCmd.Flags().StringVar(&superuserEmail, "email", "", "email")
	seedSuperuserCmd.Flags().StringVar(&superuserPassword, "password", "", "contraseña (mínimo 8 caracteres)")
	_ = seedSuperuserCmd.MarkFlagRequired("password")

	seedCmd.AddCommand(seedUsersCmd)
	seedCmd.AddCommand(seedSuperuserCmd)
}
