package seed

import (
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/kaanyld/tutorhub/internal/app/models"
	appRepos "github.com/kaanyld/tutorhub/internal/app/repositories"
	"github.com/kaanyld/tutorhub/internal/config"
	"github.com/kaanyld/tutorhub/internal/pkg/apperrors"
	"github.com/kaanyld/tutorhub/internal/storage"
)

// CreateDefaultData ensures the default admin account exists.
func CreateDefaultData(cfg *config.Config, medium storage.Medium, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(medium, lgr)

	lgr.Info().Msg("Checking/Creating default data (admin account)...")

	if cfg.Seed.AdminPassword == "" {
		lgr.Warn().Msg("Seed admin password not set, skipping admin account creation")
		return nil
	}

	admin := &appModels.Account{
		Email:     cfg.Seed.AdminEmail,
		Password:  cfg.Seed.AdminPassword,
		Role:      appModels.RoleAdmin,
		FirstName: "System",
		LastName:  "Admin",
	}
	if _, err := repos.AccountRepository.Create(admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", cfg.Seed.AdminEmail).Msg("Admin account already exists")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Default admin account created")
	return nil
}
