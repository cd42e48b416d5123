// Command seed idempotently provisions the super-admin account and the
// default settings documents. Safe to run on every deploy.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"wellkart/config"
	"wellkart/internal/domain/entity"
	"wellkart/internal/domain/repository"
	"wellkart/internal/domain/service"
	"wellkart/internal/infra/auth"
	logs "wellkart/internal/infra/log"
	"wellkart/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const startTimeout = time.Minute

type seeder struct {
	fx.In

	Logger      *slog.Logger
	TxManager   repository.TransactionManager
	SettingRepo repository.SettingRepository
	Hasher      service.PasswordHasher
}

func main() {
	var deps seeder

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewSettingRepository,
			auth.NewBcryptHasher,
		),
		fx.Populate(&deps),
	)

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start seed app", slog.Any("error", err))
		os.Exit(1)
	}

	err := run(ctx, deps)

	if stopErr := app.Stop(ctx); stopErr != nil {
		deps.Logger.Warn("Failed to stop seed app cleanly", slog.Any("error", stopErr))
	}

	if err != nil {
		deps.Logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	deps.Logger.Info("Seeding completed")
}

func run(ctx context.Context, deps seeder) error {
	if err := seedSuperAdmin(ctx, deps); err != nil {
		return err
	}

	return seedDefaultSettings(ctx, deps)
}

func seedSuperAdmin(ctx context.Context, deps seeder) error {
	email := os.Getenv("SEED_SUPERADMIN_EMAIL")
	password := os.Getenv("SEED_SUPERADMIN_PASSWORD")
	if email == "" || password == "" {
		return errors.New("SEED_SUPERADMIN_EMAIL and SEED_SUPERADMIN_PASSWORD must be set")
	}

	return deps.TxManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			deps.Logger.Info("Super admin already exists, skipping", slog.String("email", email))

			return nil
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to look up super admin credential")
		}

		hashed, err := deps.Hasher.Hash(password)
		if err != nil {
			return errors.Wrap(err, "failed to hash super admin password")
		}

		user := &entity.User{
			Email:        email,
			Name:         "Super Admin",
			Status:       entity.UserStatusActive,
			AdminProfile: &entity.AdminProfile{Super: true},
		}
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create super admin user")
		}

		credential := &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashed,
		}
		if err := authRepo.CreateAuthentication(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to create super admin credential")
		}

		deps.Logger.Info("Super admin created", slog.String("email", email), slog.Any("userID", user.ID))

		return nil
	})
}

func seedDefaultSettings(ctx context.Context, deps seeder) error {
	defaults := map[entity.SettingKey]map[string]string{
		entity.SettingKeySEO: {
			"metaTitle":       "WellKart",
			"metaDescription": "Wellness products, doctor consultations and more.",
		},
		entity.SettingKeyBusiness: {
			"legalName":    "WellKart",
			"supportEmail": "support@wellkart.example",
		},
		entity.SettingKeyShipping: {
			"flatFee":            "5000",
			"freeAboveThreshold": "99900",
		},
	}

	for key, values := range defaults {
		_, err := deps.SettingRepo.FindByKey(ctx, key)
		if err == nil {
			deps.Logger.Info("Setting already exists, skipping", slog.String("key", string(key)))

			continue
		}
		if !errors.Is(err, repository.ErrSettingNotFound) {
			return errors.Wrap(err, "failed to look up setting")
		}

		if err := deps.SettingRepo.Upsert(ctx, &entity.Setting{Key: key, Values: values}); err != nil {
			return errors.Wrap(err, "failed to seed setting")
		}

		deps.Logger.Info("Setting seeded", slog.String("key", string(key)))
	}

	return nil
}
