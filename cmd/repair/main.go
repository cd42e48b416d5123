// Command repair re-links orders whose user record no longer resolves to the
// guest placeholder user, so every order keeps a resolvable owner.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"wellkart/config"
	"wellkart/internal/domain/entity"
	"wellkart/internal/domain/repository"
	logs "wellkart/internal/infra/log"
	"wellkart/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	startTimeout = time.Minute

	// guestEmail identifies the placeholder account orphaned orders are
	// re-linked to. The account has no credential and can never log in.
	guestEmail = "guest@wellkart.invalid"
)

type repairer struct {
	fx.In

	Logger    *slog.Logger
	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
}

func main() {
	var deps repairer

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			postgres.NewOrderRepository,
			postgres.NewUserRepository,
		),
		fx.Populate(&deps),
	)

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start repair app", slog.Any("error", err))
		os.Exit(1)
	}

	err := run(ctx, deps)

	if stopErr := app.Stop(ctx); stopErr != nil {
		deps.Logger.Warn("Failed to stop repair app cleanly", slog.Any("error", stopErr))
	}

	if err != nil {
		deps.Logger.Error("Repair failed", slog.Any("error", err))
		os.Exit(1)
	}

	deps.Logger.Info("Repair completed")
}

func run(ctx context.Context, deps repairer) error {
	orphans, err := deps.OrderRepo.FindOrphaned(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list orphaned orders")
	}
	if len(orphans) == 0 {
		deps.Logger.Info("No orphaned orders found")

		return nil
	}

	guest, err := ensureGuestUser(ctx, deps)
	if err != nil {
		return err
	}

	for _, order := range orphans {
		if err := deps.OrderRepo.ReassignUser(ctx, order.ID, guest.ID); err != nil {
			return errors.Wrapf(err, "failed to reassign order %s", order.ID)
		}

		deps.Logger.Info("Order re-linked to guest user", slog.Any("orderID", order.ID))
	}

	deps.Logger.Info("Orphaned orders repaired", slog.Int("count", len(orphans)))

	return nil
}

func ensureGuestUser(ctx context.Context, deps repairer) (*entity.User, error) {
	guest, err := deps.UserRepo.FindByEmail(ctx, guestEmail)
	if err == nil {
		return guest, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up guest user")
	}

	guest = &entity.User{
		Email:           guestEmail,
		Name:            "Guest",
		Status:          entity.UserStatusInactive,
		CustomerProfile: &entity.CustomerProfile{},
	}

	err = deps.TxManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.UserRepo().Create(ctx, guest), "failed to create guest user")
	})
	if err != nil {
		return nil, err
	}

	deps.Logger.Info("Guest user created", slog.Any("userID", guest.ID))

	return guest, nil
}
