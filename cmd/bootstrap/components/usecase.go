package components

import (
	"log/slog"

	"courtside/internal/domain/reservation"
	"courtside/internal/pkg/clock"
	"courtside/internal/pkg/config"
	"courtside/internal/pkg/metrics"
	"courtside/internal/usecase"
	"courtside/internal/usecase/commands"
	"courtside/internal/usecase/jobs"
	"courtside/internal/usecase/queries"
	"courtside/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseJobsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, cfg config.Config) *reservation.Factory {
		return reservation.NewFactory(clk, cfg.Booking.HoldTTL)
	},
	func(cfg config.Config) commands.PaymentSettings {
		return commands.PaymentSettings{
			Provider:        cfg.Payment.Provider,
			DefaultCurrency: cfg.Payment.DefaultCurrency,
		}
	},
	func(cfg config.Config) commands.WebhookSettings {
		return commands.WebhookSettings{
			Secrets:   cfg.Webhook.Secrets,
			Tolerance: cfg.Webhook.Tolerance,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewPaymentUseCase,
		commands.NewWebhookUseCase,
		commands.NewMatchUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewReservationQueries,
		queries.NewMatchQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseJobsModule = fx.Module("usecase/jobs",
	fx.Provide(
		func(uow shared.UnitOfWork, res commands.ReservationCommands, clk clock.Clock, cfg config.Config, m metrics.Metrics, logger *slog.Logger) *jobs.Reaper {
			return jobs.NewReaper(uow, res, clk, cfg.Reaper.BatchSize, m, logger)
		},
		func(uow shared.UnitOfWork, pub jobs.Publisher, clk clock.Clock, cfg config.Config, m metrics.Metrics, logger *slog.Logger) *jobs.Dispatcher {
			return jobs.NewDispatcher(uow, pub, clk, cfg.Outbox.BatchSize, int(cfg.Outbox.MaxAttempts), cfg.Outbox.Lease, m, logger)
		},
	),
)
