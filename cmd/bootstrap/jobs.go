package bootstrap

import (
	"context"
	"log/slog"

	"courtside/internal/pkg/config"
	"courtside/internal/pkg/periodic"
	"courtside/internal/usecase/jobs"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Invoke(
		StartReaper,
		StartOutboxDispatcher,
	),
)

func StartReaper(lc fx.Lifecycle, cfg config.Config, reaper *jobs.Reaper, logger *slog.Logger) error {
	if !cfg.Reaper.Enabled {
		logger.Info("Reaper disabled")
		return nil
	}
	task, err := periodic.NewTask("reaper", cfg.Reaper.Interval, reaper.Run, logger)
	if err != nil {
		return err
	}
	appendTask(lc, task)
	return nil
}

func StartOutboxDispatcher(lc fx.Lifecycle, cfg config.Config, dispatcher *jobs.Dispatcher, logger *slog.Logger) error {
	if !cfg.Outbox.Enabled {
		logger.Info("Outbox dispatcher disabled")
		return nil
	}
	task, err := periodic.NewTask("outbox", cfg.Outbox.Interval, dispatcher.Run, logger)
	if err != nil {
		return err
	}
	appendTask(lc, task)
	return nil
}

func appendTask(lc fx.Lifecycle, task *periodic.Task) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			task.Start()
			return nil
		},
		OnStop: task.Stop,
	})
}
