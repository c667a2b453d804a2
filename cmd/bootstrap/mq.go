package bootstrap

import (
	"context"
	"log/slog"

	"courtside/internal/infra/mq"
	"courtside/internal/pkg/config"
	"courtside/internal/usecase/jobs"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewPublisher,
	),
)

type closingPublisher interface {
	jobs.Publisher
	Close() error
}

// NewPublisher dials the broker, or logs messages instead when MQ_URL is unset.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (jobs.Publisher, error) {
	var pub closingPublisher
	if cfg.MQ.URL == "" {
		logger.Warn("MQ_URL not set, outbox messages will only be logged")
		pub = mq.NewLogPublisher(logger)
	} else {
		amqpPub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			return nil, err
		}
		pub = amqpPub
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
