package bootstrap

import (
	"courtside/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// ServiceModule wires persistence and use cases without the HTTP layer.
var ServiceModule = fx.Options(
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	MQModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

// CoreModule is everything except config and the background jobs.
var CoreModule = fx.Options(
	ServiceModule,
	components.HandlerModule,
)

var Module = fx.Options(
	ConfigModule,
	CoreModule,
	JobsModule,
)
