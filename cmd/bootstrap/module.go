package bootstrap

import (
	"campground/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	PassModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	QueueModule,
)
