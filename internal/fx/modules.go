package fx

import (
	"go.uber.org/fx"

	"abilitydraft-stats/internal/api"
	"abilitydraft-stats/internal/config"
	"abilitydraft-stats/internal/database"
	"abilitydraft-stats/internal/logger"
	"abilitydraft-stats/internal/repository"
	"abilitydraft-stats/internal/server"
	"abilitydraft-stats/internal/service"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewCatalogRepository),
	fx.Provide(repository.NewPlayerRepository),
	// api client
	fx.Provide(api.NewClient),
	// catalog, built once at startup
	fx.Provide(service.NewCatalogService),
	fx.Provide(service.ProvideCatalog),
	// svc
	fx.Provide(service.NewStatsService),
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewSessionService),
	// server
	fx.Provide(server.New),
)
