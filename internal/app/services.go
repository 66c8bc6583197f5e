package app

import (
	"gorm.io/gorm"

	dataagg "github.com/sigc-piloto/sigc-backend/internal/data/aggregates"
	domainagg "github.com/sigc-piloto/sigc-backend/internal/domain/aggregates"
	"github.com/sigc-piloto/sigc-backend/internal/observability"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
	"github.com/sigc-piloto/sigc-backend/internal/services"
)

type Services struct {
	Catalog           services.CatalogService
	Registro          services.RegistroService
	RegistroAggregate domainagg.RegistroAggregate
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	catalog := services.NewCatalogService(log, reposet.Institution, clients.CatalogCache, cfg.CacheTTL, metrics)

	aggregate := dataagg.NewRegistroAggregate(dataagg.RegistroAggregateDeps{
		Base: dataagg.BaseDeps{
			DB:    db,
			Log:   log,
			Hooks: dataagg.NewObservabilityHooks(metrics),
		},
		Institutions: catalog,
		Records:      reposet.Record,
		Units:        reposet.Unit,
		Projects:     reposet.Project,
	})

	return Services{
		Catalog:           catalog,
		Registro:          services.NewRegistroService(log, aggregate, reposet.Institution, reposet.Record, reposet.Unit, reposet.Project),
		RegistroAggregate: aggregate,
	}
}
