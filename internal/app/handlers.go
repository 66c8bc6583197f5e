package app

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sigc-piloto/sigc-backend/internal/data/db"
	"github.com/sigc-piloto/sigc-backend/internal/http"
	httpH "github.com/sigc-piloto/sigc-backend/internal/http/handlers"
	"github.com/sigc-piloto/sigc-backend/internal/observability"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Catalog  *httpH.CatalogHandler
	Registro *httpH.RegistroHandler
}

func wireHandlers(log *logger.Logger, pg *db.PostgresService, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(log, pg),
		Catalog:  httpH.NewCatalogHandler(services.Catalog),
		Registro: httpH.NewRegistroHandler(log, services.Registro),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *gin.Engine {
	tracingService := ""
	if cfg.Otel.Enabled {
		tracingService = strings.TrimSpace(cfg.Otel.ServiceName)
	}
	return http.NewRouter(http.RouterConfig{
		Log:             log,
		Metrics:         metrics,
		AllowOrigins:    cfg.CORSOrigins,
		TracingService:  tracingService,
		HealthHandler:   handlers.Health,
		CatalogHandler:  handlers.Catalog,
		RegistroHandler: handlers.Registro,
	})
}
