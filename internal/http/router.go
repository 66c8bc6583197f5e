package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/sigc-piloto/sigc-backend/internal/http/handlers"
	httpMW "github.com/sigc-piloto/sigc-backend/internal/http/middleware"
	"github.com/sigc-piloto/sigc-backend/internal/observability"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log          *logger.Logger
	Metrics      *observability.Metrics
	AllowOrigins []string

	// TracingService enables otelgin spans under this service name when set.
	TracingService string

	HealthHandler   *httpH.HealthHandler
	CatalogHandler  *httpH.CatalogHandler
	RegistroHandler *httpH.RegistroHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService, otelgin.WithFilter(traceable)))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/health", cfg.HealthHandler.Health)
		r.GET("/db-test", cfg.HealthHandler.DBTest)
	}

	// Metrics
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Catalog
		if cfg.CatalogHandler != nil {
			api.GET("/universidades", cfg.CatalogHandler.ListUniversidades)
		}

		// Registro
		if cfg.RegistroHandler != nil {
			api.POST("/registro", cfg.RegistroHandler.Create)
			api.GET("/registros", cfg.RegistroHandler.List)
			api.GET("/registro/:rei_id", cfg.RegistroHandler.Detail)
		}
	}

	return r
}

func traceable(req *http.Request) bool {
	return !httpMW.IsProbePath(req.URL.Path)
}
