package services

import (
	"context"
	"time"

	dataagg "github.com/sigc-piloto/sigc-backend/internal/data/aggregates"
	"github.com/sigc-piloto/sigc-backend/internal/data/repos"
	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	domainagg "github.com/sigc-piloto/sigc-backend/internal/domain/aggregates"
	"github.com/sigc-piloto/sigc-backend/internal/observability"
	"github.com/sigc-piloto/sigc-backend/internal/platform/cache"
	"github.com/sigc-piloto/sigc-backend/internal/platform/dbctx"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

type CatalogService interface {
	// LookupBySiglas fails with a not_found aggregate error for unknown codes.
	LookupBySiglas(ctx context.Context, siglas string) (*types.Institution, error)
	ListActive(ctx context.Context) ([]*types.Institution, error)
}

type catalogService struct {
	log      *logger.Logger
	instRepo repos.InstitutionRepo
	cache    cache.Manager[types.Institution]
	ttl      time.Duration
	metrics  *observability.Metrics
}

// NewCatalogService builds the lookup service. A nil cache disables caching.
func NewCatalogService(
	baseLog *logger.Logger,
	instRepo repos.InstitutionRepo,
	c cache.Manager[types.Institution],
	ttl time.Duration,
	metrics *observability.Metrics,
) CatalogService {
	serviceLog := baseLog.With("service", "CatalogService")
	return &catalogService{
		log:      serviceLog,
		instRepo: instRepo,
		cache:    c,
		ttl:      ttl,
		metrics:  metrics,
	}
}

func (s *catalogService) LookupBySiglas(ctx context.Context, siglas string) (*types.Institution, error) {
	const op = "Catalog.LookupBySiglas"
	if siglas == "" {
		return nil, domainagg.NewError(domainagg.CodeNotFound, op, "Universidad no encontrada por siglas", nil)
	}

	if s.cache != nil {
		if inst, ok := s.cache.Get(ctx, siglas); ok {
			s.metrics.ObserveCacheLookup(s.cache.Backend(), true)
			return &inst, nil
		}
		s.metrics.ObserveCacheLookup(s.cache.Backend(), false)
	}

	inst, err := s.instRepo.GetBySiglas(dbctx.New(ctx), siglas)
	if err != nil {
		s.log.Error("catalog lookup failed", "siglas", siglas, "error", err)
		return nil, dataagg.MapError(op, err)
	}
	if inst == nil {
		return nil, domainagg.NewError(domainagg.CodeNotFound, op, "Universidad no encontrada por siglas", nil)
	}

	if s.cache != nil {
		s.cache.Set(ctx, siglas, *inst, s.ttl)
	}
	return inst, nil
}

func (s *catalogService) ListActive(ctx context.Context) ([]*types.Institution, error) {
	rows, err := s.instRepo.ListActive(dbctx.New(ctx))
	if err != nil {
		return nil, dataagg.MapError("Catalog.ListActive", err)
	}
	if rows == nil {
		rows = []*types.Institution{}
	}
	return rows, nil
}
