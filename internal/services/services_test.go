package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	dataagg "github.com/sigc-piloto/sigc-backend/internal/data/aggregates"
	"github.com/sigc-piloto/sigc-backend/internal/data/repos"
	repotest "github.com/sigc-piloto/sigc-backend/internal/data/repos/testutil"
	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	"github.com/sigc-piloto/sigc-backend/internal/observability"
	"github.com/sigc-piloto/sigc-backend/internal/platform/cache"
)

type harness struct {
	db       *gorm.DB
	metrics  *observability.Metrics
	insts    repos.InstitutionRepo
	records  repos.RecordRepo
	units    repos.UnitRepo
	projects repos.ProjectRepo
	catalog  CatalogService
	registro RegistroService
}

func newHarness(t testing.TB) *harness {
	t.Helper()
	db := repotest.DB(t)
	log := repotest.Logger(t)
	h := &harness{
		db:       db,
		metrics:  observability.NewMetrics(),
		insts:    repos.NewInstitutionRepo(db, log),
		records:  repos.NewRecordRepo(db, log),
		units:    repos.NewUnitRepo(db, log),
		projects: repos.NewProjectRepo(db, log),
	}
	h.catalog = NewCatalogService(log, h.insts,
		cache.NewInMemoryManager[types.Institution]("catalog", time.Minute, time.Minute, log),
		time.Minute, h.metrics)
	agg := dataagg.NewRegistroAggregate(dataagg.RegistroAggregateDeps{
		Base:         dataagg.BaseDeps{DB: db, Log: log, Hooks: dataagg.NewObservabilityHooks(h.metrics)},
		Institutions: h.catalog,
		Records:      h.records,
		Units:        h.units,
		Projects:     h.projects,
	})
	h.registro = NewRegistroService(log, agg, h.insts, h.records, h.units, h.projects)
	return h
}

func (h *harness) seed(t testing.TB, siglas string) *types.Institution {
	t.Helper()
	return repotest.SeedInstitution(t, context.Background(), h.db, siglas, true)
}
