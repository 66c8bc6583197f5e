package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	dataagg "github.com/sigc-piloto/sigc-backend/internal/data/aggregates"
	"github.com/sigc-piloto/sigc-backend/internal/data/repos"
	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	domainagg "github.com/sigc-piloto/sigc-backend/internal/domain/aggregates"
	"github.com/sigc-piloto/sigc-backend/internal/domain/registro"
	"github.com/sigc-piloto/sigc-backend/internal/platform/dbctx"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

// RegistroFilter narrows List; the zero value lists everything.
type RegistroFilter = repos.RecordFilter

// RegistroService is the write entry point and the composite reader.
// Errors are *aggregates.Error values.
type RegistroService interface {
	Create(ctx context.Context, in domainagg.CreateRegistroInput) (domainagg.CreateRegistroResult, error)
	// List returns summaries newest first (rei_id descending).
	List(ctx context.Context, filter RegistroFilter) ([]RegistroSummary, error)
	Detail(ctx context.Context, reiID int64) (*RegistroDetail, error)
}

type registroService struct {
	log       *logger.Logger
	aggregate domainagg.RegistroAggregate
	insts     repos.InstitutionRepo
	records   repos.RecordRepo
	units     repos.UnitRepo
	projects  repos.ProjectRepo
}

func NewRegistroService(
	baseLog *logger.Logger,
	aggregate domainagg.RegistroAggregate,
	insts repos.InstitutionRepo,
	records repos.RecordRepo,
	units repos.UnitRepo,
	projects repos.ProjectRepo,
) RegistroService {
	serviceLog := baseLog.With("service", "RegistroService")
	return &registroService{
		log:       serviceLog,
		aggregate: aggregate,
		insts:     insts,
		records:   records,
		units:     units,
		projects:  projects,
	}
}

func (s *registroService) Create(ctx context.Context, in domainagg.CreateRegistroInput) (domainagg.CreateRegistroResult, error) {
	return s.aggregate.Create(ctx, in)
}

func (s *registroService) List(ctx context.Context, filter RegistroFilter) ([]RegistroSummary, error) {
	const op = "Registro.List"
	rows, err := s.records.ListSummaries(dbctx.New(ctx), filter)
	if err != nil {
		s.log.Error("list registros failed", "error", err)
		return nil, dataagg.MapError(op, err)
	}
	out := make([]RegistroSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, RegistroSummary{
			ReiID:             r.ReiID,
			UniversidadSiglas: r.Siglas,
			UniversidadNombre: r.Nombre,
			Anio:              r.Anio,
			FechaCorte:        registro.FechaFromDate(r.FechaCorte),
		})
	}
	return out, nil
}

func (s *registroService) Detail(ctx context.Context, reiID int64) (*RegistroDetail, error) {
	const op = "Registro.Detail"

	rec, err := s.records.GetByID(dbctx.New(ctx), reiID)
	if err != nil {
		return nil, dataagg.MapError(op, err)
	}
	if rec == nil {
		return nil, domainagg.NewError(domainagg.CodeNotFound, op, "Registro no encontrado", nil)
	}

	var (
		inst     *types.Institution
		units    []*types.ResearchUnit
		projects []*types.ResearchProject
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inst, err = s.insts.GetByID(dbctx.New(gctx), rec.CatID)
		return err
	})
	g.Go(func() error {
		var err error
		units, err = s.units.ListByRecord(dbctx.New(gctx), rec.ID)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.projects.ListByRecord(dbctx.New(gctx), rec.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("load registro dependents failed", "rei_id", reiID, "error", err)
		return nil, dataagg.MapError(op, err)
	}
	if inst == nil {
		s.log.Error("registro references a missing institution", "rei_id", rec.ID, "cat_id", rec.CatID)
		return nil, domainagg.NewError(domainagg.CodeInvariantViolation, op, "Universidad asociada no encontrada", nil)
	}

	out := &RegistroDetail{
		Universidad: inst,
		Rei:         reiView(rec),
		Unidades:    make([]UnidadView, 0, len(units)),
		Proyectos: ProyectosView{
			Externos: []ProyectoView{},
			Internos: []ProyectoView{},
		},
	}
	for _, u := range units {
		out.Unidades = append(out.Unidades, unidadView(u))
	}
	for _, p := range projects {
		switch p.Tipo {
		case types.ProjectExterno:
			out.Proyectos.Externos = append(out.Proyectos.Externos, proyectoView(p))
		case types.ProjectInterno:
			out.Proyectos.Internos = append(out.Proyectos.Internos, proyectoView(p))
		default:
			return nil, domainagg.NewError(domainagg.CodeInvariantViolation, op,
				fmt.Sprintf("proyecto %d has unknown tipo %q", p.ID, p.Tipo), nil)
		}
	}
	return out, nil
}
