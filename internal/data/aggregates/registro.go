package aggregates

import (
	"context"
	"fmt"
	"strings"

	"github.com/sigc-piloto/sigc-backend/internal/data/repos"
	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	domainagg "github.com/sigc-piloto/sigc-backend/internal/domain/aggregates"
	"github.com/sigc-piloto/sigc-backend/internal/platform/ctxutil"
	"github.com/sigc-piloto/sigc-backend/internal/platform/dbctx"
)

// InstitutionResolver maps a short institutional code to its catalog row.
// A nil institution with a nil error means the code is unknown.
type InstitutionResolver interface {
	LookupBySiglas(ctx context.Context, siglas string) (*types.Institution, error)
}

type repoResolver struct {
	repo repos.InstitutionRepo
}

// ResolverFromRepo resolves codes straight from the catalog table.
func ResolverFromRepo(repo repos.InstitutionRepo) InstitutionResolver {
	return repoResolver{repo: repo}
}

func (r repoResolver) LookupBySiglas(ctx context.Context, siglas string) (*types.Institution, error) {
	return r.repo.GetBySiglas(dbctx.New(ctx), siglas)
}

type RegistroAggregateDeps struct {
	Base BaseDeps

	Institutions InstitutionResolver
	Records      repos.RecordRepo
	Units        repos.UnitRepo
	Projects     repos.ProjectRepo
}

type registroAggregate struct {
	deps RegistroAggregateDeps
}

func NewRegistroAggregate(deps RegistroAggregateDeps) domainagg.RegistroAggregate {
	deps.Base = deps.Base.withDefaults()
	return &registroAggregate{deps: deps}
}

func (a *registroAggregate) Contract() domainagg.Contract {
	return domainagg.RegistroAggregateContract
}

func (a *registroAggregate) Create(ctx context.Context, in domainagg.CreateRegistroInput) (domainagg.CreateRegistroResult, error) {
	const op = "Registro.InstitutionalRecord.Create"
	var out domainagg.CreateRegistroResult

	if err := validateCreateInput(in); err != nil {
		return out, MapError(op, err)
	}
	if a.deps.Institutions == nil || a.deps.Records == nil || a.deps.Units == nil || a.deps.Projects == nil {
		return out, domainagg.NewError(domainagg.CodeInternal, op, "registro aggregate repos not configured", nil)
	}

	// Codes match cat_siglas exactly; " UTEC" is a different, unknown code.
	siglas := in.UniversidadSiglas
	inst, err := a.deps.Institutions.LookupBySiglas(ctx, siglas)
	if err != nil {
		return out, MapError(op, err)
	}
	if inst == nil || inst.ID <= 0 {
		return out, domainagg.NewError(domainagg.CodeNotFound, op, "Universidad no encontrada por siglas", nil)
	}

	err = executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		rec := newRecord(inst.ID, in)
		if _, err := a.deps.Records.Create(dbc, rec); err != nil {
			return err
		}
		if rec.ID <= 0 {
			return InvariantError("record id was not generated")
		}

		externos := newProjects(rec.ID, types.ProjectExterno, in.Proyectos.Externos)
		if _, err := a.deps.Projects.Create(dbc, externos); err != nil {
			return err
		}
		internos := newProjects(rec.ID, types.ProjectInterno, in.Proyectos.Internos)
		if _, err := a.deps.Projects.Create(dbc, internos); err != nil {
			return err
		}
		units := newUnits(rec.ID, in.Unidades)
		if _, err := a.deps.Units.Create(dbc, units); err != nil {
			return err
		}

		out = domainagg.CreateRegistroResult{
			ReiID:             rec.ID,
			CatID:             inst.ID,
			Unidades:          len(units),
			ProyectosExternos: len(externos),
			ProyectosInternos: len(internos),
		}
		return nil
	})
	if err != nil {
		return domainagg.CreateRegistroResult{}, err
	}

	a.deps.Base.Log.Info("registro created", append([]interface{}{
		"rei_id", out.ReiID,
		"siglas", siglas,
		"anio", in.Anio,
		"unidades", out.Unidades,
		"externos", out.ProyectosExternos,
		"internos", out.ProyectosInternos,
	}, ctxutil.LogFields(ctx)...)...)
	return out, nil
}

func validateCreateInput(in domainagg.CreateRegistroInput) error {
	if strings.TrimSpace(in.UniversidadSiglas) == "" {
		return ValidationError("universidad_siglas is required")
	}
	if in.Anio <= 0 {
		return ValidationError("anio must be a positive year")
	}
	for i, u := range in.Unidades {
		if strings.TrimSpace(u.Nombre) == "" {
			return ValidationError(fmt.Sprintf("unidades[%d].nombre is required", i))
		}
	}
	for i, p := range in.Proyectos.Externos {
		if strings.TrimSpace(p.Titulo) == "" {
			return ValidationError(fmt.Sprintf("proyectos.externos[%d].titulo is required", i))
		}
	}
	for i, p := range in.Proyectos.Internos {
		if strings.TrimSpace(p.Titulo) == "" {
			return ValidationError(fmt.Sprintf("proyectos.internos[%d].titulo is required", i))
		}
	}
	return nil
}
