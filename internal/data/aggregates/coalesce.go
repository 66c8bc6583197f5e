package aggregates

import (
	"strings"

	"github.com/shopspring/decimal"

	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	domainagg "github.com/sigc-piloto/sigc-backend/internal/domain/aggregates"
	"github.com/sigc-piloto/sigc-backend/internal/domain/registro"
	"github.com/sigc-piloto/sigc-backend/internal/pkg/pointers"
)

// One null-coalescing rule serves the header, units and both project lists:
// absent text becomes "", absent counts and amounts become zero, and an absent
// or blank project status becomes DefaultEstado.

func orZeroMoney(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return registro.RoundMoney(*d)
}

func orDefaultEstado(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return types.DefaultEstado
	}
	return *s
}

func newRecord(catID int64, in domainagg.CreateRegistroInput) *types.InstitutionalRecord {
	r := in.Rei
	return &types.InstitutionalRecord{
		CatID:      catID,
		Anio:       in.Anio,
		FechaCorte: in.FechaCorte.Date(),

		TotalEstudiantes:           r.TotalEstudiantes,
		TotalPersonalAcademico:     r.TotalPersonalAcademico,
		TotalPersonalPhd:           r.TotalPersonalPhd,
		TotalPersonalContratadoInv: r.TotalPersonalContratadoInv,
		TotalPersonalApoyo:         r.TotalPersonalApoyo,

		PctPresupuestoInv:  registro.RoundMoney(r.PctPresupuestoInv),
		PresupuestoExterno: registro.RoundMoney(r.PresupuestoExterno),
		PresupuestoInterno: registro.RoundMoney(r.PresupuestoInterno),

		NumEstPregradoProy:    r.NumEstPregradoProy,
		NumAlumniPregradoProy: r.NumAlumniPregradoProy,
		NumEstPosgradoProy:    r.NumEstPosgradoProy,
		NumAlumniPosgradoProy: r.NumAlumniPosgradoProy,
	}
}

func newUnits(reiID int64, in []domainagg.UnidadInput) []*types.ResearchUnit {
	out := make([]*types.ResearchUnit, 0, len(in))
	for _, u := range in {
		out = append(out, &types.ResearchUnit{
			ReiID:                reiID,
			Nombre:               u.Nombre,
			CamposConocimiento:   pointers.Deref(u.CamposConocimiento),
			AreaCobertura:        pointers.Deref(u.AreaCobertura),
			NumPersonalAcademico: pointers.Deref(u.NumPersonalAcademico),
			NumPersonalApoyo:     pointers.Deref(u.NumPersonalApoyo),
			PresupuestoAnual:     orZeroMoney(u.PresupuestoAnual),
		})
	}
	return out
}

func newProjects(reiID int64, tipo types.ProjectType, in []domainagg.ProyectoInput) []*types.ResearchProject {
	out := make([]*types.ResearchProject, 0, len(in))
	for _, p := range in {
		out = append(out, &types.ResearchProject{
			ReiID:  reiID,
			Tipo:   tipo,
			Codigo: pointers.Deref(p.Codigo),
			Titulo: p.Titulo,

			NumParticipantesInternos: pointers.Deref(p.NumParticipantesInternos),
			NumParticipantesExtNac:   pointers.Deref(p.NumParticipantesExtNac),
			NumParticipantesExtInt:   pointers.Deref(p.NumParticipantesExtInt),
			NumEstudiantesPregrado:   pointers.Deref(p.NumEstudiantesPregrado),
			NumEstudiantesPosgrado:   pointers.Deref(p.NumEstudiantesPosgrado),

			FuenteFinanciamiento: pointers.Deref(p.FuenteFinanciamiento),
			MontoFinanciamiento:  orZeroMoney(p.MontoFinanciamiento),

			FechaInicio: p.FechaInicio.Date(),
			FechaFin:    p.FechaFin.Date(),
			Estado:      orDefaultEstado(p.Estado),
		})
	}
	return out
}
