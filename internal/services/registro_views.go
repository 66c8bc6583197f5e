package services

import (
	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	"github.com/sigc-piloto/sigc-backend/internal/domain/registro"
)

// RegistroSummary is one row of the record listing.
type RegistroSummary struct {
	ReiID             int64           `json:"rei_id"`
	UniversidadSiglas string          `json:"universidad_siglas"`
	UniversidadNombre string          `json:"universidad_nombre"`
	Anio              int             `json:"anio"`
	FechaCorte        *registro.Fecha `json:"fecha_corte"`
}

// RegistroDetail is the reconstructed composite aggregate.
type RegistroDetail struct {
	Universidad *types.Institution `json:"universidad"`
	Rei         ReiView            `json:"rei"`
	Unidades    []UnidadView       `json:"unidades"`
	Proyectos   ProyectosView      `json:"proyectos"`
}

// Monetary and percentage values are fixed-scale decimal strings.
type ReiView struct {
	ReiID      int64           `json:"rei_id"`
	ReiCatID   int64           `json:"rei_cat_id"`
	Anio       int             `json:"anio"`
	FechaCorte *registro.Fecha `json:"fecha_corte"`

	TotalEstudiantes           int `json:"total_estudiantes"`
	TotalPersonalAcademico     int `json:"total_personal_academico"`
	TotalPersonalPhd           int `json:"total_personal_phd"`
	TotalPersonalContratadoInv int `json:"total_personal_contratado_inv"`
	TotalPersonalApoyo         int `json:"total_personal_apoyo"`

	PctPresupuestoInv  string `json:"pct_presupuesto_inv"`
	PresupuestoExterno string `json:"presupuesto_externo"`
	PresupuestoInterno string `json:"presupuesto_interno"`

	NumEstPregradoProy    int `json:"num_est_pregrado_proy"`
	NumAlumniPregradoProy int `json:"num_alumni_pregrado_proy"`
	NumEstPosgradoProy    int `json:"num_est_posgrado_proy"`
	NumAlumniPosgradoProy int `json:"num_alumni_posgrado_proy"`
}

type UnidadView struct {
	UniID                int64  `json:"uni_id"`
	Nombre               string `json:"nombre"`
	CamposConocimiento   string `json:"campos_conocimiento"`
	AreaCobertura        string `json:"area_cobertura"`
	NumPersonalAcademico int    `json:"num_personal_academico"`
	NumPersonalApoyo     int    `json:"num_personal_apoyo"`
	PresupuestoAnual     string `json:"presupuesto_anual"`
}

type ProyectoView struct {
	PryID                    int64           `json:"pry_id"`
	Tipo                     string          `json:"tipo"`
	Codigo                   string          `json:"codigo"`
	Titulo                   string          `json:"titulo"`
	FuenteFinanciamiento     string          `json:"fuente_financiamiento"`
	MontoFinanciamiento      string          `json:"monto_financiamiento"`
	NumParticipantesInternos int             `json:"num_participantes_internos"`
	NumParticipantesExtNac   int             `json:"num_participantes_ext_nac"`
	NumParticipantesExtInt   int             `json:"num_participantes_ext_int"`
	NumEstudiantesPregrado   int             `json:"num_estudiantes_pregrado"`
	NumEstudiantesPosgrado   int             `json:"num_estudiantes_posgrado"`
	FechaInicio              *registro.Fecha `json:"fecha_inicio"`
	FechaFin                 *registro.Fecha `json:"fecha_fin"`
	Estado                   string          `json:"estado"`
}

type ProyectosView struct {
	Externos []ProyectoView `json:"externos"`
	Internos []ProyectoView `json:"internos"`
}

func reiView(rec *types.InstitutionalRecord) ReiView {
	return ReiView{
		ReiID:      rec.ID,
		ReiCatID:   rec.CatID,
		Anio:       rec.Anio,
		FechaCorte: registro.FechaFromDate(rec.FechaCorte),

		TotalEstudiantes:           rec.TotalEstudiantes,
		TotalPersonalAcademico:     rec.TotalPersonalAcademico,
		TotalPersonalPhd:           rec.TotalPersonalPhd,
		TotalPersonalContratadoInv: rec.TotalPersonalContratadoInv,
		TotalPersonalApoyo:         rec.TotalPersonalApoyo,

		PctPresupuestoInv:  registro.FormatMoney(rec.PctPresupuestoInv),
		PresupuestoExterno: registro.FormatMoney(rec.PresupuestoExterno),
		PresupuestoInterno: registro.FormatMoney(rec.PresupuestoInterno),

		NumEstPregradoProy:    rec.NumEstPregradoProy,
		NumAlumniPregradoProy: rec.NumAlumniPregradoProy,
		NumEstPosgradoProy:    rec.NumEstPosgradoProy,
		NumAlumniPosgradoProy: rec.NumAlumniPosgradoProy,
	}
}

func unidadView(u *types.ResearchUnit) UnidadView {
	return UnidadView{
		UniID:                u.ID,
		Nombre:               u.Nombre,
		CamposConocimiento:   u.CamposConocimiento,
		AreaCobertura:        u.AreaCobertura,
		NumPersonalAcademico: u.NumPersonalAcademico,
		NumPersonalApoyo:     u.NumPersonalApoyo,
		PresupuestoAnual:     registro.FormatMoney(u.PresupuestoAnual),
	}
}

func proyectoView(p *types.ResearchProject) ProyectoView {
	return ProyectoView{
		PryID:                    p.ID,
		Tipo:                     string(p.Tipo),
		Codigo:                   p.Codigo,
		Titulo:                   p.Titulo,
		FuenteFinanciamiento:     p.FuenteFinanciamiento,
		MontoFinanciamiento:      registro.FormatMoney(p.MontoFinanciamiento),
		NumParticipantesInternos: p.NumParticipantesInternos,
		NumParticipantesExtNac:   p.NumParticipantesExtNac,
		NumParticipantesExtInt:   p.NumParticipantesExtInt,
		NumEstudiantesPregrado:   p.NumEstudiantesPregrado,
		NumEstudiantesPosgrado:   p.NumEstudiantesPosgrado,
		FechaInicio:              registro.FechaFromDate(p.FechaInicio),
		FechaFin:                 registro.FechaFromDate(p.FechaFin),
		Estado:                   p.Estado,
	}
}
