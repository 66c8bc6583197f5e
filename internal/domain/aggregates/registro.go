package aggregates

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sigc-piloto/sigc-backend/internal/domain/registro"
)

var RegistroAggregateContract = Contract{
	Name:             "Registro.InstitutionalRecordAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyTableRepoQueries,
	Notes:            "Owns the atomic creation of one record header together with its research units and projects.",
}

// RegistroAggregate owns the composite record write.
//
// Create failures return *aggregates.Error with codes:
// CodeValidation, CodeNotFound, CodeConflict, CodeInternal.
type RegistroAggregate interface {
	Aggregate

	// Create resolves the institution, then persists the header and every dependent
	// row in one transaction. Nothing is persisted when it returns an error.
	Create(ctx context.Context, in CreateRegistroInput) (CreateRegistroResult, error)
}

// CreateRegistroInput is the composite submission. Optional unit and project
// fields are pointers; nil means "not submitted" and is coalesced on write.
type CreateRegistroInput struct {
	UniversidadSiglas string          `json:"universidad_siglas" binding:"required"`
	Anio              int             `json:"anio" binding:"required,gt=0"`
	FechaCorte        *registro.Fecha `json:"fecha_corte"`
	Rei               ReiInput        `json:"rei"`
	Unidades          []UnidadInput   `json:"unidades" binding:"dive"`
	Proyectos         ProyectosInput  `json:"proyectos"`
}

// ReiInput is the header-counter block, copied verbatim into the record.
type ReiInput struct {
	TotalEstudiantes           int `json:"total_estudiantes"`
	TotalPersonalAcademico     int `json:"total_personal_academico"`
	TotalPersonalPhd           int `json:"total_personal_phd"`
	TotalPersonalContratadoInv int `json:"total_personal_contratado_inv"`
	TotalPersonalApoyo         int `json:"total_personal_apoyo"`

	PctPresupuestoInv  decimal.Decimal `json:"pct_presupuesto_inv"`
	PresupuestoExterno decimal.Decimal `json:"presupuesto_externo"`
	PresupuestoInterno decimal.Decimal `json:"presupuesto_interno"`

	NumEstPregradoProy    int `json:"num_est_pregrado_proy"`
	NumAlumniPregradoProy int `json:"num_alumni_pregrado_proy"`
	NumEstPosgradoProy    int `json:"num_est_posgrado_proy"`
	NumAlumniPosgradoProy int `json:"num_alumni_posgrado_proy"`
}

type UnidadInput struct {
	Nombre               string           `json:"nombre" binding:"required"`
	CamposConocimiento   *string          `json:"campos_conocimiento"`
	AreaCobertura        *string          `json:"area_cobertura"`
	NumPersonalAcademico *int             `json:"num_personal_academico"`
	NumPersonalApoyo     *int             `json:"num_personal_apoyo"`
	PresupuestoAnual     *decimal.Decimal `json:"presupuesto_anual"`
}

type ProyectosInput struct {
	Externos []ProyectoInput `json:"externos" binding:"dive"`
	Internos []ProyectoInput `json:"internos" binding:"dive"`
}

type ProyectoInput struct {
	Codigo               *string          `json:"codigo"`
	Titulo               string           `json:"titulo" binding:"required"`
	FuenteFinanciamiento *string          `json:"fuente_financiamiento"`
	MontoFinanciamiento  *decimal.Decimal `json:"monto_financiamiento"`

	NumParticipantesInternos *int `json:"num_participantes_internos"`
	NumParticipantesExtNac   *int `json:"num_participantes_ext_nac"`
	NumParticipantesExtInt   *int `json:"num_participantes_ext_int"`
	NumEstudiantesPregrado   *int `json:"num_estudiantes_pregrado"`
	NumEstudiantesPosgrado   *int `json:"num_estudiantes_posgrado"`

	FechaInicio *registro.Fecha `json:"fecha_inicio"`
	FechaFin    *registro.Fecha `json:"fecha_fin"`
	Estado      *string         `json:"estado"`
}

// DependentCount is the number of unit and project rows the input produces.
func (in CreateRegistroInput) DependentCount() int {
	return len(in.Unidades) + len(in.Proyectos.Externos) + len(in.Proyectos.Internos)
}

type CreateRegistroResult struct {
	ReiID             int64
	CatID             int64
	Unidades          int
	ProyectosExternos int
	ProyectosInternos int
}
