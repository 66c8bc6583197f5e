package registro

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProjectType tags a research project as external or internal. There is no third state.
type ProjectType string

const (
	ProjectExterno ProjectType = "externo"
	ProjectInterno ProjectType = "interno"
)

func (t ProjectType) Valid() bool {
	return t == ProjectExterno || t == ProjectInterno
}

// DefaultEstado is stored when a project is submitted without a status.
const DefaultEstado = "Activo"

// ResearchProject is a funded research effort reported under a record.
// External and internal projects share this one shape and differ only by Tipo.
type ResearchProject struct {
	ID    int64       `gorm:"column:pry_id;primaryKey;autoIncrement" json:"pry_id"`
	ReiID int64       `gorm:"column:pry_rei_id;not null;index" json:"pry_rei_id"`
	Tipo  ProjectType `gorm:"column:pry_tipo;type:varchar(16);not null;check:chk_pry_tipo,pry_tipo IN ('externo','interno')" json:"tipo"`

	Codigo string `gorm:"column:pry_codigo" json:"codigo"`
	Titulo string `gorm:"column:pry_titulo;not null" json:"titulo"`

	NumParticipantesInternos int `gorm:"column:pry_num_participantes_internos;not null" json:"num_participantes_internos"`
	NumParticipantesExtNac   int `gorm:"column:pry_num_participantes_ext_nac;not null" json:"num_participantes_ext_nac"`
	NumParticipantesExtInt   int `gorm:"column:pry_num_participantes_ext_int;not null" json:"num_participantes_ext_int"`
	NumEstudiantesPregrado   int `gorm:"column:pry_num_estudiantes_pregrado;not null" json:"num_estudiantes_pregrado"`
	NumEstudiantesPosgrado   int `gorm:"column:pry_num_estudiantes_posgrado;not null" json:"num_estudiantes_posgrado"`

	FuenteFinanciamiento string          `gorm:"column:pry_fuente_financiamiento" json:"fuente_financiamiento"`
	MontoFinanciamiento  decimal.Decimal `gorm:"column:pry_monto_financiamiento;type:numeric(14,2);not null" json:"monto_financiamiento"`

	FechaInicio *datatypes.Date `gorm:"column:pry_fecha_inicio" json:"fecha_inicio"`
	FechaFin    *datatypes.Date `gorm:"column:pry_fecha_fin" json:"fecha_fin"`
	Estado      string          `gorm:"column:pry_estado;not null" json:"estado"`
}

func (ResearchProject) TableName() string { return "pry_proyecto_investigacion" }
