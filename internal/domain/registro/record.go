package registro

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// InstitutionalRecord is one yearly statistical snapshot of an institution.
// It owns its units and projects and is never updated once created.
type InstitutionalRecord struct {
	ID         int64           `gorm:"column:rei_id;primaryKey;autoIncrement" json:"rei_id"`
	CatID      int64           `gorm:"column:rei_cat_id;not null;index:idx_rei_cat_anio,priority:1" json:"rei_cat_id"`
	Anio       int             `gorm:"column:rei_anio;not null;index:idx_rei_cat_anio,priority:2" json:"anio"`
	FechaCorte *datatypes.Date `gorm:"column:rei_fecha_corte" json:"fecha_corte"`

	TotalEstudiantes           int `gorm:"column:rei_total_estudiantes;not null" json:"total_estudiantes"`
	TotalPersonalAcademico     int `gorm:"column:rei_total_personal_academico;not null" json:"total_personal_academico"`
	TotalPersonalPhd           int `gorm:"column:rei_total_personal_phd;not null" json:"total_personal_phd"`
	TotalPersonalContratadoInv int `gorm:"column:rei_total_personal_contratado_inv;not null" json:"total_personal_contratado_inv"`
	TotalPersonalApoyo         int `gorm:"column:rei_total_personal_apoyo;not null" json:"total_personal_apoyo"`

	PctPresupuestoInv  decimal.Decimal `gorm:"column:rei_pct_presupuesto_inv;type:numeric(5,2);not null" json:"pct_presupuesto_inv"`
	PresupuestoExterno decimal.Decimal `gorm:"column:rei_presupuesto_externo;type:numeric(14,2);not null" json:"presupuesto_externo"`
	PresupuestoInterno decimal.Decimal `gorm:"column:rei_presupuesto_interno;type:numeric(14,2);not null" json:"presupuesto_interno"`

	NumEstPregradoProy    int `gorm:"column:rei_num_est_pregrado_proy;not null" json:"num_est_pregrado_proy"`
	NumAlumniPregradoProy int `gorm:"column:rei_num_alumni_pregrado_proy;not null" json:"num_alumni_pregrado_proy"`
	NumEstPosgradoProy    int `gorm:"column:rei_num_est_posgrado_proy;not null" json:"num_est_posgrado_proy"`
	NumAlumniPosgradoProy int `gorm:"column:rei_num_alumni_posgrado_proy;not null" json:"num_alumni_posgrado_proy"`

	// Dependents are written and read through their own repos; these fields
	// only carry the ownership constraints into the schema.
	Unidades  []ResearchUnit    `gorm:"foreignKey:ReiID;constraint:OnDelete:CASCADE" json:"-"`
	Proyectos []ResearchProject `gorm:"foreignKey:ReiID;constraint:OnDelete:CASCADE" json:"-"`
}

func (InstitutionalRecord) TableName() string { return "rei_registro_institucional" }
