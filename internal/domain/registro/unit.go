package registro

import "github.com/shopspring/decimal"

// ResearchUnit is a named organizational sub-unit reported under a record.
type ResearchUnit struct {
	ID                   int64           `gorm:"column:uni_id;primaryKey;autoIncrement" json:"uni_id"`
	ReiID                int64           `gorm:"column:uni_rei_id;not null;index" json:"uni_rei_id"`
	Nombre               string          `gorm:"column:uni_nombre;not null" json:"nombre"`
	CamposConocimiento   string          `gorm:"column:uni_campos_conocimiento" json:"campos_conocimiento"`
	AreaCobertura        string          `gorm:"column:uni_area_cobertura" json:"area_cobertura"`
	NumPersonalAcademico int             `gorm:"column:uni_num_personal_academico;not null" json:"num_personal_academico"`
	NumPersonalApoyo     int             `gorm:"column:uni_num_personal_apoyo;not null" json:"num_personal_apoyo"`
	PresupuestoAnual     decimal.Decimal `gorm:"column:uni_presupuesto_anual;type:numeric(14,2);not null" json:"presupuesto_anual"`
}

func (ResearchUnit) TableName() string { return "uni_unidad_investigacion" }
