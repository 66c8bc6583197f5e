package catalog

import "github.com/sigc-piloto/sigc-backend/internal/domain/registro"

// Institution is a read-only catalog entry identified by its short code (siglas).
type Institution struct {
	ID            int64  `gorm:"column:cat_id;primaryKey;autoIncrement" json:"cat_id"`
	NombreOficial string `gorm:"column:cat_nombre_oficial;not null" json:"cat_nombre_oficial"`
	Siglas        string `gorm:"column:cat_siglas;not null;uniqueIndex:idx_cat_siglas" json:"cat_siglas"`
	Ciudad        string `gorm:"column:cat_ciudad;not null" json:"cat_ciudad"`
	Activa        bool   `gorm:"column:cat_activa;not null" json:"cat_activa"`

	// Registros is never loaded; it declares rei_cat_id -> cat_id.
	Registros []registro.InstitutionalRecord `gorm:"foreignKey:CatID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Institution) TableName() string { return "cat_catalogo_universidad" }
