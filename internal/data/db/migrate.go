package db

import (
	"fmt"

	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(types.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return EnsureRegistroIndexes(db)
}

func EnsureRegistroIndexes(db *gorm.DB) error {
	// Detail reads load projects per record in storage order.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_pry_rei_id_pry_id
		ON pry_proyecto_investigacion (pry_rei_id, pry_id);
	`).Error; err != nil {
		return fmt.Errorf("create idx_pry_rei_id_pry_id: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_uni_rei_id_uni_id
		ON uni_unidad_investigacion (uni_rei_id, uni_id);
	`).Error; err != nil {
		return fmt.Errorf("create idx_uni_rei_id_uni_id: %w", err)
	}
	return nil
}
