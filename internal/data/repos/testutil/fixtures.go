package testutil

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/sigc-piloto/sigc-backend/internal/domain"
)

func SeedInstitution(tb testing.TB, ctx context.Context, tx *gorm.DB, siglas string, activa bool) *types.Institution {
	tb.Helper()
	inst := &types.Institution{
		NombreOficial: "Universidad " + siglas,
		Siglas:        siglas,
		Ciudad:        "Lima",
		Activa:        activa,
	}
	if err := tx.WithContext(ctx).Create(inst).Error; err != nil {
		tb.Fatalf("seed institution: %v", err)
	}
	return inst
}

func SeedRecord(tb testing.TB, ctx context.Context, tx *gorm.DB, catID int64, anio int) *types.InstitutionalRecord {
	tb.Helper()
	rec := &types.InstitutionalRecord{
		CatID:              catID,
		Anio:               anio,
		TotalEstudiantes:   100,
		PctPresupuestoInv:  decimal.RequireFromString("5.50"),
		PresupuestoExterno: decimal.RequireFromString("1000.00"),
		PresupuestoInterno: decimal.Zero,
	}
	if err := tx.WithContext(ctx).Omit(clause.Associations).Create(rec).Error; err != nil {
		tb.Fatalf("seed record: %v", err)
	}
	return rec
}

func CountRows(tb testing.TB, ctx context.Context, tx *gorm.DB, model interface{}) int64 {
	tb.Helper()
	var n int64
	if err := tx.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
		tb.Fatalf("count rows: %v", err)
	}
	return n
}
