package registro

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	"github.com/sigc-piloto/sigc-backend/internal/platform/dbctx"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

type UnitRepo interface {
	Create(dbc dbctx.Context, units []*types.ResearchUnit) ([]*types.ResearchUnit, error)
	ListByRecord(dbc dbctx.Context, reiID int64) ([]*types.ResearchUnit, error)
}

type unitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUnitRepo(db *gorm.DB, baseLog *logger.Logger) UnitRepo {
	repoLog := baseLog.With("repo", "UnitRepo")
	return &unitRepo{db: db, log: repoLog}
}

func (r *unitRepo) Create(dbc dbctx.Context, units []*types.ResearchUnit) ([]*types.ResearchUnit, error) {
	transaction := dbc.Conn(r.db)

	if len(units) == 0 {
		return []*types.ResearchUnit{}, nil
	}
	if err := transaction.Omit(clause.Associations).Create(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *unitRepo) ListByRecord(dbc dbctx.Context, reiID int64) ([]*types.ResearchUnit, error) {
	transaction := dbc.Conn(r.db)

	var results []*types.ResearchUnit
	if err := transaction.
		Where("uni_rei_id = ?", reiID).
		Order("uni_id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
