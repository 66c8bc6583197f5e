package catalog

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	"github.com/sigc-piloto/sigc-backend/internal/platform/dbctx"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

type InstitutionRepo interface {
	// GetBySiglas returns nil without error when no row matches.
	GetBySiglas(dbc dbctx.Context, siglas string) (*types.Institution, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Institution, error)
	ListActive(dbc dbctx.Context) ([]*types.Institution, error)
	Upsert(dbc dbctx.Context, rows []*types.Institution) ([]*types.Institution, error)
}

type institutionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInstitutionRepo(db *gorm.DB, baseLog *logger.Logger) InstitutionRepo {
	repoLog := baseLog.With("repo", "InstitutionRepo")
	return &institutionRepo{db: db, log: repoLog}
}

func (r *institutionRepo) GetBySiglas(dbc dbctx.Context, siglas string) (*types.Institution, error) {
	transaction := dbc.Conn(r.db)

	if siglas == "" {
		return nil, nil
	}

	var rows []*types.Institution
	if err := transaction.
		Where("cat_siglas = ?", siglas).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *institutionRepo) GetByID(dbc dbctx.Context, id int64) (*types.Institution, error) {
	transaction := dbc.Conn(r.db)

	if id <= 0 {
		return nil, nil
	}

	var rows []*types.Institution
	if err := transaction.
		Where("cat_id = ?", id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *institutionRepo) ListActive(dbc dbctx.Context) ([]*types.Institution, error) {
	transaction := dbc.Conn(r.db)

	var results []*types.Institution
	if err := transaction.
		Where("cat_activa = ?", true).
		Order("cat_siglas ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Upsert inserts catalog rows keyed by siglas, refreshing the descriptive
// columns of rows that already exist.
func (r *institutionRepo) Upsert(dbc dbctx.Context, rows []*types.Institution) ([]*types.Institution, error) {
	transaction := dbc.Conn(r.db)

	if len(rows) == 0 {
		return []*types.Institution{}, nil
	}

	err := transaction.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cat_siglas"}},
			DoUpdates: clause.AssignmentColumns([]string{"cat_nombre_oficial", "cat_ciudad", "cat_activa"}),
		}).
		Create(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
