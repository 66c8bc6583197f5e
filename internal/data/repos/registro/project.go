package registro

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	"github.com/sigc-piloto/sigc-backend/internal/platform/dbctx"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

type ProjectRepo interface {
	Create(dbc dbctx.Context, projects []*types.ResearchProject) ([]*types.ResearchProject, error)
	// ListByRecord returns both tags in insertion order.
	ListByRecord(dbc dbctx.Context, reiID int64) ([]*types.ResearchProject, error)
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	repoLog := baseLog.With("repo", "ProjectRepo")
	return &projectRepo{db: db, log: repoLog}
}

func (r *projectRepo) Create(dbc dbctx.Context, projects []*types.ResearchProject) ([]*types.ResearchProject, error) {
	transaction := dbc.Conn(r.db)

	if len(projects) == 0 {
		return []*types.ResearchProject{}, nil
	}
	for _, p := range projects {
		if p == nil || !p.Tipo.Valid() {
			return nil, gorm.ErrInvalidData
		}
	}
	if err := transaction.Omit(clause.Associations).Create(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) ListByRecord(dbc dbctx.Context, reiID int64) ([]*types.ResearchProject, error) {
	transaction := dbc.Conn(r.db)

	var results []*types.ResearchProject
	if err := transaction.
		Where("pry_rei_id = ?", reiID).
		Order("pry_id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
