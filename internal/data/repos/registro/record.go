package registro

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	"github.com/sigc-piloto/sigc-backend/internal/platform/dbctx"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

// RecordFilter narrows ListSummaries. Zero values mean "no filter".
type RecordFilter struct {
	Siglas string
	Anio   *int
}

// RecordSummaryRow is a header joined with its institution's identity.
type RecordSummaryRow struct {
	ReiID      int64           `gorm:"column:rei_id"`
	Siglas     string          `gorm:"column:siglas"`
	Nombre     string          `gorm:"column:nombre"`
	Anio       int             `gorm:"column:anio"`
	FechaCorte *datatypes.Date `gorm:"column:fecha_corte"`
}

type RecordRepo interface {
	Create(dbc dbctx.Context, rec *types.InstitutionalRecord) (*types.InstitutionalRecord, error)
	// GetByID returns nil without error when no row matches.
	GetByID(dbc dbctx.Context, reiID int64) (*types.InstitutionalRecord, error)
	ListSummaries(dbc dbctx.Context, filter RecordFilter) ([]RecordSummaryRow, error)
	Count(dbc dbctx.Context) (int64, error)
}

type recordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecordRepo(db *gorm.DB, baseLog *logger.Logger) RecordRepo {
	repoLog := baseLog.With("repo", "RecordRepo")
	return &recordRepo{db: db, log: repoLog}
}

func (r *recordRepo) Create(dbc dbctx.Context, rec *types.InstitutionalRecord) (*types.InstitutionalRecord, error) {
	transaction := dbc.Conn(r.db)

	if rec == nil {
		return nil, gorm.ErrInvalidData
	}
	if err := transaction.Omit(clause.Associations).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *recordRepo) GetByID(dbc dbctx.Context, reiID int64) (*types.InstitutionalRecord, error) {
	transaction := dbc.Conn(r.db)

	if reiID <= 0 {
		return nil, nil
	}

	var rows []*types.InstitutionalRecord
	if err := transaction.
		Where("rei_id = ?", reiID).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *recordRepo) ListSummaries(dbc dbctx.Context, filter RecordFilter) ([]RecordSummaryRow, error) {
	transaction := dbc.Conn(r.db)

	q := transaction.
		Table("rei_registro_institucional AS r").
		Select(`r.rei_id AS rei_id,
			c.cat_siglas AS siglas,
			c.cat_nombre_oficial AS nombre,
			r.rei_anio AS anio,
			r.rei_fecha_corte AS fecha_corte`).
		Joins("JOIN cat_catalogo_universidad AS c ON c.cat_id = r.rei_cat_id")

	if filter.Siglas != "" {
		q = q.Where("c.cat_siglas = ?", filter.Siglas)
	}
	if filter.Anio != nil {
		q = q.Where("r.rei_anio = ?", *filter.Anio)
	}

	var rows []RecordSummaryRow
	if err := q.Order("r.rei_id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []RecordSummaryRow{}
	}
	return rows, nil
}

func (r *recordRepo) Count(dbc dbctx.Context) (int64, error) {
	transaction := dbc.Conn(r.db)

	var n int64
	if err := transaction.Model(&types.InstitutionalRecord{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
