package aggregates

import (
	"context"

	"gorm.io/gorm"

	domainagg "github.com/sigc-piloto/sigc-backend/internal/domain/aggregates"
	"github.com/sigc-piloto/sigc-backend/internal/platform/dbctx"
)

// TxRunner is the explicit begin/commit/rollback scope of an aggregate write.
// fn must route every statement through dbc.Tx; a non-nil return rolls back.
type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

// NewGormTxRunner returns a transaction runner backed by GORM transactions.
func NewGormTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return domainagg.NewError(domainagg.CodeInternal, "aggregate.tx", "transaction runner has nil db", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
