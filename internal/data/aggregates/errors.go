package aggregates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainagg "github.com/sigc-piloto/sigc-backend/internal/domain/aggregates"
)

var (
	// ErrValidation indicates caller input validation failure.
	ErrValidation = errors.New("aggregate validation")
	// ErrInvariant indicates invariant rule violation.
	ErrInvariant = errors.New("aggregate invariant violation")
	// ErrConflict indicates a storage integrity conflict.
	ErrConflict = errors.New("aggregate conflict")
)

// ValidationError tags an error as validation failure.
func ValidationError(msg string) error {
	return errors.Join(ErrValidation, errors.New(strings.TrimSpace(msg)))
}

// InvariantError tags an error as invariant violation.
func InvariantError(msg string) error {
	return errors.Join(ErrInvariant, errors.New(strings.TrimSpace(msg)))
}

// ConflictError tags an error as conflict failure.
func ConflictError(msg string) error {
	return errors.Join(ErrConflict, errors.New(strings.TrimSpace(msg)))
}

// MapError maps infrastructure/domain failures into aggregate error codes.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*domainagg.Error); ok {
		return err
	}
	switch {
	case errors.Is(err, ErrValidation):
		return domainagg.NewError(domainagg.CodeValidation, op, taggedMessage(err, ErrValidation), err)
	case errors.Is(err, ErrInvariant):
		return domainagg.NewError(domainagg.CodeInvariantViolation, op, taggedMessage(err, ErrInvariant), err)
	case errors.Is(err, ErrConflict):
		return domainagg.NewError(domainagg.CodeConflict, op, taggedMessage(err, ErrConflict), err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainagg.Wrap(domainagg.CodeNotFound, op, err)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return domainagg.Wrap(domainagg.CodeConflict, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domainagg.NewError(domainagg.CodeInternal, op, unexpectedMessage(err), err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 23: integrity_constraint_violation (unique, fk, not null, check).
		if strings.HasPrefix(strings.TrimSpace(pgErr.Code), "23") {
			msg := pgErr.Message
			if d := strings.TrimSpace(pgErr.Detail); d != "" {
				msg = msg + " (" + d + ")"
			}
			return domainagg.NewError(domainagg.CodeConflict, op, msg, err)
		}
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "violates"),
		strings.Contains(msg, "constraint failed"):
		return domainagg.Wrap(domainagg.CodeConflict, op, err)
	default:
		return domainagg.NewError(domainagg.CodeInternal, op, unexpectedMessage(err), err)
	}
}

// taggedMessage drops the sentinel from a joined error's text.
func taggedMessage(err, sentinel error) string {
	parts := strings.Split(err.Error(), "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == sentinel.Error() || strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return sentinel.Error()
	}
	return strings.Join(out, "; ")
}

// unexpectedMessage renders "<Kind>: <message>" for errors outside the taxonomy.
func unexpectedMessage(err error) string {
	return fmt.Sprintf("%s: %s", errorKind(err), err.Error())
}

func errorKind(err error) string {
	root := err
	for {
		next := errors.Unwrap(root)
		if next == nil {
			break
		}
		root = next
	}
	switch {
	case errors.Is(root, context.Canceled):
		return "Canceled"
	case errors.Is(root, context.DeadlineExceeded):
		return "DeadlineExceeded"
	}
	kind := strings.TrimPrefix(fmt.Sprintf("%T", root), "*")
	if i := strings.LastIndex(kind, "."); i >= 0 {
		kind = kind[i+1:]
	}
	if kind == "" || kind[0] < 'A' || kind[0] > 'Z' {
		return "Error"
	}
	return kind
}
