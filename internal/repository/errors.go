package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"news-crud/internal/domain"
)

const articleSlugConstraint = "articles_slug_unique"

// mapPgError translates PostgreSQL constraint failures into domain errors
// and wraps everything with the operation name.
func mapPgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrInvalidReference, pgErr.ConstraintName)
		case pgerrcode.UniqueViolation:
			if pgErr.ConstraintName == articleSlugConstraint {
				return fmt.Errorf("%s: %w", op, domain.ErrSlugConflict)
			}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
