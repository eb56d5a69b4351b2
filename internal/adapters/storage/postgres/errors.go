package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"zoo-management/internal/domain/zoo"
)

// Códigos SQLSTATE de postgres que el dominio tipifica.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// mapError traduce errores del driver a los sentinels del dominio, dejando
// el error original envuelto. Todo lo demás se propaga sin tocar.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return zoo.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", zoo.ErrDuplicateName, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", zoo.ErrForeignKey, pgErr.ConstraintName)
		}
	}
	return err
}
