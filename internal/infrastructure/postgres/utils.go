package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de violación de constraint único.
const codeUniqueViolation = "23505"

// isUniqueViolation detecta la violación de un constraint único para que los
// repositorios la mapeen a domain.ErrDuplicate (o ErrEmailAlreadyExists).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
