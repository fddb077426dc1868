package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de violación de constraint único.
const codigoUniqueViolation = "23505"

// isUniqueViolation indica si el error proviene de un índice o constraint
// único (nombre de producto, RUC de proveedor, caja activa, usuario único).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoUniqueViolation
}
