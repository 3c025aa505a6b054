package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// Querier lo que comparten *pgxpool.Pool y pgx.Tx; los repos aceptan cualquiera de los dos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isCheckViolation verifica si un error es una violación de constraint CHECK (23514).
func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514" // check_violation
	}
	return false
}

// quantityToInt convierte la columna NUMERIC a unidades enteras.
func quantityToInt(q decimal.Decimal) (int, error) {
	if !q.IsInteger() {
		return 0, fmt.Errorf("cantidad no entera en BD: %s", q.String())
	}
	if q.GreaterThan(decimal.NewFromInt(math.MaxInt)) {
		return 0, fmt.Errorf("cantidad fuera de rango en BD: %s", q.String())
	}
	return int(q.IntPart()), nil
}
