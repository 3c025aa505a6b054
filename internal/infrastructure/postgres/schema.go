package postgres

import (
	"context"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS warehouse_stock (
	warehouse_id TEXT          NOT NULL,
	product      TEXT          NOT NULL,
	quantity     NUMERIC(20,0) NOT NULL DEFAULT 0 CHECK (quantity BETWEEN 0 AND 9223372036854775807),
	updated_at   TIMESTAMPTZ   NOT NULL DEFAULT now(),
	PRIMARY KEY (warehouse_id, product)
)`

// EnsureSchema crea la tabla de stock si no existe.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema warehouse_stock: %w", err)
	}
	return nil
}
