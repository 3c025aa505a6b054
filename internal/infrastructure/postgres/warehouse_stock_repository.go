package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/warehouse-manager/internal/application/inventory"
	"github.com/jhoicas/warehouse-manager/internal/domain"
	"github.com/jhoicas/warehouse-manager/internal/domain/entity"
	rules "github.com/jhoicas/warehouse-manager/internal/domain/inventory"
)

var _ inventory.StockBackend = (*WarehouseStockRepo)(nil)

// WarehouseStockRepo implementa el contrato de la bodega sobre la tabla warehouse_stock.
// Varias bodegas comparten la tabla; cada repo trabaja solo con su warehouseID.
type WarehouseStockRepo struct {
	pool        *pgxpool.Pool
	tx          *TxRunner
	warehouseID string
}

// NewWarehouseStockRepository construye el adaptador para la bodega indicada.
func NewWarehouseStockRepository(pool *pgxpool.Pool, warehouseID string) *WarehouseStockRepo {
	return &WarehouseStockRepo{pool: pool, tx: NewTxRunner(pool), warehouseID: warehouseID}
}

// HasProduct indica si existe la fila del producto, aunque tenga cantidad 0.
func (r *WarehouseStockRepo) HasProduct(product string) (bool, error) {
	if err := rules.ValidateProductName(product); err != nil {
		return false, err
	}
	query := `SELECT EXISTS (SELECT 1 FROM warehouse_stock WHERE warehouse_id = $1 AND product = $2)`
	var exists bool
	if err := r.pool.QueryRow(context.Background(), query, r.warehouseID, product).Scan(&exists); err != nil {
		return false, fmt.Errorf("has product: %w", err)
	}
	return exists, nil
}

// CurrentStock devuelve la cantidad del producto; ErrNoSuchProduct si no hay fila.
func (r *WarehouseStockRepo) CurrentStock(product string) (int, error) {
	if err := rules.ValidateProductName(product); err != nil {
		return 0, err
	}
	qty, exists, err := r.quantity(context.Background(), r.pool, product, false)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("%w: %q", domain.ErrNoSuchProduct, product)
	}
	return qty, nil
}

// AddStock inserta la fila con amount o suma amount a la existente (upsert).
func (r *WarehouseStockRepo) AddStock(product string, amount int) error {
	if err := rules.ValidateProductName(product); err != nil {
		return err
	}
	if err := rules.ValidateNonNegative(amount); err != nil {
		return err
	}
	query := `
		INSERT INTO warehouse_stock (warehouse_id, product, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (warehouse_id, product)
		DO UPDATE SET quantity = warehouse_stock.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.pool.Exec(context.Background(), query, r.warehouseID, product, decimal.NewFromInt(int64(amount)))
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %q excede el máximo de unidades", domain.ErrInvalidArgument, product)
		}
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}

// TakeStock bloquea la fila (SELECT FOR UPDATE), aplica las reglas de salida y descuenta en la misma tx.
func (r *WarehouseStockRepo) TakeStock(product string, amount int) error {
	if err := rules.ValidateProductName(product); err != nil {
		return err
	}
	ctx := context.Background()
	return r.tx.Run(ctx, func(q Querier) error {
		current, exists, err := r.quantity(ctx, q, product, true)
		if err != nil {
			return err
		}
		if err := rules.CheckTake(product, exists, current, amount); err != nil {
			return err
		}
		query := `
			UPDATE warehouse_stock SET quantity = quantity - $3, updated_at = now()
			WHERE warehouse_id = $1 AND product = $2`
		if _, err := q.Exec(ctx, query, r.warehouseID, product, decimal.NewFromInt(int64(amount))); err != nil {
			if isCheckViolation(err) {
				return fmt.Errorf("%w: %q", domain.ErrInsufficientStock, product)
			}
			return fmt.Errorf("take stock: %w", err)
		}
		return nil
	})
}

// List devuelve el stock de la bodega ordenado por producto.
func (r *WarehouseStockRepo) List() ([]entity.Stock, error) {
	query := `
		SELECT product, quantity FROM warehouse_stock
		WHERE warehouse_id = $1 ORDER BY product`
	rows, err := r.pool.Query(context.Background(), query, r.warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	list := make([]entity.Stock, 0)
	for rows.Next() {
		var product string
		var q decimal.Decimal
		if err := rows.Scan(&product, &q); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		qty, err := quantityToInt(q)
		if err != nil {
			return nil, err
		}
		list = append(list, entity.Stock{Product: product, Quantity: qty})
	}
	return list, rows.Err()
}

func (r *WarehouseStockRepo) quantity(ctx context.Context, q Querier, product string, forUpdate bool) (int, bool, error) {
	query := `SELECT quantity FROM warehouse_stock WHERE warehouse_id = $1 AND product = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var d decimal.Decimal
	if err := q.QueryRow(ctx, query, r.warehouseID, product).Scan(&d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get stock: %w", err)
	}
	qty, err := quantityToInt(d)
	if err != nil {
		return 0, false, err
	}
	return qty, true, nil
}
