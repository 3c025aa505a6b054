// Package redis implementa el contrato de la bodega sobre un hash de Redis
// (warehouse:<id>:stock, campo = producto, valor = unidades).
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/warehouse-manager/internal/application/inventory"
	"github.com/jhoicas/warehouse-manager/internal/domain"
	"github.com/jhoicas/warehouse-manager/internal/domain/entity"
	rules "github.com/jhoicas/warehouse-manager/internal/domain/inventory"
	"github.com/jhoicas/warehouse-manager/pkg/config"
)

var _ inventory.StockBackend = (*WarehouseStockRepo)(nil)

// maxTakeRetries reintentos de TakeStock cuando otro cliente modificó el hash durante el WATCH.
const maxTakeRetries = 5

// WarehouseStockRepo bodega respaldada por Redis.
type WarehouseStockRepo struct {
	client *goredis.Client
	key    string
}

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return client, nil
}

// NewWarehouseStockRepository construye el adaptador para la bodega indicada.
func NewWarehouseStockRepository(client *goredis.Client, warehouseID string) *WarehouseStockRepo {
	return &WarehouseStockRepo{client: client, key: StockKey(warehouseID)}
}

// StockKey clave del hash de stock de una bodega.
func StockKey(warehouseID string) string {
	return "warehouse:" + warehouseID + ":stock"
}

// HasProduct indica si el campo existe en el hash, aunque valga 0.
func (r *WarehouseStockRepo) HasProduct(product string) (bool, error) {
	if err := rules.ValidateProductName(product); err != nil {
		return false, err
	}
	ok, err := r.client.HExists(context.Background(), r.key, product).Result()
	if err != nil {
		return false, fmt.Errorf("has product: %w", err)
	}
	return ok, nil
}

// CurrentStock devuelve las unidades; ErrNoSuchProduct si el campo no existe.
func (r *WarehouseStockRepo) CurrentStock(product string) (int, error) {
	if err := rules.ValidateProductName(product); err != nil {
		return 0, err
	}
	qty, exists, err := quantity(context.Background(), r.client, r.key, product)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("%w: %q", domain.ErrNoSuchProduct, product)
	}
	return qty, nil
}

// AddStock HINCRBY crea el campo en 0 si no existe y suma amount en una sola operación.
func (r *WarehouseStockRepo) AddStock(product string, amount int) error {
	if err := rules.ValidateProductName(product); err != nil {
		return err
	}
	if err := rules.ValidateNonNegative(amount); err != nil {
		return err
	}
	if err := r.client.HIncrBy(context.Background(), r.key, product, int64(amount)).Err(); err != nil {
		if isOverflow(err) {
			return fmt.Errorf("%w: %q excede el máximo de unidades", domain.ErrInvalidArgument, product)
		}
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}

// TakeStock lee y descuenta bajo WATCH/MULTI; si otro cliente tocó el hash se reintenta.
func (r *WarehouseStockRepo) TakeStock(product string, amount int) error {
	if err := rules.ValidateProductName(product); err != nil {
		return err
	}
	ctx := context.Background()
	txf := func(tx *goredis.Tx) error {
		current, exists, err := quantity(ctx, tx, r.key, product)
		if err != nil {
			return err
		}
		if err := rules.CheckTake(product, exists, current, amount); err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HIncrBy(ctx, r.key, product, int64(-amount))
			return nil
		})
		return err
	}
	for i := 0; i < maxTakeRetries; i++ {
		err := r.client.Watch(ctx, txf, r.key)
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		if err != nil {
			return err
		}
		return nil
	}
	return fmt.Errorf("take stock: %q sigue en conflicto tras %d intentos", product, maxTakeRetries)
}

// List devuelve todo el hash como filas ordenadas por producto.
func (r *WarehouseStockRepo) List() ([]entity.Stock, error) {
	raw, err := r.client.HGetAll(context.Background(), r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	m, err := parseStockHash(raw)
	if err != nil {
		return nil, err
	}
	return entity.StockFromMap(m), nil
}

// parseStockHash convierte el resultado de HGETALL en unidades enteras.
func parseStockHash(raw map[string]string) (map[string]int, error) {
	out := make(map[string]int, len(raw))
	for product, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("cantidad inválida para %q: %w", product, err)
		}
		out[product] = n
	}
	return out, nil
}

// isOverflow reconoce el error de HINCRBY cuando el resultado no cabe en int64.
func isOverflow(err error) bool {
	return strings.Contains(err.Error(), "would overflow")
}

// hashGetter lo que comparten *goredis.Client y *goredis.Tx para leer un campo.
type hashGetter interface {
	HGet(ctx context.Context, key, field string) *goredis.StringCmd
}

func quantity(ctx context.Context, c hashGetter, key, product string) (int, bool, error) {
	qty, err := c.HGet(ctx, key, product).Int()
	if errors.Is(err, goredis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get stock: %w", err)
	}
	return qty, true, nil
}
