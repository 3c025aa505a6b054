// Package stockbackend elige y abre el backend de stock configurado (STOCK_BACKEND).
package stockbackend

import (
	"context"
	"fmt"

	"github.com/jhoicas/warehouse-manager/internal/application/inventory"
	"github.com/jhoicas/warehouse-manager/internal/domain/entity"
	"github.com/jhoicas/warehouse-manager/internal/infrastructure/postgres"
	"github.com/jhoicas/warehouse-manager/internal/infrastructure/redis"
	"github.com/jhoicas/warehouse-manager/pkg/config"
	"github.com/jhoicas/warehouse-manager/pkg/logger"
)

// Open devuelve el backend y la función que libera sus conexiones.
// memory no tiene durabilidad: el stock se pierde al reiniciar.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (inventory.StockBackend, func(), error) {
	switch cfg.Stock.Backend {
	case config.BackendMemory:
		log.Warn().Msg("backend en memoria: el stock no sobrevive a un reinicio")
		return entity.NewWarehouse(), func() {}, nil

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("esquema de PostgreSQL: %w", err)
		}
		log.Info().Msg("stock en PostgreSQL")
		return postgres.NewWarehouseStockRepository(pool, cfg.Stock.WarehouseID), pool.Close, nil

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Str("key", redis.StockKey(cfg.Stock.WarehouseID)).Msg("stock en Redis")
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar cliente Redis")
			}
		}
		return redis.NewWarehouseStockRepository(client, cfg.Stock.WarehouseID), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("backend de stock desconocido %q", cfg.Stock.Backend)
	}
}
