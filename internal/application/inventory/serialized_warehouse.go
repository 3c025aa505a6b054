package inventory

import (
	"sync"

	"github.com/jhoicas/warehouse-manager/internal/domain/entity"
)

var _ StockBackend = (*SerializedWarehouse)(nil)

// SerializedWarehouse serializa cada llamada sobre el backend con un mutex.
// Las entidades de dominio no son seguras para uso concurrente; el servidor HTTP sí lo es.
type SerializedWarehouse struct {
	mu      sync.Mutex
	backend StockBackend
}

// NewSerializedWarehouse envuelve el backend.
func NewSerializedWarehouse(backend StockBackend) *SerializedWarehouse {
	return &SerializedWarehouse{backend: backend}
}

func (s *SerializedWarehouse) HasProduct(product string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.HasProduct(product)
}

func (s *SerializedWarehouse) CurrentStock(product string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.CurrentStock(product)
}

func (s *SerializedWarehouse) AddStock(product string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.AddStock(product, amount)
}

func (s *SerializedWarehouse) TakeStock(product string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.TakeStock(product, amount)
}

func (s *SerializedWarehouse) List() ([]entity.Stock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.List()
}
