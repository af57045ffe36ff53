package inventory

import (
	"context"

	"github.com/jhoicas/aadish-inventory/internal/domain"
	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// NewItemInput datos de alta de un artículo (todo salvo ID y LastUpdated).
type NewItemInput struct {
	Name              string
	SKU               string
	Category          string
	Supplier          string
	CurrentStock      int             `validate:"gte=0"`
	LowStockThreshold int             `validate:"gte=0"`
	PurchasePrice     decimal.Decimal `validate:"gte=0"`
	SellingPrice      decimal.Decimal `validate:"gte=0"`
}

// ItemPatch actualización parcial: solo se aplican los campos no nil.
type ItemPatch struct {
	Name              *string
	SKU               *string
	Category          *string
	Supplier          *string
	CurrentStock      *int             `validate:"omitempty,gte=0"`
	LowStockThreshold *int             `validate:"omitempty,gte=0"`
	PurchasePrice     *decimal.Decimal `validate:"omitempty,gte=0"`
	SellingPrice      *decimal.Decimal `validate:"omitempty,gte=0"`
}

// AddItem da de alta un artículo con ID nuevo y LastUpdated = ahora.
func (s *Store) AddItem(ctx context.Context, in NewItemInput) (entity.InventoryItem, error) {
	if err := validateInput(in); err != nil {
		return entity.InventoryItem{}, err
	}

	s.mu.Lock()
	item := entity.InventoryItem{
		ID:                s.newID(),
		Name:              in.Name,
		SKU:               in.SKU,
		Category:          in.Category,
		Supplier:          in.Supplier,
		CurrentStock:      in.CurrentStock,
		LowStockThreshold: in.LowStockThreshold,
		PurchasePrice:     in.PurchasePrice,
		SellingPrice:      in.SellingPrice,
		LastUpdated:       s.now(),
	}
	s.items = append(s.items, item)
	ev := s.commit(ctx, CollectionItems)
	s.mu.Unlock()

	s.notify(ev)
	return item, nil
}

// UpdateItem aplica el patch y refresca LastUpdated. Si el ID no existe devuelve
// domain.ErrNotFound y el estado no cambia.
func (s *Store) UpdateItem(ctx context.Context, id string, patch ItemPatch) (entity.InventoryItem, error) {
	if err := validateInput(patch); err != nil {
		return entity.InventoryItem{}, err
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return entity.InventoryItem{}, domain.ErrNotFound
	}
	item := patch.apply(s.items[i])
	item.LastUpdated = s.now()
	s.items[i] = item
	ev := s.commit(ctx, CollectionItems)
	s.mu.Unlock()

	s.notify(ev)
	return item, nil
}

// RemoveItem elimina el artículo. Los movimientos que lo referencian se conservan.
func (s *Store) RemoveItem(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	ev := s.commit(ctx, CollectionItems)
	s.mu.Unlock()

	s.notify(ev)
	return nil
}

func (p ItemPatch) apply(it entity.InventoryItem) entity.InventoryItem {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.SKU != nil {
		it.SKU = *p.SKU
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Supplier != nil {
		it.Supplier = *p.Supplier
	}
	if p.CurrentStock != nil {
		it.CurrentStock = *p.CurrentStock
	}
	if p.LowStockThreshold != nil {
		it.LowStockThreshold = *p.LowStockThreshold
	}
	if p.PurchasePrice != nil {
		it.PurchasePrice = *p.PurchasePrice
	}
	if p.SellingPrice != nil {
		it.SellingPrice = *p.SellingPrice
	}
	return it
}
