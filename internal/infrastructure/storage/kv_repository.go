package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
	"github.com/jhoicas/aadish-inventory/internal/domain/repository"
)

var _ repository.StateRepository = (*KVStateRepository)(nil)

// Backend almacenamiento clave-valor durable (archivo, memoria, Redis...).
// Get devuelve found=false sin error cuando la clave no existe.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// KVStateRepository implementa StateRepository sobre cualquier Backend, una clave por colección.
type KVStateRepository struct {
	backend Backend
}

// NewKVStateRepository construye el repositorio sobre el backend dado.
func NewKVStateRepository(backend Backend) *KVStateRepository {
	return &KVStateRepository{backend: backend}
}

// LoadItems lee la colección de artículos.
func (r *KVStateRepository) LoadItems(ctx context.Context) ([]entity.InventoryItem, bool, error) {
	data, found, err := r.backend.Get(ctx, KeyItems)
	if err != nil || !found {
		return nil, false, wrapGet(KeyItems, err)
	}
	items, err := DecodeItems(data)
	if err != nil {
		return nil, true, err
	}
	return items, true, nil
}

// SaveItems reemplaza la colección de artículos.
func (r *KVStateRepository) SaveItems(ctx context.Context, items []entity.InventoryItem) error {
	data, err := EncodeItems(items)
	if err != nil {
		return err
	}
	return r.set(ctx, KeyItems, data)
}

// LoadTransactions lee el libro de movimientos.
func (r *KVStateRepository) LoadTransactions(ctx context.Context) ([]entity.StockTransaction, bool, error) {
	data, found, err := r.backend.Get(ctx, KeyTransactions)
	if err != nil || !found {
		return nil, false, wrapGet(KeyTransactions, err)
	}
	txs, err := DecodeTransactions(data)
	if err != nil {
		return nil, true, err
	}
	return txs, true, nil
}

// SaveTransactions reemplaza el libro de movimientos.
func (r *KVStateRepository) SaveTransactions(ctx context.Context, txs []entity.StockTransaction) error {
	data, err := EncodeTransactions(txs)
	if err != nil {
		return err
	}
	return r.set(ctx, KeyTransactions, data)
}

// LoadSuppliers lee el registro de proveedores.
func (r *KVStateRepository) LoadSuppliers(ctx context.Context) ([]string, bool, error) {
	data, found, err := r.backend.Get(ctx, KeySuppliers)
	if err != nil || !found {
		return nil, false, wrapGet(KeySuppliers, err)
	}
	suppliers, err := DecodeSuppliers(data)
	if err != nil {
		return nil, true, err
	}
	return suppliers, true, nil
}

// SaveSuppliers reemplaza el registro de proveedores.
func (r *KVStateRepository) SaveSuppliers(ctx context.Context, suppliers []string) error {
	data, err := EncodeSuppliers(suppliers)
	if err != nil {
		return err
	}
	return r.set(ctx, KeySuppliers, data)
}

func (r *KVStateRepository) set(ctx context.Context, key string, data []byte) error {
	if err := r.backend.Set(ctx, key, data); err != nil {
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}

func wrapGet(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("leer %s: %w", key, err)
}
