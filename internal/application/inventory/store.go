package inventory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/aadish-inventory/internal/domain"
	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
	"github.com/jhoicas/aadish-inventory/internal/domain/repository"
	"github.com/jhoicas/aadish-inventory/pkg/logger"
)

// Collection nombre de una de las tres colecciones del estado.
type Collection string

const (
	CollectionItems        Collection = "items"
	CollectionTransactions Collection = "transactions"
	CollectionSuppliers    Collection = "suppliers"
)

// persistOrder orden fijo en que se guardan las colecciones pendientes.
var persistOrder = []Collection{CollectionItems, CollectionTransactions, CollectionSuppliers}

// ChangeEvent se publica tras cada mutación exitosa.
// PersistErr no es nil cuando el guardado falló y el cambio solo vive en memoria.
type ChangeEvent struct {
	Collections []Collection
	PersistErr  error
}

// Seed conjunto de datos inicial cuando el almacenamiento está vacío.
type Seed struct {
	Items        []entity.InventoryItem
	Transactions []entity.StockTransaction
	Suppliers    []string
}

// Option configura el Store.
type Option func(*Store)

// WithLogger asigna el logger (por defecto logger.Nop()).
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l.Component("inventory_store") }
}

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator reemplaza el generador de IDs (por defecto UUID v4).
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithSeed carga seed cuando ninguna de las tres colecciones existe en el almacenamiento.
func WithSeed(seed Seed) Option {
	return func(s *Store) { s.seed = &seed }
}

type subscriber struct {
	id int
	fn func(ChangeEvent)
}

// Store fuente única de verdad de artículos, movimientos y proveedores.
// Las operaciones se serializan con un mutex, incluido el guardado; los suscriptores
// se invocan después de liberar el lock, en orden de suscripción.
type Store struct {
	repo  repository.StateRepository
	log   *logger.Logger
	now   func() time.Time
	newID func() string
	seed  *Seed

	mu         sync.Mutex
	items      []entity.InventoryItem
	txs        []entity.StockTransaction
	suppliers  []string
	dirty      map[Collection]bool
	persistErr error

	subMu   sync.Mutex
	subs    []subscriber
	nextSub int
}

// defaultClock hora UTC a microsegundos, la precisión de TIMESTAMPTZ, para que los
// instantes sobrevivan intactos a cualquier backend.
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NewStore construye el store vacío sobre el repositorio de estado. Llamar Load para rehidratar.
func NewStore(repo repository.StateRepository, opts ...Option) *Store {
	s := &Store{
		repo:      repo,
		log:       logger.Nop(),
		now:       defaultClock,
		newID:     func() string { return uuid.New().String() },
		items:     []entity.InventoryItem{},
		txs:       []entity.StockTransaction{},
		suppliers: []string{},
		dirty:     make(map[Collection]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load rehidrata las tres colecciones desde el repositorio. Nunca falla: una colección ausente
// queda vacía y una ilegible se registra en el log y también queda vacía. Si no existe ninguna
// y hay seed configurado, se usa el seed y se guarda.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, itemsFound, itemsErr := s.repo.LoadItems(ctx)
	if itemsErr != nil {
		s.log.Warn().Err(itemsErr).Str("collection", string(CollectionItems)).Msg("colección ilegible, se usa vacía")
	}
	txs, txsFound, txsErr := s.repo.LoadTransactions(ctx)
	if txsErr != nil {
		s.log.Warn().Err(txsErr).Str("collection", string(CollectionTransactions)).Msg("colección ilegible, se usa vacía")
	}
	suppliers, suppliersFound, suppliersErr := s.repo.LoadSuppliers(ctx)
	if suppliersErr != nil {
		s.log.Warn().Err(suppliersErr).Str("collection", string(CollectionSuppliers)).Msg("colección ilegible, se usa vacía")
	}

	empty := !itemsFound && !txsFound && !suppliersFound &&
		itemsErr == nil && txsErr == nil && suppliersErr == nil
	if empty && s.seed != nil {
		s.items = slices.Clone(s.seed.Items)
		s.txs = slices.Clone(s.seed.Transactions)
		s.suppliers = slices.Clone(s.seed.Suppliers)
		for _, c := range persistOrder {
			s.dirty[c] = true
		}
		s.persistErr = s.persistDirty(ctx)
		s.log.Info().Int("items", len(s.items)).Int("transactions", len(s.txs)).Msg("almacenamiento vacío, datos de ejemplo cargados")
		return
	}

	s.items = nonNil(items)
	s.txs = nonNil(txs)
	s.suppliers = nonNil(suppliers)
	s.log.Info().
		Int("items", len(s.items)).
		Int("transactions", len(s.txs)).
		Int("suppliers", len(s.suppliers)).
		Msg("estado del inventario cargado")
}

// Items copia de los artículos en orden de alta.
func (s *Store) Items() []entity.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Item devuelve el artículo con ese ID o domain.ErrNotFound.
func (s *Store) Item(id string) (entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return entity.InventoryItem{}, domain.ErrNotFound
	}
	return s.items[i], nil
}

// Transactions copia del libro de movimientos en orden de registro.
func (s *Store) Transactions() []entity.StockTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.txs)
}

// Suppliers copia del registro de proveedores.
func (s *Store) Suppliers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.suppliers)
}

// Subscribe registra fn para cada ChangeEvent. La función devuelta cancela la suscripción.
// fn no debe llamar operaciones de mutación del Store de forma síncrona.
func (s *Store) Subscribe(fn func(ChangeEvent)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
		})
	}
}

// Flush reintenta guardar las colecciones cuyo último guardado falló.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistErr = s.persistDirty(ctx)
	return s.persistErr
}

// PersistenceError último fallo de guardado; nil cuando todo está persistido.
func (s *Store) PersistenceError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistErr
}

// commit marca las colecciones como pendientes e intenta guardarlas. Requiere s.mu tomado.
func (s *Store) commit(ctx context.Context, changed ...Collection) ChangeEvent {
	for _, c := range changed {
		s.dirty[c] = true
	}
	s.persistErr = s.persistDirty(ctx)
	return ChangeEvent{Collections: changed, PersistErr: s.persistErr}
}

// persistDirty guarda cada colección pendiente; las que fallan siguen pendientes. Requiere s.mu tomado.
func (s *Store) persistDirty(ctx context.Context) error {
	var errs []error
	for _, c := range persistOrder {
		if !s.dirty[c] {
			continue
		}
		var err error
		switch c {
		case CollectionItems:
			err = s.repo.SaveItems(ctx, slices.Clone(s.items))
		case CollectionTransactions:
			err = s.repo.SaveTransactions(ctx, slices.Clone(s.txs))
		case CollectionSuppliers:
			err = s.repo.SaveSuppliers(ctx, slices.Clone(s.suppliers))
		}
		if err != nil {
			s.log.Warn().Err(err).Str("collection", string(c)).Msg("no se pudo guardar, el cambio queda en memoria")
			errs = append(errs, fmt.Errorf("%s: %w", c, err))
			continue
		}
		delete(s.dirty, c)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrPersistence, errors.Join(errs...))
}

func (s *Store) notify(ev ChangeEvent) {
	s.subMu.Lock()
	subs := slices.Clone(s.subs)
	s.subMu.Unlock()
	for _, sub := range subs {
		sub.fn(ev)
	}
}

// indexOf posición del artículo o -1. Requiere s.mu tomado.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(it entity.InventoryItem) bool { return it.ID == id })
}

func nonNil[T any](xs []T) []T {
	if xs == nil {
		return []T{}
	}
	return xs
}
