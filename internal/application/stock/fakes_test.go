package stock

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. El txRunner falso serializa
// con un mutex y simula rollback restaurando el estado previo cuando fn falla.

type fakeBalanceRepo struct {
	rows map[string]*entity.StockBalance // clave itemID|warehouseID
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{rows: make(map[string]*entity.StockBalance)}
}

func balKey(itemID, warehouseID string) string { return itemID + "|" + warehouseID }

func (f *fakeBalanceRepo) Get(itemID, warehouseID string) (*entity.StockBalance, error) {
	if b, ok := f.rows[balKey(itemID, warehouseID)]; ok {
		cp := *b
		return &cp, nil
	}
	return &entity.StockBalance{
		ItemID: itemID, WarehouseID: warehouseID,
		Quantity: decimal.Zero, AvgCost: decimal.Zero,
	}, nil
}

func (f *fakeBalanceRepo) GetForUpdate(itemID, warehouseID string) (*entity.StockBalance, error) {
	// Igual que el adaptador real: la fila se materializa en cero antes del candado.
	k := balKey(itemID, warehouseID)
	if _, ok := f.rows[k]; !ok {
		f.rows[k] = &entity.StockBalance{
			ItemID: itemID, WarehouseID: warehouseID,
			Quantity: decimal.Zero, AvgCost: decimal.Zero,
		}
	}
	return f.Get(itemID, warehouseID)
}

func (f *fakeBalanceRepo) Upsert(balance *entity.StockBalance) error {
	cp := *balance
	f.rows[balKey(balance.ItemID, balance.WarehouseID)] = &cp
	return nil
}

func (f *fakeBalanceRepo) GetAnyByItem(itemID string) (*entity.StockBalance, error) {
	keys := make([]string, 0, len(f.rows))
	for k := range f.rows {
		keys = append(keys, k)
	}
	sort.Strings(keys) // orden determinista: "primera fila"
	for _, k := range keys {
		if f.rows[k].ItemID == itemID {
			cp := *f.rows[k]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBalanceRepo) Snapshot() ([]entity.StockSnapshotRow, error) {
	keys := make([]string, 0, len(f.rows))
	for k := range f.rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]entity.StockSnapshotRow, 0, len(keys))
	for _, k := range keys {
		b := f.rows[k]
		out = append(out, entity.StockSnapshotRow{
			ItemCode:      b.ItemID,
			WarehouseCode: b.WarehouseID,
			Quantity:      b.Quantity,
			AvgCost:       b.AvgCost,
		})
	}
	return out, nil
}

func (f *fakeBalanceRepo) clone() map[string]*entity.StockBalance {
	cp := make(map[string]*entity.StockBalance, len(f.rows))
	for k, v := range f.rows {
		row := *v
		cp[k] = &row
	}
	return cp
}

type fakeMovementRepo struct {
	movements  []*entity.StockMovement
	failCreate bool // inyección de fallo para probar rollback
}

var errInjected = errors.New("fallo inyectado")

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if f.failCreate {
		return errInjected
	}
	cp := *m
	if cp.ID == "" {
		cp.ID = time.Now().Format("20060102150405.000000000")
	}
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeMovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if m.ItemID == itemID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return f.movements, nil
}

// fakeTxRunner serializa las "transacciones" con un mutex y restaura balances y
// movimientos cuando fn devuelve error, imitando el rollback de Postgres.
type fakeTxRunner struct {
	mu        sync.Mutex
	balances  *fakeBalanceRepo
	movements *fakeMovementRepo
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{balances: newFakeBalanceRepo(), movements: &fakeMovementRepo{}}
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	balanceRepo repository.StockBalanceRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	balSnap := r.balances.clone()
	movSnap := len(r.movements.movements)
	if err := fn(r.balances, r.movements); err != nil {
		r.balances.rows = balSnap
		r.movements.movements = r.movements.movements[:movSnap]
		return err
	}
	return nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item // por ID
}

func newFakeItemRepo(ids ...string) *fakeItemRepo {
	f := &fakeItemRepo{items: make(map[string]*entity.Item)}
	for _, id := range ids {
		f.items[id] = &entity.Item{ID: id, Code: id, Name: id, CostMethod: entity.CostMethodAverage}
	}
	return f
}

func (f *fakeItemRepo) Create(item *entity.Item) error { f.items[item.ID] = item; return nil }
func (f *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return f.items[id], nil
}
func (f *fakeItemRepo) GetByCode(code string) (*entity.Item, error) {
	for _, it := range f.items {
		if it.Code == code {
			return it, nil
		}
	}
	return nil, nil
}
func (f *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) { return nil, nil }

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo(ids ...string) *fakeWarehouseRepo {
	f := &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
	for _, id := range ids {
		f.warehouses[id] = &entity.Warehouse{ID: id, Code: id, Name: id}
	}
	return f
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error { f.warehouses[w.ID] = w; return nil }
func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}
func (f *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	for _, w := range f.warehouses {
		if w.Code == code {
			return w, nil
		}
	}
	return nil, nil
}
func (f *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) { return nil, nil }
