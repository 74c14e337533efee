package production

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

var errInyectado = errors.New("fallo inyectado")

// Repositorio de balances en memoria, espejo del contrato del puerto: Get
// devuelve una fila en cero cuando todavía no existe y GetForUpdate la
// materializa antes de devolverla, igual que el adaptador real.
type fakeBalanceRepo struct {
	rows map[string]*entity.StockBalance
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
	cp.UpdatedAt = time.Now()
	f.rows[balKey(balance.ItemID, balance.WarehouseID)] = &cp
	return nil
}

func (f *fakeBalanceRepo) GetAnyByItem(itemID string) (*entity.StockBalance, error) {
	keys := make([]string, 0, len(f.rows))
	for k := range f.rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
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
			ItemCode: b.ItemID, WarehouseCode: b.WarehouseID,
			Quantity: b.Quantity, AvgCost: b.AvgCost,
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

// Repositorio de órdenes en memoria.
type fakeWorkOrderRepo struct {
	wos           map[string]*entity.WorkOrder
	consumptions  []*entity.WorkOrderConsumption
	finishedGoods []*entity.WorkOrderFinishedGood
	seq           int64

	failAddFinishedGood bool // inyección de fallo para probar rollback
}

func newFakeWorkOrderRepo() *fakeWorkOrderRepo {
	return &fakeWorkOrderRepo{wos: make(map[string]*entity.WorkOrder)}
}

func (f *fakeWorkOrderRepo) Create(wo *entity.WorkOrder) error {
	for _, existing := range f.wos {
		if existing.Number == wo.Number {
			return domain.ErrDuplicate
		}
	}
	cp := *wo
	f.wos[wo.ID] = &cp
	return nil
}

func (f *fakeWorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	wo, ok := f.wos[id]
	if !ok {
		return nil, nil
	}
	cp := *wo
	return &cp, nil
}

func (f *fakeWorkOrderRepo) GetForUpdate(id string) (*entity.WorkOrder, error) {
	return f.GetByID(id)
}

func (f *fakeWorkOrderRepo) UpdateProducedQty(id string, producedQty decimal.Decimal) error {
	wo, ok := f.wos[id]
	if !ok {
		return domain.ErrNotFound
	}
	wo.ProducedQty = producedQty
	wo.UpdatedAt = time.Now()
	return nil
}

func (f *fakeWorkOrderRepo) List(limit, offset int) ([]*entity.WorkOrder, error) {
	ids := make([]string, 0, len(f.wos))
	for id := range f.wos {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.WorkOrder, 0, len(ids))
	for _, id := range ids {
		cp := *f.wos[id]
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeWorkOrderRepo) NextSequence() (int64, error) {
	f.seq++
	return f.seq, nil
}

func (f *fakeWorkOrderRepo) AddConsumption(c *entity.WorkOrderConsumption) error {
	cp := *c
	f.consumptions = append(f.consumptions, &cp)
	return nil
}

func (f *fakeWorkOrderRepo) ListConsumptions(workOrderID string) ([]*entity.WorkOrderConsumption, error) {
	var out []*entity.WorkOrderConsumption
	for _, c := range f.consumptions {
		if c.WorkOrderID == workOrderID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeWorkOrderRepo) AddFinishedGood(fg *entity.WorkOrderFinishedGood) error {
	if f.failAddFinishedGood {
		return errInyectado
	}
	cp := *fg
	f.finishedGoods = append(f.finishedGoods, &cp)
	return nil
}

func (f *fakeWorkOrderRepo) ListFinishedGoods(workOrderID string) ([]*entity.WorkOrderFinishedGood, error) {
	var out []*entity.WorkOrderFinishedGood
	for _, fg := range f.finishedGoods {
		if fg.WorkOrderID == workOrderID {
			cp := *fg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeWorkOrderRepo) cloneWOs() map[string]*entity.WorkOrder {
	cp := make(map[string]*entity.WorkOrder, len(f.wos))
	for k, v := range f.wos {
		row := *v
		cp[k] = &row
	}
	return cp
}

// fakeProdTxRunner serializa las "transacciones" con un mutex y restaura el
// estado completo (balances, órdenes y registros) si la función falla,
// simulando el rollback de Postgres.
type fakeProdTxRunner struct {
	mu       sync.Mutex
	balances *fakeBalanceRepo
	woRepo   *fakeWorkOrderRepo
}

func newFakeProdTxRunner() *fakeProdTxRunner {
	return &fakeProdTxRunner{balances: newFakeBalanceRepo(), woRepo: newFakeWorkOrderRepo()}
}

func (r *fakeProdTxRunner) RunProduction(ctx context.Context, fn func(
	balanceRepo repository.StockBalanceRepository,
	woRepo repository.WorkOrderRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	balSnap := r.balances.clone()
	woSnap := r.woRepo.cloneWOs()
	consSnap := len(r.woRepo.consumptions)
	fgSnap := len(r.woRepo.finishedGoods)
	if err := fn(r.balances, r.woRepo); err != nil {
		r.balances.rows = balSnap
		r.woRepo.wos = woSnap
		r.woRepo.consumptions = r.woRepo.consumptions[:consSnap]
		r.woRepo.finishedGoods = r.woRepo.finishedGoods[:fgSnap]
		return err
	}
	return nil
}

// Dimensiones en memoria: el ID hace de código.
type fakeItemRepo struct{ items map[string]*entity.Item }

func newFakeItemRepo(ids ...string) *fakeItemRepo {
	f := &fakeItemRepo{items: make(map[string]*entity.Item)}
	for _, id := range ids {
		f.items[id] = &entity.Item{ID: id, Code: id, Name: id}
	}
	return f
}

func (f *fakeItemRepo) Create(item *entity.Item) error {
	f.items[item.ID] = item
	return nil
}

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

func (f *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	return nil, nil
}

type fakeWarehouseRepo struct{ whs map[string]*entity.Warehouse }

func newFakeWarehouseRepo(ids ...string) *fakeWarehouseRepo {
	f := &fakeWarehouseRepo{whs: make(map[string]*entity.Warehouse)}
	for _, id := range ids {
		f.whs[id] = &entity.Warehouse{ID: id, Code: id, Name: id}
	}
	return f
}

func (f *fakeWarehouseRepo) Create(wh *entity.Warehouse) error {
	f.whs[wh.ID] = wh
	return nil
}

func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return f.whs[id], nil
}

func (f *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	for _, wh := range f.whs {
		if wh.Code == code {
			return wh, nil
		}
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	return nil, nil
}
