package production

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/erp-mes-api/internal/application/stock"
	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newFixture(t *testing.T) (*UseCase, *fakeProdTxRunner) {
	t.Helper()
	runner := newFakeProdTxRunner()
	uc := NewUseCase(
		runner,
		runner.woRepo,
		newFakeItemRepo("FG1", "RM1"),
		newFakeWarehouseRepo("whA", "whB"),
	)
	return uc, runner
}

func seedStock(t *testing.T, runner *fakeProdTxRunner, itemID, whID, qty, price string) {
	t.Helper()
	ledger := stock.NewLedger(runner.balances)
	_, err := ledger.ApplyInbound(itemID, whID, dec(qty), dec(price))
	require.NoError(t, err)
}

func mustCreateWO(t *testing.T, uc *UseCase, productID, target string) *entity.WorkOrder {
	t.Helper()
	wo, err := uc.CreateWorkOrder(context.Background(), CreateWorkOrderInput{
		ProductID: productID,
		TargetQty: dec(target),
	})
	require.NoError(t, err)
	return wo
}

func TestCreateWorkOrder_NumeracionYEstado(t *testing.T) {
	uc, _ := newFixture(t)

	wo := mustCreateWO(t, uc, "FG1", "100")
	assert.Equal(t, entity.WorkOrderStatusInProgress, wo.Status)
	assert.True(t, wo.ProducedQty.IsZero())
	assert.True(t, strings.HasPrefix(wo.Number, "WO"))
	assert.True(t, strings.HasSuffix(wo.Number, "-000001"), "número %s", wo.Number)

	wo2 := mustCreateWO(t, uc, "FG1", "50")
	assert.True(t, strings.HasSuffix(wo2.Number, "-000002"), "número %s", wo2.Number)
}

func TestCreateWorkOrder_Validaciones(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.CreateWorkOrder(context.Background(), CreateWorkOrderInput{
		ProductID: "FG1", TargetQty: dec("0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateWorkOrder(context.Background(), CreateWorkOrderInput{
		ProductID: "no-existe", TargetQty: dec("10"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConsume_DescargaStockYRegistra(t *testing.T) {
	uc, runner := newFixture(t)
	seedStock(t, runner, "RM1", "whA", "100", "97")
	wo := mustCreateWO(t, uc, "FG1", "10")

	err := uc.Consume(context.Background(), ConsumeInput{
		WorkOrderID: wo.ID, ItemID: "RM1", Quantity: dec("10"),
		WarehouseID: "whA", Reference: "URT-1",
	})
	require.NoError(t, err)

	bal, _ := runner.balances.Get("RM1", "whA")
	assert.True(t, bal.Quantity.Equal(dec("90")))
	assert.True(t, bal.AvgCost.Equal(dec("97")), "la salida no toca el promedio")

	cons, err := runner.woRepo.ListConsumptions(wo.ID)
	require.NoError(t, err)
	require.Len(t, cons, 1)
	assert.True(t, cons[0].Quantity.Equal(dec("10")))
	assert.Equal(t, "URT-1", cons[0].Reference)
}

func TestConsume_OrdenCerradaRechazada(t *testing.T) {
	uc, runner := newFixture(t)
	seedStock(t, runner, "RM1", "whA", "100", "97")
	wo := mustCreateWO(t, uc, "FG1", "10")
	runner.woRepo.wos[wo.ID].Status = entity.WorkOrderStatusClosed

	err := uc.Consume(context.Background(), ConsumeInput{
		WorkOrderID: wo.ID, ItemID: "RM1", Quantity: dec("10"), WarehouseID: "whA",
	})
	assert.ErrorIs(t, err, domain.ErrWorkOrderClosed)

	bal, _ := runner.balances.Get("RM1", "whA")
	assert.True(t, bal.Quantity.Equal(dec("100")))
}

func TestConsume_StockInsuficienteSinRegistro(t *testing.T) {
	uc, runner := newFixture(t)
	seedStock(t, runner, "RM1", "whA", "5", "97")
	wo := mustCreateWO(t, uc, "FG1", "10")

	err := uc.Consume(context.Background(), ConsumeInput{
		WorkOrderID: wo.ID, ItemID: "RM1", Quantity: dec("10"), WarehouseID: "whA",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	cons, _ := runner.woRepo.ListConsumptions(wo.ID)
	assert.Empty(t, cons)
	bal, _ := runner.balances.Get("RM1", "whA")
	assert.True(t, bal.Quantity.Equal(dec("5")))
}

func TestConsume_OrdenInexistente(t *testing.T) {
	uc, runner := newFixture(t)
	seedStock(t, runner, "RM1", "whA", "100", "97")

	err := uc.Consume(context.Background(), ConsumeInput{
		WorkOrderID: "no-existe", ItemID: "RM1", Quantity: dec("1"), WarehouseID: "whA",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduce_CosteoConOverhead(t *testing.T) {
	// 10 unidades consumidas a promedio 97 = 970 de materiales;
	// con 10% de overhead y 5 producidas: 970 * 1.1 / 5 = 213.4.
	uc, runner := newFixture(t)
	seedStock(t, runner, "RM1", "whA", "100", "97")
	wo := mustCreateWO(t, uc, "FG1", "5")

	require.NoError(t, uc.Consume(context.Background(), ConsumeInput{
		WorkOrderID: wo.ID, ItemID: "RM1", Quantity: dec("10"), WarehouseID: "whA",
	}))

	unitCost, err := uc.Produce(context.Background(), ProduceInput{
		WorkOrderID: wo.ID, Quantity: dec("5"), WarehouseID: "whB",
		OverheadRate: dec("0.1"),
	})
	require.NoError(t, err)
	assert.True(t, unitCost.Equal(dec("213.4")), "costo unitario %s", unitCost)

	// El producto terminado entró al libro a ese costo.
	bal, _ := runner.balances.Get("FG1", "whB")
	assert.True(t, bal.Quantity.Equal(dec("5")))
	assert.True(t, bal.AvgCost.Equal(dec("213.4")))

	// Y la orden acumuló la cantidad producida.
	got, _ := runner.woRepo.GetByID(wo.ID)
	assert.True(t, got.ProducedQty.Equal(dec("5")))

	fgs, _ := runner.woRepo.ListFinishedGoods(wo.ID)
	require.Len(t, fgs, 1)
	assert.True(t, fgs[0].UnitCost.Equal(dec("213.4")))
}

func TestProduce_CostoBaseDePrimeraBodega(t *testing.T) {
	// El costo base del consumo sale de la primera fila de balance del artículo
	// en cualquier bodega, no de la bodega desde donde se consumió.
	uc, runner := newFixture(t)
	seedStock(t, runner, "RM1", "whA", "100", "50")
	seedStock(t, runner, "RM1", "whB", "100", "80")
	wo := mustCreateWO(t, uc, "FG1", "10")

	require.NoError(t, uc.Consume(context.Background(), ConsumeInput{
		WorkOrderID: wo.ID, ItemID: "RM1", Quantity: dec("10"), WarehouseID: "whB",
	}))

	unitCost, err := uc.Produce(context.Background(), ProduceInput{
		WorkOrderID: wo.ID, Quantity: dec("10"), WarehouseID: "whA",
		OverheadRate: decimal.Zero,
	})
	require.NoError(t, err)
	// 10 * 50 (promedio de whA, primera fila) / 10 = 50.
	assert.True(t, unitCost.Equal(dec("50")), "costo unitario %s", unitCost)
}

func TestProduce_CantidadCeroRegistraSinEntrada(t *testing.T) {
	uc, runner := newFixture(t)
	seedStock(t, runner, "RM1", "whA", "100", "97")
	wo := mustCreateWO(t, uc, "FG1", "5")
	require.NoError(t, uc.Consume(context.Background(), ConsumeInput{
		WorkOrderID: wo.ID, ItemID: "RM1", Quantity: dec("10"), WarehouseID: "whA",
	}))

	unitCost, err := uc.Produce(context.Background(), ProduceInput{
		WorkOrderID: wo.ID, Quantity: dec("0"), WarehouseID: "whB",
		OverheadRate: dec("0.1"),
	})
	require.NoError(t, err)
	assert.True(t, unitCost.IsZero(), "cantidad cero no es error, costo cero")

	// Sin entrada al libro, pero el registro de producción queda.
	bal, _ := runner.balances.Get("FG1", "whB")
	assert.True(t, bal.Quantity.IsZero())
	fgs, _ := runner.woRepo.ListFinishedGoods(wo.ID)
	require.Len(t, fgs, 1)
	assert.True(t, fgs[0].UnitCost.IsZero())
}

func TestProduce_CostoCongelado(t *testing.T) {
	uc, runner := newFixture(t)
	seedStock(t, runner, "RM1", "whA", "100", "97")
	wo := mustCreateWO(t, uc, "FG1", "5")
	require.NoError(t, uc.Consume(context.Background(), ConsumeInput{
		WorkOrderID: wo.ID, ItemID: "RM1", Quantity: dec("10"), WarehouseID: "whA",
	}))
	_, err := uc.Produce(context.Background(), ProduceInput{
		WorkOrderID: wo.ID, Quantity: dec("5"), WarehouseID: "whB", OverheadRate: dec("0.1"),
	})
	require.NoError(t, err)

	// El promedio del material cambia después; el costo registrado no se mueve.
	seedStock(t, runner, "RM1", "whA", "100", "300")
	fgs, _ := runner.woRepo.ListFinishedGoods(wo.ID)
	require.Len(t, fgs, 1)
	assert.True(t, fgs[0].UnitCost.Equal(dec("213.4")))
}

func TestProduce_AcumulaCantidadSinCerrar(t *testing.T) {
	// Superar la cantidad objetivo no cierra la orden: el cierre es una acción
	// administrativa separada.
	uc, runner := newFixture(t)
	seedStock(t, runner, "RM1", "whA", "100", "97")
	wo := mustCreateWO(t, uc, "FG1", "5")
	require.NoError(t, uc.Consume(context.Background(), ConsumeInput{
		WorkOrderID: wo.ID, ItemID: "RM1", Quantity: dec("10"), WarehouseID: "whA",
	}))

	for i := 0; i < 3; i++ {
		_, err := uc.Produce(context.Background(), ProduceInput{
			WorkOrderID: wo.ID, Quantity: dec("3"), WarehouseID: "whB",
			OverheadRate: decimal.Zero,
		})
		require.NoError(t, err)
	}

	got, _ := runner.woRepo.GetByID(wo.ID)
	assert.True(t, got.ProducedQty.Equal(dec("9")), "9 producidas sobre objetivo 5")
	assert.Equal(t, entity.WorkOrderStatusInProgress, got.Status)
}

func TestProduce_OrdenCerradaRechazada(t *testing.T) {
	uc, runner := newFixture(t)
	wo := mustCreateWO(t, uc, "FG1", "5")
	runner.woRepo.wos[wo.ID].Status = entity.WorkOrderStatusClosed

	_, err := uc.Produce(context.Background(), ProduceInput{
		WorkOrderID: wo.ID, Quantity: dec("5"), WarehouseID: "whB",
	})
	assert.ErrorIs(t, err, domain.ErrWorkOrderClosed)
}

func TestProduce_Validaciones(t *testing.T) {
	uc, _ := newFixture(t)
	wo := mustCreateWO(t, uc, "FG1", "5")

	_, err := uc.Produce(context.Background(), ProduceInput{
		WorkOrderID: wo.ID, Quantity: dec("-1"), WarehouseID: "whB",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Produce(context.Background(), ProduceInput{
		WorkOrderID: wo.ID, Quantity: dec("5"), WarehouseID: "whB",
		OverheadRate: dec("-0.1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Produce(context.Background(), ProduceInput{
		WorkOrderID: wo.ID, Quantity: dec("5"), WarehouseID: "bodega-fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduce_RollbackSiFallaElRegistro(t *testing.T) {
	uc, runner := newFixture(t)
	seedStock(t, runner, "RM1", "whA", "100", "97")
	wo := mustCreateWO(t, uc, "FG1", "5")
	require.NoError(t, uc.Consume(context.Background(), ConsumeInput{
		WorkOrderID: wo.ID, ItemID: "RM1", Quantity: dec("10"), WarehouseID: "whA",
	}))
	runner.woRepo.failAddFinishedGood = true

	_, err := uc.Produce(context.Background(), ProduceInput{
		WorkOrderID: wo.ID, Quantity: dec("5"), WarehouseID: "whB", OverheadRate: dec("0.1"),
	})
	require.Error(t, err)

	// Nada quedó a medias: ni entrada al libro ni cantidad acumulada.
	bal, _ := runner.balances.Get("FG1", "whB")
	assert.True(t, bal.Quantity.IsZero())
	got, _ := runner.woRepo.GetByID(wo.ID)
	assert.True(t, got.ProducedQty.IsZero())
}

func TestGetWorkOrder_Completo(t *testing.T) {
	uc, runner := newFixture(t)
	seedStock(t, runner, "RM1", "whA", "100", "97")
	wo := mustCreateWO(t, uc, "FG1", "5")
	require.NoError(t, uc.Consume(context.Background(), ConsumeInput{
		WorkOrderID: wo.ID, ItemID: "RM1", Quantity: dec("10"), WarehouseID: "whA",
	}))
	_, err := uc.Produce(context.Background(), ProduceInput{
		WorkOrderID: wo.ID, Quantity: dec("5"), WarehouseID: "whB", OverheadRate: dec("0.1"),
	})
	require.NoError(t, err)

	got, cons, fgs, err := uc.GetWorkOrder(wo.ID)
	require.NoError(t, err)
	assert.Equal(t, wo.Number, got.Number)
	assert.Len(t, cons, 1)
	assert.Len(t, fgs, 1)

	_, _, _, err = uc.GetWorkOrder("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
