package costing

import "github.com/shopspring/decimal"

// WeightedAverage implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Si la cantidad resultante es cero o negativa el costo cae a cero.
func WeightedAverage(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}

// ProductionUnitCost deriva el costo unitario de producto terminado a partir del
// costo de materiales con recargo de overhead:
// CostoUnitario = (CostoMateriales * (1 + TasaOverhead)) / Cantidad
// Con cantidad cero el resultado se define como cero, no como error.
func ProductionUnitCost(materialCost, overheadRate, qty decimal.Decimal) decimal.Decimal {
	if qty.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	loaded := materialCost.Mul(decimal.NewFromInt(1).Add(overheadRate))
	return loaded.Div(qty)
}
