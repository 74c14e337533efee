package sales

import (
	"github.com/shopspring/decimal"

	"github.com/invorya/erp-mes-api/internal/domain"
)

// Line es la entrada mínima del cálculo de totales: cantidad, precio unitario
// y tasa de IVA en porcentaje (ej. 20 = 20%).
type Line struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	VATRate   decimal.Decimal
}

// Totals resultado del cálculo, cada campo redondeado a 2 decimales.
type Totals struct {
	Subtotal   decimal.Decimal
	VATTotal   decimal.Decimal
	GrandTotal decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeTotals calcula subtotal, IVA y gran total de un documento (función pura).
// Subtotal = Σ qty*precio; IVA = Σ qty*precio*tasa/100; GranTotal = Subtotal+IVA.
// Cantidades, precios o tasas negativas se rechazan con ErrInvalidInput.
func ComputeTotals(lines []Line) (Totals, error) {
	subtotal := decimal.Zero
	vatTotal := decimal.Zero
	for _, l := range lines {
		if l.Quantity.IsNegative() || l.UnitPrice.IsNegative() || l.VATRate.IsNegative() {
			return Totals{}, domain.ErrInvalidInput
		}
		base := l.Quantity.Mul(l.UnitPrice)
		subtotal = subtotal.Add(base)
		vatTotal = vatTotal.Add(base.Mul(l.VATRate).Div(hundred))
	}
	// El gran total se redondea sobre la suma sin redondear, no sobre los
	// parciales ya redondeados.
	return Totals{
		Subtotal:   subtotal.Round(2),
		VATTotal:   vatTotal.Round(2),
		GrandTotal: subtotal.Add(vatTotal).Round(2),
	}, nil
}

// LineTotal devuelve el total de una línea con IVA incluido:
// qty * precio * (1 + tasa/100).
func LineTotal(l Line) decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice).Mul(decimal.NewFromInt(1).Add(l.VATRate.Div(hundred)))
}
