package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// LineItem es la entrada mínima del cálculo de totales: cantidad y precio
// unitario ya inclusivo del impuesto al consumo de la unidad elegida.
// Se asume entrada no negativa pre-validada en el borde.
type LineItem struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// DocumentTotals son los totales derivados de un documento.
type DocumentTotals struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	VATAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// LineTotal calcula el total de una línea redondeado a 2 decimales.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(2)
}

// ComputeDocumentTotals calcula subtotal, tax, IVA y total de un documento.
// Tax e IVA se calculan de forma independiente sobre el MISMO subtotal (no
// compuestos). Las tasas van como fracción (0.15 = 15%). Función pura de
// (items, tasas).
func ComputeDocumentTotals(items []LineItem, taxRate, vatRate decimal.Decimal) DocumentTotals {
	var subtotal decimal.Decimal
	for _, it := range items {
		subtotal = subtotal.Add(LineTotal(it.Quantity, it.UnitPrice))
	}
	taxAmount := subtotal.Mul(taxRate).Round(2)
	vatAmount := subtotal.Mul(vatRate).Round(2)
	return DocumentTotals{
		Subtotal:    subtotal,
		TaxAmount:   taxAmount,
		VATAmount:   vatAmount,
		TotalAmount: subtotal.Add(taxAmount).Add(vatAmount),
	}
}

// ComputeFinalUnitPrice calcula el precio final de venta de UNA unidad del
// tipo pedido, en orden estricto:
//
//  1. conversión de unidad (ResolveUnitPrice)
//  2. suma del impuesto al consumo al precio
//  3. IVA sobre (precio + impuesto al consumo)
//  4. descuento como reducción multiplicativa final
//
// El orden es visible externamente: el IVA se calcula ANTES del descuento y
// el impuesto al consumo entra en la base del IVA. No cambiarlo sin cambiar
// la lista de precios publicada.
func ComputeFinalUnitPrice(p *entity.Product, kind UnitKind, vatRatePercent decimal.Decimal) (decimal.Decimal, error) {
	up, err := ResolveUnitPrice(p, kind)
	if err != nil {
		return decimal.Zero, err
	}
	withExcise := up.Price.Add(up.Excise)
	withVAT := withExcise.Mul(decimal.NewFromInt(1).Add(vatRatePercent.Div(hundred)))
	final := withVAT.Mul(decimal.NewFromInt(1).Sub(p.DiscountRate.Div(hundred)))
	return final.Round(2), nil
}
