package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
	"github.com/tu-usuario/backoffice-pro/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// ComputeFinalUnitPrice: el orden conversión → +consumo → IVA → descuento es
// visible externamente. Vector de referencia:
//
//	basePrice=7.00, excise=0.10, itemsPerPackagingUnit=12, IVA 15%, desc 0%
//	precio empaque final = ((7.00+0.10)×12) × 1.15 = 97.98
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeFinalUnitPrice_VectorEmpaque(t *testing.T) {
	p := &entity.Product{
		UnitType:              "Cartons",
		BasePrice:             decimal.NewFromFloat(7.00),
		ExciseTax:             decimal.NewFromFloat(0.10),
		PackagingUnit:         "Box",
		ItemsPerPackagingUnit: 12,
		DiscountRate:          decimal.Zero,
	}
	final, err := pricing.ComputeFinalUnitPrice(p, pricing.UnitPackaging, decimal.NewFromInt(15))
	require.NoError(t, err)
	assert.True(t, final.Equal(decimal.NewFromFloat(97.98)),
		"precio final de empaque debe ser 97.98, fue %s", final)
}

func TestComputeFinalUnitPrice_DescuentoDespuesDeIVA(t *testing.T) {
	p := &entity.Product{
		UnitType:     "PCS",
		BasePrice:    decimal.NewFromFloat(100),
		ExciseTax:    decimal.NewFromFloat(10),
		DiscountRate: decimal.NewFromInt(10),
	}
	// (100+10) × 1.15 = 126.50; 126.50 × 0.90 = 113.85
	final, err := pricing.ComputeFinalUnitPrice(p, pricing.UnitBase, decimal.NewFromInt(15))
	require.NoError(t, err)
	assert.True(t, final.Equal(decimal.NewFromFloat(113.85)),
		"el descuento se aplica DESPUÉS del IVA: esperado 113.85, fue %s", final)
}

func TestComputeFinalUnitPrice_ConsumoEntraEnBaseIVA(t *testing.T) {
	p := &entity.Product{
		UnitType:  "PCS",
		BasePrice: decimal.NewFromFloat(100),
		ExciseTax: decimal.NewFromFloat(20),
	}
	// Si el consumo NO entrara en la base del IVA daría 100×1.15+20 = 135.00;
	// el orden correcto da (100+20)×1.15 = 138.00.
	final, err := pricing.ComputeFinalUnitPrice(p, pricing.UnitBase, decimal.NewFromInt(15))
	require.NoError(t, err)
	assert.True(t, final.Equal(decimal.NewFromFloat(138.00)))
}

func TestComputeDocumentTotals_TaxEIVAIndependientes(t *testing.T) {
	items := []pricing.LineItem{
		{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromFloat(10.50)},
		{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(4.25)},
	}
	// subtotal = 31.50 + 8.50 = 40.00
	totals := pricing.ComputeDocumentTotals(items, decimal.NewFromFloat(0.02), decimal.NewFromFloat(0.15))

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromFloat(40.00)))
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromFloat(0.80)), "tax = subtotal × 0.02")
	assert.True(t, totals.VATAmount.Equal(decimal.NewFromFloat(6.00)),
		"IVA se calcula sobre el MISMO subtotal, no compuesto con el tax")
	assert.True(t, totals.TotalAmount.Equal(decimal.NewFromFloat(46.80)))
}

func TestComputeDocumentTotals_RedondeoPorLinea(t *testing.T) {
	items := []pricing.LineItem{
		// 3 × 3.333 = 9.999 → 10.00 por línea
		{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromFloat(3.333)},
	}
	totals := pricing.ComputeDocumentTotals(items, decimal.Zero, decimal.Zero)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromFloat(10.00)),
		"cada línea se redondea a 2 decimales antes de sumar")
}

func TestComputeDocumentTotals_SinItems(t *testing.T) {
	totals := pricing.ComputeDocumentTotals(nil, decimal.NewFromFloat(0.02), decimal.NewFromFloat(0.15))
	assert.True(t, totals.TotalAmount.IsZero(), "documento vacío tiene total cero")
}

func TestLineTotal(t *testing.T) {
	got := pricing.LineTotal(decimal.NewFromFloat(2.5), decimal.NewFromFloat(3.999))
	assert.True(t, got.Equal(decimal.NewFromFloat(10.00)), "2.5 × 3.999 = 9.9975 → 10.00")
}
