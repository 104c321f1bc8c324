package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/backoffice-pro/internal/domain"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
	"github.com/tu-usuario/backoffice-pro/internal/domain/pricing"
)

// Producto de prueba: cartón de 24 piezas que se vende también por caja de
// 12 cartones.
func buildCartonProduct() *entity.Product {
	return &entity.Product{
		ID:                    "p-1",
		SKU:                   "CART-001",
		UnitType:              "Cartons",
		BasePrice:             decimal.NewFromFloat(7.00),
		ExciseTax:             decimal.NewFromFloat(0.10),
		PiecesInBaseUnit:      24,
		PackagingUnit:         "Box",
		ItemsPerPackagingUnit: 12,
	}
}

func TestResolveUnitPrice_Base(t *testing.T) {
	p := buildCartonProduct()
	up, err := pricing.ResolveUnitPrice(p, pricing.UnitBase)
	require.NoError(t, err)
	assert.True(t, up.Price.Equal(decimal.NewFromFloat(7.00)), "base debe devolver el precio canónico sin cambios")
	assert.True(t, up.Excise.Equal(decimal.NewFromFloat(0.10)))
}

func TestResolveUnitPrice_Packaging(t *testing.T) {
	p := buildCartonProduct()
	up, err := pricing.ResolveUnitPrice(p, pricing.UnitPackaging)
	require.NoError(t, err)
	assert.True(t, up.Price.Equal(decimal.NewFromFloat(84.00)), "empaque = precio base × 12")
	assert.True(t, up.Excise.Equal(decimal.NewFromFloat(1.20)), "impuesto al consumo también se escala × 12")
}

func TestResolveUnitPrice_Piece(t *testing.T) {
	p := buildCartonProduct()
	up, err := pricing.ResolveUnitPrice(p, pricing.UnitPiece)
	require.NoError(t, err)
	// 7.00 / 24 y 0.10 / 24, sin redondeo intermedio
	assert.True(t, up.Price.Equal(decimal.NewFromFloat(7.00).Div(decimal.NewFromInt(24))))
	assert.True(t, up.Excise.Equal(decimal.NewFromFloat(0.10).Div(decimal.NewFromInt(24))))
}

func TestResolveUnitPrice_PackagingNoConfigurado(t *testing.T) {
	p := buildCartonProduct()
	p.PackagingUnit = ""
	p.ItemsPerPackagingUnit = 0
	_, err := pricing.ResolveUnitPrice(p, pricing.UnitPackaging)
	assert.ErrorIs(t, err, domain.ErrUnitNotConfigured,
		"pedir empaque sin empaque configurado debe retornar ErrUnitNotConfigured")
}

func TestResolveUnitPrice_PieceNoConfigurado(t *testing.T) {
	p := buildCartonProduct()
	p.PiecesInBaseUnit = 0
	_, err := pricing.ResolveUnitPrice(p, pricing.UnitPiece)
	assert.ErrorIs(t, err, domain.ErrUnitNotConfigured)
}

// La resolución debe ser determinista: dos llamadas con el mismo producto
// producen el mismo resultado.
func TestResolveUnitPrice_Determinista(t *testing.T) {
	p := buildCartonProduct()
	a, err1 := pricing.ResolveUnitPrice(p, pricing.UnitPackaging)
	b, err2 := pricing.ResolveUnitPrice(p, pricing.UnitPackaging)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, a.Price.Equal(b.Price))
	assert.True(t, a.Excise.Equal(b.Excise))
}

func TestResolveUnitPriceOrBase_CaeABase(t *testing.T) {
	p := buildCartonProduct()
	p.PackagingUnit = ""
	p.ItemsPerPackagingUnit = 0
	up, used := pricing.ResolveUnitPriceOrBase(p, pricing.UnitPackaging)
	assert.Equal(t, pricing.UnitBase, used, "sin empaque configurado debe caer a base")
	assert.True(t, up.Price.Equal(p.BasePrice))
}

func TestParseUnitKind(t *testing.T) {
	cases := []struct {
		in   string
		want pricing.UnitKind
	}{
		{"", pricing.UnitBase},
		{"base", pricing.UnitBase},
		{"piece", pricing.UnitPiece},
		{"packaging", pricing.UnitPackaging},
	}
	for _, tc := range cases {
		got, err := pricing.ParseUnitKind(tc.in)
		require.NoError(t, err, "etiqueta %q debe parsear", tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := pricing.ParseUnitKind("pallet")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "etiqueta desconocida debe rechazarse")
}
