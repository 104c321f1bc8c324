package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitTypePCS es la unidad base "pieza". Un producto cuya unidad base ya es
// PCS no puede contener sub-piezas (PiecesInBaseUnit debe ser 1).
const UnitTypePCS = "PCS"

// Product representa un producto del catálogo. BasePrice y ExciseTax son
// montos por una unidad base (UnitType); las conversiones a pieza o unidad
// de empaque se derivan con los factores PiecesInBaseUnit e
// ItemsPerPackagingUnit. DiscountRate es porcentaje y se aplica al final,
// después del IVA.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	BasePrice   decimal.Decimal // precio de venta por unidad base
	ExciseTax   decimal.Decimal // impuesto al consumo por unidad base
	UnitType    string          // etiqueta de la unidad base: "PCS", "Cartons", "Kgs", ...
	// PiecesInBaseUnit: cuántas piezas contiene una unidad base (0 = no
	// configurado). Solo tiene sentido cuando la unidad base es un empaque.
	PiecesInBaseUnit int64
	// PackagingUnit + ItemsPerPackagingUnit: unidad de venta mayor opcional y
	// cuántas unidades base contiene (0 = no configurada).
	PackagingUnit         string
	ItemsPerPackagingUnit int64
	DiscountRate          decimal.Decimal // porcentaje (0-100)
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasPackagingUnit indica si el producto tiene unidad de empaque configurada.
func (p *Product) HasPackagingUnit() bool {
	return p.PackagingUnit != "" && p.ItemsPerPackagingUnit > 0
}

// HasPieceUnit indica si el producto puede venderse por pieza suelta.
func (p *Product) HasPieceUnit() bool {
	return p.PiecesInBaseUnit > 0
}
