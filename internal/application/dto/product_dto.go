package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Si UnitType es "PCS", PiecesInBaseUnit debe ser 1 (o venir en 0, que se
// normaliza a 1): una pieza no contiene sub-piezas.
type CreateProductRequest struct {
	SKU                   string          `json:"sku" validate:"required,min=1,max=100"`
	Name                  string          `json:"name" validate:"required,min=1,max=200"`
	Description           string          `json:"description"`
	BasePrice             decimal.Decimal `json:"base_price"`
	ExciseTax             decimal.Decimal `json:"excise_tax"`
	UnitType              string          `json:"unit_type" validate:"required"`
	PiecesInBaseUnit      int64           `json:"pieces_in_base_unit" validate:"omitempty,min=1"`
	PackagingUnit         string          `json:"packaging_unit"`
	ItemsPerPackagingUnit int64           `json:"items_per_packaging_unit" validate:"omitempty,min=1"`
	DiscountRate          decimal.Decimal `json:"discount_rate"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name                  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description           *string          `json:"description"`
	BasePrice             *decimal.Decimal `json:"base_price"`
	ExciseTax             *decimal.Decimal `json:"excise_tax"`
	UnitType              *string          `json:"unit_type"`
	PiecesInBaseUnit      *int64           `json:"pieces_in_base_unit" validate:"omitempty,min=1"`
	PackagingUnit         *string          `json:"packaging_unit"`
	ItemsPerPackagingUnit *int64           `json:"items_per_packaging_unit" validate:"omitempty,min=1"`
	DiscountRate          *decimal.Decimal `json:"discount_rate"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                    string          `json:"id"`
	CompanyID             string          `json:"company_id"`
	SKU                   string          `json:"sku"`
	Name                  string          `json:"name"`
	Description           string          `json:"description"`
	BasePrice             decimal.Decimal `json:"base_price"`
	ExciseTax             decimal.Decimal `json:"excise_tax"`
	UnitType              string          `json:"unit_type"`
	PiecesInBaseUnit      int64           `json:"pieces_in_base_unit,omitempty"`
	PackagingUnit         string          `json:"packaging_unit,omitempty"`
	ItemsPerPackagingUnit int64           `json:"items_per_packaging_unit,omitempty"`
	DiscountRate          decimal.Decimal `json:"discount_rate"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PriceQuoteResponse salida de GET /api/products/:id/price.
// RequestedUnit es la unidad pedida; Unit la efectivamente usada (cae a
// "base" cuando la pedida no está configurada) y Fallback lo indica.
type PriceQuoteResponse struct {
	ProductID     string          `json:"product_id"`
	RequestedUnit string          `json:"requested_unit"`
	Unit          string          `json:"unit"`
	Fallback      bool            `json:"fallback"`
	UnitPrice     decimal.Decimal `json:"unit_price"`   // precio + consumo, sin IVA
	FinalPrice    decimal.Decimal `json:"final_price"`  // con IVA y descuento
	VATRate       decimal.Decimal `json:"vat_rate"`     // porcentaje usado
}
