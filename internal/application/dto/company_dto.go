package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name    string          `json:"name" validate:"required,min=1,max=200"`
	TaxID   string          `json:"tax_id"`
	Address string          `json:"address"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email" validate:"omitempty,email"`
	TaxRate decimal.Decimal `json:"tax_rate"`
	VATRate decimal.Decimal `json:"vat_rate"`
}

// UpdateCompanyRatesRequest actualiza las tasas de documento de la empresa.
// Fracciones (0.15 = 15%).
type UpdateCompanyRatesRequest struct {
	TaxRate *decimal.Decimal `json:"tax_rate"`
	VATRate *decimal.Decimal `json:"vat_rate"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	TaxID     string          `json:"tax_id"`
	Address   string          `json:"address"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	VATRate   decimal.Decimal `json:"vat_rate"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
