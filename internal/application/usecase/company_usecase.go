package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/backoffice-pro/internal/application/dto"
	"github.com/tu-usuario/backoffice-pro/internal/domain"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
	"github.com/tu-usuario/backoffice-pro/internal/domain/repository"
)

// CompanyUseCase maneja empresas y sus tasas de documento.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// CreateCompany registra una empresa. Las tasas van como fracción
// (0.15 = 15%) y aplican a todos los documentos de la empresa.
func (uc *CompanyUseCase) CreateCompany(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TaxRate.IsNegative() || in.VATRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		TaxRate:   in.TaxRate,
		VATRate:   in.VATRate,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetCompany obtiene una empresa por ID.
func (uc *CompanyUseCase) GetCompany(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// UpdateRates actualiza las tasas de documento de la empresa. Solo afecta
// documentos futuros: los totales ya persistidos no se recalculan.
func (uc *CompanyUseCase) UpdateRates(ctx context.Context, companyID string, in dto.UpdateCompanyRatesRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	if in.TaxRate != nil {
		if in.TaxRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		company.TaxRate = *in.TaxRate
	}
	if in.VATRate != nil {
		if in.VATRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		company.VATRate = *in.VATRate
	}
	company.UpdatedAt = time.Now()
	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		TaxRate:   c.TaxRate,
		VATRate:   c.VATRate,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}
