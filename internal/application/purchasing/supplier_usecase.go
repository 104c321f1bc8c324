package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/backoffice-pro/internal/application/dto"
	"github.com/tu-usuario/backoffice-pro/internal/domain"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
	"github.com/tu-usuario/backoffice-pro/internal/domain/repository"
)

// SupplierUseCase maneja el CRUD de proveedores de la empresa.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// CreateSupplier registra un proveedor nuevo para la empresa.
func (uc *SupplierUseCase) CreateSupplier(ctx context.Context, companyID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetSupplier obtiene un proveedor por ID verificando la empresa.
func (uc *SupplierUseCase) GetSupplier(ctx context.Context, companyID, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toSupplierResponse(supplier), nil
}

// ListSuppliers lista los proveedores de la empresa.
func (uc *SupplierUseCase) ListSuppliers(ctx context.Context, companyID string, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.supplierRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SupplierListResponse{
		Items: make([]dto.SupplierResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, s := range list {
		out.Items = append(out.Items, *toSupplierResponse(s))
	}
	return out, nil
}

// UpdateSupplier actualiza los datos de contacto de un proveedor.
func (uc *SupplierUseCase) UpdateSupplier(ctx context.Context, companyID, id string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	supplier.Name = in.Name
	supplier.TaxID = in.TaxID
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	supplier.Address = in.Address
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// DeleteSupplier elimina un proveedor.
func (uc *SupplierUseCase) DeleteSupplier(ctx context.Context, companyID, id string) error {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil || supplier == nil {
		return domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.supplierRepo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		TaxID:     s.TaxID,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
}
