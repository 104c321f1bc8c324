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

// WarehouseUseCase maneja el CRUD de bodegas.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo}
}

// CreateWarehouse registra una bodega para la empresa.
func (uc *WarehouseUseCase) CreateWarehouse(ctx context.Context, companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetWarehouse obtiene una bodega verificando la empresa.
func (uc *WarehouseUseCase) GetWarehouse(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil || warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if warehouse.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toWarehouseResponse(warehouse), nil
}

// ListWarehouses lista las bodegas de la empresa.
func (uc *WarehouseUseCase) ListWarehouses(ctx context.Context, companyID string, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.warehouseRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.WarehouseListResponse{
		Items: make([]dto.WarehouseResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, w := range list {
		out.Items = append(out.Items, *toWarehouseResponse(w))
	}
	return out, nil
}

// UpdateWarehouse actualiza nombre y dirección de una bodega.
func (uc *WarehouseUseCase) UpdateWarehouse(ctx context.Context, companyID, id string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil || warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if warehouse.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	warehouse.Name = in.Name
	warehouse.Address = in.Address
	warehouse.UpdatedAt = time.Now()
	if err := uc.warehouseRepo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// DeleteWarehouse elimina una bodega.
func (uc *WarehouseUseCase) DeleteWarehouse(ctx context.Context, companyID, id string) error {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil || warehouse == nil {
		return domain.ErrNotFound
	}
	if warehouse.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.warehouseRepo.Delete(id)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		Name:      w.Name,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
	}
}
