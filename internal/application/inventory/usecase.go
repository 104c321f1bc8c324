package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/backoffice-pro/internal/application/dto"
	"github.com/tu-usuario/backoffice-pro/internal/domain"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
	stockdomain "github.com/tu-usuario/backoffice-pro/internal/domain/inventory"
	"github.com/tu-usuario/backoffice-pro/internal/domain/repository"
)

// UseCase maneja ajustes manuales de stock y consultas de existencias.
type UseCase struct {
	txRunner     InventoryTxRunner
	stockRepo    repository.StockRepository
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner InventoryTxRunner,
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		productRepo:  productRepo,
	}
}

// AdjustStock aplica un ajuste manual sobre el nivel de una bodega.
// El delta puede ser negativo; el nivel resultante se recorta en cero y el
// movimiento de auditoría registra el delta solicitado, no el recortado.
func (uc *UseCase) AdjustStock(ctx context.Context, companyID, userID string, in dto.AdjustStockRequest) (*dto.StockResponse, error) {
	if in.ProductID == "" || in.WarehouseID == "" || in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var out *entity.Stock

	err := uc.txRunner.RunInventory(ctx, func(
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil || product == nil {
			return domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return domain.ErrForbidden
		}
		stock, err := stockRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if stock == nil {
			stock = &entity.Stock{ProductID: in.ProductID, WarehouseID: in.WarehouseID}
		}
		next := stockdomain.AdjustLevel(stock.Quantity, in.Quantity)
		if next.Sub(stock.Quantity).Cmp(in.Quantity) != 0 {
			log.Warn().
				Str("product_id", in.ProductID).
				Str("warehouse_id", in.WarehouseID).
				Str("requested", in.Quantity.String()).
				Str("level", stock.Quantity.String()).
				Msg("baja de stock recortada en cero")
		}
		stock.Quantity = next
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		if err := movementRepo.Create(&entity.StockMovement{
			ID:          uuid.New().String(),
			CompanyID:   companyID,
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			Type:        entity.MovementTypeAdjustment,
			Quantity:    in.Quantity,
			Notes:       in.Notes,
			CreatedAt:   now,
			CreatedBy:   userID,
		}); err != nil {
			return err
		}
		out = stock
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStockResponse(out), nil
}

// GetStock consulta la existencia actual de un producto en una bodega.
// Un nivel nunca registrado se reporta como cero, no como error.
func (uc *UseCase) GetStock(ctx context.Context, companyID, productID, warehouseID string) (*dto.StockResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	stock, err := uc.stockRepo.Get(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		stock = &entity.Stock{ProductID: productID, WarehouseID: warehouseID}
	}
	return toStockResponse(stock), nil
}

// ListWarehouseStock lista las existencias de una bodega.
func (uc *UseCase) ListWarehouseStock(ctx context.Context, warehouseID string, limit, offset int) ([]dto.StockResponse, error) {
	list, err := uc.stockRepo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStockResponse(s))
	}
	return out, nil
}

// ListMovements lista el historial de movimientos de un producto.
func (uc *UseCase) ListMovements(ctx context.Context, companyID, productID string, limit, offset int) ([]dto.StockMovementResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.movementRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.StockMovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			WarehouseID: m.WarehouseID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Reference:   m.Reference,
			Notes:       m.Notes,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ProductID:   s.ProductID,
		WarehouseID: s.WarehouseID,
		Quantity:    s.Quantity,
		UpdatedAt:   s.UpdatedAt,
	}
}
