package purchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/backoffice-pro/internal/application/dto"
	"github.com/tu-usuario/backoffice-pro/internal/domain"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
	"github.com/tu-usuario/backoffice-pro/internal/domain/inventory"
	"github.com/tu-usuario/backoffice-pro/internal/domain/pricing"
	purchdomain "github.com/tu-usuario/backoffice-pro/internal/domain/purchasing"
	"github.com/tu-usuario/backoffice-pro/internal/domain/repository"
)

// OrderUseCase maneja el ciclo de vida de las órdenes de compra. La
// recepción concilia por evento: cada cantidad recibida acumula sobre su
// línea, postea stock en la bodega destino y deja movimiento de auditoría,
// todo en una transacción.
type OrderUseCase struct {
	txRunner     PurchasingTxRunner
	poRepo       repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	companyRepo  repository.CompanyRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner PurchasingTxRunner,
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:     txRunner,
		poRepo:       poRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		companyRepo:  companyRepo,
	}
}

// CreateOrder crea una orden de compra en Draft (o Sent si Send=true).
// Los totales de compra llevan solo tax de documento: el IVA de venta no
// aplica a órdenes a proveedor.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, companyID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	poID := uuid.New().String()
	items := make([]*entity.PurchaseOrderItem, 0, len(in.Items))
	lines := make([]pricing.LineItem, 0, len(in.Items))
	for _, itReq := range in.Items {
		if itReq.ProductID == "" || !itReq.Quantity.IsPositive() || itReq.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(itReq.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
		kind, err := pricing.ParseUnitKind(itReq.Unit)
		if err != nil {
			return nil, err
		}
		unitPrice := itReq.UnitPrice
		unitType := unitLabel(product, kind)
		if unitPrice.IsZero() {
			// Costo por defecto: el precio base de la unidad elegida, sin
			// impuesto al consumo (eso es de venta, no de compra).
			up, used := pricing.ResolveUnitPriceOrBase(product, kind)
			unitPrice = up.Price
			unitType = unitLabel(product, used)
		}
		items = append(items, &entity.PurchaseOrderItem{
			ID:              uuid.New().String(),
			PurchaseOrderID: poID,
			ProductID:       product.ID,
			Description:     itemDescription(itReq.Description, product.Name),
			Quantity:        itReq.Quantity,
			UnitPrice:       unitPrice,
			UnitType:        unitType,
			Total:           pricing.LineTotal(itReq.Quantity, unitPrice),
		})
		lines = append(lines, pricing.LineItem{Quantity: itReq.Quantity, UnitPrice: unitPrice})
	}

	totals := pricing.ComputeDocumentTotals(lines, company.TaxRate, decimal.Zero)

	status := entity.PurchaseOrderStatusDraft
	if in.Send {
		status = entity.PurchaseOrderStatusSent
	}
	number := in.Number
	if number == "" {
		number = fmt.Sprintf("PO-%d", now.Unix())
	}
	po := &entity.PurchaseOrder{
		ID:          poID,
		CompanyID:   companyID,
		SupplierID:  in.SupplierID,
		Number:      number,
		Date:        now,
		Items:       items,
		Subtotal:    totals.Subtotal,
		TaxAmount:   totals.TaxAmount,
		TotalAmount: totals.TotalAmount,
		Status:      status,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.poRepo.Create(po); err != nil {
		return nil, err
	}
	return toOrderResponse(po), nil
}

// ReceiveOrder aplica un lote de eventos de recepción sobre la orden.
// Por cada evento aplicado acumula la línea, sube el stock de la bodega
// destino y deja un movimiento de auditoría; los eventos inválidos se
// devuelven rechazados sin bloquear al resto. La orden se bloquea
// (GetForUpdate) para serializar recepciones concurrentes.
func (uc *OrderUseCase) ReceiveOrder(ctx context.Context, companyID, orderID, userID string, in dto.ReceiveOrderRequest) (*dto.ReceiveOrderResponse, error) {
	if len(in.Events) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var po *entity.PurchaseOrder
	var rejected []purchdomain.RejectedReceipt
	var applied []purchdomain.ReceiptEvent

	err := uc.txRunner.RunPurchasing(ctx, func(
		poRepo repository.PurchaseOrderRepository,
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		var err error
		po, err = poRepo.GetForUpdate(orderID)
		if err != nil || po == nil {
			return domain.ErrNotFound
		}
		if po.CompanyID != companyID {
			return domain.ErrForbidden
		}
		if po.Status == entity.PurchaseOrderStatusCancelled {
			return domain.ErrConflict
		}

		events := make([]purchdomain.ReceiptEvent, 0, len(in.Events))
		for _, ev := range in.Events {
			productID := ""
			if line := po.FindItem(ev.POItemID); line != nil {
				productID = line.ProductID
			}
			events = append(events, purchdomain.ReceiptEvent{
				POItemID:    ev.POItemID,
				ProductID:   productID,
				WarehouseID: ev.WarehouseID,
				Quantity:    ev.Quantity,
			})
		}

		applied, rejected = purchdomain.ApplyReceipts(po, events)

		for _, ev := range applied {
			stock, err := stockRepo.GetForUpdate(ev.ProductID, ev.WarehouseID)
			if err != nil {
				return err
			}
			if stock == nil {
				stock = &entity.Stock{ProductID: ev.ProductID, WarehouseID: ev.WarehouseID}
			}
			stock.Quantity = inventory.AdjustLevel(stock.Quantity, ev.Quantity)
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
			if err := movementRepo.Create(&entity.StockMovement{
				ID:          uuid.New().String(),
				CompanyID:   companyID,
				ProductID:   ev.ProductID,
				WarehouseID: ev.WarehouseID,
				Type:        entity.MovementTypeReceipt,
				Quantity:    ev.Quantity,
				Reference:   po.Number,
				CreatedAt:   now,
				CreatedBy:   userID,
			}); err != nil {
				return err
			}
		}
		for _, it := range po.Items {
			if err := poRepo.UpdateItemReceived(it); err != nil {
				return err
			}
		}
		po.UpdatedAt = now
		return poRepo.Update(po)
	})
	if err != nil {
		return nil, err
	}

	if len(rejected) > 0 {
		log.Warn().
			Str("purchase_order_id", orderID).
			Int("applied", len(applied)).
			Int("rejected", len(rejected)).
			Msg("recepción con eventos rechazados")
	}
	resp := &dto.ReceiveOrderResponse{
		Order:   *toOrderResponse(po),
		Applied: len(applied),
	}
	for _, r := range rejected {
		resp.Rejected = append(resp.Rejected, dto.RejectedReceiptResponse{
			POItemID:    r.Event.POItemID,
			WarehouseID: r.Event.WarehouseID,
			Quantity:    r.Event.Quantity,
			Reason:      r.Reason.Error(),
		})
	}
	return resp, nil
}

// CancelOrder cancela la orden. Solo permitido desde Draft o Sent; una
// orden con recepciones posteadas devuelve ErrOrderNotCancellable.
func (uc *OrderUseCase) CancelOrder(ctx context.Context, companyID, orderID string) (*dto.PurchaseOrderResponse, error) {
	now := time.Now()
	var po *entity.PurchaseOrder
	err := uc.txRunner.RunPurchasing(ctx, func(
		poRepo repository.PurchaseOrderRepository,
		_ repository.StockRepository,
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		var err error
		po, err = poRepo.GetForUpdate(orderID)
		if err != nil || po == nil {
			return domain.ErrNotFound
		}
		if po.CompanyID != companyID {
			return domain.ErrForbidden
		}
		if err := purchdomain.Cancel(po); err != nil {
			return err
		}
		po.UpdatedAt = now
		return poRepo.Update(po)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(po), nil
}

// GetOrder obtiene una orden con sus líneas.
func (uc *OrderUseCase) GetOrder(ctx context.Context, companyID, id string) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.poRepo.GetByID(id)
	if err != nil || po == nil {
		return nil, domain.ErrNotFound
	}
	if po.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(po), nil
}

// ListOrders lista órdenes por empresa.
func (uc *OrderUseCase) ListOrders(ctx context.Context, companyID string, limit, offset int) (*dto.PurchaseOrderListResponse, error) {
	list, err := uc.poRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchaseOrderListResponse{
		Items: make([]dto.PurchaseOrderResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, po := range list {
		out.Items = append(out.Items, *toOrderResponse(po))
	}
	return out, nil
}

func itemDescription(requested, productName string) string {
	if requested != "" {
		return requested
	}
	return productName
}

func unitLabel(p *entity.Product, kind pricing.UnitKind) string {
	switch kind {
	case pricing.UnitPiece:
		return entity.UnitTypePCS
	case pricing.UnitPackaging:
		return p.PackagingUnit
	default:
		return p.UnitType
	}
}

func toOrderResponse(po *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	if po == nil {
		return nil
	}
	resp := &dto.PurchaseOrderResponse{
		ID:          po.ID,
		CompanyID:   po.CompanyID,
		SupplierID:  po.SupplierID,
		Number:      po.Number,
		Date:        po.Date,
		Subtotal:    po.Subtotal,
		TaxAmount:   po.TaxAmount,
		TotalAmount: po.TotalAmount,
		Status:      po.Status,
		Notes:       po.Notes,
		Items:       make([]dto.PurchaseOrderItemResponse, 0, len(po.Items)),
	}
	for _, it := range po.Items {
		resp.Items = append(resp.Items, dto.PurchaseOrderItemResponse{
			ID:               it.ID,
			ProductID:        it.ProductID,
			Description:      it.Description,
			Quantity:         it.Quantity,
			QuantityReceived: it.QuantityReceived,
			UnitPrice:        it.UnitPrice,
			UnitType:         it.UnitType,
			Total:            it.Total,
		})
	}
	return resp
}
