package billing

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
	"github.com/tu-usuario/backoffice-pro/internal/domain/payments"
	"github.com/tu-usuario/backoffice-pro/internal/domain/pricing"
	"github.com/tu-usuario/backoffice-pro/internal/domain/repository"
)

// InvoiceUseCase maneja el ciclo de vida financiero de las facturas: crear
// con totales derivados, registrar abonos (historial solo-crece) y derivar
// estado desde los totales en cada escritura. payments.DeriveStatus es la
// única autoridad de estado: ningún camino de escritura lo fija a mano.
type InvoiceUseCase struct {
	txRunner     BillingTxRunner
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(txRunner BillingTxRunner, invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceUseCase {
	return &InvoiceUseCase{txRunner: txRunner, invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

// CreateInvoice crea la factura: resuelve precios unitarios por unidad
// elegida, calcula totales con las tasas de la empresa y, si viene un pago,
// lo registra en el mismo guardado. Todo dentro de una transacción.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, companyID, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	invoiceID := uuid.New().String()
	var inv *entity.Invoice
	var items []*entity.InvoiceItem
	var history []*entity.PaymentRecord

	err := uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		companyRepo repository.CompanyRepository,
	) error {
		customer, err := customerRepo.GetByID(in.CustomerID)
		if err != nil || customer == nil {
			return domain.ErrNotFound
		}
		if customer.CompanyID != companyID {
			return domain.ErrForbidden
		}
		// Tasas de documento de la empresa: se leen una vez y se pasan
		// explícitas al motor de precios.
		company, err := companyRepo.GetByID(companyID)
		if err != nil || company == nil {
			return domain.ErrNotFound
		}

		items = items[:0]
		lines := make([]pricing.LineItem, 0, len(in.Items))
		for _, itReq := range in.Items {
			if itReq.ProductID == "" || itReq.Quantity.IsNegative() || itReq.UnitPrice.IsNegative() {
				return domain.ErrInvalidInput
			}
			product, err := productRepo.GetByID(itReq.ProductID)
			if err != nil || product == nil {
				return domain.ErrNotFound
			}
			if product.CompanyID != companyID {
				return domain.ErrForbidden
			}
			kind, err := pricing.ParseUnitKind(itReq.Unit)
			if err != nil {
				return err
			}
			unitPrice := itReq.UnitPrice
			unitType := unitLabel(product, kind)
			if unitPrice.IsZero() {
				// Precio por defecto: precio + impuesto al consumo de la unidad
				// elegida (el tax/IVA de documento va aparte, sobre el subtotal).
				// Si la unidad no está configurada se cae a base.
				up, used := pricing.ResolveUnitPriceOrBase(product, kind)
				unitPrice = up.Price.Add(up.Excise)
				unitType = unitLabel(product, used)
			}
			item := &entity.InvoiceItem{
				ID:          uuid.New().String(),
				InvoiceID:   invoiceID,
				ProductID:   product.ID,
				Description: itemDescription(itReq.Description, product.Name),
				Quantity:    itReq.Quantity,
				UnitPrice:   unitPrice,
				UnitType:    unitType,
				Total:       pricing.LineTotal(itReq.Quantity, unitPrice),
			}
			items = append(items, item)
			lines = append(lines, pricing.LineItem{Quantity: itReq.Quantity, UnitPrice: unitPrice})
		}

		totals := pricing.ComputeDocumentTotals(lines, company.TaxRate, company.VATRate)

		number := in.Number
		if number == "" {
			number = fmt.Sprintf("INV-%d", now.Unix())
		}
		inv = &entity.Invoice{
			ID:               invoiceID,
			CompanyID:        companyID,
			CustomerID:       in.CustomerID,
			Number:           number,
			Date:             now,
			DueDate:          in.DueDate,
			Subtotal:         totals.Subtotal,
			TaxAmount:        totals.TaxAmount,
			VATAmount:        totals.VATAmount,
			TotalAmount:      totals.TotalAmount,
			AmountPaid:       decimal.Zero,
			RemainingBalance: totals.TotalAmount,
			Notes:            in.Notes,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		// Pago inicial opcional en el mismo guardado.
		if in.Payment != nil {
			record, err := uc.settlePayment(inv, *in.Payment, now)
			if err != nil {
				return err
			}
			if record != nil {
				history = append(history, record)
			}
		}
		inv.Status = payments.DeriveStatus(inv.TotalAmount, inv.AmountPaid, inv.RemainingBalance, inv.DueDate, false, now)

		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range items {
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		for _, record := range history {
			if err := invoiceRepo.AppendPaymentRecord(record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items, history), nil
}

// RecordPayment aplica una instrucción de pago sobre una factura existente.
// La fila se bloquea (GetForUpdate), el delta se acumula, el historial solo
// crece y el estado se re-deriva. Un abono inválido aborta la transacción
// completa: la factura queda sin cambios.
func (uc *InvoiceUseCase) RecordPayment(ctx context.Context, companyID, invoiceID string, in dto.RecordPaymentRequest) (*dto.InvoiceResponse, error) {
	now := time.Now()
	var inv *entity.Invoice
	var items []*entity.InvoiceItem
	var history []*entity.PaymentRecord

	err := uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.CustomerRepository,
		_ repository.ProductRepository,
		_ repository.CompanyRepository,
	) error {
		var err error
		inv, err = invoiceRepo.GetForUpdate(invoiceID)
		if err != nil || inv == nil {
			return domain.ErrNotFound
		}
		if inv.CompanyID != companyID {
			return domain.ErrForbidden
		}
		if inv.Status == entity.InvoiceStatusCancelled {
			return domain.ErrConflict
		}

		record, err := uc.settlePayment(inv, in.Payment, now)
		if err != nil {
			return err
		}
		inv.Status = payments.DeriveStatus(inv.TotalAmount, inv.AmountPaid, inv.RemainingBalance, inv.DueDate, false, now)
		inv.UpdatedAt = now

		if record != nil {
			if err := invoiceRepo.AppendPaymentRecord(record); err != nil {
				return err
			}
		}
		if err := invoiceRepo.Update(inv); err != nil {
			return err
		}
		items, _ = invoiceRepo.GetItemsByInvoiceID(invoiceID)
		history, _ = invoiceRepo.GetPaymentHistory(invoiceID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items, history), nil
}

// settlePayment aplica la instrucción de pago sobre la factura en memoria:
// delta acumulado, saldo recompuesto y verificación del invariante
// pagado + saldo == total. Una violación es error de lógica: se registra y
// se recompone el saldo, nunca se propaga corrupto.
func (uc *InvoiceUseCase) settlePayment(inv *entity.Invoice, in dto.PaymentRequest, now time.Time) (*entity.PaymentRecord, error) {
	res, err := payments.ApplyPayment(inv, payments.PaymentInstruction{
		ProcessingStatus: in.ProcessingStatus,
		PartialAmount:    in.PartialAmount,
		PaymentDate:      in.PaymentDate,
		PaymentMethod:    in.PaymentMethod,
		VoucherNumber:    in.VoucherNumber,
		BankName:         in.BankName,
		BankAccount:      in.BankAccount,
	})
	if err != nil {
		return nil, err
	}
	inv.AmountPaid = inv.AmountPaid.Add(res.Delta)
	inv.RemainingBalance = inv.TotalAmount.Sub(inv.AmountPaid)
	if !payments.CheckBalance(inv) {
		log.Error().
			Str("invoice_id", inv.ID).
			Str("amount_paid", inv.AmountPaid.String()).
			Str("remaining", inv.RemainingBalance.String()).
			Str("total", inv.TotalAmount.String()).
			Msg("invariante de saldo violado; recomponiendo remaining_balance")
		inv.RemainingBalance = inv.TotalAmount.Sub(inv.AmountPaid)
	}
	return res.Record, nil
}

// CancelInvoice marca la factura como cancelada (terminal, prima sobre todo
// el cálculo de estado).
func (uc *InvoiceUseCase) CancelInvoice(ctx context.Context, companyID, invoiceID string) (*dto.InvoiceResponse, error) {
	now := time.Now()
	var inv *entity.Invoice
	err := uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.CustomerRepository,
		_ repository.ProductRepository,
		_ repository.CompanyRepository,
	) error {
		var err error
		inv, err = invoiceRepo.GetForUpdate(invoiceID)
		if err != nil || inv == nil {
			return domain.ErrNotFound
		}
		if inv.CompanyID != companyID {
			return domain.ErrForbidden
		}
		inv.Status = payments.DeriveStatus(inv.TotalAmount, inv.AmountPaid, inv.RemainingBalance, inv.DueDate, true, now)
		inv.UpdatedAt = now
		return invoiceRepo.Update(inv)
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, nil, nil), nil
}

// GetInvoice obtiene una factura con líneas e historial de pagos.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, companyID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	history, err := uc.invoiceRepo.GetPaymentHistory(id)
	if err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(inv, items, history)
	if customer, _ := uc.customerRepo.GetByID(inv.CustomerID); customer != nil {
		resp.CustomerName = customer.Name
	}
	return resp, nil
}

// ListInvoices lista cabeceras de factura por empresa.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, companyID string, limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.InvoiceListResponse{
		Items: make([]dto.InvoiceResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, inv := range list {
		out.Items = append(out.Items, *toInvoiceResponse(inv, nil, nil))
	}
	return out, nil
}

func itemDescription(requested, productName string) string {
	if requested != "" {
		return requested
	}
	return productName
}

// unitLabel devuelve la etiqueta de unidad para la línea según la unidad
// efectivamente usada.
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

func toInvoiceResponse(inv *entity.Invoice, items []*entity.InvoiceItem, history []*entity.PaymentRecord) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	resp := &dto.InvoiceResponse{
		ID:               inv.ID,
		CompanyID:        inv.CompanyID,
		CustomerID:       inv.CustomerID,
		Number:           inv.Number,
		Date:             inv.Date,
		DueDate:          inv.DueDate,
		Subtotal:         inv.Subtotal,
		TaxAmount:        inv.TaxAmount,
		VATAmount:        inv.VATAmount,
		TotalAmount:      inv.TotalAmount,
		AmountPaid:       inv.AmountPaid,
		RemainingBalance: inv.RemainingBalance,
		Status:           inv.Status,
		Notes:            inv.Notes,
		Items:            make([]dto.InvoiceItemResponse, 0, len(items)),
		PaymentHistory:   make([]dto.PaymentRecordResponse, 0, len(history)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			UnitType:    it.UnitType,
			Total:       it.Total,
		})
	}
	for _, r := range history {
		resp.PaymentHistory = append(resp.PaymentHistory, dto.PaymentRecordResponse{
			ID:            r.ID,
			PaymentDate:   r.PaymentDate,
			Amount:        r.Amount,
			Status:        r.Status,
			PaymentMethod: r.PaymentMethod,
			VoucherNumber: r.VoucherNumber,
			BankName:      r.BankName,
			BankAccount:   r.BankAccount,
		})
	}
	return resp
}
