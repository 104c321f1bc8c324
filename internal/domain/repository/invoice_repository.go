package repository

import "github.com/tu-usuario/backoffice-pro/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para facturas, sus
// líneas y su historial de pagos. El historial solo crece: no hay Update ni
// Delete de PaymentRecord.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	// Update actualiza cabecera y totales (amount_paid, remaining_balance,
	// status); nunca toca el historial de pagos.
	Update(invoice *entity.Invoice) error
	// GetForUpdate bloquea la fila de la factura (SELECT FOR UPDATE) para
	// serializar escrituras sobre el mismo documento.
	GetForUpdate(id string) (*entity.Invoice, error)
	GetByID(id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error)

	AppendPaymentRecord(record *entity.PaymentRecord) error
	GetPaymentHistory(invoiceID string) ([]*entity.PaymentRecord, error)
}
