package billing

import (
	"context"

	"github.com/tu-usuario/backoffice-pro/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción con los
// repos de facturación. Cada factura es una unidad de mutación
// independiente: la fila se bloquea con GetForUpdate dentro de fn y no se
// necesita ningún lock cruzado entre documentos.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		companyRepo repository.CompanyRepository,
	) error) error
}
