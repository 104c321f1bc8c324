package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/backoffice-pro/internal/application/billing"
	"github.com/tu-usuario/backoffice-pro/internal/application/inventory"
	"github.com/tu-usuario/backoffice-pro/internal/application/purchasing"
	"github.com/tu-usuario/backoffice-pro/internal/domain/repository"
)

// Ensure TxRunner implements los puertos transaccionales de la aplicación.
var _ billing.BillingTxRunner = (*TxRunner)(nil)
var _ purchasing.PurchasingTxRunner = (*TxRunner)(nil)
var _ inventory.InventoryTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunBilling inicia una transacción con los repos de facturación y hace
// Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invoiceRepo := NewInvoiceRepository(tx)
	customerRepo := NewCustomerRepository(tx)
	productRepo := NewProductRepository(tx)
	companyRepo := NewCompanyRepository(tx)

	if err := fn(invoiceRepo, customerRepo, productRepo, companyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchasing inicia una transacción con los repos de compras y stock
// (recepción de órdenes: orden, niveles y auditoría en una sola tx).
func (r *TxRunner) RunPurchasing(ctx context.Context, fn func(
	poRepo repository.PurchaseOrderRepository,
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	poRepo := NewPurchaseOrderRepository(tx)
	stockRepo := NewStockRepository(tx)
	movementRepo := NewStockMovementRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(poRepo, stockRepo, movementRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunInventory inicia una transacción con los repos de stock (ajustes
// manuales).
func (r *TxRunner) RunInventory(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockRepository(tx)
	movementRepo := NewStockMovementRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(stockRepo, movementRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
