package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/backoffice-pro/internal/domain"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
	"github.com/tu-usuario/backoffice-pro/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository (usable con
// pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx
// (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const purchaseOrderColumns = `id, company_id, supplier_id, number, date, subtotal, tax_amount, total_amount, status, notes, created_at, updated_at`

// Create persiste la orden con sus líneas.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	if po.ID == "" {
		po.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		po.ID, po.CompanyID, po.SupplierID, po.Number, po.Date, po.Subtotal,
		po.TaxAmount, po.TotalAmount, po.Status, po.Notes, po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	for _, it := range po.Items {
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		itemQuery := `
			INSERT INTO purchase_order_items (id, purchase_order_id, product_id, description, quantity, quantity_received, unit_price, unit_type, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		_, err := r.q.Exec(context.Background(), itemQuery,
			it.ID, po.ID, it.ProductID, it.Description, it.Quantity,
			it.QuantityReceived, it.UnitPrice, it.UnitType, it.Total,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order item: %w", err)
		}
	}
	return nil
}

// Update actualiza cabecera (estado, notas).
func (r *PurchaseOrderRepo) Update(po *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET status = $2, notes = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, po.ID, po.Status, po.Notes, po.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// UpdateItemReceived actualiza el acumulado recibido de una línea.
func (r *PurchaseOrderRepo) UpdateItemReceived(item *entity.PurchaseOrderItem) error {
	query := `UPDATE purchase_order_items SET quantity_received = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.QuantityReceived)
	if err != nil {
		return fmt.Errorf("update purchase order item: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) loadItems(po *entity.PurchaseOrder) error {
	query := `
		SELECT id, purchase_order_id, product_id, description, quantity, quantity_received, unit_price, unit_type, total
		FROM purchase_order_items WHERE purchase_order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, po.ID)
	if err != nil {
		return fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.ID, &it.PurchaseOrderID, &it.ProductID, &it.Description,
			&it.Quantity, &it.QuantityReceived, &it.UnitPrice, &it.UnitType, &it.Total); err != nil {
			return fmt.Errorf("scan purchase order item: %w", err)
		}
		po.Items = append(po.Items, &it)
	}
	return rows.Err()
}

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := row.Scan(
		&po.ID, &po.CompanyID, &po.SupplierID, &po.Number, &po.Date, &po.Subtotal,
		&po.TaxAmount, &po.TotalAmount, &po.Status, &po.Notes, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &po, nil
}

// GetForUpdate obtiene la orden bloqueando la cabecera (SELECT FOR UPDATE)
// y carga las líneas. Serializa recepciones concurrentes sobre la misma
// orden.
func (r *PurchaseOrderRepo) GetForUpdate(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1 FOR UPDATE`
	po, err := scanPurchaseOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order for update: %w", err)
	}
	if err := r.loadItems(po); err != nil {
		return nil, err
	}
	return po, nil
}

// GetByID obtiene la orden con sus líneas.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1`
	po, err := scanPurchaseOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if err := r.loadItems(po); err != nil {
		return nil, err
	}
	return po, nil
}

// ListByCompany lista órdenes por empresa (solo cabeceras), más recientes
// primero.
func (r *PurchaseOrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, po)
	}
	return list, rows.Err()
}
