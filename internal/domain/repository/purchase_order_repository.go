package repository

import "github.com/tu-usuario/backoffice-pro/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de
// compra y sus líneas.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder) error
	// Update actualiza cabecera (estado, totales, notas).
	Update(po *entity.PurchaseOrder) error
	// UpdateItemReceived actualiza el acumulado recibido de una línea.
	UpdateItemReceived(item *entity.PurchaseOrderItem) error
	// GetForUpdate bloquea la cabecera (SELECT FOR UPDATE) y carga las líneas.
	GetForUpdate(id string) (*entity.PurchaseOrder, error)
	GetByID(id string) (*entity.PurchaseOrder, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.PurchaseOrder, error)
}
