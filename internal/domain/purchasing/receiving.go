// Package purchasing implementa la conciliación de recepciones de órdenes de
// compra: acumulación de cantidades recibidas por línea y derivación de
// estado de la orden.
package purchasing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/backoffice-pro/internal/domain"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
)

// ReceiptEvent es un evento de recepción: una cantidad recién recibida de
// una línea de la orden, destinada a una bodega.
type ReceiptEvent struct {
	POItemID    string
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal // cantidad recién recibida (delta, no acumulado)
}

// RejectedReceipt es un evento rechazado con su causa, para corrección del
// usuario. El rechazo es por evento: no aborta el lote.
type RejectedReceipt struct {
	Event  ReceiptEvent
	Reason error
}

// ApplyReceipts aplica un lote de eventos de recepción sobre la orden:
// acumula QuantityReceived por línea (suma, nunca sobrescribe) y re-deriva
// el estado de la orden. Eventos con línea desconocida o cantidad no
// positiva se rechazan individualmente y el resto del lote se aplica igual
// — un renglón mal digitado no bloquea las líneas legítimas.
//
// La acumulación NO es idempotente a propósito: aplicar dos veces el mismo
// evento suma dos veces. Un reenvío duplicado es error del caller, no se
// absorbe en silencio.
//
// Devuelve los eventos aplicados (para postear stock) y los rechazados.
func ApplyReceipts(po *entity.PurchaseOrder, events []ReceiptEvent) (applied []ReceiptEvent, rejected []RejectedReceipt) {
	for _, ev := range events {
		if !ev.Quantity.IsPositive() {
			rejected = append(rejected, RejectedReceipt{Event: ev, Reason: domain.ErrNonPositiveReceiptQuantity})
			continue
		}
		line := po.FindItem(ev.POItemID)
		if line == nil {
			rejected = append(rejected, RejectedReceipt{Event: ev, Reason: domain.ErrUnknownLineItem})
			continue
		}
		line.QuantityReceived = line.QuantityReceived.Add(ev.Quantity)
		applied = append(applied, ev)
	}
	po.Status = DeriveOrderStatus(po)
	return applied, rejected
}

// DeriveOrderStatus re-deriva el estado de la orden desde las cantidades
// acumuladas:
//
//   - todas las líneas con recibido ≥ ordenado → Fully Received
//   - al menos una línea con recibido > 0     → Partially Received
//   - ninguna recepción                        → estado actual (Draft/Sent)
//
// Cancelled se preserva: es terminal y solo lo fija Cancel.
func DeriveOrderStatus(po *entity.PurchaseOrder) string {
	if po.Status == entity.PurchaseOrderStatusCancelled {
		return entity.PurchaseOrderStatusCancelled
	}
	if len(po.Items) == 0 {
		return po.Status
	}
	allReceived := true
	anyReceived := false
	for _, it := range po.Items {
		if it.QuantityReceived.IsPositive() {
			anyReceived = true
		}
		if it.QuantityReceived.LessThan(it.Quantity) {
			allReceived = false
		}
	}
	switch {
	case allReceived:
		return entity.PurchaseOrderStatusFullyReceived
	case anyReceived:
		return entity.PurchaseOrderStatusPartiallyReceived
	default:
		return po.Status
	}
}

// Cancel marca la orden como cancelada. Solo permitido desde Draft o Sent:
// una orden con recepciones ya posteadas no puede cancelarse por esta vía
// (no hay política de reversa de stock definida).
func Cancel(po *entity.PurchaseOrder) error {
	if po.Status != entity.PurchaseOrderStatusDraft && po.Status != entity.PurchaseOrderStatusSent {
		return domain.ErrOrderNotCancellable
	}
	po.Status = entity.PurchaseOrderStatusCancelled
	return nil
}
