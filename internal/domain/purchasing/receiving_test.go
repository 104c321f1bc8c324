package purchasing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/backoffice-pro/internal/domain"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
	"github.com/tu-usuario/backoffice-pro/internal/domain/purchasing"
)

// Orden de referencia: una línea de 100 unidades, enviada al proveedor.
func buildOrder() *entity.PurchaseOrder {
	return &entity.PurchaseOrder{
		ID:     "po-1",
		Status: entity.PurchaseOrderStatusSent,
		Items: []*entity.PurchaseOrderItem{
			{
				ID:        "line-1",
				ProductID: "p-1",
				Quantity:  decimal.NewFromInt(100),
			},
		},
	}
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// Recepción de 40 → Partially Received; 60 más → Fully Received.
func TestApplyReceipts_ParcialYLuegoCompleta(t *testing.T) {
	po := buildOrder()

	applied, rejected := purchasing.ApplyReceipts(po, []purchasing.ReceiptEvent{
		{POItemID: "line-1", ProductID: "p-1", WarehouseID: "w-1", Quantity: qty(40)},
	})
	require.Len(t, applied, 1)
	require.Empty(t, rejected)
	assert.True(t, po.Items[0].QuantityReceived.Equal(qty(40)))
	assert.Equal(t, entity.PurchaseOrderStatusPartiallyReceived, po.Status)

	applied, rejected = purchasing.ApplyReceipts(po, []purchasing.ReceiptEvent{
		{POItemID: "line-1", ProductID: "p-1", WarehouseID: "w-1", Quantity: qty(60)},
	})
	require.Len(t, applied, 1)
	require.Empty(t, rejected)
	assert.True(t, po.Items[0].QuantityReceived.Equal(qty(100)),
		"la recepción acumula, nunca sobrescribe")
	assert.Equal(t, entity.PurchaseOrderStatusFullyReceived, po.Status)
}

// La acumulación NO es idempotente a propósito: el mismo evento aplicado dos
// veces suma dos veces. Un reenvío duplicado es error del caller; este test
// documenta la semántica para que nadie la "corrija" por accidente.
func TestApplyReceipts_DuplicadoSumaDosVeces(t *testing.T) {
	po := buildOrder()
	ev := purchasing.ReceiptEvent{POItemID: "line-1", ProductID: "p-1", WarehouseID: "w-1", Quantity: qty(30)}

	purchasing.ApplyReceipts(po, []purchasing.ReceiptEvent{ev})
	purchasing.ApplyReceipts(po, []purchasing.ReceiptEvent{ev})

	assert.True(t, po.Items[0].QuantityReceived.Equal(qty(60)),
		"evento duplicado suma cada vez: no se absorbe en silencio")
}

// Un evento inválido se rechaza individualmente; el resto del lote se aplica.
func TestApplyReceipts_RechazoPorEventoNoAbortaLote(t *testing.T) {
	po := buildOrder()
	po.Items = append(po.Items, &entity.PurchaseOrderItem{
		ID: "line-2", ProductID: "p-2", Quantity: qty(50),
	})

	applied, rejected := purchasing.ApplyReceipts(po, []purchasing.ReceiptEvent{
		{POItemID: "line-1", ProductID: "p-1", WarehouseID: "w-1", Quantity: qty(10)},
		{POItemID: "line-x", ProductID: "p-9", WarehouseID: "w-1", Quantity: qty(5)},  // línea desconocida
		{POItemID: "line-2", ProductID: "p-2", WarehouseID: "w-2", Quantity: qty(0)}, // cantidad no positiva
		{POItemID: "line-2", ProductID: "p-2", WarehouseID: "w-2", Quantity: qty(20)},
	})

	require.Len(t, applied, 2, "los eventos válidos se aplican igual")
	require.Len(t, rejected, 2)
	assert.ErrorIs(t, rejected[0].Reason, domain.ErrUnknownLineItem)
	assert.ErrorIs(t, rejected[1].Reason, domain.ErrNonPositiveReceiptQuantity)
	assert.True(t, po.Items[0].QuantityReceived.Equal(qty(10)))
	assert.True(t, po.Items[1].QuantityReceived.Equal(qty(20)))
	assert.Equal(t, entity.PurchaseOrderStatusPartiallyReceived, po.Status)
}

func TestApplyReceipts_CantidadNegativaRechazada(t *testing.T) {
	po := buildOrder()
	_, rejected := purchasing.ApplyReceipts(po, []purchasing.ReceiptEvent{
		{POItemID: "line-1", ProductID: "p-1", WarehouseID: "w-1", Quantity: qty(-5)},
	})
	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0].Reason, domain.ErrNonPositiveReceiptQuantity)
	assert.True(t, po.Items[0].QuantityReceived.IsZero())
	assert.Equal(t, entity.PurchaseOrderStatusSent, po.Status, "sin recepciones el estado no cambia")
}

// Lote completamente vacío o inválido: el estado queda como estaba.
func TestApplyReceipts_SinEventosValidos_EstadoIntacto(t *testing.T) {
	po := buildOrder()
	po.Status = entity.PurchaseOrderStatusDraft
	applied, _ := purchasing.ApplyReceipts(po, nil)
	assert.Empty(t, applied)
	assert.Equal(t, entity.PurchaseOrderStatusDraft, po.Status)
}

// Recibir de más (sobre-entrega) sigue siendo Fully Received; el exceso no
// se bloquea aquí (QuantityReceived ≤ Quantity es esperado, no forzado).
func TestApplyReceipts_SobreEntrega(t *testing.T) {
	po := buildOrder()
	purchasing.ApplyReceipts(po, []purchasing.ReceiptEvent{
		{POItemID: "line-1", ProductID: "p-1", WarehouseID: "w-1", Quantity: qty(120)},
	})
	assert.True(t, po.Items[0].QuantityReceived.Equal(qty(120)))
	assert.Equal(t, entity.PurchaseOrderStatusFullyReceived, po.Status)
}

func TestDeriveOrderStatus_MultilineaMixta(t *testing.T) {
	po := buildOrder()
	po.Items = append(po.Items, &entity.PurchaseOrderItem{
		ID: "line-2", ProductID: "p-2", Quantity: qty(50), QuantityReceived: qty(50),
	})
	// line-1 sin recibir, line-2 completa → Partially Received
	assert.Equal(t, entity.PurchaseOrderStatusPartiallyReceived, purchasing.DeriveOrderStatus(po))

	po.Items[0].QuantityReceived = qty(100)
	assert.Equal(t, entity.PurchaseOrderStatusFullyReceived, purchasing.DeriveOrderStatus(po))
}

func TestCancel_SoloDesdeDraftOSent(t *testing.T) {
	for _, status := range []string{entity.PurchaseOrderStatusDraft, entity.PurchaseOrderStatusSent} {
		po := buildOrder()
		po.Status = status
		require.NoError(t, purchasing.Cancel(po), "cancelar desde %s debe permitirse", status)
		assert.Equal(t, entity.PurchaseOrderStatusCancelled, po.Status)
	}

	for _, status := range []string{
		entity.PurchaseOrderStatusPartiallyReceived,
		entity.PurchaseOrderStatusFullyReceived,
		entity.PurchaseOrderStatusCancelled,
	} {
		po := buildOrder()
		po.Status = status
		err := purchasing.Cancel(po)
		assert.ErrorIs(t, err, domain.ErrOrderNotCancellable,
			"cancelar desde %s debe rechazarse", status)
	}
}

// Cancelled es terminal: re-derivar estado no lo revive.
func TestDeriveOrderStatus_CancelledEsTerminal(t *testing.T) {
	po := buildOrder()
	po.Status = entity.PurchaseOrderStatusCancelled
	po.Items[0].QuantityReceived = qty(100)
	assert.Equal(t, entity.PurchaseOrderStatusCancelled, purchasing.DeriveOrderStatus(po))
}
