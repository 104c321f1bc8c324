package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrUnitNotConfigured: se pidió un precio en una unidad que el producto
	// no tiene configurada. Recuperable: el caller cae a la unidad base.
	ErrUnitNotConfigured = errors.New("unidad no configurada para el producto")

	// ErrInvalidPartialPayment: abono parcial no positivo o que excede el saldo
	// pendiente. Aborta el guardado completo; la factura queda sin cambios.
	ErrInvalidPartialPayment = errors.New("abono parcial inválido")

	// Errores por evento de recepción; no abortan el lote.
	ErrUnknownLineItem            = errors.New("línea de orden desconocida")
	ErrNonPositiveReceiptQuantity = errors.New("cantidad recibida debe ser positiva")

	// ErrOrderNotCancellable: cancelación solo permitida desde Draft/Sent.
	ErrOrderNotCancellable = errors.New("la orden no puede cancelarse en su estado actual")
)
