// Package inventory contiene los servicios de dominio de existencias.
package inventory

import "github.com/shopspring/decimal"

// AdjustLevel aplica un delta a un nivel de stock con piso en cero:
// max(0, current + delta). Las bajas se recortan en cero (nunca se persiste
// stock negativo); las alzas no tienen tope. Único punto de mutación de
// cantidades por bodega: tanto recepciones como ajustes manuales pasan por
// aquí para mantener el invariante de no-negatividad de manera uniforme.
func AdjustLevel(current, delta decimal.Decimal) decimal.Decimal {
	next := current.Add(delta)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}
