// Package pricing implementa el motor de precios multi-unidad: resolución de
// precio/impuesto al consumo por unidad y cálculo de totales de documento.
// Servicios de dominio puros, sin estado ni I/O.
package pricing

import "github.com/tu-usuario/backoffice-pro/internal/domain"

// UnitKind es la variante cerrada de unidad solicitada. Se usa en lugar de
// comparar etiquetas de texto en cada call site.
type UnitKind int

const (
	// UnitBase es la unidad canónica del producto (UnitType).
	UnitBase UnitKind = iota
	// UnitPiece es una pieza suelta dentro de la unidad base.
	UnitPiece
	// UnitPackaging es la unidad de empaque mayor (PackagingUnit).
	UnitPackaging
)

// String devuelve la etiqueta de la unidad para la API.
func (k UnitKind) String() string {
	switch k {
	case UnitPiece:
		return "piece"
	case UnitPackaging:
		return "packaging"
	default:
		return "base"
	}
}

// ParseUnitKind convierte la etiqueta de la API en UnitKind.
// Cadena vacía se interpreta como base.
func ParseUnitKind(s string) (UnitKind, error) {
	switch s {
	case "", "base":
		return UnitBase, nil
	case "piece":
		return UnitPiece, nil
	case "packaging":
		return UnitPackaging, nil
	default:
		return UnitBase, domain.ErrInvalidInput
	}
}
