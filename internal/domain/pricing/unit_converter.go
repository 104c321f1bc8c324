package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/backoffice-pro/internal/domain"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
)

// UnitPrice es el resultado de resolver una unidad: precio e impuesto al
// consumo para UNA unidad del tipo solicitado.
type UnitPrice struct {
	Price  decimal.Decimal
	Excise decimal.Decimal
}

// ResolveUnitPrice convierte el precio/impuesto canónico por unidad base del
// producto a la unidad solicitada:
//
//   - base:      sin cambios.
//   - packaging: precio × ItemsPerPackagingUnit (requiere empaque configurado).
//   - piece:     precio / PiecesInBaseUnit (requiere piezas configuradas).
//
// Si la unidad pedida no está configurada retorna ErrUnitNotConfigured; el
// caller debe caer a la unidad base. Determinista y sin efectos.
func ResolveUnitPrice(p *entity.Product, kind UnitKind) (UnitPrice, error) {
	switch kind {
	case UnitBase:
		return UnitPrice{Price: p.BasePrice, Excise: p.ExciseTax}, nil

	case UnitPackaging:
		if !p.HasPackagingUnit() {
			return UnitPrice{}, domain.ErrUnitNotConfigured
		}
		factor := decimal.NewFromInt(p.ItemsPerPackagingUnit)
		return UnitPrice{
			Price:  p.BasePrice.Mul(factor),
			Excise: p.ExciseTax.Mul(factor),
		}, nil

	case UnitPiece:
		if !p.HasPieceUnit() {
			return UnitPrice{}, domain.ErrUnitNotConfigured
		}
		divisor := decimal.NewFromInt(p.PiecesInBaseUnit)
		return UnitPrice{
			Price:  p.BasePrice.Div(divisor),
			Excise: p.ExciseTax.Div(divisor),
		}, nil
	}
	return UnitPrice{}, domain.ErrInvalidInput
}

// ResolveUnitPriceOrBase resuelve la unidad pedida y cae a base cuando el
// producto no la tiene configurada. Devuelve la unidad efectivamente usada.
func ResolveUnitPriceOrBase(p *entity.Product, kind UnitKind) (UnitPrice, UnitKind) {
	up, err := ResolveUnitPrice(p, kind)
	if err != nil {
		base, _ := ResolveUnitPrice(p, UnitBase)
		return base, UnitBase
	}
	return up, kind
}
