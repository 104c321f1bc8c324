package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company representa una organización/tenant del sistema. TaxRate y VATRate
// son las tasas de documento de toda la empresa; los casos de uso las leen
// aquí y las pasan como parámetros explícitos al motor de precios (el motor
// nunca lee estado global).
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	Phone     string
	Email     string
	TaxRate   decimal.Decimal // fracción (0.02 = 2%)
	VATRate   decimal.Decimal // fracción (0.15 = 15%)
	Status    string          // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
