package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/backoffice-pro/internal/domain/inventory"
)

func TestAdjustLevel_Suma(t *testing.T) {
	got := inventory.AdjustLevel(decimal.NewFromInt(10), decimal.NewFromInt(40))
	assert.True(t, got.Equal(decimal.NewFromInt(50)))
}

func TestAdjustLevel_BajaNormal(t *testing.T) {
	got := inventory.AdjustLevel(decimal.NewFromInt(10), decimal.NewFromInt(-4))
	assert.True(t, got.Equal(decimal.NewFromInt(6)))
}

// Las bajas se recortan en cero: nunca se produce stock negativo.
func TestAdjustLevel_RecorteEnCero(t *testing.T) {
	got := inventory.AdjustLevel(decimal.NewFromInt(3), decimal.NewFromInt(-10))
	assert.True(t, got.IsZero(), "una baja mayor al disponible deja el nivel en 0")
}

// Propiedad: para cualquier secuencia de ajustes el nivel nunca baja de 0.
func TestAdjustLevel_SecuenciaNuncaNegativa(t *testing.T) {
	deltas := []int64{5, -3, -10, 20, -1, -100, 7}
	level := decimal.Zero
	for i, d := range deltas {
		level = inventory.AdjustLevel(level, decimal.NewFromInt(d))
		assert.False(t, level.IsNegative(), "nivel negativo tras el ajuste %d", i)
	}
	// 0→5→2→0→20→19→0→7
	assert.True(t, level.Equal(decimal.NewFromInt(7)))
}
