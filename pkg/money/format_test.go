package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "₹0", Format(decimal.Zero))
	assert.Equal(t, "₹500", Format(decimal.NewFromInt(500)))
	assert.Equal(t, "₹451", Format(decimal.RequireFromString("450.5")), "redondea a unidades")
	assert.Equal(t, "-₹500", Format(decimal.NewFromInt(-500)), "el signo va antes del símbolo")
}

func TestFormat_AgrupaMiles(t *testing.T) {
	assert.Equal(t, "₹12,34,567", Format(decimal.NewFromInt(1234567)), "agrupación india (lakhs)")
	assert.Equal(t, "₹1,000", Format(decimal.NewFromInt(1000)))
	assert.Equal(t, "INR 1,00,00,000", FormatCode(decimal.NewFromInt(10000000)))
}

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "INR 500", FormatCode(decimal.NewFromInt(500)))
	assert.Equal(t, "-INR 20", FormatCode(decimal.NewFromInt(-20)))
}
