package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "120.50", FormatAmount(decimal.RequireFromString("120.5")))
	assert.Equal(t, "370.00", FormatAmount(decimal.NewFromInt(370)))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
	assert.Equal(t, "10.13", FormatAmount(decimal.RequireFromString("10.125")))
}
