package priceformatter

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// PriceFormatter turns base unit amounts into human readable decimals
type PriceFormatter interface {
	Format(value *big.Int) decimal.Decimal
	// FormatString returns decimal.Zero for an unparsable value
	FormatString(value string) decimal.Decimal
}

type impl struct {
	decimals int32
}

func NewPriceFormatter(decimals int32) PriceFormatter {
	return &impl{decimals: decimals}
}

func (f *impl) Format(value *big.Int) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -f.decimals)
}

func (f *impl) FormatString(value string) decimal.Decimal {
	v, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return decimal.Zero
	}
	return f.Format(v)
}
