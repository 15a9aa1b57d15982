package accounting

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places money values are rounded to.
const MoneyPlaces int32 = 2

var half = decimal.New(5, -1)

// RoundTowardZero rounds value to places decimal places. An exact half (+0.5 or -0.5
// after scaling) is truncated toward zero; every other remainder rounds half away
// from zero. So 1.125 becomes 1.12, -1.125 becomes -1.12 and 1.126 becomes 1.13.
func RoundTowardZero(value decimal.Decimal, places int32) decimal.Decimal {
	scaled := value.Shift(places)
	truncated := scaled.Truncate(0)
	if scaled.Sub(truncated).Abs().Equal(half) {
		return truncated.Shift(-places)
	}
	return scaled.Round(0).Shift(-places)
}

// RoundMoney rounds value to MoneyPlaces with RoundTowardZero.
func RoundMoney(value decimal.Decimal) decimal.Decimal {
	return RoundTowardZero(value, MoneyPlaces)
}
