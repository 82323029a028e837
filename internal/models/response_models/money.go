package response_models

import "github.com/shopspring/decimal"

// Money renders as a JSON number with two decimal places, e.g. 1500.00.
type Money decimal.Decimal

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

func (m Money) String() string {
	return decimal.Decimal(m).StringFixed(2)
}
