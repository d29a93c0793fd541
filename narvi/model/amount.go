package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in minor units (cents for EUR).
type Amount int64

// AmountFromDecimalString parses a major-unit decimal string ("12.34") into
// minor units. More than two fractional digits is an error, not a rounding.
func AmountFromDecimalString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	shifted := d.Shift(2)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two fractional digits", s)
	}
	return Amount(shifted.IntPart()), nil
}

// Decimal returns the amount in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}
