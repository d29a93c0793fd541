package model

import (
	"fmt"
	"strings"
)

// EntityKind discriminates the two customer record types the platform knows.
type EntityKind string

const (
	EntityPrivate  EntityKind = "PRIVATE"
	EntityBusiness EntityKind = "BUSINESS"
)

func (k EntityKind) Valid() bool {
	return k == EntityPrivate || k == EntityBusiness
}

func (k *EntityKind) UnmarshalText(text []byte) error {
	val := EntityKind(strings.ToUpper(strings.TrimSpace(string(text))))
	if !val.Valid() {
		return fmt.Errorf("invalid entity kind: %q (allowed: PRIVATE, BUSINESS)", text)
	}
	*k = val
	return nil
}

// WealthSource is the declared origin-of-funds category used for compliance
// screening.
type WealthSource string

const (
	WealthSalary         WealthSource = "SALARY"
	WealthBusinessIncome WealthSource = "BUSINESS_INCOME"
	WealthInvestment     WealthSource = "INVESTMENT"
	WealthInheritance    WealthSource = "INHERITANCE"
	WealthSavings        WealthSource = "SAVINGS"
	WealthPension        WealthSource = "PENSION"
)
