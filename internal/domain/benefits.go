package domain

import (
	"github.com/shopspring/decimal"
)

// BenefitPoint is a single sample on the benefits-vs-income curve for a
// fixed household size. SNAP is rounded to whole dollars for display;
// Total is the sum of the rounded SNAP amount and the childcare subsidy.
type BenefitPoint struct {
	Income    decimal.Decimal
	SNAP      decimal.Decimal
	Childcare decimal.Decimal
	Total     decimal.Decimal
}

// CliffType identifies which benefit threshold a warning refers to.
type CliffType string

const (
	CliffSNAP      CliffType = "SNAP"
	CliffChildcare CliffType = "Childcare subsidy"
)

// CliffWarning describes a benefit-loss threshold sitting just above the
// queried income. It is derived per query and never stored.
type CliffWarning struct {
	Type        CliffType
	CliffIncome decimal.Decimal
	LossAmount  decimal.Decimal
}
