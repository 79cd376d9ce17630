package domain

import (
	"github.com/shopspring/decimal"
)

// FundingTier is a coarse label for a school corporation's funding band.
// The tier is descriptive metadata; award math always uses the
// corporation's specific per-pupil amount.
type FundingTier string

const (
	TierHigh    FundingTier = "high"
	TierMidHigh FundingTier = "mid-high"
	TierMid     FundingTier = "mid"
	TierRural   FundingTier = "rural"
)

// SchoolCorporation is one public school district with its estimated
// per-pupil state funding amount.
type SchoolCorporation struct {
	Name     string
	Tier     FundingTier
	PerPupil decimal.Decimal
}

// County groups the school corporations operating in one Indiana county.
// Every corporation belongs to exactly one county.
type County struct {
	Name         string
	Corporations []SchoolCorporation
}
