package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is one UI edit applied to a Portfolio. The set is sealed; the
// reconciler switches over the concrete types.
type Event interface {
	isEvent()
}

// AddAssetEvent appends a new row. Asset overrides the defaults when set.
type AddAssetEvent struct {
	Asset *Asset
}

type RemoveAssetEvent struct {
	Index int
}

type UpdateSymbolEvent struct {
	Index  int
	Symbol string
}

type UpdateAmountEvent struct {
	Index  int
	Amount decimal.Decimal
}

type UpdateWeightEvent struct {
	Index  int
	Weight decimal.Decimal
}

type UpdateInvestmentTypeEvent struct {
	Index          int
	InvestmentType InvestmentType
}

type UpdateDCAFrequencyEvent struct {
	Index     int
	Frequency DCAFrequency
}

type UpdateAssetClassEvent struct {
	Index      int
	AssetClass AssetClass
}

type SetInputModeEvent struct {
	Mode InputMode
}

type SetTotalBudgetEvent struct {
	Value decimal.Decimal
}

type SetDateRangeEvent struct {
	Start time.Time
	End   time.Time
}

type ResetEvent struct{}

func (AddAssetEvent) isEvent()             {}
func (RemoveAssetEvent) isEvent()          {}
func (UpdateSymbolEvent) isEvent()         {}
func (UpdateAmountEvent) isEvent()         {}
func (UpdateWeightEvent) isEvent()         {}
func (UpdateInvestmentTypeEvent) isEvent() {}
func (UpdateDCAFrequencyEvent) isEvent()   {}
func (UpdateAssetClassEvent) isEvent()     {}
func (SetInputModeEvent) isEvent()         {}
func (SetTotalBudgetEvent) isEvent()       {}
func (SetDateRangeEvent) isEvent()         {}
func (ResetEvent) isEvent()                {}
