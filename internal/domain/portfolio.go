package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type InputMode string

const (
	// the user types absolute amounts; weights are a derived cache
	InputMode_Amount InputMode = "AMOUNT"
	// the user types percentage weights; amounts are derived from TotalBudget
	InputMode_Weight InputMode = "WEIGHT"
)

func NewInputMode(s string) (*InputMode, error) {
	m := map[string]InputMode{
		"AMOUNT": InputMode_Amount,
		"WEIGHT": InputMode_Weight,
	}
	for k, v := range m {
		if strings.EqualFold(k, strings.TrimSpace(s)) {
			out := v
			return &out, nil
		}
	}
	return nil, fmt.Errorf("unknown input mode %s", s)
}

type InvestmentType string

const (
	// one-time investment of the full amount at the start of the backtest
	InvestmentType_LumpSum InvestmentType = "LUMP_SUM"
	// fixed amount invested every DCAFrequency interval across the window
	InvestmentType_DCA InvestmentType = "DCA"
)

func NewInvestmentType(s string) (*InvestmentType, error) {
	m := map[string]InvestmentType{
		"LUMP_SUM": InvestmentType_LumpSum,
		"DCA":      InvestmentType_DCA,
	}
	for k, v := range m {
		if strings.EqualFold(
			strings.ReplaceAll(k, "_", ""),
			strings.ReplaceAll(strings.TrimSpace(s), "_", ""),
		) {
			out := v
			return &out, nil
		}
	}
	return nil, fmt.Errorf("unknown investment type %s", s)
}

type AssetClass string

const (
	AssetClass_Security AssetClass = "SECURITY"
	// cash rows carry a free-text label instead of a ticker, so they are
	// exempt from duplicate symbol checks
	AssetClass_Cash AssetClass = "CASH"
)

func NewAssetClass(s string) (*AssetClass, error) {
	m := map[string]AssetClass{
		"SECURITY": AssetClass_Security,
		"CASH":     AssetClass_Cash,
	}
	for k, v := range m {
		if strings.EqualFold(k, strings.TrimSpace(s)) {
			out := v
			return &out, nil
		}
	}
	return nil, fmt.Errorf("unknown asset class %s", s)
}

type DateRange struct {
	Start time.Time
	End   time.Time
}

// Asset is one line item in the portfolio. Amount is the total invested
// for a lump sum asset and the per-period contribution for a DCA asset.
// Weight is only set when the allocation was last authored via weight
// input; nil means "no live weight", which is distinct from a zero weight.
type Asset struct {
	Symbol         string
	Amount         decimal.Decimal
	Weight         *decimal.Decimal
	InvestmentType InvestmentType
	DCAFrequency   DCAFrequency
	AssetClass     AssetClass
}

func (a Asset) HasLiveWeight() bool {
	return a.Weight != nil
}

func (a Asset) DeepCopy() Asset {
	out := a
	if a.Weight != nil {
		w := *a.Weight
		out.Weight = &w
	}
	return out
}

// Portfolio is the whole engine state. Every transition copies it; nothing
// mutates a Portfolio the caller still holds.
type Portfolio struct {
	Assets      []Asset
	InputMode   InputMode
	TotalBudget decimal.Decimal
	DateRange   DateRange
}

func (p Portfolio) DeepCopy() Portfolio {
	out := p
	out.Assets = make([]Asset, 0, len(p.Assets))
	for _, a := range p.Assets {
		out.Assets = append(out.Assets, a.DeepCopy())
	}
	return out
}

func NewDefaultAsset() Asset {
	return Asset{
		Symbol:         "",
		Amount:         decimal.Zero,
		InvestmentType: InvestmentType_LumpSum,
		AssetClass:     AssetClass_Security,
	}
}

const defaultTotalBudget = 10_000

// NewDefaultPortfolio is the state a fresh session starts from and the
// state a Reset event returns to: one empty security row, amount input,
// a one year backtest window ending today.
func NewDefaultPortfolio() Portfolio {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	return Portfolio{
		Assets:      []Asset{NewDefaultAsset()},
		InputMode:   InputMode_Amount,
		TotalBudget: decimal.NewFromInt(defaultTotalBudget),
		DateRange: DateRange{
			Start: end.AddDate(-1, 0, 0),
			End:   end,
		},
	}
}
