package internal

import (
	"portfoliolab/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffectiveTotal is the true capital committed to an asset over the whole
// backtest window. For DCA assets the raw Amount is a per-period figure
// and would understate the asset's share, so it gets scaled by the number
// of contribution periods in the date range.
func EffectiveTotal(asset domain.Asset, dateRange domain.DateRange) decimal.Decimal {
	if asset.InvestmentType == domain.InvestmentType_DCA {
		periods := PeriodCount(dateRange.Start, dateRange.End, asset.DCAFrequency)
		return asset.Amount.Mul(decimal.NewFromInt(int64(periods)))
	}
	return asset.Amount
}

// EffectiveBudget sums effective totals across the portfolio. It is the
// denominator when deriving weights from amounts and the reference value
// when checking budget closure in weight mode.
func EffectiveBudget(p domain.Portfolio) decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Assets {
		total = total.Add(EffectiveTotal(a, p.DateRange))
	}
	return total
}

// DeriveWeightsFromAmounts computes each asset's weight as its share of
// the effective budget, rounded to 0.01%. Unless preserveBudget is set,
// TotalBudget snaps to the effective budget so a subsequent
// ApplyWeightsToAmounts reproduces the amounts the user typed.
//
// A zero effective budget (all amounts zero) yields zero weights rather
// than a division - every asset still ends up with a live weight.
func DeriveWeightsFromAmounts(p domain.Portfolio, preserveBudget bool) domain.Portfolio {
	out := p.DeepCopy()
	effBudget := EffectiveBudget(p)
	if effBudget.LessThanOrEqual(decimal.Zero) {
		for i := range out.Assets {
			zero := decimal.Zero
			out.Assets[i].Weight = &zero
		}
		return out
	}

	for i := range out.Assets {
		w := EffectiveTotal(out.Assets[i], out.DateRange).
			Div(effBudget).
			Mul(hundred).
			Round(2)
		out.Assets[i].Weight = &w
	}
	if !preserveBudget {
		out.TotalBudget = effBudget
	}
	return out
}

// ApplyWeightsToAmounts re-derives every live-weighted asset's amount from
// TotalBudget. Amounts are rounded to whole currency units, so the rounded
// contributions generally drift a few units from the budget. The last
// live-weighted asset (by index) does not get the straightforward rounded
// figure: its effective total is forced to whatever remainder closes the
// budget exactly, and its amount is derived backward from that. Its
// realized weight therefore deviates slightly from its nominal percentage;
// that asset is the designated remainder sink, not a rounding mistake.
//
// A non-positive budget performs no conversion at all - amounts unchanged.
func ApplyWeightsToAmounts(p domain.Portfolio) domain.Portfolio {
	out := p.DeepCopy()
	if out.TotalBudget.LessThanOrEqual(decimal.Zero) {
		return out
	}

	lastWeighted := -1
	for i, a := range out.Assets {
		if a.HasLiveWeight() {
			lastWeighted = i
		}
	}
	if lastWeighted == -1 {
		return out
	}

	accumulated := decimal.Zero
	for i := range out.Assets {
		a := &out.Assets[i]
		if !a.HasLiveWeight() {
			continue
		}

		if i == lastWeighted {
			remainder := out.TotalBudget.Sub(accumulated)
			if a.InvestmentType == domain.InvestmentType_DCA {
				periods := PeriodCount(out.DateRange.Start, out.DateRange.End, a.DCAFrequency)
				// per-period amount kept at decimal precision here, so
				// amount * periods still closes the budget
				a.Amount = remainder.Div(decimal.NewFromInt(int64(periods)))
			} else {
				a.Amount = remainder
			}
			continue
		}

		assetBudget := a.Weight.Mul(out.TotalBudget).Div(hundred)
		if a.InvestmentType == domain.InvestmentType_DCA {
			periods := decimal.NewFromInt(int64(PeriodCount(out.DateRange.Start, out.DateRange.End, a.DCAFrequency)))
			a.Amount = assetBudget.Div(periods).Round(0)
			accumulated = accumulated.Add(a.Amount.Mul(periods))
		} else {
			a.Amount = assetBudget.Round(0)
			accumulated = accumulated.Add(a.Amount)
		}
	}

	return out
}
