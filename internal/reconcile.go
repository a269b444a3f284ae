package internal

import (
	"portfoliolab/internal/domain"

	"github.com/shopspring/decimal"
)

type ReconcileOptions struct {
	// keep the user's TotalBudget when switching to weight mode instead of
	// snapping it to the portfolio's effective budget
	PreserveBudgetOnModeSwitch bool
}

// Reconcile applies one edit event and returns the new portfolio state.
// It is a pure function: the input portfolio is never mutated, every event
// is handled (unknown indexes are no-ops), and it cannot fail - bad input
// surfaces later through Validate, never here. The UI stays editable at
// all times because nothing is rejected.
func Reconcile(p domain.Portfolio, event domain.Event) domain.Portfolio {
	return ReconcileWithOptions(p, event, ReconcileOptions{})
}

func ReconcileWithOptions(p domain.Portfolio, event domain.Event, opts ReconcileOptions) domain.Portfolio {
	out := p.DeepCopy()

	switch e := event.(type) {
	case domain.AddAssetEvent:
		asset := domain.NewDefaultAsset()
		if e.Asset != nil {
			asset = e.Asset.DeepCopy()
		}
		out.Assets = append(out.Assets, asset)
		if out.InputMode == domain.InputMode_Weight {
			// new row participates at 0% until the user edits it
			if !out.Assets[len(out.Assets)-1].HasLiveWeight() {
				zero := decimal.Zero
				out.Assets[len(out.Assets)-1].Weight = &zero
			}
			out = ApplyWeightsToAmounts(out)
		}

	case domain.RemoveAssetEvent:
		if e.Index < 0 || e.Index >= len(out.Assets) {
			return out
		}
		out.Assets = append(out.Assets[:e.Index], out.Assets[e.Index+1:]...)
		if out.InputMode == domain.InputMode_Weight {
			// survivors keep their nominal weights; the sum drifting from
			// 100% is surfaced by the validator, not auto-rescaled
			out = ApplyWeightsToAmounts(out)
		}

	case domain.UpdateSymbolEvent:
		if e.Index < 0 || e.Index >= len(out.Assets) {
			return out
		}
		out.Assets[e.Index].Symbol = e.Symbol

	case domain.UpdateAssetClassEvent:
		if e.Index < 0 || e.Index >= len(out.Assets) {
			return out
		}
		out.Assets[e.Index].AssetClass = e.AssetClass

	case domain.UpdateAmountEvent:
		if e.Index < 0 || e.Index >= len(out.Assets) {
			return out
		}
		out.Assets[e.Index].Amount = e.Amount
		// the amount is now authoritative for this asset; its cached
		// weight is stale and must not survive
		out.Assets[e.Index].Weight = nil
		if out.InputMode == domain.InputMode_Weight {
			// the live-weight set changed, so the remainder sink may have
			// moved to a different asset
			out = ApplyWeightsToAmounts(out)
		}

	case domain.UpdateWeightEvent:
		if e.Index < 0 || e.Index >= len(out.Assets) {
			return out
		}
		w := e.Weight
		out.Assets[e.Index].Weight = &w
		if out.InputMode == domain.InputMode_Weight {
			out = ApplyWeightsToAmounts(out)
		}

	case domain.UpdateInvestmentTypeEvent:
		if e.Index < 0 || e.Index >= len(out.Assets) {
			return out
		}
		out.Assets[e.Index].InvestmentType = e.InvestmentType
		if out.InputMode == domain.InputMode_Weight {
			// period counts changed; derived amounts are stale
			out = ApplyWeightsToAmounts(out)
		}

	case domain.UpdateDCAFrequencyEvent:
		if e.Index < 0 || e.Index >= len(out.Assets) {
			return out
		}
		out.Assets[e.Index].DCAFrequency = e.Frequency
		if out.InputMode == domain.InputMode_Weight {
			out = ApplyWeightsToAmounts(out)
		}

	case domain.SetInputModeEvent:
		if e.Mode == out.InputMode {
			return out
		}
		out.InputMode = e.Mode
		if e.Mode == domain.InputMode_Weight {
			// derive weights from current amounts, then immediately lock
			// amounts back in from the rounded weights so both
			// representations agree
			out = DeriveWeightsFromAmounts(out, opts.PreserveBudgetOnModeSwitch)
			out = ApplyWeightsToAmounts(out)
		} else {
			for i := range out.Assets {
				out.Assets[i].Weight = nil
			}
		}

	case domain.SetTotalBudgetEvent:
		out.TotalBudget = e.Value
		if out.InputMode == domain.InputMode_Weight {
			out = ApplyWeightsToAmounts(out)
		}

	case domain.SetDateRangeEvent:
		out.DateRange = domain.DateRange{Start: e.Start, End: e.End}
		if out.InputMode == domain.InputMode_Weight {
			out = ApplyWeightsToAmounts(out)
		}

	case domain.ResetEvent:
		out = domain.NewDefaultPortfolio()
	}

	return out
}
