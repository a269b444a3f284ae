package internal

import (
	"portfoliolab/internal/domain"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestReconcile_SetInputMode(t *testing.T) {
	amountPortfolio := domain.Portfolio{
		Assets: []domain.Asset{
			lumpAsset("VTI", 6_000),
			lumpAsset("BND", 4_000),
		},
		InputMode: domain.InputMode_Amount,
		DateRange: testDateRange,
	}

	t.Run("switching to weight derives weights and locks amounts", func(t *testing.T) {
		out := Reconcile(amountPortfolio, domain.SetInputModeEvent{Mode: domain.InputMode_Weight})

		require.Equal(t, domain.InputMode_Weight, out.InputMode)
		require.Equal(t, "10000", out.TotalBudget.String())
		for _, a := range out.Assets {
			require.NotNil(t, a.Weight)
		}
		require.Equal(t, "60", out.Assets[0].Weight.String())
		require.Equal(t, "40", out.Assets[1].Weight.String())
		// amounts re-derived from the rounded weights agree with the input
		require.Equal(t, "6000", out.Assets[0].Amount.String())
		require.Equal(t, "4000", out.Assets[1].Amount.String())
	})

	t.Run("switching to amount clears every weight", func(t *testing.T) {
		weightPortfolio := Reconcile(amountPortfolio, domain.SetInputModeEvent{Mode: domain.InputMode_Weight})

		out := Reconcile(weightPortfolio, domain.SetInputModeEvent{Mode: domain.InputMode_Amount})

		require.Equal(t, domain.InputMode_Amount, out.InputMode)
		for _, a := range out.Assets {
			require.Nil(t, a.Weight)
		}
		// amounts are left as they were
		require.Equal(t, "6000", out.Assets[0].Amount.String())
		require.Equal(t, "4000", out.Assets[1].Amount.String())
	})

	t.Run("switching to the current mode is a no-op", func(t *testing.T) {
		out := Reconcile(amountPortfolio, domain.SetInputModeEvent{Mode: domain.InputMode_Amount})
		require.Nil(t, out.Assets[0].Weight)
		require.Equal(t, "6000", out.Assets[0].Amount.String())
	})

	t.Run("preserve budget option", func(t *testing.T) {
		p := amountPortfolio.DeepCopy()
		p.TotalBudget = decimal.NewFromInt(50_000)

		out := ReconcileWithOptions(p, domain.SetInputModeEvent{Mode: domain.InputMode_Weight}, ReconcileOptions{
			PreserveBudgetOnModeSwitch: true,
		})

		require.Equal(t, "50000", out.TotalBudget.String())
		// amounts now reconcile to the preserved budget, not the typed ones
		require.Equal(t, "30000", out.Assets[0].Amount.String())
		require.Equal(t, "20000", out.Assets[1].Amount.String())
	})
}

func TestReconcile_UpdateAssetFields(t *testing.T) {
	t.Run("amount edit in amount mode clears the stale weight", func(t *testing.T) {
		p := domain.Portfolio{
			Assets:    []domain.Asset{withWeight(lumpAsset("VTI", 6_000), "60")},
			InputMode: domain.InputMode_Amount,
			DateRange: testDateRange,
		}

		out := Reconcile(p, domain.UpdateAmountEvent{Index: 0, Amount: decimal.NewFromInt(7_000)})

		require.Equal(t, "7000", out.Assets[0].Amount.String())
		require.Nil(t, out.Assets[0].Weight)
	})

	t.Run("weight edit in amount mode sets it directly without conversion", func(t *testing.T) {
		p := domain.Portfolio{
			Assets:      []domain.Asset{lumpAsset("VTI", 6_000)},
			InputMode:   domain.InputMode_Amount,
			TotalBudget: decimal.NewFromInt(10_000),
			DateRange:   testDateRange,
		}

		out := Reconcile(p, domain.UpdateWeightEvent{Index: 0, Weight: decimal.NewFromInt(55)})

		require.Equal(t, "55", out.Assets[0].Weight.String())
		require.Equal(t, domain.InputMode_Amount, out.InputMode)
		require.Equal(t, "6000", out.Assets[0].Amount.String())
	})

	t.Run("weight edit in weight mode re-derives all amounts", func(t *testing.T) {
		p := domain.Portfolio{
			Assets: []domain.Asset{
				withWeight(lumpAsset("VTI", 0), "50"),
				withWeight(lumpAsset("BND", 0), "50"),
			},
			InputMode:   domain.InputMode_Weight,
			TotalBudget: decimal.NewFromInt(10_000),
			DateRange:   testDateRange,
		}

		out := Reconcile(p, domain.UpdateWeightEvent{Index: 0, Weight: decimal.NewFromInt(70)})

		require.Equal(t, "7000", out.Assets[0].Amount.String())
		require.Equal(t, "3000", out.Assets[1].Amount.String())
	})

	t.Run("frequency edit in weight mode recomputes per-period amounts", func(t *testing.T) {
		p := domain.Portfolio{
			Assets: []domain.Asset{
				withWeight(dcaAsset("SPY", 0, domain.DCAFrequency_Every4Weeks), "100"),
			},
			InputMode:   domain.InputMode_Weight,
			TotalBudget: decimal.NewFromInt(20_000),
			DateRange:   testDateRange,
		}
		// 4 weeks -> 10 periods; 12 weeks -> 4 periods
		recomputed := Reconcile(p, domain.UpdateDCAFrequencyEvent{Index: 0, Frequency: domain.DCAFrequency_Every12Weeks})
		require.Equal(t, "5000", recomputed.Assets[0].Amount.String())
	})

	t.Run("investment type edit in weight mode recomputes amounts", func(t *testing.T) {
		p := domain.Portfolio{
			Assets: []domain.Asset{
				withWeight(dcaAsset("SPY", 1_200, domain.DCAFrequency_Every4Weeks), "60"),
				withWeight(lumpAsset("BND", 8_000), "40"),
			},
			InputMode:   domain.InputMode_Weight,
			TotalBudget: decimal.NewFromInt(20_000),
			DateRange:   testDateRange,
		}

		out := Reconcile(p, domain.UpdateInvestmentTypeEvent{Index: 0, InvestmentType: domain.InvestmentType_LumpSum})

		require.Equal(t, "12000", out.Assets[0].Amount.String())
		require.Equal(t, "8000", out.Assets[1].Amount.String())
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		p := domain.Portfolio{
			Assets:    []domain.Asset{lumpAsset("VTI", 6_000)},
			InputMode: domain.InputMode_Amount,
			DateRange: testDateRange,
		}

		out := Reconcile(p, domain.UpdateAmountEvent{Index: 5, Amount: decimal.NewFromInt(1)})
		require.Equal(t, "6000", out.Assets[0].Amount.String())

		out = Reconcile(p, domain.RemoveAssetEvent{Index: -1})
		require.Len(t, out.Assets, 1)
	})
}

func TestReconcile_AddRemoveAssets(t *testing.T) {
	t.Run("add in amount mode appends a default row", func(t *testing.T) {
		p := domain.Portfolio{
			Assets:    []domain.Asset{lumpAsset("VTI", 6_000)},
			InputMode: domain.InputMode_Amount,
			DateRange: testDateRange,
		}

		out := Reconcile(p, domain.AddAssetEvent{})

		require.Len(t, out.Assets, 2)
		require.Equal(t, domain.InvestmentType_LumpSum, out.Assets[1].InvestmentType)
		require.Nil(t, out.Assets[1].Weight)
	})

	t.Run("add in weight mode joins at zero weight and keeps closure", func(t *testing.T) {
		p := domain.Portfolio{
			Assets: []domain.Asset{
				withWeight(lumpAsset("VTI", 0), "60"),
				withWeight(lumpAsset("BND", 0), "40"),
			},
			InputMode:   domain.InputMode_Weight,
			TotalBudget: decimal.NewFromInt(10_000),
			DateRange:   testDateRange,
		}

		out := Reconcile(p, domain.AddAssetEvent{})

		require.Len(t, out.Assets, 3)
		require.NotNil(t, out.Assets[2].Weight)
		require.True(t, out.Assets[2].Weight.IsZero())
		// the new zero-weight row is now the last weighted asset, so it
		// absorbs the rounding remainder (zero here)
		require.True(t, EffectiveBudget(out).Equal(out.TotalBudget))
	})

	t.Run("remove in weight mode does not rescale survivors", func(t *testing.T) {
		p := domain.Portfolio{
			Assets: []domain.Asset{
				withWeight(lumpAsset("A", 0), "30"),
				withWeight(lumpAsset("B", 0), "30"),
				withWeight(lumpAsset("C", 0), "40"),
			},
			InputMode:   domain.InputMode_Weight,
			TotalBudget: decimal.NewFromInt(10_000),
			DateRange:   testDateRange,
		}

		out := Reconcile(p, domain.RemoveAssetEvent{Index: 2})

		require.Len(t, out.Assets, 2)
		require.Equal(t, "30", out.Assets[0].Weight.String())
		require.Equal(t, "30", out.Assets[1].Weight.String())
		// closure still forced: the last weighted survivor soaks up the
		// removed asset's share until the user fixes the weights
		require.Equal(t, "3000", out.Assets[0].Amount.String())
		require.Equal(t, "7000", out.Assets[1].Amount.String())

		// and the validator surfaces the drift instead
		diagnostics := Validate(out)
		kinds := []domain.DiagnosticKind{}
		for _, d := range diagnostics {
			kinds = append(kinds, d.Kind)
		}
		require.Contains(t, kinds, domain.DiagnosticKind_WeightSumOutOfRange)
	})
}

func TestReconcile_BudgetAndDates(t *testing.T) {
	weightPortfolio := domain.Portfolio{
		Assets: []domain.Asset{
			withWeight(dcaAsset("SPY", 1_200, domain.DCAFrequency_Every4Weeks), "60"),
			withWeight(lumpAsset("BND", 8_000), "40"),
		},
		InputMode:   domain.InputMode_Weight,
		TotalBudget: decimal.NewFromInt(20_000),
		DateRange:   testDateRange,
	}

	t.Run("budget change re-derives amounts", func(t *testing.T) {
		out := Reconcile(weightPortfolio, domain.SetTotalBudgetEvent{Value: decimal.NewFromInt(40_000)})

		require.Equal(t, "2400", out.Assets[0].Amount.String())
		require.Equal(t, "16000", out.Assets[1].Amount.String())
	})

	t.Run("date change re-derives dca amounts", func(t *testing.T) {
		// shrink to 11 whole weeks -> floor(11/4)+1 = 3 periods
		out := Reconcile(weightPortfolio, domain.SetDateRangeEvent{
			Start: testDateRange.Start,
			End:   testDateRange.Start.AddDate(0, 0, 7*11),
		})

		require.Equal(t, "4000", out.Assets[0].Amount.String())
		require.Equal(t, "8000", out.Assets[1].Amount.String())
	})

	t.Run("budget change in amount mode stores without conversion", func(t *testing.T) {
		p := domain.Portfolio{
			Assets:    []domain.Asset{lumpAsset("VTI", 6_000)},
			InputMode: domain.InputMode_Amount,
			DateRange: testDateRange,
		}

		out := Reconcile(p, domain.SetTotalBudgetEvent{Value: decimal.NewFromInt(99_999)})

		require.Equal(t, "99999", out.TotalBudget.String())
		require.Equal(t, "6000", out.Assets[0].Amount.String())
	})
}

func TestReconcile_Reset(t *testing.T) {
	p := domain.Portfolio{
		Assets: []domain.Asset{
			withWeight(lumpAsset("VTI", 6_000), "60"),
			withWeight(lumpAsset("BND", 4_000), "40"),
		},
		InputMode:   domain.InputMode_Weight,
		TotalBudget: decimal.NewFromInt(10_000),
		DateRange:   testDateRange,
	}

	out := Reconcile(p, domain.ResetEvent{})

	require.Len(t, out.Assets, 1)
	require.Equal(t, domain.InputMode_Amount, out.InputMode)
	require.Equal(t, domain.AssetClass_Security, out.Assets[0].AssetClass)
	require.Nil(t, out.Assets[0].Weight)
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	p := domain.Portfolio{
		Assets: []domain.Asset{
			withWeight(lumpAsset("A", 0), "50"),
			withWeight(lumpAsset("B", 0), "50"),
		},
		InputMode:   domain.InputMode_Weight,
		TotalBudget: decimal.NewFromInt(10_000),
		DateRange:   testDateRange,
	}

	Reconcile(p, domain.UpdateWeightEvent{Index: 0, Weight: decimal.NewFromInt(70)})

	require.Equal(t, "50", p.Assets[0].Weight.String())
	require.Equal(t, "0", p.Assets[0].Amount.String())
}
