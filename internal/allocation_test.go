package internal

import (
	"portfoliolab/internal/domain"
	"portfoliolab/internal/util"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testDateRange = domain.DateRange{
	Start: util.NewDate(2025, 1, 1),
	End:   util.NewDate(2025, 10, 7), // 39 weeks
}

func lumpAsset(symbol string, amount int64) domain.Asset {
	return domain.Asset{
		Symbol:         symbol,
		Amount:         decimal.NewFromInt(amount),
		InvestmentType: domain.InvestmentType_LumpSum,
		AssetClass:     domain.AssetClass_Security,
	}
}

func dcaAsset(symbol string, amountPerPeriod int64, frequency domain.DCAFrequency) domain.Asset {
	return domain.Asset{
		Symbol:         symbol,
		Amount:         decimal.NewFromInt(amountPerPeriod),
		InvestmentType: domain.InvestmentType_DCA,
		DCAFrequency:   frequency,
		AssetClass:     domain.AssetClass_Security,
	}
}

func withWeight(a domain.Asset, weight string) domain.Asset {
	w, err := decimal.NewFromString(weight)
	if err != nil {
		panic(err)
	}
	a.Weight = &w
	return a
}

func TestEffectiveTotal(t *testing.T) {
	t.Run("lump sum is the raw amount", func(t *testing.T) {
		total := EffectiveTotal(lumpAsset("SPY", 10_000), testDateRange)
		require.Equal(t, "10000", total.String())
	})

	t.Run("dca scales by period count", func(t *testing.T) {
		// 39 weeks at a 4 week interval -> 10 contributions
		total := EffectiveTotal(dcaAsset("SPY", 10_000, domain.DCAFrequency_Every4Weeks), testDateRange)
		require.Equal(t, "100000", total.String())
	})
}

func TestEffectiveBudget(t *testing.T) {
	p := domain.Portfolio{
		Assets: []domain.Asset{
			dcaAsset("SPY", 10_000, domain.DCAFrequency_Every4Weeks),
			lumpAsset("BND", 10_000),
		},
		InputMode: domain.InputMode_Amount,
		DateRange: testDateRange,
	}
	require.Equal(t, "110000", EffectiveBudget(p).String())
}

func TestDeriveWeightsFromAmounts(t *testing.T) {
	t.Run("two lump sums", func(t *testing.T) {
		p := domain.Portfolio{
			Assets: []domain.Asset{
				lumpAsset("VTI", 6_000),
				lumpAsset("BND", 4_000),
			},
			InputMode: domain.InputMode_Amount,
			DateRange: testDateRange,
		}

		out := DeriveWeightsFromAmounts(p, false)

		require.Equal(t, "60", out.Assets[0].Weight.String())
		require.Equal(t, "40", out.Assets[1].Weight.String())
		require.Equal(t, "10000", out.TotalBudget.String())
	})

	t.Run("preserve budget option keeps the prior budget", func(t *testing.T) {
		p := domain.Portfolio{
			Assets:      []domain.Asset{lumpAsset("VTI", 6_000), lumpAsset("BND", 4_000)},
			InputMode:   domain.InputMode_Amount,
			TotalBudget: decimal.NewFromInt(25_000),
			DateRange:   testDateRange,
		}

		out := DeriveWeightsFromAmounts(p, true)

		require.Equal(t, "25000", out.TotalBudget.String())
	})

	t.Run("dca asset weighted by effective total", func(t *testing.T) {
		p := domain.Portfolio{
			Assets: []domain.Asset{
				dcaAsset("SPY", 10_000, domain.DCAFrequency_Every4Weeks), // 100000 effective
				lumpAsset("BND", 100_000),
			},
			InputMode: domain.InputMode_Amount,
			DateRange: testDateRange,
		}

		out := DeriveWeightsFromAmounts(p, false)

		require.Equal(t, "50", out.Assets[0].Weight.String())
		require.Equal(t, "50", out.Assets[1].Weight.String())
		require.Equal(t, "200000", out.TotalBudget.String())
	})

	t.Run("all zero amounts get zero weights", func(t *testing.T) {
		p := domain.Portfolio{
			Assets:      []domain.Asset{lumpAsset("VTI", 0), lumpAsset("BND", 0)},
			InputMode:   domain.InputMode_Amount,
			TotalBudget: decimal.NewFromInt(10_000),
			DateRange:   testDateRange,
		}

		out := DeriveWeightsFromAmounts(p, false)

		for _, a := range out.Assets {
			require.NotNil(t, a.Weight)
			require.True(t, a.Weight.IsZero())
		}
		require.Equal(t, "10000", out.TotalBudget.String())
	})

	t.Run("input portfolio is not mutated", func(t *testing.T) {
		p := domain.Portfolio{
			Assets:    []domain.Asset{lumpAsset("VTI", 6_000)},
			InputMode: domain.InputMode_Amount,
			DateRange: testDateRange,
		}

		DeriveWeightsFromAmounts(p, false)

		require.Nil(t, p.Assets[0].Weight)
	})
}

func TestApplyWeightsToAmounts(t *testing.T) {
	t.Run("dca per-period amount from weight", func(t *testing.T) {
		p := domain.Portfolio{
			Assets: []domain.Asset{
				withWeight(dcaAsset("SPY", 0, domain.DCAFrequency_Every4Weeks), "60"),
				withWeight(lumpAsset("BND", 0), "40"),
			},
			InputMode:   domain.InputMode_Weight,
			TotalBudget: decimal.NewFromInt(20_000),
			DateRange:   testDateRange,
		}

		out := ApplyWeightsToAmounts(p)

		// 60% of 20000 spread over 10 contribution periods
		require.Equal(t, "1200", out.Assets[0].Amount.String())
		// last weighted asset absorbs the remainder: 20000 - 12000
		require.Equal(t, "8000", out.Assets[1].Amount.String())
		require.True(t, EffectiveBudget(out).Equal(p.TotalBudget))
	})

	t.Run("last weighted asset closes the budget exactly", func(t *testing.T) {
		p := domain.Portfolio{
			Assets: []domain.Asset{
				withWeight(lumpAsset("A", 0), "33.33"),
				withWeight(lumpAsset("B", 0), "33.33"),
				withWeight(lumpAsset("C", 0), "33.33"),
			},
			InputMode:   domain.InputMode_Weight,
			TotalBudget: decimal.NewFromInt(10_000),
			DateRange:   testDateRange,
		}

		out := ApplyWeightsToAmounts(p)

		require.Equal(t, "3333", out.Assets[0].Amount.String())
		require.Equal(t, "3333", out.Assets[1].Amount.String())
		require.Equal(t, "3334", out.Assets[2].Amount.String())
		require.True(t, EffectiveBudget(out).Equal(p.TotalBudget))
	})

	t.Run("remainder sink is the last asset with a live weight, not the last row", func(t *testing.T) {
		unweighted := lumpAsset("CASH-ISH", 777)
		p := domain.Portfolio{
			Assets: []domain.Asset{
				withWeight(lumpAsset("A", 0), "50"),
				withWeight(lumpAsset("B", 0), "50"),
				unweighted,
			},
			InputMode:   domain.InputMode_Weight,
			TotalBudget: decimal.NewFromInt(1_001),
			DateRange:   testDateRange,
		}

		out := ApplyWeightsToAmounts(p)

		require.Equal(t, "501", out.Assets[0].Amount.String()) // round(500.5)
		require.Equal(t, "500", out.Assets[1].Amount.String()) // 1001 - 501
		require.Equal(t, "777", out.Assets[2].Amount.String()) // untouched
	})

	t.Run("non-positive budget performs no conversion", func(t *testing.T) {
		p := domain.Portfolio{
			Assets:      []domain.Asset{withWeight(lumpAsset("A", 123), "100")},
			InputMode:   domain.InputMode_Weight,
			TotalBudget: decimal.Zero,
			DateRange:   testDateRange,
		}

		out := ApplyWeightsToAmounts(p)

		require.Equal(t, "123", out.Assets[0].Amount.String())
	})

	t.Run("budget closure for mixed lump and dca portfolios", func(t *testing.T) {
		p := domain.Portfolio{
			Assets: []domain.Asset{
				withWeight(dcaAsset("A", 0, domain.DCAFrequency_Weekly), "17.5"),
				withWeight(lumpAsset("B", 0), "22.5"),
				withWeight(dcaAsset("C", 0, domain.DCAFrequency_Every12Weeks), "35"),
				withWeight(lumpAsset("D", 0), "25"),
			},
			InputMode:   domain.InputMode_Weight,
			TotalBudget: decimal.NewFromInt(123_457),
			DateRange:   testDateRange,
		}

		out := ApplyWeightsToAmounts(p)

		weightedTotal := decimal.Zero
		for _, a := range out.Assets {
			weightedTotal = weightedTotal.Add(EffectiveTotal(a, out.DateRange))
		}
		require.True(t, weightedTotal.Equal(p.TotalBudget),
			"expected %s, got %s", p.TotalBudget.String(), weightedTotal.String())
	})
}

func TestRoundTripStability(t *testing.T) {
	p := domain.Portfolio{
		Assets: []domain.Asset{
			lumpAsset("VTI", 6_000),
			dcaAsset("SPY", 1_000, domain.DCAFrequency_Every4Weeks),
			lumpAsset("BND", 4_000),
		},
		InputMode: domain.InputMode_Amount,
		DateRange: testDateRange,
	}
	before := EffectiveBudget(p)

	out := ApplyWeightsToAmounts(DeriveWeightsFromAmounts(p, false))
	after := EffectiveBudget(out)

	// drift is bounded by one unit per independently rounded asset and is
	// concentrated in the last weighted asset
	maxDrift := decimal.NewFromInt(int64(len(p.Assets) - 1))
	require.True(t, after.Sub(before).Abs().LessThanOrEqual(maxDrift),
		"drift %s exceeds %s", after.Sub(before).Abs().String(), maxDrift.String())

	// and the budget itself closes exactly
	require.True(t, after.Equal(out.TotalBudget))
}
