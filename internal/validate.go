package internal

import (
	"fmt"
	"portfoliolab/internal/domain"
	"strings"

	"github.com/shopspring/decimal"
)

// MinimumAssetAmount is the floor below which an allocation is too small
// to backtest meaningfully.
var MinimumAssetAmount = decimal.NewFromInt(100)

// the tolerance band absorbs legitimate per-asset rounding to 0.01%, so
// it is deliberately generous
var (
	weightSumLowerBound = decimal.NewFromInt(95)
	weightSumUpperBound = decimal.NewFromInt(105)
)

// Validate checks a portfolio's structural and business invariants and
// returns every violation as data. It never errors and depends on nothing
// but its argument, so the same portfolio always yields the same list.
func Validate(p domain.Portfolio) []domain.Diagnostic {
	diagnostics := []domain.Diagnostic{}

	if len(p.Assets) == 0 {
		diagnostics = append(diagnostics, domain.Diagnostic{
			Kind:    domain.DiagnosticKind_EmptyPortfolio,
			Message: "portfolio has no assets",
		})
		return diagnostics
	}

	// duplicate detection ignores cash rows (free-text labels) and is
	// case-insensitive; reported once per symbol, in first-seen order
	symbolCounts := map[string]int{}
	symbolOrder := []string{}
	for _, a := range p.Assets {
		if a.AssetClass == domain.AssetClass_Cash {
			continue
		}
		symbol := strings.ToUpper(strings.TrimSpace(a.Symbol))
		if symbol == "" {
			continue
		}
		if _, ok := symbolCounts[symbol]; !ok {
			symbolOrder = append(symbolOrder, symbol)
		}
		symbolCounts[symbol]++
	}
	for _, symbol := range symbolOrder {
		if symbolCounts[symbol] > 1 {
			s := symbol
			count := symbolCounts[symbol]
			diagnostics = append(diagnostics, domain.Diagnostic{
				Kind:    domain.DiagnosticKind_DuplicateSymbol,
				Symbol:  &s,
				Count:   &count,
				Message: fmt.Sprintf("symbol %s appears %d times", symbol, count),
			})
		}
	}

	for i, a := range p.Assets {
		index := i
		if strings.TrimSpace(a.Symbol) == "" {
			diagnostics = append(diagnostics, domain.Diagnostic{
				Kind:       domain.DiagnosticKind_MissingSymbol,
				AssetIndex: &index,
				Message:    fmt.Sprintf("asset %d has no symbol", i),
			})
		}
		if a.Amount.LessThan(MinimumAssetAmount) {
			diagnostics = append(diagnostics, domain.Diagnostic{
				Kind:       domain.DiagnosticKind_AmountTooLow,
				AssetIndex: &index,
				Message:    fmt.Sprintf("asset %d amount %s is below the minimum of %s", i, a.Amount.String(), MinimumAssetAmount.String()),
			})
		}
		if a.InvestmentType == domain.InvestmentType_DCA && a.DCAFrequency == "" {
			diagnostics = append(diagnostics, domain.Diagnostic{
				Kind:       domain.DiagnosticKind_MissingDcaFrequency,
				AssetIndex: &index,
				Message:    fmt.Sprintf("asset %d uses dollar cost averaging but has no frequency", i),
			})
		}
	}

	weightSum := decimal.Zero
	anyPositiveWeight := false
	for _, a := range p.Assets {
		if !a.HasLiveWeight() {
			continue
		}
		weightSum = weightSum.Add(*a.Weight)
		if a.Weight.GreaterThan(decimal.Zero) {
			anyPositiveWeight = true
		}
	}
	if anyPositiveWeight &&
		(weightSum.LessThan(weightSumLowerBound) || weightSum.GreaterThan(weightSumUpperBound)) {
		sum := weightSum
		diagnostics = append(diagnostics, domain.Diagnostic{
			Kind:      domain.DiagnosticKind_WeightSumOutOfRange,
			WeightSum: &sum,
			Message:   fmt.Sprintf("weights sum to %s%%, expected between %s%% and %s%%", weightSum.String(), weightSumLowerBound.String(), weightSumUpperBound.String()),
		})
	}

	return diagnostics
}
