package api

import (
	"fmt"
	"portfoliolab/internal"

	"github.com/gin-gonic/gin"
	"github.com/montanaflynn/stats"
)

type assetSummary struct {
	Symbol         string  `json:"symbol"`
	EffectiveTotal float64 `json:"effectiveTotal"`
	PeriodCount    int     `json:"periodCount"`
	Share          float64 `json:"share"`
}

type allocationSummaryResponse struct {
	EffectiveBudget float64        `json:"effectiveBudget"`
	Assets          []assetSummary `json:"assets"`

	// dispersion of effective shares across the portfolio; omitted when
	// there are fewer than two assets
	MeanShare   *float64 `json:"meanShare,omitempty"`
	MedianShare *float64 `json:"medianShare,omitempty"`
	ShareStdev  *float64 `json:"shareStdev,omitempty"`
}

// allocationSummary reports what the portfolio actually commits over the
// backtest window - the DCA-aware effective totals - rather than the raw
// per-period figures the user typed.
func (m ApiHandler) allocationSummary(c *gin.Context) {
	var requestBody portfolioJson
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	portfolio, err := requestBody.toDomain()
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse portfolio: %w", err), c, 400)
		return
	}

	effectiveBudget := internal.EffectiveBudget(*portfolio)

	response := allocationSummaryResponse{
		EffectiveBudget: effectiveBudget.InexactFloat64(),
		Assets:          []assetSummary{},
	}

	shares := []float64{}
	for _, asset := range portfolio.Assets {
		effectiveTotal := internal.EffectiveTotal(asset, portfolio.DateRange)
		share := 0.0
		if effectiveBudget.IsPositive() {
			share = 100 * effectiveTotal.InexactFloat64() / effectiveBudget.InexactFloat64()
		}
		shares = append(shares, share)
		response.Assets = append(response.Assets, assetSummary{
			Symbol:         asset.Symbol,
			EffectiveTotal: effectiveTotal.InexactFloat64(),
			PeriodCount:    internal.PeriodCount(portfolio.DateRange.Start, portfolio.DateRange.End, asset.DCAFrequency),
			Share:          share,
		})
	}

	if len(shares) >= 2 {
		mean, err := stats.Mean(shares)
		if err != nil {
			returnErrorJson(fmt.Errorf("failed to compute share mean: %w", err), c)
			return
		}
		median, err := stats.Median(shares)
		if err != nil {
			returnErrorJson(fmt.Errorf("failed to compute share median: %w", err), c)
			return
		}
		stdev, err := stats.StandardDeviationSample(shares)
		if err != nil {
			returnErrorJson(fmt.Errorf("failed to compute share stdev: %w", err), c)
			return
		}
		response.MeanShare = &mean
		response.MedianShare = &median
		response.ShareStdev = &stdev
	}

	c.JSON(200, response)
}
