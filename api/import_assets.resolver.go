package api

import (
	"fmt"
	"portfoliolab/internal"
	"portfoliolab/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

type importAssetsRequest struct {
	Portfolio portfolioJson `json:"portfolio"`
	Csv       string        `json:"csv"`
}

type assetCsvRow struct {
	Symbol         string  `csv:"symbol"`
	Amount         float64 `csv:"amount"`
	InvestmentType string  `csv:"investment_type"`
	DcaFrequency   string  `csv:"dca_frequency"`
	AssetClass     string  `csv:"asset_class"`
}

// importAssets appends rows from a CSV export to an existing portfolio.
// Each row goes through the same AddAsset path a manual edit would, so
// weight-mode portfolios stay reconciled as rows land.
func (m ApiHandler) importAssets(c *gin.Context) {
	var requestBody importAssetsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	portfolio, err := requestBody.Portfolio.toDomain()
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse portfolio: %w", err), c, 400)
		return
	}

	rows := []assetCsvRow{}
	if err := gocsv.UnmarshalString(requestBody.Csv, &rows); err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse csv: %w", err), c, 400)
		return
	}

	current := *portfolio
	for i, row := range rows {
		investmentType, err := domain.NewInvestmentType(row.InvestmentType)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("csv row %d: %w", i+1, err), c, 400)
			return
		}
		assetClass, err := domain.NewAssetClass(row.AssetClass)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("csv row %d: %w", i+1, err), c, 400)
			return
		}

		asset := domain.NewDefaultAsset()
		asset.Symbol = row.Symbol
		asset.Amount = decimal.NewFromFloat(row.Amount)
		asset.InvestmentType = *investmentType
		asset.AssetClass = *assetClass
		if row.DcaFrequency != "" {
			frequency, err := domain.NewDCAFrequency(row.DcaFrequency)
			if err != nil {
				returnErrorJsonCode(fmt.Errorf("csv row %d: %w", i+1, err), c, 400)
				return
			}
			asset.DCAFrequency = *frequency
		}

		current = internal.ReconcileWithOptions(current, domain.AddAssetEvent{Asset: &asset}, m.ReconcileOptions)
	}

	c.JSON(200, reconcileResponse{
		Portfolio:   portfolioToJson(current),
		Diagnostics: diagnosticsToJson(internal.Validate(current)),
	})
}
