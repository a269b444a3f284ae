package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type quoteResponse struct {
	Symbol    string  `json:"symbol"`
	ShortName string  `json:"shortName"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
}

// getQuote exists so the UI can confirm a ticker before it lands in an
// allocation row; the engine itself never looks at prices.
func (m ApiHandler) getQuote(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, 400)
		return
	}

	q, err := m.QuoteRepository.Get(symbol)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to look up %s: %w", symbol, err), c, 404)
		return
	}

	c.JSON(200, quoteResponse{
		Symbol:    q.Symbol,
		ShortName: q.ShortName,
		Price:     q.RegularMarketPrice,
		Currency:  q.CurrencyID,
	})
}
