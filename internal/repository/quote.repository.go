package repository

import (
	"fmt"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"
)

// QuoteRepository resolves a ticker to a live quote. The UI uses it to
// confirm a symbol exists before the user commits it to an allocation row.
type QuoteRepository interface {
	Get(symbol string) (*finance.Quote, error)
}

type quoteRepositoryHandler struct{}

func NewQuoteRepository() QuoteRepository {
	return quoteRepositoryHandler{}
}

func (h quoteRepositoryHandler) Get(symbol string) (*finance.Quote, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("no quote found for %s", symbol)
	}

	return q, nil
}
