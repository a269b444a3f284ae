package domain

import "github.com/shopspring/decimal"

type DiagnosticKind string

const (
	DiagnosticKind_EmptyPortfolio      DiagnosticKind = "EMPTY_PORTFOLIO"
	DiagnosticKind_DuplicateSymbol     DiagnosticKind = "DUPLICATE_SYMBOL"
	DiagnosticKind_MissingSymbol       DiagnosticKind = "MISSING_SYMBOL"
	DiagnosticKind_AmountTooLow        DiagnosticKind = "AMOUNT_TOO_LOW"
	DiagnosticKind_MissingDcaFrequency DiagnosticKind = "MISSING_DCA_FREQUENCY"
	DiagnosticKind_WeightSumOutOfRange DiagnosticKind = "WEIGHT_SUM_OUT_OF_RANGE"
)

// Diagnostic is validation output, not an error - the caller decides
// whether it blocks anything. Optional fields are set per kind.
type Diagnostic struct {
	Kind       DiagnosticKind
	AssetIndex *int
	Symbol     *string
	Count      *int
	WeightSum  *decimal.Decimal
	Message    string
}
