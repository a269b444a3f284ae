package api

import (
	"fmt"
	"portfoliolab/internal/domain"
	"portfoliolab/internal/util"
	"strings"

	"github.com/maja42/goval"
	"github.com/shopspring/decimal"
)

// wire representations of the engine's value types. Resolvers translate
// at the boundary; nothing inside internal/ knows about JSON.

type assetJson struct {
	Symbol         string   `json:"symbol"`
	Amount         float64  `json:"amount"`
	Weight         *float64 `json:"weight,omitempty"`
	InvestmentType string   `json:"investmentType"`
	DcaFrequency   *string  `json:"dcaFrequency,omitempty"`
	AssetClass     string   `json:"assetClass"`
}

type portfolioJson struct {
	Assets      []assetJson `json:"assets"`
	InputMode   string      `json:"inputMode"`
	TotalBudget float64     `json:"totalBudget"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
}

type diagnosticJson struct {
	Kind       string   `json:"kind"`
	AssetIndex *int     `json:"assetIndex,omitempty"`
	Symbol     *string  `json:"symbol,omitempty"`
	Count      *int     `json:"count,omitempty"`
	WeightSum  *float64 `json:"weightSum,omitempty"`
	Message    string   `json:"message"`
}

func (a assetJson) toDomain() (*domain.Asset, error) {
	investmentType, err := domain.NewInvestmentType(a.InvestmentType)
	if err != nil {
		return nil, err
	}
	assetClass, err := domain.NewAssetClass(a.AssetClass)
	if err != nil {
		return nil, err
	}

	out := domain.Asset{
		Symbol:         a.Symbol,
		Amount:         decimal.NewFromFloat(a.Amount),
		InvestmentType: *investmentType,
		AssetClass:     *assetClass,
	}
	if a.Weight != nil {
		w := decimal.NewFromFloat(*a.Weight)
		out.Weight = &w
	}
	if a.DcaFrequency != nil && strings.TrimSpace(*a.DcaFrequency) != "" {
		frequency, err := domain.NewDCAFrequency(*a.DcaFrequency)
		if err != nil {
			return nil, err
		}
		out.DCAFrequency = *frequency
	}
	return &out, nil
}

func assetToJson(a domain.Asset) assetJson {
	out := assetJson{
		Symbol:         a.Symbol,
		Amount:         a.Amount.InexactFloat64(),
		InvestmentType: string(a.InvestmentType),
		AssetClass:     string(a.AssetClass),
	}
	if a.Weight != nil {
		out.Weight = util.FloatPointer(a.Weight.InexactFloat64())
	}
	if a.DCAFrequency != "" {
		out.DcaFrequency = util.StringPointer(string(a.DCAFrequency))
	}
	return out
}

func (p portfolioJson) toDomain() (*domain.Portfolio, error) {
	inputMode, err := domain.NewInputMode(p.InputMode)
	if err != nil {
		return nil, err
	}
	start, err := util.ParseDate(p.StartDate)
	if err != nil {
		return nil, fmt.Errorf("could not parse start date: %w", err)
	}
	end, err := util.ParseDate(p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("could not parse end date: %w", err)
	}

	out := domain.Portfolio{
		Assets:      []domain.Asset{},
		InputMode:   *inputMode,
		TotalBudget: decimal.NewFromFloat(p.TotalBudget),
		DateRange:   domain.DateRange{Start: start, End: end},
	}
	for _, a := range p.Assets {
		asset, err := a.toDomain()
		if err != nil {
			return nil, err
		}
		out.Assets = append(out.Assets, *asset)
	}
	return &out, nil
}

func portfolioToJson(p domain.Portfolio) portfolioJson {
	out := portfolioJson{
		Assets:      []assetJson{},
		InputMode:   string(p.InputMode),
		TotalBudget: p.TotalBudget.InexactFloat64(),
		StartDate:   util.FormatDate(p.DateRange.Start),
		EndDate:     util.FormatDate(p.DateRange.End),
	}
	for _, a := range p.Assets {
		out.Assets = append(out.Assets, assetToJson(a))
	}
	return out
}

func diagnosticsToJson(diagnostics []domain.Diagnostic) []diagnosticJson {
	out := []diagnosticJson{}
	for _, d := range diagnostics {
		dj := diagnosticJson{
			Kind:       string(d.Kind),
			AssetIndex: d.AssetIndex,
			Symbol:     d.Symbol,
			Count:      d.Count,
			Message:    d.Message,
		}
		if d.WeightSum != nil {
			dj.WeightSum = util.FloatPointer(d.WeightSum.InexactFloat64())
		}
		out = append(out, dj)
	}
	return out
}

type eventJson struct {
	Type             string     `json:"type"`
	Index            *int       `json:"index,omitempty"`
	Asset            *assetJson `json:"asset,omitempty"`
	Symbol           *string    `json:"symbol,omitempty"`
	Amount           *float64   `json:"amount,omitempty"`
	Weight           *float64   `json:"weight,omitempty"`
	InvestmentType   *string    `json:"investmentType,omitempty"`
	DcaFrequency     *string    `json:"dcaFrequency,omitempty"`
	AssetClass       *string    `json:"assetClass,omitempty"`
	InputMode        *string    `json:"inputMode,omitempty"`
	TotalBudget      *float64   `json:"totalBudget,omitempty"`
	BudgetExpression *string    `json:"budgetExpression,omitempty"`
	StartDate        *string    `json:"startDate,omitempty"`
	EndDate          *string    `json:"endDate,omitempty"`
}

func (e eventJson) requireIndex() (int, error) {
	if e.Index == nil {
		return 0, fmt.Errorf("event %s requires an index", e.Type)
	}
	return *e.Index, nil
}

func (e eventJson) toDomain() (domain.Event, error) {
	switch strings.ToUpper(strings.TrimSpace(e.Type)) {
	case "ADD_ASSET":
		if e.Asset != nil {
			asset, err := e.Asset.toDomain()
			if err != nil {
				return nil, err
			}
			return domain.AddAssetEvent{Asset: asset}, nil
		}
		return domain.AddAssetEvent{}, nil

	case "REMOVE_ASSET":
		index, err := e.requireIndex()
		if err != nil {
			return nil, err
		}
		return domain.RemoveAssetEvent{Index: index}, nil

	case "UPDATE_SYMBOL":
		index, err := e.requireIndex()
		if err != nil {
			return nil, err
		}
		if e.Symbol == nil {
			return nil, fmt.Errorf("UPDATE_SYMBOL requires a symbol")
		}
		return domain.UpdateSymbolEvent{Index: index, Symbol: *e.Symbol}, nil

	case "UPDATE_AMOUNT":
		index, err := e.requireIndex()
		if err != nil {
			return nil, err
		}
		if e.Amount == nil {
			return nil, fmt.Errorf("UPDATE_AMOUNT requires an amount")
		}
		return domain.UpdateAmountEvent{Index: index, Amount: decimal.NewFromFloat(*e.Amount)}, nil

	case "UPDATE_WEIGHT":
		index, err := e.requireIndex()
		if err != nil {
			return nil, err
		}
		if e.Weight == nil {
			return nil, fmt.Errorf("UPDATE_WEIGHT requires a weight")
		}
		return domain.UpdateWeightEvent{Index: index, Weight: decimal.NewFromFloat(*e.Weight)}, nil

	case "UPDATE_INVESTMENT_TYPE":
		index, err := e.requireIndex()
		if err != nil {
			return nil, err
		}
		if e.InvestmentType == nil {
			return nil, fmt.Errorf("UPDATE_INVESTMENT_TYPE requires an investmentType")
		}
		investmentType, err := domain.NewInvestmentType(*e.InvestmentType)
		if err != nil {
			return nil, err
		}
		return domain.UpdateInvestmentTypeEvent{Index: index, InvestmentType: *investmentType}, nil

	case "UPDATE_DCA_FREQUENCY":
		index, err := e.requireIndex()
		if err != nil {
			return nil, err
		}
		if e.DcaFrequency == nil {
			return nil, fmt.Errorf("UPDATE_DCA_FREQUENCY requires a dcaFrequency")
		}
		frequency, err := domain.NewDCAFrequency(*e.DcaFrequency)
		if err != nil {
			return nil, err
		}
		return domain.UpdateDCAFrequencyEvent{Index: index, Frequency: *frequency}, nil

	case "UPDATE_ASSET_CLASS":
		index, err := e.requireIndex()
		if err != nil {
			return nil, err
		}
		if e.AssetClass == nil {
			return nil, fmt.Errorf("UPDATE_ASSET_CLASS requires an assetClass")
		}
		assetClass, err := domain.NewAssetClass(*e.AssetClass)
		if err != nil {
			return nil, err
		}
		return domain.UpdateAssetClassEvent{Index: index, AssetClass: *assetClass}, nil

	case "SET_INPUT_MODE":
		if e.InputMode == nil {
			return nil, fmt.Errorf("SET_INPUT_MODE requires an inputMode")
		}
		mode, err := domain.NewInputMode(*e.InputMode)
		if err != nil {
			return nil, err
		}
		return domain.SetInputModeEvent{Mode: *mode}, nil

	case "SET_TOTAL_BUDGET":
		value, err := e.budgetValue()
		if err != nil {
			return nil, err
		}
		return domain.SetTotalBudgetEvent{Value: value}, nil

	case "SET_DATE_RANGE":
		if e.StartDate == nil || e.EndDate == nil {
			return nil, fmt.Errorf("SET_DATE_RANGE requires startDate and endDate")
		}
		start, err := util.ParseDate(*e.StartDate)
		if err != nil {
			return nil, fmt.Errorf("could not parse start date: %w", err)
		}
		end, err := util.ParseDate(*e.EndDate)
		if err != nil {
			return nil, fmt.Errorf("could not parse end date: %w", err)
		}
		return domain.SetDateRangeEvent{Start: start, End: end}, nil

	case "RESET":
		return domain.ResetEvent{}, nil
	}

	return nil, fmt.Errorf("unknown event type %s", e.Type)
}

// budgetValue accepts either a plain number or an arithmetic expression
// like "1500*12" - the budget field in the UI lets users type either.
func (e eventJson) budgetValue() (decimal.Decimal, error) {
	if e.TotalBudget != nil {
		return decimal.NewFromFloat(*e.TotalBudget), nil
	}
	if e.BudgetExpression == nil {
		return decimal.Zero, fmt.Errorf("SET_TOTAL_BUDGET requires totalBudget or budgetExpression")
	}

	eval := goval.NewEvaluator()
	result, err := eval.Evaluate(*e.BudgetExpression, nil, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not evaluate budget expression: %w", err)
	}
	switch v := result.(type) {
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	}
	return decimal.Zero, fmt.Errorf("budget expression did not evaluate to a number, got %T", result)
}
