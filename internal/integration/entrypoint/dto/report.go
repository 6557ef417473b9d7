package dto

import (
	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/application/usecase/report"
	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// PeriodResponse represents a resolved reporting window.
type PeriodResponse struct {
	Mode     string `json:"mode"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// TotalsResponse represents aggregate figures.
type TotalsResponse struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// ComparisonResponse represents the previous-period window and changes.
type ComparisonResponse struct {
	Period         PeriodResponse `json:"period"`
	Totals         TotalsResponse `json:"totals"`
	IncomeChange   float64        `json:"income_change"`
	ExpensesChange float64        `json:"expenses_change"`
	BalanceChange  float64        `json:"balance_change"`
}

// SummaryResponse represents the period summary report.
type SummaryResponse struct {
	Period           PeriodResponse      `json:"period"`
	Totals           TotalsResponse      `json:"totals"`
	Comparison       *ComparisonResponse `json:"comparison,omitempty"`
	TransactionCount int                 `json:"transaction_count"`
}

// BreakdownRowResponse represents one subcategory group.
type BreakdownRowResponse struct {
	Subcategory string          `json:"subcategory"`
	Total       decimal.Decimal `json:"total"`
	Count       int             `json:"count"`
	Percentage  float64         `json:"percentage"`
}

// BreakdownResponse represents the category breakdown report.
type BreakdownResponse struct {
	Period  PeriodResponse         `json:"period"`
	Income  []BreakdownRowResponse `json:"income"`
	Expense []BreakdownRowResponse `json:"expense"`
}

// ReceiverPositionResponse represents one receiver's net position.
type ReceiverPositionResponse struct {
	Receiver  string          `json:"receiver"`
	Income    decimal.Decimal `json:"income"`
	Expenses  decimal.Decimal `json:"expenses"`
	Balance   decimal.Decimal `json:"balance"`
	Overspent bool            `json:"overspent"`
}

// ReceiverStatsResponse represents the receiver positions report.
type ReceiverStatsResponse struct {
	Period    PeriodResponse             `json:"period"`
	Receivers []ReceiverPositionResponse `json:"receivers"`
}

// ToPeriodResponse converts a resolved period.
func ToPeriodResponse(period entity.Period) PeriodResponse {
	return PeriodResponse{
		Mode:     string(period.Mode),
		FromDate: period.FromDate,
		ToDate:   period.ToDate,
	}
}

// ToTotalsResponse converts aggregate totals.
func ToTotalsResponse(totals report.Totals) TotalsResponse {
	return TotalsResponse{
		Income:   totals.Income,
		Expenses: totals.Expenses,
		Balance:  totals.Balance,
	}
}

// ToSummaryResponse converts the summary use case output.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	response := SummaryResponse{
		Period:           ToPeriodResponse(output.Period),
		Totals:           ToTotalsResponse(output.Totals),
		TransactionCount: output.TransactionCount,
	}
	if output.Comparison != nil {
		response.Comparison = &ComparisonResponse{
			Period:         ToPeriodResponse(output.Comparison.Period),
			Totals:         ToTotalsResponse(output.Comparison.Totals),
			IncomeChange:   output.Comparison.IncomeChange,
			ExpensesChange: output.Comparison.ExpensesChange,
			BalanceChange:  output.Comparison.BalanceChange,
		}
	}
	return response
}

// ToBreakdownResponse converts the breakdown use case output.
func ToBreakdownResponse(output *report.GetBreakdownOutput) BreakdownResponse {
	return BreakdownResponse{
		Period:  ToPeriodResponse(output.Period),
		Income:  toBreakdownRows(output.Income),
		Expense: toBreakdownRows(output.Expense),
	}
}

func toBreakdownRows(rows []report.BreakdownRow) []BreakdownRowResponse {
	responses := make([]BreakdownRowResponse, len(rows))
	for i, row := range rows {
		responses[i] = BreakdownRowResponse{
			Subcategory: row.Subcategory,
			Total:       row.Total,
			Count:       row.Count,
			Percentage:  row.Percentage,
		}
	}
	return responses
}

// ToReceiverStatsResponse converts the receiver stats use case output.
func ToReceiverStatsResponse(output *report.GetReceiverStatsOutput) ReceiverStatsResponse {
	receivers := make([]ReceiverPositionResponse, len(output.Positions))
	for i, position := range output.Positions {
		receivers[i] = ReceiverPositionResponse{
			Receiver:  position.Receiver,
			Income:    position.Income,
			Expenses:  position.Expenses,
			Balance:   position.Balance,
			Overspent: position.Overspent,
		}
	}
	return ReceiverStatsResponse{
		Period:    ToPeriodResponse(output.Period),
		Receivers: receivers,
	}
}
