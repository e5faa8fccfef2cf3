package model

// OverviewSummary is the aggregator's combined view of one access
// credential's accounts and recent transactions. It is recomputed from
// freshly fetched data on every request.
type OverviewSummary struct {
	TotalBalance       float64            `json:"total_balance"`
	TotalIncome        float64            `json:"total_income"`
	TotalSpending      float64            `json:"total_spending"`
	SpendingByCategory map[string]float64 `json:"spending_by_category"`
	TransactionCount   int                `json:"transaction_count"`
}

// AmountTotal wraps a single summed amount.
type AmountTotal struct {
	Total float64 `json:"total"`
}

// CashFlow reports net movement over the analyzed window.
type CashFlow struct {
	Net float64 `json:"net"`
}

// MerchantSpend is one merchant's summed spending.
type MerchantSpend struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Analytics is the richer per-credential report served by the analytics
// endpoint. Spending figures are absolute values.
type Analytics struct {
	IncomeSummary     AmountTotal        `json:"income_summary"`
	ExpenseSummary    AmountTotal        `json:"expense_summary"`
	CashFlow          CashFlow           `json:"cash_flow"`
	BalanceTrend      map[string]float64 `json:"balance_trend"`
	TopMerchants      []MerchantSpend    `json:"top_merchants"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
}
