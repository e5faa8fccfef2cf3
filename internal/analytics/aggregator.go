// Package analytics computes summary statistics over account and
// transaction snapshots fetched from the provider. All functions are pure:
// same inputs, same outputs, no side effects.
package analytics

import (
	"sort"

	"github.com/Veraticus/spice-bridge/internal/model"
)

// UncategorizedLabel collects spending from transactions without a
// category label.
const UncategorizedLabel = "uncategorized"

// unknownMerchant collects spending from transactions without a merchant
// name.
const unknownMerchant = "Unknown"

// topMerchantCount limits the merchant leaderboard in Analyze.
const topMerchantCount = 5

// Summarize computes an OverviewSummary from one credential's accounts and
// transactions.
//
// Transactions follow the model sign convention: positive amounts are
// income, negative amounts are spending. Spending totals and the category
// breakdown use absolute values, and each transaction contributes only to
// its primary category label. Any malformed record fails the whole
// computation with a ValidationError; no partial summary is returned.
func Summarize(accounts []model.Account, transactions []model.Transaction) (model.OverviewSummary, error) {
	if err := validate(accounts, transactions); err != nil {
		return model.OverviewSummary{}, err
	}

	summary := model.OverviewSummary{
		SpendingByCategory: make(map[string]float64),
		TransactionCount:   len(transactions),
	}

	for i := range accounts {
		summary.TotalBalance += *accounts[i].CurrentBalance
	}

	for i := range transactions {
		t := &transactions[i]
		amount := *t.Amount
		if amount > 0 {
			summary.TotalIncome += amount
			continue
		}
		if amount < 0 {
			summary.TotalSpending += -amount

			category := t.PrimaryCategory()
			if category == "" {
				category = UncategorizedLabel
			}
			summary.SpendingByCategory[category] += -amount
		}
	}

	return summary, nil
}

// Analyze computes the full analytics payload: income and expense totals,
// net cash flow, a per-account balance snapshot, the top five merchants by
// spending, and the category breakdown. Validation rules match Summarize.
func Analyze(accounts []model.Account, transactions []model.Transaction) (model.Analytics, error) {
	summary, err := Summarize(accounts, transactions)
	if err != nil {
		return model.Analytics{}, err
	}

	analytics := model.Analytics{
		IncomeSummary:     model.AmountTotal{Total: summary.TotalIncome},
		ExpenseSummary:    model.AmountTotal{Total: summary.TotalSpending},
		CashFlow:          model.CashFlow{Net: summary.TotalIncome - summary.TotalSpending},
		BalanceTrend:      make(map[string]float64, len(accounts)),
		CategoryBreakdown: summary.SpendingByCategory,
	}

	for i := range accounts {
		analytics.BalanceTrend[accounts[i].Name] = *accounts[i].CurrentBalance
	}

	analytics.TopMerchants = topMerchants(transactions, topMerchantCount)

	return analytics, nil
}

// topMerchants ranks merchants by summed absolute spending, descending.
// Ties break alphabetically so repeated runs produce identical output.
func topMerchants(transactions []model.Transaction, limit int) []model.MerchantSpend {
	spending := make(map[string]float64)
	for i := range transactions {
		t := &transactions[i]
		if *t.Amount >= 0 {
			continue
		}
		merchant := t.MerchantName
		if merchant == "" {
			merchant = unknownMerchant
		}
		spending[merchant] += -*t.Amount
	}

	ranked := make([]model.MerchantSpend, 0, len(spending))
	for name, amount := range spending {
		ranked = append(ranked, model.MerchantSpend{Name: name, Amount: amount})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// validate rejects the whole input set on the first malformed record.
func validate(accounts []model.Account, transactions []model.Transaction) error {
	for i := range accounts {
		if err := accounts[i].Validate(); err != nil {
			return err
		}
	}
	for i := range transactions {
		if err := transactions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
