// Package ledger computes per-trip expense statistics from a snapshot of the
// expense set and the current membership set. Callers must read both inside
// one transaction so the average never mixes a stale participant count with a
// fresh expense sum.
package ledger

import (
	"github.com/shopspring/decimal"

	"tripmate/internal/models"
	"tripmate/pkg/utils"
)

// UncategorizedBucket collects expenses without a category. The UI renders
// this label verbatim.
const UncategorizedBucket = "Sin categoría"

type Stats struct {
	TotalExpenses         decimal.Decimal
	TotalExpenseCount     int
	PerUserTotal          map[int]decimal.Decimal
	ParticipantCount      int
	AveragePerParticipant decimal.Decimal
	TotalByCategory       map[string]decimal.Decimal
}

// Compute reduces the expense snapshot against the current member set.
// Payers who have since left the trip still count toward the totals; only
// current members participate in the forward-looking average.
func Compute(expenses []models.Expense, memberIDs []int) Stats {
	stats := Stats{
		TotalExpenses:    decimal.Zero,
		PerUserTotal:     make(map[int]decimal.Decimal),
		ParticipantCount: len(memberIDs),
		TotalByCategory:  make(map[string]decimal.Decimal),
	}

	for _, expense := range expenses {
		stats.TotalExpenses = stats.TotalExpenses.Add(expense.Amount)
		stats.TotalExpenseCount++

		stats.PerUserTotal[expense.PaidBy] = stats.PerUserTotal[expense.PaidBy].Add(expense.Amount)

		category := UncategorizedBucket
		if expense.Category.Valid && expense.Category.String != "" {
			category = expense.Category.String
		}
		stats.TotalByCategory[category] = stats.TotalByCategory[category].Add(expense.Amount)
	}

	if stats.ParticipantCount == 0 {
		// A trip always has at least its owner as a member, so an empty
		// member set means the caller read inconsistent state.
		utils.Logger.Error("ledger computed with zero participants, membership invariant violated")
		stats.AveragePerParticipant = decimal.Zero
		return stats
	}

	stats.AveragePerParticipant = stats.TotalExpenses.
		Div(decimal.NewFromInt(int64(stats.ParticipantCount))).
		Round(2)
	return stats
}

// AmountOwedTo returns how much the user has paid above the average share,
// floored at zero. This is the product's settlement figure; it is not a
// pairwise debt graph.
func (s Stats) AmountOwedTo(userID int) decimal.Decimal {
	owed := s.PerUserTotal[userID].Sub(s.AveragePerParticipant)
	if owed.IsNegative() {
		return decimal.Zero
	}
	return owed
}
