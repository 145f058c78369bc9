package repositories

import (
	"context"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
)

// MiscExpenseReader defines read operations for miscellaneous expense data
type MiscExpenseReader interface {
	// ListMiscExpenses retrieves miscellaneous expenses optionally bounded by
	// [from, to] on the expense date, ordered by date then sequence.
	ListMiscExpenses(ctx context.Context, from *time.Time, to *time.Time) ([]domain.MiscExpense, error)
}

// MiscExpenseWriter defines write operations for miscellaneous expense data
type MiscExpenseWriter interface {
	// SaveMiscExpense persists a miscellaneous expense.
	SaveMiscExpense(ctx context.Context, expense domain.MiscExpense) error
}

// MiscExpenseRepositoryFacade combines all misc-expense repository interfaces
type MiscExpenseRepositoryFacade interface {
	MiscExpenseReader
	MiscExpenseWriter
}
