package accounting_test

import (
	"testing"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/core/domain"
	"github.com/gurukosh/guru_finance_app/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCredit(t *testing.T) {
	cases := []struct {
		label    string
		kind     domain.MovementKind
		category domain.LoanCategory
		wildcard bool
	}{
		{"Weekly Loan EMI Received", domain.MovementEMI, domain.LoanWeekly, false},
		{"Monthly Loan EMI Received", domain.MovementEMI, domain.LoanMonthly, false},
		{"Yearly Loan EMI Received", domain.MovementEMI, domain.LoanYearly, false},
		{"FD Loan EMI Received", domain.MovementEMI, domain.LoanFD, false},
		{"Loan EMI Received", domain.MovementEMI, "", true},
		{"Weekly Interest Received", domain.MovementInterest, domain.LoanWeekly, false},
		{"Monthly Interest Received", domain.MovementInterest, domain.LoanMonthly, false},
		{"Loan Interest Received", domain.MovementInterest, "", true},
		{"Fine Received", domain.MovementFine, "", true},
		{"Loan Fine Received", domain.MovementFine, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			rule, ok := accounting.ClassifyCredit(tc.label)
			require.True(t, ok)
			assert.Equal(t, tc.kind, rule.Kind)
			assert.Equal(t, tc.wildcard, rule.AnyCategory)
			if !tc.wildcard {
				assert.Equal(t, tc.category, rule.Category)
			}
		})
	}

	// The table is exactly these ten labels and nothing else.
	assert.ElementsMatch(t, []string{
		"Weekly Loan EMI Received", "Monthly Loan EMI Received",
		"Yearly Loan EMI Received", "FD Loan EMI Received", "Loan EMI Received",
		"Weekly Interest Received", "Monthly Interest Received",
		"Loan Interest Received", "Fine Received", "Loan Fine Received",
	}, accounting.ClassifiableCreditLabels())
}

func TestClassifyCreditUnknownLabels(t *testing.T) {
	for _, label := range []string{"Member Received", "SB Received", "FD Received", "Loan Given", ""} {
		_, ok := accounting.ClassifyCredit(label)
		assert.False(t, ok, "%q must not classify as a loan payment", label)
	}
}

func TestSBBalanceAndPassbookRules(t *testing.T) {
	assert.True(t, accounting.CreditAffectsSBBalance("Member Received"))
	assert.True(t, accounting.CreditAffectsSBBalance("SB Received"))
	assert.False(t, accounting.CreditAffectsSBBalance("Loan EMI Received"))
	assert.False(t, accounting.CreditAffectsSBBalance("Fine Received"))

	assert.True(t, accounting.MirrorCreditToPassbook("Member Received"))
	assert.False(t, accounting.MirrorCreditToPassbook("SB Received"))
	assert.False(t, accounting.MirrorCreditToPassbook("Monthly Loan EMI Received"))

	assert.True(t, accounting.MirrorDebitToPassbook("Member Closed"))
	assert.False(t, accounting.MirrorDebitToPassbook("Loan Given"))
	assert.False(t, accounting.MirrorDebitToPassbook("FD Close"))
}

func TestSelectLoanForPayment(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	loans := []domain.Loan{
		{LoanID: "L1", Category: domain.LoanMonthly, StartDate: jan, Seq: 1},
		{LoanID: "L2", Category: domain.LoanMonthly, StartDate: mar, Seq: 2},
		{LoanID: "L3", Category: domain.LoanWeekly, StartDate: mar, Seq: 3},
	}

	monthly, _ := accounting.ClassifyCredit("Monthly Loan EMI Received")
	picked := accounting.SelectLoanForPayment(loans, monthly)
	require.NotNil(t, picked)
	assert.Equal(t, "L2", picked.LoanID, "later start date wins within the category")

	any, _ := accounting.ClassifyCredit("Loan EMI Received")
	picked = accounting.SelectLoanForPayment(loans, any)
	require.NotNil(t, picked)
	assert.Equal(t, "L3", picked.LoanID, "same start date: highest sequence wins")

	weekly, _ := accounting.ClassifyCredit("Weekly Interest Received")
	picked = accounting.SelectLoanForPayment(loans[:2], weekly)
	assert.Nil(t, picked, "no weekly loan present")

	assert.Nil(t, accounting.SelectLoanForPayment(nil, any))
}
