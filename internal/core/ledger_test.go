package core

import "testing"

func tx(kind TransactionKind, cents int64, d Date) Transaction {
	return Transaction{Kind: kind, Description: "x", Amount: Money{Cents: cents}, Category: "c", OccurredOn: d}
}

func TestTotalByKindEmpty(t *testing.T) {
	if got := TotalByKind(nil, Income); got.Cents != 0 {
		t.Fatalf("empty income total = %d, want 0", got.Cents)
	}
	if got := TotalByKind([]Transaction{}, Expense); got.Cents != 0 {
		t.Fatalf("empty expense total = %d, want 0", got.Cents)
	}
}

func TestTotalByKindAndBalance(t *testing.T) {
	d := NewDate(2025, 6, 10)
	txs := []Transaction{
		tx(Income, 13000, d),
		tx(Expense, 4500, d),
		tx(Income, 2050, d),
		tx(Expense, 100, d),
	}

	income := TotalByKind(txs, Income)
	expense := TotalByKind(txs, Expense)
	if income.Cents != 15050 {
		t.Fatalf("income = %d, want 15050", income.Cents)
	}
	if expense.Cents != 4600 {
		t.Fatalf("expense = %d, want 4600", expense.Cents)
	}

	balance := Balance(txs)
	if balance.Cents != income.Cents-expense.Cents {
		t.Fatalf("balance = %d, want income-expense = %d", balance.Cents, income.Cents-expense.Cents)
	}
}

func TestBalanceCanGoNegative(t *testing.T) {
	txs := []Transaction{
		tx(Income, 100, NewDate(2025, 6, 1)),
		tx(Expense, 250, NewDate(2025, 6, 2)),
	}
	if got := Balance(txs); got.Cents != -150 {
		t.Fatalf("balance = %d, want -150", got.Cents)
	}
}

func TestMonthlyIncome(t *testing.T) {
	txs := []Transaction{
		tx(Income, 1000, NewDate(2025, 6, 1)),
		tx(Income, 2000, NewDate(2025, 6, 30)),
		tx(Income, 4000, NewDate(2025, 7, 1)),  // next month
		tx(Income, 8000, NewDate(2024, 6, 15)), // same month, previous year
		tx(Expense, 500, NewDate(2025, 6, 10)), // expenses never count
	}
	if got := MonthlyIncome(txs, 6, 2025); got.Cents != 3000 {
		t.Fatalf("monthly income = %d, want 3000", got.Cents)
	}
	if got := MonthlyIncome(nil, 6, 2025); got.Cents != 0 {
		t.Fatalf("empty monthly income = %d, want 0", got.Cents)
	}
}
