package core

// TotalByKind sums the amounts of all transactions with the given kind.
// An empty input yields zero.
func TotalByKind(transactions []Transaction, kind TransactionKind) Money {
	var cents int64
	for _, t := range transactions {
		if t.Kind == kind {
			cents += t.Amount.Cents
		}
	}
	return Money{Cents: cents}
}

// Balance is total income minus total expense. It may be negative.
func Balance(transactions []Transaction) Money {
	income := TotalByKind(transactions, Income)
	expense := TotalByKind(transactions, Expense)
	return Money{Cents: income.Cents - expense.Cents}
}

// MonthlyIncome sums income transactions that occurred in the given calendar
// month and year.
func MonthlyIncome(transactions []Transaction, month, year int) Money {
	var cents int64
	for _, t := range transactions {
		if t.Kind != Income {
			continue
		}
		if t.OccurredOn.Month() == month && t.OccurredOn.Year() == year {
			cents += t.Amount.Cents
		}
	}
	return Money{Cents: cents}
}
