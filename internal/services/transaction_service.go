package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"clinica/internal/amqp"
	"clinica/internal/core"
	"clinica/internal/store"
)

// TransactionDraft is the raw form input for a new transaction. All fields
// arrive as text from the UI boundary and are parsed here; the record is
// dated with the current day.
type TransactionDraft struct {
	Kind        string
	Description string
	Amount      string
	Category    string
}

// TransactionUpdate carries the fields of a partial update. Nil pointers
// leave the stored value untouched.
type TransactionUpdate struct {
	Kind        *string
	Description *string
	Amount      *string
	Category    *string
}

// TransactionSummary aggregates the cash-flow numbers the dashboard shows.
type TransactionSummary struct {
	Income        core.Money
	Expense       core.Money
	Balance       core.Money
	MonthlyIncome core.Money
	Month         int
	Year          int
}

type TransactionService struct {
	store  *store.Store[core.Transaction]
	events EventPublisher
	now    func() time.Time
}

func NewTransactionService(s *store.Store[core.Transaction], events EventPublisher) *TransactionService {
	return &TransactionService{store: s, events: events, now: time.Now}
}

// Create parses and validates the draft and inserts the transaction dated
// today. Validation failures abort before any mutation.
func (s *TransactionService) Create(ctx context.Context, draft TransactionDraft) (core.Transaction, error) {
	kind := core.TransactionKind(strings.TrimSpace(draft.Kind))
	if err := kind.Validate(); err != nil {
		return core.Transaction{}, err
	}

	cents, err := core.ParseDecimalToCents(draft.Amount)
	if err != nil {
		return core.Transaction{}, err
	}

	candidate := core.Transaction{
		Kind:        kind,
		Description: strings.TrimSpace(draft.Description),
		Amount:      core.Money{Cents: cents},
		Category:    strings.TrimSpace(draft.Category),
		OccurredOn:  core.DateOf(s.now()),
	}
	if err := candidate.Validate(); err != nil {
		return core.Transaction{}, err
	}

	created := s.store.Insert(func(id string) core.Transaction {
		candidate.ID = id
		return candidate
	})

	slog.InfoContext(ctx, "Transaction created",
		"record_id", created.ID,
		"kind", created.Kind,
		"amount_cents", created.Amount.Cents,
		"category", created.Category)

	publishChange(ctx, s.events, amqp.EntityTransaction, amqp.OpInsert, created.ID, NewTransactionView(created))
	return created, nil
}

// Update merges the provided fields into the transaction matching id. The
// occurred-on date is not updatable. An unknown id is a benign no-op
// reported through the bool.
func (s *TransactionService) Update(ctx context.Context, id string, update TransactionUpdate) (core.Transaction, bool, error) {
	var (
		kind     *core.TransactionKind
		cents    *int64
		desc     *string
		category *string
	)

	if update.Kind != nil {
		k := core.TransactionKind(strings.TrimSpace(*update.Kind))
		if err := k.Validate(); err != nil {
			return core.Transaction{}, false, err
		}
		kind = &k
	}
	if update.Amount != nil {
		c, err := core.ParseDecimalToCents(*update.Amount)
		if err != nil {
			return core.Transaction{}, false, err
		}
		cents = &c
	}
	if update.Description != nil {
		d := strings.TrimSpace(*update.Description)
		if d == "" {
			return core.Transaction{}, false, core.ErrEmptyDescription
		}
		desc = &d
	}
	if update.Category != nil {
		c := strings.TrimSpace(*update.Category)
		if c == "" {
			return core.Transaction{}, false, core.ErrEmptyCategory
		}
		category = &c
	}

	updated, ok := s.store.Update(id, func(t core.Transaction) core.Transaction {
		if kind != nil {
			t.Kind = *kind
		}
		if cents != nil {
			t.Amount = core.Money{Cents: *cents}
		}
		if desc != nil {
			t.Description = *desc
		}
		if category != nil {
			t.Category = *category
		}
		return t
	})
	if !ok {
		return core.Transaction{}, false, nil
	}

	slog.InfoContext(ctx, "Transaction updated", "record_id", id)
	publishChange(ctx, s.events, amqp.EntityTransaction, amqp.OpUpdate, id, NewTransactionView(updated))
	return updated, true, nil
}

// Delete removes the transaction matching id; absent ids are a benign no-op.
func (s *TransactionService) Delete(ctx context.Context, id string) bool {
	if !s.store.Delete(id) {
		return false
	}
	slog.InfoContext(ctx, "Transaction deleted", "record_id", id)
	publishChange(ctx, s.events, amqp.EntityTransaction, amqp.OpDelete, id, nil)
	return true
}

// List returns the ordered snapshot, newest first.
func (s *TransactionService) List(_ context.Context) []core.Transaction {
	return s.store.List()
}

// Summary computes totals, balance and the income of the given month.
func (s *TransactionService) Summary(_ context.Context, month, year int) TransactionSummary {
	snapshot := s.store.List()
	return TransactionSummary{
		Income:        core.TotalByKind(snapshot, core.Income),
		Expense:       core.TotalByKind(snapshot, core.Expense),
		Balance:       core.Balance(snapshot),
		MonthlyIncome: core.MonthlyIncome(snapshot, month, year),
		Month:         month,
		Year:          year,
	}
}

// CurrentMonthIncome is the home-screen revenue number: income booked in
// the current calendar month.
func (s *TransactionService) CurrentMonthIncome(ctx context.Context) core.Money {
	now := s.now()
	return s.Summary(ctx, int(now.Month()), now.Year()).MonthlyIncome
}
