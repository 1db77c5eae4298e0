package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinica/internal/amqp"
	"clinica/internal/core"
	"clinica/internal/store"
)

// capturePublisher records published change events.
type capturePublisher struct {
	messages []*amqp.RecordChangeMessage
	fail     bool
}

func (p *capturePublisher) PublishRecordChange(_ context.Context, msg *amqp.RecordChangeMessage) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.messages = append(p.messages, msg)
	return nil
}

func fixedClock(year, month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.Month(month), day, 10, 30, 0, 0, time.UTC)
	}
}

func newTransactionService(events EventPublisher) *TransactionService {
	svc := NewTransactionService(store.NewTransactions(), events)
	svc.now = fixedClock(2025, 6, 11)
	return svc
}

func TestTransactionCreate(t *testing.T) {
	pub := &capturePublisher{}
	svc := newTransactionService(pub)

	tx, err := svc.Create(context.Background(), TransactionDraft{
		Kind:        "income",
		Description: "Consulta Nutrição",
		Amount:      "130.00",
		Category:    "Consultas",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.ID == "" {
		t.Fatalf("missing generated id")
	}
	if tx.Amount.Cents != 13000 {
		t.Fatalf("amount = %d, want 13000", tx.Amount.Cents)
	}
	if tx.OccurredOn.ISO() != "2025-06-11" {
		t.Fatalf("occurred-on = %s, want today", tx.OccurredOn.ISO())
	}

	if len(pub.messages) != 1 {
		t.Fatalf("expected 1 change event, got %d", len(pub.messages))
	}
	msg := pub.messages[0]
	if msg.Entity != amqp.EntityTransaction || msg.Op != amqp.OpInsert || msg.RecordID != tx.ID {
		t.Fatalf("wrong change event: %+v", msg)
	}
}

func TestTransactionCreateValidation(t *testing.T) {
	svc := newTransactionService(nil)

	cases := []struct {
		name  string
		draft TransactionDraft
	}{
		{"non-numeric amount", TransactionDraft{Kind: "income", Description: "x", Amount: "abc", Category: "c"}},
		{"negative amount", TransactionDraft{Kind: "expense", Description: "x", Amount: "-5", Category: "c"}},
		{"empty description", TransactionDraft{Kind: "income", Description: "  ", Amount: "1.00", Category: "c"}},
		{"empty category", TransactionDraft{Kind: "income", Description: "x", Amount: "1.00", Category: ""}},
		{"unknown kind", TransactionDraft{Kind: "loan", Description: "x", Amount: "1.00", Category: "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.draft)
			if err == nil {
				t.Fatalf("expected validation failure")
			}
			if !errors.Is(err, core.ErrInvalidInput) {
				t.Fatalf("error is not a validation failure: %v", err)
			}
			if got := svc.List(context.Background()); len(got) != 0 {
				t.Fatalf("rejected draft produced a record: %+v", got)
			}
		})
	}
}

func TestTransactionListNewestFirst(t *testing.T) {
	svc := newTransactionService(nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, TransactionDraft{Kind: "income", Description: "first", Amount: "1", Category: "c"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, TransactionDraft{Kind: "income", Description: "second", Amount: "2", Category: "c"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got := svc.List(ctx)
	if len(got) != 2 || got[0].Description != "second" {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestTransactionUpdate(t *testing.T) {
	pub := &capturePublisher{}
	svc := newTransactionService(pub)
	ctx := context.Background()

	tx, err := svc.Create(ctx, TransactionDraft{Kind: "income", Description: "x", Amount: "10", Category: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	amount := "25.50"
	updated, ok, err := svc.Update(ctx, tx.ID, TransactionUpdate{Amount: &amount})
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}
	if updated.Amount.Cents != 2550 {
		t.Fatalf("amount = %d, want 2550", updated.Amount.Cents)
	}
	if updated.Description != "x" || updated.OccurredOn.ISO() != "2025-06-11" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}

	// Invalid partial value aborts without mutation.
	bad := "abc"
	if _, _, err := svc.Update(ctx, tx.ID, TransactionUpdate{Amount: &bad}); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	after := svc.List(ctx)
	if after[0].Amount.Cents != 2550 {
		t.Fatalf("rejected update mutated the record: %+v", after[0])
	}

	// Unknown id is a benign no-op.
	if _, ok, err := svc.Update(ctx, "missing", TransactionUpdate{Amount: &amount}); err != nil || ok {
		t.Fatalf("unknown id: ok=%v err=%v", ok, err)
	}
}

func TestTransactionDelete(t *testing.T) {
	pub := &capturePublisher{}
	svc := newTransactionService(pub)
	ctx := context.Background()

	tx, err := svc.Create(ctx, TransactionDraft{Kind: "expense", Description: "x", Amount: "5", Category: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !svc.Delete(ctx, tx.ID) {
		t.Fatalf("expected delete to remove the record")
	}
	if svc.Delete(ctx, tx.ID) {
		t.Fatalf("second delete must be a no-op")
	}
	if got := svc.List(ctx); len(got) != 0 {
		t.Fatalf("record still present: %+v", got)
	}

	// insert + delete events; the no-op delete publishes nothing.
	if len(pub.messages) != 2 {
		t.Fatalf("expected 2 change events, got %d", len(pub.messages))
	}
	if pub.messages[1].Op != amqp.OpDelete {
		t.Fatalf("second event op = %s, want delete", pub.messages[1].Op)
	}
}

func TestTransactionSummary(t *testing.T) {
	svc := newTransactionService(nil)
	ctx := context.Background()

	for _, d := range []TransactionDraft{
		{Kind: "income", Description: "a", Amount: "130", Category: "c"},
		{Kind: "income", Description: "b", Amount: "20.50", Category: "c"},
		{Kind: "expense", Description: "c", Amount: "45", Category: "c"},
	} {
		if _, err := svc.Create(ctx, d); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	sum := svc.Summary(ctx, 6, 2025)
	if sum.Income.Cents != 15050 || sum.Expense.Cents != 4500 {
		t.Fatalf("totals wrong: %+v", sum)
	}
	if sum.Balance.Cents != sum.Income.Cents-sum.Expense.Cents {
		t.Fatalf("balance != income-expense: %+v", sum)
	}
	if sum.MonthlyIncome.Cents != 15050 {
		t.Fatalf("monthly income = %d, want 15050", sum.MonthlyIncome.Cents)
	}

	if got := svc.CurrentMonthIncome(ctx); got.Cents != 15050 {
		t.Fatalf("current month income = %d, want 15050", got.Cents)
	}

	other := svc.Summary(ctx, 5, 2025)
	if other.MonthlyIncome.Cents != 0 {
		t.Fatalf("other month income = %d, want 0", other.MonthlyIncome.Cents)
	}
}

func TestPublishFailureDoesNotAbortMutation(t *testing.T) {
	pub := &capturePublisher{fail: true}
	svc := newTransactionService(pub)
	ctx := context.Background()

	tx, err := svc.Create(ctx, TransactionDraft{Kind: "income", Description: "x", Amount: "1", Category: "c"})
	if err != nil {
		t.Fatalf("create must succeed despite publish failure: %v", err)
	}
	if got := svc.List(ctx); len(got) != 1 || got[0].ID != tx.ID {
		t.Fatalf("record missing after publish failure: %+v", got)
	}
}
