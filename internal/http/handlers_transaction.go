package http

import (
	"net/http"
	"strconv"

	"clinica/internal/services"
)

type transactionRequest struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
}

type transactionUpdateRequest struct {
	Kind        *string `json:"kind"`
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
	Category    *string `json:"category"`
}

type summaryView struct {
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	Income             float64 `json:"income"`
	IncomeCents        int64   `json:"income_cents"`
	Expense            float64 `json:"expense"`
	ExpenseCents       int64   `json:"expense_cents"`
	Balance            float64 `json:"balance"`
	BalanceCents       int64   `json:"balance_cents"`
	MonthlyIncome      float64 `json:"monthly_income"`
	MonthlyIncomeCents int64   `json:"monthly_income_cents"`
}

func newSummaryView(s services.TransactionSummary) summaryView {
	return summaryView{
		Year:               s.Year,
		Month:              s.Month,
		Income:             s.Income.Units(),
		IncomeCents:        s.Income.Cents,
		Expense:            s.Expense.Units(),
		ExpenseCents:       s.Expense.Cents,
		Balance:            s.Balance.Units(),
		BalanceCents:       s.Balance.Cents,
		MonthlyIncome:      s.MonthlyIncome.Units(),
		MonthlyIncomeCents: s.MonthlyIncome.Cents,
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := s.transactions.Create(r.Context(), services.TransactionDraft{
		Kind:        sanitizeInput(req.Kind),
		Description: sanitizeInput(req.Description),
		Amount:      sanitizeInput(req.Amount),
		Category:    sanitizeInput(req.Category),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidateReads()
	writeJSON(w, http.StatusCreated, services.NewTransactionView(created))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	items := s.transactions.List(r.Context())
	views := make([]services.TransactionView, 0, len(items))
	for _, t := range items {
		views = append(views, services.NewTransactionView(t))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleTransactionSummary(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)
	key := strconv.Itoa(year) + "-" + strconv.Itoa(month)

	if view, found := s.summaryCache.Get(key); found {
		writeJSON(w, http.StatusOK, view)
		return
	}

	view := newSummaryView(s.transactions.Summary(r.Context(), month, year))
	s.summaryCache.Set(key, view)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, found, err := s.transactions.Update(r.Context(), r.PathValue("id"), services.TransactionUpdate{
		Kind:        sanitizePtr(req.Kind),
		Description: sanitizePtr(req.Description),
		Amount:      sanitizePtr(req.Amount),
		Category:    sanitizePtr(req.Category),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.invalidateReads()
	writeJSON(w, http.StatusOK, services.NewTransactionView(updated))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if s.transactions.Delete(r.Context(), r.PathValue("id")) {
		s.invalidateReads()
	}
	w.WriteHeader(http.StatusNoContent)
}
