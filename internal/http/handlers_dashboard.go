package http

import (
	"net/http"
	"time"
)

// dashboardView mirrors the numbers the clinic home screen shows: this
// month's income and how many appointments are booked today and this week.
type dashboardView struct {
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	MonthlyIncome      float64 `json:"monthly_income"`
	MonthlyIncomeCents int64   `json:"monthly_income_cents"`
	TodaysAppointments int     `json:"todays_appointments"`
	WeeklyAppointments int     `json:"weekly_appointments"`
	Professionals      int     `json:"professionals"`
	Rooms              int     `json:"rooms"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	key := now.Format("2006-01-02")

	if view, found := s.dashboardCache.Get(key); found {
		writeJSON(w, http.StatusOK, view)
		return
	}

	income := s.transactions.CurrentMonthIncome(r.Context())
	view := dashboardView{
		Year:               now.Year(),
		Month:              int(now.Month()),
		MonthlyIncome:      income.Units(),
		MonthlyIncomeCents: income.Cents,
		TodaysAppointments: len(s.rooms.TodayAppointments(r.Context())),
		WeeklyAppointments: len(s.rooms.WeekAppointments(r.Context())),
		Professionals:      len(s.professionals.List(r.Context())),
		Rooms:              len(s.rooms.List(r.Context())),
	}

	s.dashboardCache.Set(key, view)
	writeJSON(w, http.StatusOK, view)
}
