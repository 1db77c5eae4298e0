package services

import "clinica/internal/core"

// Views are the JSON shapes handed to the UI collaborator and carried as
// record-change payloads. Dates are ISO-8601 calendar days; amounts carry
// both cents (exact) and units (display).

type TransactionView struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	AmountCents int64   `json:"amount_cents"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

type ProfessionalView struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Specialty       string  `json:"specialty"`
	Patients        int     `json:"patients"`
	Value           float64 `json:"value"`
	ValueCents      int64   `json:"value_cents"`
	Commission      float64 `json:"commission_percentage"`
	Revenue         float64 `json:"revenue"`
	RevenueCents    int64   `json:"revenue_cents"`
	CommissionDue   float64 `json:"commission"`
	CommissionCents int64   `json:"commission_cents"`
	PhotoURL        string  `json:"photo_url,omitempty"`
}

type SlotView struct {
	Time         string `json:"time"`
	Professional string `json:"professional"`
	Specialty    string `json:"specialty"`
	Date         string `json:"date"`
}

type RoomView struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Schedule []SlotView `json:"schedule"`
}

func NewTransactionView(t core.Transaction) TransactionView {
	return TransactionView{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Description: t.Description,
		Amount:      t.Amount.Units(),
		AmountCents: t.Amount.Cents,
		Category:    t.Category,
		Date:        t.OccurredOn.ISO(),
	}
}

func NewProfessionalView(p core.Professional) ProfessionalView {
	revenue := p.Revenue()
	commission := p.Commission()
	return ProfessionalView{
		ID:              p.ID,
		Name:            p.Name,
		Specialty:       p.Specialty,
		Patients:        p.Patients,
		Value:           p.VisitValue.Units(),
		ValueCents:      p.VisitValue.Cents,
		Commission:      float64(p.CommissionBp) / 100.0,
		Revenue:         revenue.Units(),
		RevenueCents:    revenue.Cents,
		CommissionDue:   commission.Units(),
		CommissionCents: commission.Cents,
		PhotoURL:        p.PhotoURL,
	}
}

func NewSlotView(s core.ScheduleSlot) SlotView {
	return SlotView{
		Time:         s.Time,
		Professional: s.Professional,
		Specialty:    s.Specialty,
		Date:         s.Date.ISO(),
	}
}

func NewRoomView(r core.Room) RoomView {
	view := RoomView{ID: r.ID, Name: r.Name, Schedule: make([]SlotView, 0, len(r.Schedule))}
	for _, s := range r.Schedule {
		view.Schedule = append(view.Schedule, NewSlotView(s))
	}
	return view
}

func NewSlotViews(slots []core.ScheduleSlot) []SlotView {
	out := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, NewSlotView(s))
	}
	return out
}
