package services

import (
	"context"
	"log/slog"
	"time"

	"clinica/internal/core"
	"clinica/internal/store"
)

// SeedDemoData populates empty stores with the demo clinic: three
// professionals and two rooms with slots spread over today, tomorrow and
// the day after. Stores that already hold records are left alone.
func SeedDemoData(ctx context.Context, professionals *store.Store[core.Professional], rooms *store.Store[core.Room], now time.Time) {
	today := core.DateOf(now)
	tomorrow := core.DateOf(now.AddDate(0, 0, 1))
	dayAfter := core.DateOf(now.AddDate(0, 0, 2))

	if professionals.Len() == 0 {
		demoPros := []core.Professional{
			{Name: "Dra. Ana Silva", Specialty: "Nutrição", Patients: 9, VisitValue: core.Money{Cents: 13000}, CommissionBp: 2000},
			{Name: "Dra. Marina Santos", Specialty: "Fonoaudiologia", Patients: 16, VisitValue: core.Money{Cents: 13000}, CommissionBp: 2000},
			{Name: "Dra. Carla Oliveira", Specialty: "Psicopedagogia", Patients: 8, VisitValue: core.Money{Cents: 13000}, CommissionBp: 2000},
		}
		for _, p := range demoPros {
			p := p
			professionals.Insert(func(id string) core.Professional {
				p.ID = id
				return p
			})
		}
	}

	if rooms.Len() == 0 {
		demoRooms := []core.Room{
			{Name: "Sala 1", Schedule: []core.ScheduleSlot{
				{Time: "08:00 - 12:00", Professional: "Dra. Ana Silva", Specialty: "Nutrição", Date: today},
				{Time: "14:00 - 18:00", Professional: "Dra. Marina Santos", Specialty: "Fonoaudiologia", Date: today},
			}},
			{Name: "Sala 2", Schedule: []core.ScheduleSlot{
				{Time: "09:00 - 13:00", Professional: "Dra. Carla Oliveira", Specialty: "Psicopedagogia", Date: tomorrow},
				{Time: "14:30 - 18:30", Professional: "Dr. Paulo Mendes", Specialty: "Psicologia", Date: dayAfter},
			}},
		}
		for _, r := range demoRooms {
			r := r
			rooms.Insert(func(id string) core.Room {
				r.ID = id
				return r
			})
		}
	}

	slog.InfoContext(ctx, "Demo data seeded",
		"professionals", professionals.Len(),
		"rooms", rooms.Len())
}
