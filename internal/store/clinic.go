package store

import "clinica/internal/core"

// NewTransactions creates the transaction collection. New entries go to the
// front so the most recent movement is listed first.
func NewTransactions(opts ...Option[core.Transaction]) *Store[core.Transaction] {
	return New(Prepend, func(t core.Transaction) string { return t.ID }, opts...)
}

// NewProfessionals creates the professional collection.
func NewProfessionals(opts ...Option[core.Professional]) *Store[core.Professional] {
	return New(Append, func(p core.Professional) string { return p.ID }, opts...)
}

// NewRooms creates the room collection. Rooms carry a schedule slice, so a
// clone hook keeps snapshots detached from the stored records.
func NewRooms(opts ...Option[core.Room]) *Store[core.Room] {
	opts = append([]Option[core.Room]{WithClone(cloneRoom)}, opts...)
	return New(Append, func(r core.Room) string { return r.ID }, opts...)
}

func cloneRoom(r core.Room) core.Room {
	out := r
	if r.Schedule != nil {
		out.Schedule = append([]core.ScheduleSlot(nil), r.Schedule...)
	}
	return out
}
