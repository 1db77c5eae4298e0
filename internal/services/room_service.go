package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"clinica/internal/amqp"
	"clinica/internal/core"
	"clinica/internal/store"
)

// SlotDraft is the raw form input for one schedule slot. The time range is
// display text ("HH:MM - HH:MM") and is intentionally not validated as a
// true interval; the date must be ISO-8601. Professional is free text, not
// a reference to a professional record.
type SlotDraft struct {
	Time         string
	Professional string
	Specialty    string
	Date         string
}

// RoomDraft is the raw form input for a room and its full schedule. Updates
// replace the whole schedule, mirroring how the room editor submits.
type RoomDraft struct {
	Name     string
	Schedule []SlotDraft
}

type RoomService struct {
	store  *store.Store[core.Room]
	events EventPublisher
	now    func() time.Time
}

func NewRoomService(s *store.Store[core.Room], events EventPublisher) *RoomService {
	return &RoomService{store: s, events: events, now: time.Now}
}

// Create parses and validates the draft and inserts the room.
func (s *RoomService) Create(ctx context.Context, draft RoomDraft) (core.Room, error) {
	candidate, err := parseRoom(draft)
	if err != nil {
		return core.Room{}, err
	}

	created := s.store.Insert(func(id string) core.Room {
		candidate.ID = id
		return candidate
	})

	slog.InfoContext(ctx, "Room created",
		"record_id", created.ID,
		"room_name", created.Name,
		"slot_count", len(created.Schedule))

	publishChange(ctx, s.events, amqp.EntityRoom, amqp.OpInsert, created.ID, NewRoomView(created))
	return created, nil
}

// Update replaces the name and schedule of the room matching id.
func (s *RoomService) Update(ctx context.Context, id string, draft RoomDraft) (core.Room, bool, error) {
	candidate, err := parseRoom(draft)
	if err != nil {
		return core.Room{}, false, err
	}

	updated, ok := s.store.Update(id, func(r core.Room) core.Room {
		r.Name = candidate.Name
		r.Schedule = candidate.Schedule
		return r
	})
	if !ok {
		return core.Room{}, false, nil
	}

	slog.InfoContext(ctx, "Room updated",
		"record_id", id,
		"room_name", updated.Name,
		"slot_count", len(updated.Schedule))

	publishChange(ctx, s.events, amqp.EntityRoom, amqp.OpUpdate, id, NewRoomView(updated))
	return updated, true, nil
}

// Delete removes the room matching id; absent ids are a benign no-op.
func (s *RoomService) Delete(ctx context.Context, id string) bool {
	if !s.store.Delete(id) {
		return false
	}
	slog.InfoContext(ctx, "Room deleted", "record_id", id)
	publishChange(ctx, s.events, amqp.EntityRoom, amqp.OpDelete, id, nil)
	return true
}

// List returns the ordered snapshot.
func (s *RoomService) List(_ context.Context) []core.Room {
	return s.store.List()
}

// TodayAppointments returns today's slots across all rooms, ordered by
// start time.
func (s *RoomService) TodayAppointments(_ context.Context) []core.ScheduleSlot {
	return core.TodaysAppointments(s.store.List(), core.DateOf(s.now()))
}

// WeekAppointments returns this week's slots across all rooms, Monday
// through Sunday inclusive, in natural flattening order.
func (s *RoomService) WeekAppointments(_ context.Context) []core.ScheduleSlot {
	return core.WeeklyAppointments(s.store.List(), core.DateOf(s.now()))
}

func parseRoom(draft RoomDraft) (core.Room, error) {
	room := core.Room{
		Name:     strings.TrimSpace(draft.Name),
		Schedule: make([]core.ScheduleSlot, 0, len(draft.Schedule)),
	}
	for i, sd := range draft.Schedule {
		date, err := core.ParseDate(sd.Date)
		if err != nil {
			return core.Room{}, fmt.Errorf("slot %d: %w", i, err)
		}
		room.Schedule = append(room.Schedule, core.ScheduleSlot{
			Time:         strings.TrimSpace(sd.Time),
			Professional: strings.TrimSpace(sd.Professional),
			Specialty:    strings.TrimSpace(sd.Specialty),
			Date:         date,
		})
	}
	if err := room.Validate(); err != nil {
		return core.Room{}, err
	}
	return room, nil
}
