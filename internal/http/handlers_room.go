package http

import (
	"net/http"

	"clinica/internal/services"
)

type slotRequest struct {
	Time         string `json:"time"`
	Professional string `json:"professional"`
	Specialty    string `json:"specialty"`
	Date         string `json:"date"`
}

type roomRequest struct {
	Name     string        `json:"name"`
	Schedule []slotRequest `json:"schedule"`
}

func (req roomRequest) toDraft() services.RoomDraft {
	draft := services.RoomDraft{
		Name:     sanitizeInput(req.Name),
		Schedule: make([]services.SlotDraft, 0, len(req.Schedule)),
	}
	for _, slot := range req.Schedule {
		draft.Schedule = append(draft.Schedule, services.SlotDraft{
			Time:         sanitizeInput(slot.Time),
			Professional: sanitizeInput(slot.Professional),
			Specialty:    sanitizeInput(slot.Specialty),
			Date:         sanitizeInput(slot.Date),
		})
	}
	return draft
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req roomRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := s.rooms.Create(r.Context(), req.toDraft())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidateReads()
	writeJSON(w, http.StatusCreated, services.NewRoomView(created))
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	items := s.rooms.List(r.Context())
	views := make([]services.RoomView, 0, len(items))
	for _, room := range items {
		views = append(views, services.NewRoomView(room))
	}
	writeJSON(w, http.StatusOK, views)
}

// handleUpdateRoom replaces the room's name and whole schedule, the way the
// room editor submits its state.
func (s *Server) handleUpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req roomRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, found, err := s.rooms.Update(r.Context(), r.PathValue("id"), req.toDraft())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.invalidateReads()
	writeJSON(w, http.StatusOK, services.NewRoomView(updated))
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	if s.rooms.Delete(r.Context(), r.PathValue("id")) {
		s.invalidateReads()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTodayAppointments(w http.ResponseWriter, r *http.Request) {
	s.serveAppointments(w, r, "today")
}

func (s *Server) handleWeekAppointments(w http.ResponseWriter, r *http.Request) {
	s.serveAppointments(w, r, "week")
}

func (s *Server) serveAppointments(w http.ResponseWriter, r *http.Request, scope string) {
	if views, found := s.appointmentsCache.Get(scope); found {
		writeJSON(w, http.StatusOK, views)
		return
	}

	var views []services.SlotView
	switch scope {
	case "week":
		views = services.NewSlotViews(s.rooms.WeekAppointments(r.Context()))
	default:
		views = services.NewSlotViews(s.rooms.TodayAppointments(r.Context()))
	}
	s.appointmentsCache.Set(scope, views)
	writeJSON(w, http.StatusOK, views)
}
