package http

import (
	"net/http"

	"clinica/internal/services"
)

type professionalRequest struct {
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Value      string `json:"value"`
	Commission string `json:"commission_percentage"`
	PhotoURL   string `json:"photo_url"`
}

type professionalUpdateRequest struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
	PhotoURL  *string `json:"photo_url"`
}

type metricsUpdateRequest struct {
	Patients   *string `json:"patients"`
	Value      *string `json:"value"`
	Commission *string `json:"commission_percentage"`
}

func (s *Server) handleCreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req professionalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := s.professionals.Create(r.Context(), services.ProfessionalDraft{
		Name:       sanitizeInput(req.Name),
		Specialty:  sanitizeInput(req.Specialty),
		Value:      sanitizeInput(req.Value),
		Commission: sanitizeInput(req.Commission),
		PhotoURL:   sanitizeInput(req.PhotoURL),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidateReads()
	writeJSON(w, http.StatusCreated, services.NewProfessionalView(created))
}

func (s *Server) handleListProfessionals(w http.ResponseWriter, r *http.Request) {
	items := s.professionals.List(r.Context())
	views := make([]services.ProfessionalView, 0, len(items))
	for _, p := range items {
		views = append(views, services.NewProfessionalView(p))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetProfessional(w http.ResponseWriter, r *http.Request) {
	p, found := s.professionals.Get(r.Context(), r.PathValue("id"))
	if !found {
		writeError(w, http.StatusNotFound, "professional not found")
		return
	}
	writeJSON(w, http.StatusOK, services.NewProfessionalView(p))
}

func (s *Server) handleUpdateProfessional(w http.ResponseWriter, r *http.Request) {
	var req professionalUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, found, err := s.professionals.Update(r.Context(), r.PathValue("id"), services.ProfessionalUpdate{
		Name:      sanitizePtr(req.Name),
		Specialty: sanitizePtr(req.Specialty),
		PhotoURL:  sanitizePtr(req.PhotoURL),
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
	writeJSON(w, http.StatusOK, services.NewProfessionalView(updated))
}

// handleUpdateProfessionalMetrics adjusts the inputs that revenue and
// commission are derived from. The response carries the freshly computed
// numbers; nothing is stored besides the inputs.
func (s *Server) handleUpdateProfessionalMetrics(w http.ResponseWriter, r *http.Request) {
	var req metricsUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, found, err := s.professionals.UpdateMetrics(r.Context(), r.PathValue("id"), services.MetricsUpdate{
		Patients:   sanitizePtr(req.Patients),
		Value:      sanitizePtr(req.Value),
		Commission: sanitizePtr(req.Commission),
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
	writeJSON(w, http.StatusOK, services.NewProfessionalView(updated))
}

func (s *Server) handleDeleteProfessional(w http.ResponseWriter, r *http.Request) {
	if s.professionals.Delete(r.Context(), r.PathValue("id")) {
		s.invalidateReads()
	}
	w.WriteHeader(http.StatusNoContent)
}
