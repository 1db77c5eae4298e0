package services

import (
	"context"
	"log/slog"
	"strings"

	"clinica/internal/amqp"
	"clinica/internal/core"
	"clinica/internal/store"
)

// ProfessionalDraft is the raw form input for a new professional. New
// professionals start with zero patients; revenue and commission are
// derived on read, never stored.
type ProfessionalDraft struct {
	Name       string
	Specialty  string
	Value      string // visit price
	Commission string // percentage, 0-100
	PhotoURL   string
}

// ProfessionalUpdate carries partial profile fields.
type ProfessionalUpdate struct {
	Name      *string
	Specialty *string
	PhotoURL  *string
}

// MetricsUpdate carries partial updates to the derived-metric inputs.
type MetricsUpdate struct {
	Patients   *string
	Value      *string
	Commission *string
}

type ProfessionalService struct {
	store  *store.Store[core.Professional]
	events EventPublisher
}

func NewProfessionalService(s *store.Store[core.Professional], events EventPublisher) *ProfessionalService {
	return &ProfessionalService{store: s, events: events}
}

// Create parses and validates the draft and inserts the professional.
func (s *ProfessionalService) Create(ctx context.Context, draft ProfessionalDraft) (core.Professional, error) {
	valueCents, err := core.ParseDecimalToCents(draft.Value)
	if err != nil {
		return core.Professional{}, err
	}
	rateBp, err := core.ParsePercentToBasisPoints(draft.Commission)
	if err != nil {
		return core.Professional{}, err
	}

	candidate := core.Professional{
		Name:         strings.TrimSpace(draft.Name),
		Specialty:    strings.TrimSpace(draft.Specialty),
		Patients:     0,
		VisitValue:   core.Money{Cents: valueCents},
		CommissionBp: rateBp,
		PhotoURL:     strings.TrimSpace(draft.PhotoURL),
	}
	if err := candidate.Validate(); err != nil {
		return core.Professional{}, err
	}

	created := s.store.Insert(func(id string) core.Professional {
		candidate.ID = id
		return candidate
	})

	slog.InfoContext(ctx, "Professional created",
		"record_id", created.ID,
		"specialty", created.Specialty,
		"commission_bp", created.CommissionBp)

	publishChange(ctx, s.events, amqp.EntityProfessional, amqp.OpInsert, created.ID, NewProfessionalView(created))
	return created, nil
}

// Update merges profile fields into the professional matching id.
func (s *ProfessionalService) Update(ctx context.Context, id string, update ProfessionalUpdate) (core.Professional, bool, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return core.Professional{}, false, core.ErrEmptyName
	}
	if update.Specialty != nil && strings.TrimSpace(*update.Specialty) == "" {
		return core.Professional{}, false, core.ErrEmptySpecialty
	}

	updated, ok := s.store.Update(id, func(p core.Professional) core.Professional {
		if update.Name != nil {
			p.Name = strings.TrimSpace(*update.Name)
		}
		if update.Specialty != nil {
			p.Specialty = strings.TrimSpace(*update.Specialty)
		}
		if update.PhotoURL != nil {
			p.PhotoURL = strings.TrimSpace(*update.PhotoURL)
		}
		return p
	})
	if !ok {
		return core.Professional{}, false, nil
	}

	slog.InfoContext(ctx, "Professional updated", "record_id", id)
	publishChange(ctx, s.events, amqp.EntityProfessional, amqp.OpUpdate, id, NewProfessionalView(updated))
	return updated, true, nil
}

// UpdateMetrics merges patient count, visit value and commission rate. The
// derived revenue and commission follow immediately since they are computed
// on read from these inputs.
func (s *ProfessionalService) UpdateMetrics(ctx context.Context, id string, update MetricsUpdate) (core.Professional, bool, error) {
	var (
		patients *int
		cents    *int64
		rateBp   *int64
	)

	if update.Patients != nil {
		n, err := parsePatients(*update.Patients)
		if err != nil {
			return core.Professional{}, false, err
		}
		patients = &n
	}
	if update.Value != nil {
		c, err := core.ParseDecimalToCents(*update.Value)
		if err != nil {
			return core.Professional{}, false, err
		}
		cents = &c
	}
	if update.Commission != nil {
		bp, err := core.ParsePercentToBasisPoints(*update.Commission)
		if err != nil {
			return core.Professional{}, false, err
		}
		rateBp = &bp
	}

	updated, ok := s.store.Update(id, func(p core.Professional) core.Professional {
		if patients != nil {
			p.Patients = *patients
		}
		if cents != nil {
			p.VisitValue = core.Money{Cents: *cents}
		}
		if rateBp != nil {
			p.CommissionBp = *rateBp
		}
		return p
	})
	if !ok {
		return core.Professional{}, false, nil
	}

	slog.InfoContext(ctx, "Professional metrics updated",
		"record_id", id,
		"patients", updated.Patients,
		"commission_bp", updated.CommissionBp)

	publishChange(ctx, s.events, amqp.EntityProfessional, amqp.OpUpdate, id, NewProfessionalView(updated))
	return updated, true, nil
}

// Delete removes the professional matching id; absent ids are a benign no-op.
// Schedule slots referencing the professional by name are left as they are.
func (s *ProfessionalService) Delete(ctx context.Context, id string) bool {
	if !s.store.Delete(id) {
		return false
	}
	slog.InfoContext(ctx, "Professional deleted", "record_id", id)
	publishChange(ctx, s.events, amqp.EntityProfessional, amqp.OpDelete, id, nil)
	return true
}

// List returns the ordered snapshot.
func (s *ProfessionalService) List(_ context.Context) []core.Professional {
	return s.store.List()
}

// Get returns the professional matching id.
func (s *ProfessionalService) Get(_ context.Context, id string) (core.Professional, bool) {
	return s.store.Get(id)
}

func parsePatients(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, core.ErrInvalidPatients
	}
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return 0, core.ErrInvalidPatients
		}
		n = n*10 + int(r-'0')
		if n > 1<<30 {
			return 0, core.ErrInvalidPatients
		}
	}
	return n, nil
}
