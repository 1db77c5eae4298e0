package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

type (
	TransactionKind string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	Transaction struct {
		ID          string
		Kind        TransactionKind
		Description string
		Amount      Money
		Category    string
		OccurredOn  Date
	}

	Professional struct {
		ID        string
		Name      string
		Specialty string
		Patients  int
		// VisitValue is the price of a single visit.
		VisitValue Money
		// CommissionBp is the commission rate in basis points (2000 = 20%).
		CommissionBp int64
		PhotoURL     string
	}

	// ScheduleSlot belongs to exactly one Room. Professional is a display
	// string, not a reference to a Professional record, so renaming a
	// professional does not touch existing slots.
	ScheduleSlot struct {
		Time         string // "HH:MM - HH:MM" display text, not validated as an interval
		Professional string
		Specialty    string
		Date         Date
	}

	Room struct {
		ID       string
		Name     string
		Schedule []ScheduleSlot
	}
)

// ErrInvalidInput is the umbrella for every validation failure. The specific
// sentinels below wrap it, so callers can classify with a single errors.Is.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrInvalidKind      = fmt.Errorf("%w: unknown transaction kind", ErrInvalidInput)
	ErrInvalidAmount    = fmt.Errorf("%w: invalid amount", ErrInvalidInput)
	ErrInvalidDate      = fmt.Errorf("%w: invalid date", ErrInvalidInput)
	ErrInvalidRate      = fmt.Errorf("%w: invalid commission rate", ErrInvalidInput)
	ErrInvalidPatients  = fmt.Errorf("%w: invalid patient count", ErrInvalidInput)
	ErrEmptyDescription = fmt.Errorf("%w: empty description", ErrInvalidInput)
	ErrEmptyCategory    = fmt.Errorf("%w: empty category", ErrInvalidInput)
	ErrEmptyName        = fmt.Errorf("%w: empty name", ErrInvalidInput)
	ErrEmptySpecialty   = fmt.Errorf("%w: empty specialty", ErrInvalidInput)
	ErrEmptyTimeRange   = fmt.Errorf("%w: empty time range", ErrInvalidInput)
)

func (k TransactionKind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidKind
	}
}

// NewDate creates a Date from year, month, day at day precision.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a timestamp to day precision.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD). Malformed input
// is a validation failure, never a panic.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month as 1-12
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

// ISO formats the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

// SameDay reports whether both dates fall on the same calendar day.
func (d Date) SameDay(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month() && d.Day() == other.Day()
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return fmt.Errorf("%w: description too long (max 200 characters)", ErrInvalidInput)
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return t.OccurredOn.Validate()
}

func (p Professional) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(p.Specialty) == "" {
		return ErrEmptySpecialty
	}
	if p.Patients < 0 {
		return ErrInvalidPatients
	}
	if err := p.VisitValue.Validate(); err != nil {
		return err
	}
	if p.CommissionBp < 0 || p.CommissionBp > MaxCommissionBp {
		return ErrInvalidRate
	}
	return nil
}

func (s ScheduleSlot) Validate() error {
	if strings.TrimSpace(s.Time) == "" {
		return ErrEmptyTimeRange
	}
	if strings.TrimSpace(s.Professional) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(s.Specialty) == "" {
		return ErrEmptySpecialty
	}
	return s.Date.Validate()
}

func (r Room) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	for i, slot := range r.Schedule {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return nil
}
