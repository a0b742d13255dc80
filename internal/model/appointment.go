package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/vivaclinic/agenda/pkg/clock"
)

type Appointment struct {
	ID         uuid.UUID       `json:"id"`
	PatientCPF string          `json:"patient_cpf"`
	Date       time.Time       `json:"date"` // midnight, local time
	Start      clock.TimeOfDay `json:"start"`
	End        clock.TimeOfDay `json:"end"`
	CreatedAt  time.Time       `json:"created_at"`
}

// StartsAt is the combined date and start-time instant.
func (a *Appointment) StartsAt() time.Time {
	return clock.Combine(a.Date, a.Start)
}

// Upcoming reports whether the appointment starts strictly after now.
func (a *Appointment) Upcoming(now time.Time) bool {
	return a.StartsAt().After(now)
}

// Overlaps reports whether the appointment shares any instant with the
// [start, end) interval on the given date. Intervals are half-open, so an
// appointment ending exactly when another starts does not overlap it.
func (a *Appointment) Overlaps(date time.Time, start, end clock.TimeOfDay) bool {
	if !clock.SameDay(a.Date, date) {
		return false
	}
	return start < a.End && end > a.Start
}

type BookAppointmentRequest struct {
	PatientCPF string `json:"patient_cpf" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Start      string `json:"start" validate:"required"`
	End        string `json:"end" validate:"required"`
}

type CancelAppointmentRequest struct {
	PatientCPF string `json:"patient_cpf" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Start      string `json:"start" validate:"required"`
}

// AppointmentFilters narrows appointment listings to an inclusive date
// range. Nil bounds mean no filtering.
type AppointmentFilters struct {
	From *time.Time
	To   *time.Time
}
