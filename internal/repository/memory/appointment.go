package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vivaclinic/agenda/internal/model"
	"github.com/vivaclinic/agenda/internal/repository"
	"github.com/vivaclinic/agenda/pkg/clock"
)

// AppointmentRepository keeps appointments in an owned slice. Insertion
// order carries no meaning; every listing is sorted on the way out.
type AppointmentRepository struct {
	appointments []*model.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	r.appointments = append(r.appointments, appointment)
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i, apt := range r.appointments {
		if apt.ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *AppointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	listed := make([]*model.Appointment, 0, len(r.appointments))
	for _, apt := range r.appointments {
		if filters != nil && filters.From != nil && apt.Date.Before(clock.StartOfDay(*filters.From)) {
			continue
		}
		if filters != nil && filters.To != nil && apt.Date.After(clock.StartOfDay(*filters.To)) {
			continue
		}
		listed = append(listed, apt)
	}
	sort.SliceStable(listed, func(i, j int) bool {
		if !listed[i].Date.Equal(listed[j].Date) {
			return listed[i].Date.Before(listed[j].Date)
		}
		return listed[i].Start < listed[j].Start
	})
	return listed, nil
}

func (r *AppointmentRepository) FindByPatient(ctx context.Context, cpf string) ([]*model.Appointment, error) {
	var found []*model.Appointment
	for _, apt := range r.appointments {
		if apt.PatientCPF == cpf {
			found = append(found, apt)
		}
	}
	return found, nil
}

func (r *AppointmentRepository) FindExact(ctx context.Context, cpf string, date time.Time, start clock.TimeOfDay) (*model.Appointment, error) {
	for _, apt := range r.appointments {
		if apt.PatientCPF == cpf && clock.SameDay(apt.Date, date) && apt.Start == start {
			return apt, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *AppointmentRepository) FindConflicting(ctx context.Context, date time.Time, start, end clock.TimeOfDay) ([]*model.Appointment, error) {
	var conflicts []*model.Appointment
	for _, apt := range r.appointments {
		if apt.Overlaps(date, start, end) {
			conflicts = append(conflicts, apt)
		}
	}
	return conflicts, nil
}

func (r *AppointmentRepository) DeleteUpcomingForPatient(ctx context.Context, cpf string, now time.Time) (int, error) {
	kept := r.appointments[:0]
	removed := 0
	for _, apt := range r.appointments {
		if apt.PatientCPF == cpf && apt.Upcoming(now) {
			removed++
			continue
		}
		kept = append(kept, apt)
	}
	r.appointments = kept
	return removed, nil
}
