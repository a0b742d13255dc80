package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vivaclinic/agenda/internal/model"
	"github.com/vivaclinic/agenda/pkg/clock"
)

// Sentinel errors shared by all repository implementations. Services map
// them onto the user-facing error taxonomy.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// All repository interfaces in one file
type (
	// PatientRepository stores patients keyed by their identity number.
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, cpf string) (*model.Patient, error)
		Delete(ctx context.Context, cpf string) error
		List(ctx context.Context) ([]*model.Patient, error)
	}

	// AppointmentRepository stores booked appointments and answers the
	// lookup shapes the schedule engine needs.
	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
		FindByPatient(ctx context.Context, cpf string) ([]*model.Appointment, error)
		FindExact(ctx context.Context, cpf string, date time.Time, start clock.TimeOfDay) (*model.Appointment, error)
		FindConflicting(ctx context.Context, date time.Time, start, end clock.TimeOfDay) ([]*model.Appointment, error)
		DeleteUpcomingForPatient(ctx context.Context, cpf string, now time.Time) (int, error)
	}
)
