package notification

import (
	"context"
	"fmt"
	"io"

	"github.com/vivaclinic/agenda/internal/model"
	"github.com/vivaclinic/agenda/pkg/clock"
)

// Service receives the success notifications the schedule engine emits
// after committing a booking or a cancellation.
type Service interface {
	BookingConfirmed(ctx context.Context, patient *model.Patient, appointment *model.Appointment)
	BookingCancelled(ctx context.Context, patient *model.Patient, appointment *model.Appointment)
}

type consoleService struct {
	out io.Writer
}

// NewConsoleService writes confirmations to the terminal the menu runs on.
func NewConsoleService(out io.Writer) Service {
	return &consoleService{out: out}
}

func (s *consoleService) BookingConfirmed(ctx context.Context, patient *model.Patient, appointment *model.Appointment) {
	fmt.Fprintf(s.out, "Appointment booked for %s on %s, %s to %s.\n",
		patient.Name,
		clock.FormatDate(appointment.Date),
		appointment.Start,
		appointment.End,
	)
}

func (s *consoleService) BookingCancelled(ctx context.Context, patient *model.Patient, appointment *model.Appointment) {
	fmt.Fprintf(s.out, "Appointment for %s on %s at %s cancelled.\n",
		patient.Name,
		clock.FormatDate(appointment.Date),
		appointment.Start,
	)
}
