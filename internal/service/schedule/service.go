package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vivaclinic/agenda/internal/model"
	"github.com/vivaclinic/agenda/internal/repository"
	"github.com/vivaclinic/agenda/internal/service/notification"
	"github.com/vivaclinic/agenda/pkg/clock"
	apperrors "github.com/vivaclinic/agenda/pkg/errors"
	"github.com/vivaclinic/agenda/pkg/logger"
	"github.com/vivaclinic/agenda/pkg/metrics"
)

// Business-hour defaults, overridable through Config.
const (
	DefaultOpeningTime = clock.TimeOfDay(8 * 60)
	DefaultClosingTime = clock.TimeOfDay(19 * 60)
	DefaultSlotMinutes = 15
)

type Config struct {
	OpeningTime clock.TimeOfDay
	ClosingTime clock.TimeOfDay
	SlotMinutes int
}

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	notifier    notification.Service
	cfg         Config
	logger      *logger.Logger
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewService(repo repository.AppointmentRepository, patientRepo repository.PatientRepository, notifier notification.Service, cfg Config, log *logger.Logger, m *metrics.Metrics) *Service {
	if cfg.OpeningTime == 0 && cfg.ClosingTime == 0 {
		cfg.OpeningTime = DefaultOpeningTime
		cfg.ClosingTime = DefaultClosingTime
	}
	if cfg.SlotMinutes <= 0 {
		cfg.SlotMinutes = DefaultSlotMinutes
	}
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		notifier:    notifier,
		cfg:         cfg,
		logger:      log,
		metrics:     m,
		now:         time.Now,
	}
}

// WithNow overrides the service clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Book validates and commits a new appointment. Every check runs before
// any mutation, so a rejected booking leaves the agenda untouched.
func (s *Service) Book(ctx context.Context, req *model.BookAppointmentRequest) error {
	patient, err := s.patientRepo.Get(ctx, req.PatientCPF)
	if err != nil {
		return s.reject(apperrors.PatientNotFound())
	}

	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return s.reject(apperrors.InvalidDateTime(err))
	}
	start, err := clock.ParseTimeOfDay(req.Start)
	if err != nil {
		return s.reject(apperrors.InvalidDateTime(err))
	}
	end, err := clock.ParseTimeOfDay(req.End)
	if err != nil {
		return s.reject(apperrors.InvalidDateTime(err))
	}

	if start < s.cfg.OpeningTime || end > s.cfg.ClosingTime || start >= end {
		return s.reject(apperrors.OutOfHours(s.cfg.OpeningTime, s.cfg.ClosingTime))
	}

	if !start.AlignedTo(s.cfg.SlotMinutes) || !end.AlignedTo(s.cfg.SlotMinutes) {
		return s.reject(apperrors.NotQuarterAligned(s.cfg.SlotMinutes))
	}

	now := s.now()
	if !clock.Combine(date, start).After(now) {
		return s.reject(apperrors.NotFuture())
	}

	existing, err := s.repo.FindByPatient(ctx, req.PatientCPF)
	if err != nil {
		return fmt.Errorf("failed to load patient appointments: %w", err)
	}
	for _, apt := range existing {
		if apt.Upcoming(now) {
			return s.reject(apperrors.DuplicateUpcoming())
		}
	}

	conflicts, err := s.repo.FindConflicting(ctx, date, start, end)
	if err != nil {
		return fmt.Errorf("failed to check conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		return s.reject(apperrors.SlotConflict())
	}

	appointment := &model.Appointment{
		ID:         uuid.New(),
		PatientCPF: req.PatientCPF,
		Date:       date,
		Start:      start,
		End:        end,
		CreatedAt:  now,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return fmt.Errorf("failed to store appointment: %w", err)
	}

	s.metrics.AppointmentsBooked.Inc()
	s.logger.Info("appointment booked",
		"cpf", appointment.PatientCPF,
		"date", clock.FormatDate(appointment.Date),
		"start", appointment.Start.String(),
		"end", appointment.End.String(),
	)
	s.notifier.BookingConfirmed(ctx, patient, appointment)
	return nil
}

// Cancel removes a future appointment matched exactly by patient, date and
// start time.
func (s *Service) Cancel(ctx context.Context, req *model.CancelAppointmentRequest) error {
	patient, err := s.patientRepo.Get(ctx, req.PatientCPF)
	if err != nil {
		return s.reject(apperrors.PatientNotFound())
	}

	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return s.reject(apperrors.InvalidDateTime(err))
	}
	start, err := clock.ParseTimeOfDay(req.Start)
	if err != nil {
		return s.reject(apperrors.InvalidDateTime(err))
	}

	if !clock.Combine(date, start).After(s.now()) {
		return s.reject(apperrors.NotFuture())
	}

	appointment, err := s.repo.FindExact(ctx, req.PatientCPF, date, start)
	if err != nil {
		return s.reject(apperrors.NotFound())
	}
	if err := s.repo.Delete(ctx, appointment.ID); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	s.metrics.AppointmentsCancelled.Inc()
	s.logger.Info("appointment cancelled",
		"cpf", appointment.PatientCPF,
		"date", clock.FormatDate(appointment.Date),
		"start", appointment.Start.String(),
	)
	s.notifier.BookingCancelled(ctx, patient, appointment)
	return nil
}

// ListByPeriod returns appointments sorted ascending by date and start
// time. When both bounds are given the result is limited to dates inside
// the inclusive [from, to] range; with no bounds the whole agenda comes
// back.
func (s *Service) ListByPeriod(ctx context.Context, fromText, toText string) ([]*model.Appointment, error) {
	filters := &model.AppointmentFilters{}
	if fromText != "" || toText != "" {
		from, err := clock.ParseDate(fromText)
		if err != nil {
			return nil, s.reject(apperrors.InvalidDateTime(err))
		}
		to, err := clock.ParseDate(toText)
		if err != nil {
			return nil, s.reject(apperrors.InvalidDateTime(err))
		}
		filters.From = &from
		filters.To = &to
	}
	return s.repo.List(ctx, filters)
}

// ListPatientsWithNextAppointment returns every patient ordered by the
// given key, each paired with their soonest appointment starting at or
// after now, when one exists.
func (s *Service) ListPatientsWithNextAppointment(ctx context.Context, key model.PatientSortKey) ([]*model.PatientAgenda, error) {
	patients, err := s.patientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	now := s.now()
	agendas := make([]*model.PatientAgenda, 0, len(patients))
	for _, patient := range model.SortPatients(patients, key) {
		appointments, err := s.repo.FindByPatient(ctx, patient.CPF)
		if err != nil {
			return nil, fmt.Errorf("failed to load patient appointments: %w", err)
		}
		var next *model.Appointment
		for _, apt := range appointments {
			if apt.StartsAt().Before(now) {
				continue
			}
			if next == nil || apt.StartsAt().Before(next.StartsAt()) {
				next = apt
			}
		}
		agendas = append(agendas, &model.PatientAgenda{Patient: patient, Next: next})
	}
	return agendas, nil
}

func (s *Service) reject(err *apperrors.AppError) error {
	s.metrics.RecordFailure(err.Code.String())
	s.logger.Debug("agenda operation rejected", "code", err.Code.String())
	return err
}
