package patient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vivaclinic/agenda/internal/cpf"
	"github.com/vivaclinic/agenda/internal/model"
	"github.com/vivaclinic/agenda/internal/repository"
	"github.com/vivaclinic/agenda/pkg/clock"
	apperrors "github.com/vivaclinic/agenda/pkg/errors"
	"github.com/vivaclinic/agenda/pkg/logger"
	"github.com/vivaclinic/agenda/pkg/metrics"
)

// Registration defaults, overridable through Config.
const (
	DefaultMinNameLength = 5
	DefaultMinAge        = 13
)

type Config struct {
	MinNameLength int
	MinAge        int
}

type Service struct {
	repo            repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	cfg             Config
	validate        *validator.Validate
	logger          *logger.Logger
	metrics         *metrics.Metrics
	now             func() time.Time
}

func NewService(repo repository.PatientRepository, appointmentRepo repository.AppointmentRepository, cfg Config, log *logger.Logger, m *metrics.Metrics) *Service {
	if cfg.MinNameLength <= 0 {
		cfg.MinNameLength = DefaultMinNameLength
	}
	if cfg.MinAge <= 0 {
		cfg.MinAge = DefaultMinAge
	}
	return &Service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		cfg:             cfg,
		validate:        validator.New(),
		logger:          log,
		metrics:         m,
		now:             time.Now,
	}
}

// WithNow overrides the service clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Register validates and stores a new patient. Checks run in a fixed
// order so the first failure reported is deterministic: identity number,
// duplicate, name, birth date, age.
func (s *Service) Register(ctx context.Context, req *model.RegisterPatientRequest) (*model.Patient, error) {
	if !cpf.IsValid(req.CPF) {
		return nil, s.reject(apperrors.InvalidID())
	}

	if _, err := s.repo.Get(ctx, req.CPF); err == nil {
		return nil, s.reject(apperrors.DuplicateID())
	}

	if err := s.validate.Var(req.Name, fmt.Sprintf("required,min=%d", s.cfg.MinNameLength)); err != nil {
		return nil, s.reject(apperrors.InvalidName(s.cfg.MinNameLength))
	}

	birthDate, err := clock.ParseDate(req.BirthDate)
	if err != nil {
		return nil, s.reject(apperrors.InvalidBirthDate())
	}

	if clock.AgeYears(birthDate, s.now()) < s.cfg.MinAge {
		return nil, s.reject(apperrors.Underage(s.cfg.MinAge))
	}

	patient := &model.Patient{
		CPF:       req.CPF,
		Name:      req.Name,
		BirthDate: birthDate,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, s.reject(apperrors.DuplicateID())
		}
		return nil, fmt.Errorf("failed to store patient: %w", err)
	}

	s.metrics.PatientsRegistered.Inc()
	s.logger.Info("patient registered", "cpf", patient.CPF, "name", patient.Name)
	return patient, nil
}

// Delete removes the patient and their upcoming appointments. Deleting an
// unknown identity number is a silent no-op. Past appointments stay so the
// historical agenda remains listable.
func (s *Service) Delete(ctx context.Context, cpfID string) error {
	if _, err := s.repo.Get(ctx, cpfID); err != nil {
		return nil
	}

	removed, err := s.appointmentRepo.DeleteUpcomingForPatient(ctx, cpfID, s.now())
	if err != nil {
		return fmt.Errorf("failed to remove upcoming appointments: %w", err)
	}
	if err := s.repo.Delete(ctx, cpfID); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	s.metrics.PatientsDeleted.Inc()
	s.logger.Info("patient deleted", "cpf", cpfID, "appointments_removed", removed)
	return nil
}

// Get returns the patient or a PatientNotFound validation error.
func (s *Service) Get(ctx context.Context, cpfID string) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, cpfID)
	if err != nil {
		return nil, apperrors.PatientNotFound()
	}
	return patient, nil
}

// List returns all patients in no particular order; callers sort copies.
func (s *Service) List(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *Service) reject(err *apperrors.AppError) error {
	s.metrics.RecordFailure(err.Code.String())
	s.logger.Debug("registration rejected", "code", err.Code.String())
	return err
}
