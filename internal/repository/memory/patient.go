// Package memory provides the in-process repository implementations. The
// registry is single-user and memory-only, so nothing here persists or
// needs locking beyond what the cache provides.
package memory

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vivaclinic/agenda/internal/model"
	"github.com/vivaclinic/agenda/internal/repository"
)

// PatientRepository keeps patients in an in-process cache keyed by CPF.
// Entries never expire; the registry owns their lifecycle.
type PatientRepository struct {
	store *gocache.Cache
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{
		store: gocache.New(gocache.NoExpiration, 0),
	}
}

func (r *PatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	if err := r.store.Add(patient.CPF, patient, gocache.NoExpiration); err != nil {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *PatientRepository) Get(ctx context.Context, cpf string) (*model.Patient, error) {
	v, ok := r.store.Get(cpf)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return v.(*model.Patient), nil
}

func (r *PatientRepository) Delete(ctx context.Context, cpf string) error {
	r.store.Delete(cpf)
	return nil
}

func (r *PatientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	items := r.store.Items()
	patients := make([]*model.Patient, 0, len(items))
	for _, item := range items {
		patients = append(patients, item.Object.(*model.Patient))
	}
	return patients, nil
}
