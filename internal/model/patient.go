package model

import (
	"sort"
	"time"

	"github.com/vivaclinic/agenda/pkg/clock"
)

type Patient struct {
	CPF       string    `json:"cpf"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Age is the patient's age in whole years as of ref. Computed on read,
// never stored.
func (p *Patient) Age(ref time.Time) int {
	return clock.AgeYears(p.BirthDate, ref)
}

type RegisterPatientRequest struct {
	CPF       string `json:"cpf" validate:"required"`
	Name      string `json:"name" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required"`
}

// PatientSortKey selects the ordering of patient listings.
type PatientSortKey string

const (
	SortByCPF  PatientSortKey = "cpf"
	SortByName PatientSortKey = "name"
)

// SortPatients returns a new slice ordered lexicographically by the given
// key. The input slice is left untouched.
func SortPatients(patients []*Patient, key PatientSortKey) []*Patient {
	sorted := make([]*Patient, len(patients))
	copy(sorted, patients)
	sort.SliceStable(sorted, func(i, j int) bool {
		if key == SortByCPF {
			return sorted[i].CPF < sorted[j].CPF
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// PatientAgenda pairs a patient with their next upcoming appointment,
// if any.
type PatientAgenda struct {
	Patient *Patient     `json:"patient"`
	Next    *Appointment `json:"next,omitempty"`
}
