package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vivaclinic/agenda/pkg/clock"
)

func TestAppointmentOverlaps(t *testing.T) {
	date := time.Date(2025, time.March, 19, 0, 0, 0, 0, time.Local)
	apt := &Appointment{
		Date:  date,
		Start: clock.MustTimeOfDay("0900"),
		End:   clock.MustTimeOfDay("1000"),
	}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"identical", "0900", "1000", true},
		{"starts inside", "0930", "1030", true},
		{"ends inside", "0830", "0930", true},
		{"contains", "0845", "1015", true},
		{"contained", "0915", "0945", true},
		{"ends when it starts", "0800", "0900", false},
		{"starts when it ends", "1000", "1100", false},
		{"disjoint", "1100", "1200", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apt.Overlaps(date, clock.MustTimeOfDay(tt.start), clock.MustTimeOfDay(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("other day never overlaps", func(t *testing.T) {
		assert.False(t, apt.Overlaps(date.AddDate(0, 0, 1), clock.MustTimeOfDay("0900"), clock.MustTimeOfDay("1000")))
	})
}

func TestAppointmentUpcoming(t *testing.T) {
	date := time.Date(2025, time.March, 19, 0, 0, 0, 0, time.Local)
	apt := &Appointment{Date: date, Start: clock.MustTimeOfDay("0900"), End: clock.MustTimeOfDay("1000")}

	assert.True(t, apt.Upcoming(date))                                // midnight, before start
	assert.True(t, apt.Upcoming(apt.StartsAt().Add(-time.Minute)))    // one minute before
	assert.False(t, apt.Upcoming(apt.StartsAt()))                     // starting now is not upcoming
	assert.False(t, apt.Upcoming(apt.StartsAt().Add(time.Hour)))      // already started
}

func TestSortPatientsDoesNotMutate(t *testing.T) {
	patients := []*Patient{
		{CPF: "333", Name: "Carla"},
		{CPF: "111", Name: "Bianca"},
		{CPF: "222", Name: "Alice"},
	}

	byName := SortPatients(patients, SortByName)
	assert.Equal(t, []string{"Alice", "Bianca", "Carla"}, names(byName))

	byCPF := SortPatients(patients, SortByCPF)
	assert.Equal(t, []string{"Bianca", "Alice", "Carla"}, names(byCPF))

	// original order untouched
	assert.Equal(t, []string{"Carla", "Bianca", "Alice"}, names(patients))
}

func names(patients []*Patient) []string {
	out := make([]string, len(patients))
	for i, p := range patients {
		out[i] = p.Name
	}
	return out
}
