package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivaclinic/agenda/internal/handler/cli"
	"github.com/vivaclinic/agenda/internal/repository/memory"
	"github.com/vivaclinic/agenda/internal/service/notification"
	patientsvc "github.com/vivaclinic/agenda/internal/service/patient"
	schedulesvc "github.com/vivaclinic/agenda/internal/service/schedule"
	"github.com/vivaclinic/agenda/pkg/clock"
	"github.com/vivaclinic/agenda/pkg/logger"
	"github.com/vivaclinic/agenda/pkg/metrics"
)

func newHandler(t *testing.T, input string) (*cli.Handler, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	m := metrics.NewMetrics("test")

	patientRepo := memory.NewPatientRepository()
	appointmentRepo := memory.NewAppointmentRepository()
	notifier := notification.NewConsoleService(out)

	patients := patientsvc.NewService(patientRepo, appointmentRepo, patientsvc.Config{}, log, m)
	schedule := schedulesvc.NewService(appointmentRepo, patientRepo, notifier, schedulesvc.Config{}, log, m)

	return cli.NewHandler(patients, schedule, strings.NewReader(input), out, log), out
}

// Walks the full menu: register a patient, reject an out-of-hours booking,
// book a valid slot, reject a second upcoming booking, list the agenda.
func TestMenuFlow(t *testing.T) {
	tomorrow := clock.FormatDate(time.Now().AddDate(0, 0, 1))
	dayAfter := clock.FormatDate(time.Now().AddDate(0, 0, 2))
	cpf := "11144477735"

	input := strings.Join([]string{
		"1",                              // main: patient registration
		"1", cpf, "Maria Silva", "01/01/2000", // register
		"5",                              // back
		"2",                              // main: agenda
		"1", cpf, tomorrow, "2000", "2100", // out of hours
		"1", cpf, tomorrow, "1000", "1015", // valid booking
		"1", cpf, dayAfter, "1100", "1115", // duplicate upcoming
		"3", "W", // list whole agenda
		"4", // back
		"3", // exit
	}, "\n") + "\n"

	handler, out := newHandler(t, input)
	require.NoError(t, handler.Run(context.Background()))

	printed := out.String()
	assert.Contains(t, printed, "Patient Maria Silva registered successfully.")
	assert.Contains(t, printed, "Error: times outside the allowed window (08:00 to 19:00) or inverted")
	assert.Contains(t, printed, "Appointment booked for Maria Silva")
	assert.Contains(t, printed, "Error: patient already has an upcoming appointment")
	assert.Contains(t, printed, "Maria Silva")
	assert.Contains(t, printed, fmt.Sprintf("%s  10:00  10:15  %s", tomorrow, cpf))
	assert.Contains(t, printed, "Goodbye.")
}

func TestMenuInvalidOption(t *testing.T) {
	handler, out := newHandler(t, "9\n3\n")
	require.NoError(t, handler.Run(context.Background()))
	assert.Contains(t, out.String(), "Invalid option.")
}

func TestMenuListPatientsByName(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"1", "11144477735", "Maria Silva", "01/01/2000",
		"1", "52998224725", "Ana Castro", "02/02/1990",
		"4", // list by name
		"5",
		"3",
	}, "\n") + "\n"

	handler, out := newHandler(t, input)
	require.NoError(t, handler.Run(context.Background()))

	printed := out.String()
	ana := strings.Index(printed, "Ana Castro")
	maria := strings.Index(printed, "Maria Silva")
	require.GreaterOrEqual(t, ana, 0)
	require.GreaterOrEqual(t, maria, 0)
	assert.Less(t, ana, maria)
}
