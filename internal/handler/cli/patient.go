package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/vivaclinic/agenda/internal/model"
	"github.com/vivaclinic/agenda/pkg/clock"
)

func (h *Handler) patientMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(h.out, "1- Register new patient")
		fmt.Fprintln(h.out, "2- Delete patient")
		fmt.Fprintln(h.out, "3- List patients (ordered by CPF)")
		fmt.Fprintln(h.out, "4- List patients (ordered by name)")
		fmt.Fprintln(h.out, "5- Back to main menu")

		option, ok := h.prompt("Choose an option: ")
		if !ok {
			return h.in.Err()
		}
		switch option {
		case "1":
			h.registerPatient(ctx)
		case "2":
			h.deletePatient(ctx)
		case "3":
			h.listPatients(ctx, model.SortByCPF)
		case "4":
			h.listPatients(ctx, model.SortByName)
		case "5":
			return nil
		default:
			fmt.Fprintln(h.out, "Invalid option.")
		}
	}
}

func (h *Handler) registerPatient(ctx context.Context) {
	cpfID, ok := h.prompt("CPF: ")
	if !ok {
		return
	}
	name, ok := h.prompt("Name: ")
	if !ok {
		return
	}
	birthDate, ok := h.prompt("Birth date (DD/MM/YYYY): ")
	if !ok {
		return
	}

	registered, err := h.patients.Register(ctx, &model.RegisterPatientRequest{
		CPF:       cpfID,
		Name:      name,
		BirthDate: birthDate,
	})
	if err != nil {
		h.printError(err)
		return
	}
	fmt.Fprintf(h.out, "Patient %s registered successfully.\n", registered.Name)
}

func (h *Handler) deletePatient(ctx context.Context) {
	cpfID, ok := h.prompt("CPF of the patient to delete: ")
	if !ok {
		return
	}
	if err := h.patients.Delete(ctx, cpfID); err != nil {
		h.printError(err)
		return
	}
	fmt.Fprintln(h.out, "Patient deleted.")
}

func (h *Handler) listPatients(ctx context.Context, key model.PatientSortKey) {
	agendas, err := h.schedule.ListPatientsWithNextAppointment(ctx, key)
	if err != nil {
		h.printError(err)
		return
	}

	now := time.Now()
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CPF\tName\tBirth date\tAge")
	for _, entry := range agendas {
		p := entry.Patient
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", p.CPF, p.Name, clock.FormatDate(p.BirthDate), p.Age(now))
		if entry.Next != nil {
			fmt.Fprintf(w, "\tScheduled for: %s %s - %s\n",
				clock.FormatDate(entry.Next.Date), entry.Next.Start, entry.Next.End)
		}
	}
	w.Flush()
}
