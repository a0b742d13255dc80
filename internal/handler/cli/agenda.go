package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/vivaclinic/agenda/internal/model"
	"github.com/vivaclinic/agenda/pkg/clock"
)

func (h *Handler) agendaMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(h.out, "1- Book appointment")
		fmt.Fprintln(h.out, "2- Cancel appointment")
		fmt.Fprintln(h.out, "3- List agenda")
		fmt.Fprintln(h.out, "4- Back to main menu")

		option, ok := h.prompt("Choose an option: ")
		if !ok {
			return h.in.Err()
		}
		switch option {
		case "1":
			h.bookAppointment(ctx)
		case "2":
			h.cancelAppointment(ctx)
		case "3":
			h.listAgenda(ctx)
		case "4":
			return nil
		default:
			fmt.Fprintln(h.out, "Invalid option.")
		}
	}
}

func (h *Handler) bookAppointment(ctx context.Context) {
	cpfID, ok := h.prompt("Patient CPF: ")
	if !ok {
		return
	}
	date, ok := h.prompt("Appointment date (DD/MM/YYYY): ")
	if !ok {
		return
	}
	start, ok := h.prompt("Start time (HHMM): ")
	if !ok {
		return
	}
	end, ok := h.prompt("End time (HHMM): ")
	if !ok {
		return
	}

	err := h.schedule.Book(ctx, &model.BookAppointmentRequest{
		PatientCPF: cpfID,
		Date:       date,
		Start:      start,
		End:        end,
	})
	if err != nil {
		h.printError(err)
	}
}

func (h *Handler) cancelAppointment(ctx context.Context) {
	cpfID, ok := h.prompt("Patient CPF: ")
	if !ok {
		return
	}
	date, ok := h.prompt("Appointment date (DD/MM/YYYY): ")
	if !ok {
		return
	}
	start, ok := h.prompt("Start time (HHMM): ")
	if !ok {
		return
	}

	err := h.schedule.Cancel(ctx, &model.CancelAppointmentRequest{
		PatientCPF: cpfID,
		Date:       date,
		Start:      start,
	})
	if err != nil {
		h.printError(err)
	}
}

func (h *Handler) listAgenda(ctx context.Context) {
	choice, ok := h.prompt("List the whole agenda or a period? (W/P): ")
	if !ok {
		return
	}

	var from, to string
	if strings.EqualFold(choice, "P") {
		if from, ok = h.prompt("Start date (DD/MM/YYYY): "); !ok {
			return
		}
		if to, ok = h.prompt("End date (DD/MM/YYYY): "); !ok {
			return
		}
	}

	appointments, err := h.schedule.ListByPeriod(ctx, from, to)
	if err != nil {
		h.printError(err)
		return
	}
	if len(appointments) == 0 {
		fmt.Fprintln(h.out, "No appointments found.")
		return
	}

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tStart\tEnd\tCPF\tName")
	for _, apt := range appointments {
		name := "N/A"
		if p, err := h.patients.Get(ctx, apt.PatientCPF); err == nil {
			name = p.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			clock.FormatDate(apt.Date), apt.Start, apt.End, apt.PatientCPF, name)
	}
	w.Flush()
}
