// Package cli implements the interactive text menu. It owns all reading
// and printing; the services below it only ever see the raw strings the
// user typed.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vivaclinic/agenda/internal/service/patient"
	"github.com/vivaclinic/agenda/internal/service/schedule"
	"github.com/vivaclinic/agenda/pkg/logger"
)

type Handler struct {
	patients *patient.Service
	schedule *schedule.Service
	in       *bufio.Scanner
	out      io.Writer
	logger   *logger.Logger
}

func NewHandler(patients *patient.Service, scheduleSvc *schedule.Service, in io.Reader, out io.Writer, log *logger.Logger) *Handler {
	return &Handler{
		patients: patients,
		schedule: scheduleSvc,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   log,
	}
}

// Run drives the main menu until the user exits or input ends.
func (h *Handler) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(h.out, "1- Patient registration")
		fmt.Fprintln(h.out, "2- Agenda")
		fmt.Fprintln(h.out, "3- Exit")

		option, ok := h.prompt("Choose an option: ")
		if !ok {
			return h.in.Err()
		}
		h.logger.Debug("menu option selected", "option", option)
		switch option {
		case "1":
			if err := h.patientMenu(ctx); err != nil {
				return err
			}
		case "2":
			if err := h.agendaMenu(ctx); err != nil {
				return err
			}
		case "3":
			fmt.Fprintln(h.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(h.out, "Invalid option.")
		}
	}
}

// prompt prints a label and reads one trimmed line. ok is false once input
// is exhausted.
func (h *Handler) prompt(label string) (string, bool) {
	fmt.Fprint(h.out, label)
	if !h.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(h.in.Text()), true
}

func (h *Handler) printError(err error) {
	fmt.Fprintf(h.out, "Error: %s\n", err)
}
