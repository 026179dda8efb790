package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	domain "github.com/lanavaja/barber-platform/internal/domain/appointment"
	"github.com/lanavaja/barber-platform/internal/httperr"
)

func TestComplete_SetsStatusAndIssuesInvoice(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = confirmedAppointment(1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "14:00")

	invoices := newFakeInvoices()
	now := time.Date(2024, 6, 10, 14, 35, 0, 0, time.UTC)

	uc := NewCompleteAppointment(repo, invoices, testDispatcher(), zap.NewNop(), time.UTC, fixedClock(now))

	res, err := uc.Execute(context.Background(), 1, 99)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if res.Appointment.Status != string(domain.StatusCompleted) {
		t.Fatalf("status = %s, want COMPLETED", res.Appointment.Status)
	}
	if res.Appointment.CompletedAt == nil {
		t.Fatal("expected CompletedAt to be stamped")
	}
	if res.Invoice == nil || res.InvoiceErr != nil {
		t.Fatalf("expected invoice, got inv=%v err=%v", res.Invoice, res.InvoiceErr)
	}
}

func TestComplete_RepeatedCallIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = confirmedAppointment(1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "14:00")

	invoices := newFakeInvoices()
	uc := NewCompleteAppointment(repo, invoices, testDispatcher(), zap.NewNop(), time.UTC, nil)

	first, err := uc.Execute(context.Background(), 1, 99)
	if err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}
	second, err := uc.Execute(context.Background(), 1, 99)
	if err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}

	if len(invoices.created) != 1 {
		t.Fatalf("expected exactly one invoice, got %d", len(invoices.created))
	}
	if first.Invoice.Number != second.Invoice.Number {
		t.Fatalf("repeated completion returned a different invoice: %s vs %s",
			first.Invoice.Number, second.Invoice.Number)
	}

	// Only the first call writes the status change.
	if len(repo.updated) != 1 {
		t.Fatalf("expected one status update, got %d", len(repo.updated))
	}
}

func TestComplete_InvoiceFailureDoesNotFailCompletion(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = confirmedAppointment(1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "14:00")

	invoices := newFakeInvoices()
	invoices.err = errors.New("insert failed")

	uc := NewCompleteAppointment(repo, invoices, testDispatcher(), zap.NewNop(), time.UTC, nil)

	res, err := uc.Execute(context.Background(), 1, 99)
	if err != nil {
		t.Fatalf("completion must not fail on invoice error, got %v", err)
	}

	if res.Appointment.Status != string(domain.StatusCompleted) {
		t.Fatalf("status = %s, want COMPLETED", res.Appointment.Status)
	}
	if res.InvoiceErr == nil {
		t.Fatal("expected InvoiceErr to carry the failure")
	}
	if res.Invoice != nil {
		t.Fatal("expected no invoice on failure")
	}
}

func TestComplete_CancelledAppointmentRejected(t *testing.T) {
	repo := newFakeRepo()
	ap := confirmedAppointment(1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "14:00")
	ap.Status = string(domain.StatusCancelled)
	repo.appointments[1] = ap

	uc := NewCompleteAppointment(repo, newFakeInvoices(), testDispatcher(), zap.NewNop(), time.UTC, nil)

	_, err := uc.Execute(context.Background(), 1, 99)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}
