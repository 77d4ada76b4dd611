package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/models"
	"github.com/luxepet-health/clinic-api/internal/notify"
	"github.com/luxepet-health/clinic-api/internal/timezone"
)

func TestBookCreatesAwaitingAppointment(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	uc := NewBook(repo, notifier, &fakeAudit{})

	cita, err := uc.Execute(context.Background(), BookInput{
		Cliente: "Ana",
		Fecha:   "2025-03-10",
		Hora:    "10:00",
		Correo:  "a@x.com",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if cita.Status != string(domain.StatusAwaiting) {
		t.Fatalf("status = %q, want %q", cita.Status, domain.StatusAwaiting)
	}

	want, _ := time.ParseInLocation("2006-01-02 15:04", "2025-03-10 10:00", timezone.Location())
	if !cita.ScheduledAt.Equal(want) {
		t.Fatalf("ScheduledAt = %v, want %v", cita.ScheduledAt, want)
	}

	if cita.Services == nil || len(cita.Services) != 0 {
		t.Fatalf("Services = %v, want empty slice", cita.Services)
	}

	if notifier.count(notify.KindBooked) != 1 {
		t.Fatalf("booked notifications = %d, want 1", notifier.count(notify.KindBooked))
	}

	// La hora reservada desaparece de la disponibilidad del día.
	avail, err := NewGetAvailability(repo).Execute(context.Background(), "2025-03-10")
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	for _, h := range avail.HorasDisponibles {
		if h == 10 {
			t.Fatalf("hora 10 sigue disponible: %v", avail.HorasDisponibles)
		}
	}
}

func TestBookRejectsIncompleteData(t *testing.T) {
	uc := NewBook(newFakeRepo(), &fakeNotifier{}, &fakeAudit{})

	cases := []BookInput{
		{Fecha: "2025-03-10", Hora: "10:00", Correo: "a@x.com"},
		{Cliente: "Ana", Hora: "10:00", Correo: "a@x.com"},
		{Cliente: "Ana", Fecha: "2025-03-10", Correo: "a@x.com"},
		{Cliente: "Ana", Fecha: "2025-03-10", Hora: "10:00"},
	}
	for i, in := range cases {
		if _, err := uc.Execute(context.Background(), in); !httperr.IsKind(err, httperr.KindValidation) {
			t.Errorf("caso %d: err = %v, se esperaba validación", i, err)
		}
	}
}

func TestBookRejectsInvalidInstant(t *testing.T) {
	uc := NewBook(newFakeRepo(), &fakeNotifier{}, &fakeAudit{})

	_, err := uc.Execute(context.Background(), BookInput{
		Cliente: "Ana",
		Fecha:   "2025-13-40",
		Hora:    "27:00",
		Correo:  "a@x.com",
	})
	if !httperr.IsBusiness(err, "fecha_invalida") {
		t.Fatalf("err = %v, se esperaba fecha_invalida", err)
	}
}

func TestBookResolvesPetNameBestEffort(t *testing.T) {
	repo := newFakeRepo()
	repo.pets["Firulais"] = models.Pet{ID: "0c8f98f4-012c-4bd4-83d1-0b4575a9d475", Name: "Firulais"}
	uc := NewBook(repo, &fakeNotifier{}, &fakeAudit{})

	conMascota, err := uc.Execute(context.Background(), BookInput{
		Cliente:       "Ana",
		Fecha:         "2025-03-10",
		Hora:          "11:00",
		Correo:        "a@x.com",
		MascotaNombre: "Firulais",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if conMascota.PetID == nil || *conMascota.PetID != "0c8f98f4-012c-4bd4-83d1-0b4575a9d475" {
		t.Fatalf("PetID = %v, se esperaba la mascota resuelta", conMascota.PetID)
	}

	// Nombre que no resuelve: referencia en null, no es un error.
	sinMascota, err := uc.Execute(context.Background(), BookInput{
		Cliente:       "Ana",
		Fecha:         "2025-03-10",
		Hora:          "12:00",
		Correo:        "a@x.com",
		MascotaNombre: "Desconocido",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if sinMascota.PetID != nil {
		t.Fatalf("PetID = %v, se esperaba nil", sinMascota.PetID)
	}
}

func TestBookAllowsSameHourTwice(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBook(repo, &fakeNotifier{}, &fakeAudit{})

	in := BookInput{Cliente: "Ana", Fecha: "2025-03-10", Hora: "10:00", Correo: "a@x.com"}
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("primera: %v", err)
	}
	in.Cliente = "Luis"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("segunda en la misma hora debe coexistir: %v", err)
	}
}
