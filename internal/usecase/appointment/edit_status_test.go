package appointment

import (
	"context"
	"testing"

	domain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/notify"
)

func TestEditStatusToAttendedNotifiesOnce(t *testing.T) {
	repo := newFakeRepo()
	cita := seedCita(t, repo, "")

	notifier := &fakeNotifier{}
	uc := NewEditStatus(repo, notifier, &fakeAudit{})

	actualizada, err := uc.Execute(context.Background(), EditStatusInput{
		ID:     cita.ID,
		Estado: string(domain.StatusAttended),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if actualizada.Status != string(domain.StatusAttended) {
		t.Fatalf("status = %q", actualizada.Status)
	}
	if notifier.count(notify.KindAttended) != 1 {
		t.Fatalf("avisos de atendida = %d, want 1", notifier.count(notify.KindAttended))
	}
}

func TestEditStatusOtherTransitionsDoNotNotify(t *testing.T) {
	repo := newFakeRepo()
	cita := seedCita(t, repo, "")

	notifier := &fakeNotifier{}
	uc := NewEditStatus(repo, notifier, &fakeAudit{})

	if _, err := uc.Execute(context.Background(), EditStatusInput{
		ID:     cita.ID,
		Estado: string(domain.StatusInAttention),
	}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if notifier.count(notify.KindAttended) != 0 {
		t.Fatalf("no debía avisar atendida")
	}
}

func TestEditStatusNormalizesPetRef(t *testing.T) {
	repo := newFakeRepo()
	cita := seedCita(t, repo, "")
	uc := NewEditStatus(repo, &fakeNotifier{}, &fakeAudit{})

	const petID = "0c8f98f4-012c-4bd4-83d1-0b4575a9d475"

	conRef, err := uc.Execute(context.Background(), EditStatusInput{
		ID:        cita.ID,
		Estado:    string(domain.StatusInAttention),
		IDMascota: petID,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if conRef.PetID == nil || *conRef.PetID != petID {
		t.Fatalf("PetID = %v", conRef.PetID)
	}

	// Vacío limpia la referencia sin error.
	sinRef, err := uc.Execute(context.Background(), EditStatusInput{
		ID:     cita.ID,
		Estado: string(domain.StatusInAttention),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if sinRef.PetID != nil {
		t.Fatalf("PetID = %v, se esperaba nil", sinRef.PetID)
	}
}

func TestEditStatusValidation(t *testing.T) {
	repo := newFakeRepo()
	cita := seedCita(t, repo, "")
	uc := NewEditStatus(repo, &fakeNotifier{}, &fakeAudit{})

	if _, err := uc.Execute(context.Background(), EditStatusInput{
		ID:     "no-es-uuid",
		Estado: string(domain.StatusAttended),
	}); !httperr.IsBusiness(err, "id_invalido") {
		t.Fatalf("err = %v, se esperaba id_invalido", err)
	}

	if _, err := uc.Execute(context.Background(), EditStatusInput{
		ID:     cita.ID,
		Estado: "inexistente",
	}); !httperr.IsBusiness(err, "estado_invalido") {
		t.Fatalf("err = %v, se esperaba estado_invalido", err)
	}
}

func TestBeginAttention(t *testing.T) {
	repo := newFakeRepo()
	cita := seedCita(t, repo, "")
	uc := NewBeginAttention(repo)

	actualizada, err := uc.Execute(context.Background(), cita.ID)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if actualizada.Status != string(domain.StatusInAttention) {
		t.Fatalf("status = %q", actualizada.Status)
	}

	if _, err := uc.Execute(context.Background(), "5f0e3ad0-51a7-4a3f-a8bd-1f6cb5f8b0de"); !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("err = %v, se esperaba no-encontrado", err)
	}
}
