package careplan

import (
	"context"
	"testing"

	"github.com/luxepet-health/clinic-api/internal/audit"
	citadomain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/models"
	"github.com/luxepet-health/clinic-api/internal/timezone"
)

const petID = "0b5c6f1e-9a44-4f2d-8f77-2f3ad1c0a9b1"

// -------------------------
// Fake repo (in-memory)
// -------------------------

type fakeRepo struct {
	plans   map[string]models.CarePlan // por idMascota
	visitas []models.Appointment
	deletes []string // ids de mascota con borrado de visitas
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{plans: map[string]models.CarePlan{}}
}

func (r *fakeRepo) CreatePlan(ctx context.Context, plan *models.CarePlan) error {
	r.plans[plan.PetID] = *plan
	return nil
}

func (r *fakeRepo) FindPlanByPet(ctx context.Context, petID string) (*models.CarePlan, error) {
	plan, ok := r.plans[petID]
	if !ok {
		return nil, nil
	}
	return &plan, nil
}

func (r *fakeRepo) ListPlansByEmail(ctx context.Context, email string) ([]models.CarePlan, error) {
	out := make([]models.CarePlan, 0)
	for _, plan := range r.plans {
		if plan.OwnerEmail == email {
			out = append(out, plan)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdatePlan(ctx context.Context, plan *models.CarePlan) error {
	r.plans[plan.PetID] = *plan
	return nil
}

func (r *fakeRepo) CreateVisitAppointment(ctx context.Context, cita *models.Appointment) error {
	r.visitas = append(r.visitas, *cita)
	return nil
}

func (r *fakeRepo) DeleteVisitAppointments(ctx context.Context, petID string) error {
	r.deletes = append(r.deletes, petID)
	kept := r.visitas[:0]
	for _, cita := range r.visitas {
		if cita.PetID == nil || *cita.PetID != petID {
			kept = append(kept, cita)
		}
	}
	r.visitas = kept
	return nil
}

type fakeAudit struct {
	events []audit.Event
}

func (a *fakeAudit) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}

func planInput(visitas []VisitInput) PlanInput {
	return PlanInput{
		IDMascota:     petID,
		Dieta:         "croquetas premium",
		Ejercicio:     "caminata diaria",
		Visitas:       visitas,
		CorreoDueno:   "duena@x.com",
		NombreDueno:   "Ana",
		NombreMascota: "Firulais",
	}
}

// -------------------------
// Crear plan
// -------------------------

func TestCreatePlanWithVisits(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreatePlanWithVisits(repo, &fakeAudit{})

	plan, err := uc.Execute(context.Background(), planInput([]VisitInput{
		{Fecha: "2030-05-01", Hora: "10:00", Descripcion: "vacuna"},
		{Fecha: "2030-06-01", Hora: "11:00", Descripcion: "control"},
	}))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if plan.ID == "" {
		t.Fatalf("el plan quedó sin id")
	}
	if len(plan.Visits) != 2 {
		t.Fatalf("visitas en el plan = %d, want 2", len(plan.Visits))
	}
	if len(repo.visitas) != 2 {
		t.Fatalf("citas-visita creadas = %d, want 2", len(repo.visitas))
	}

	// Cada cita-visita nace con estado visita y el instante del plan es
	// exactamente el instante persistido en la cita.
	for i, cita := range repo.visitas {
		if cita.Status != string(citadomain.StatusVisit) {
			t.Fatalf("cita %d con estado %q", i, cita.Status)
		}
		if !plan.Visits[i].Fecha.Equal(cita.ScheduledAt) {
			t.Fatalf("visita %d: plan %v vs cita %v", i, plan.Visits[i].Fecha, cita.ScheduledAt)
		}
	}

	want, _ := timezone.ParseDateTime("2030-05-01", "10:00")
	if !plan.Visits[0].Fecha.Equal(want) {
		t.Fatalf("primera visita = %v, want %v", plan.Visits[0].Fecha, want)
	}
}

func TestCreatePlanWithoutVisits(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreatePlanWithVisits(repo, &fakeAudit{})

	plan, err := uc.Execute(context.Background(), planInput(nil))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(plan.Visits) != 0 {
		t.Fatalf("visitas = %d, want 0", len(plan.Visits))
	}
	if len(repo.visitas) != 0 {
		t.Fatalf("se crearon citas sin visitas en la entrada")
	}
}

func TestCreatePlanValidation(t *testing.T) {
	uc := NewCreatePlanWithVisits(newFakeRepo(), &fakeAudit{})

	incompleto := planInput(nil)
	incompleto.Dieta = ""
	if _, err := uc.Execute(context.Background(), incompleto); !httperr.IsBusiness(err, "campos_obligatorios") {
		t.Fatalf("err = %v, se esperaba campos_obligatorios", err)
	}

	sinHora := planInput([]VisitInput{{Fecha: "2030-05-01", Descripcion: "vacuna"}})
	if _, err := uc.Execute(context.Background(), sinHora); !httperr.IsBusiness(err, "visitas_incompletas") {
		t.Fatalf("err = %v, se esperaba visitas_incompletas", err)
	}

	malFecha := planInput([]VisitInput{{Fecha: "01-05-2030", Hora: "10:00", Descripcion: "vacuna"}})
	if _, err := uc.Execute(context.Background(), malFecha); !httperr.IsBusiness(err, "fecha_invalida") {
		t.Fatalf("err = %v, se esperaba fecha_invalida", err)
	}
}

// -------------------------
// Actualizar plan
// -------------------------

func seedPlan(t *testing.T, repo *fakeRepo) *models.CarePlan {
	t.Helper()

	uc := NewCreatePlanWithVisits(repo, &fakeAudit{})
	plan, err := uc.Execute(context.Background(), planInput([]VisitInput{
		{Fecha: "2030-05-01", Hora: "10:00", Descripcion: "vacuna"},
	}))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return plan
}

func TestUpdatePlanReplacesVisits(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(t, repo)

	uc := NewUpdatePlanWithVisits(repo, &fakeAudit{})
	in := planInput([]VisitInput{
		{Fecha: "2030-07-01", Hora: "12:00", Descripcion: "desparasitación"},
		{Fecha: "2030-08-01", Hora: "13:00", Descripcion: "control"},
	})
	in.Dieta = "dieta blanda"

	res, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Plan.Diet != "dieta blanda" {
		t.Fatalf("dieta = %q", res.Plan.Diet)
	}
	if len(res.Citas) != 2 {
		t.Fatalf("citas en la respuesta = %d, want 2", len(res.Citas))
	}

	// El juego anterior se borra completo y queda solo el nuevo.
	if len(repo.visitas) != 2 {
		t.Fatalf("citas-visita en el repo = %d, want 2", len(repo.visitas))
	}
	want, _ := timezone.ParseDateTime("2030-07-01", "12:00")
	if !repo.visitas[0].ScheduledAt.Equal(want) {
		t.Fatalf("primera visita nueva = %v, want %v", repo.visitas[0].ScheduledAt, want)
	}
}

func TestUpdatePlanMissingPlanStillDeletes(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdatePlanWithVisits(repo, &fakeAudit{})

	in := planInput([]VisitInput{
		{Fecha: "2030-07-01", Hora: "12:00", Descripcion: "control"},
	})

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "plan_no_encontrado") {
		t.Fatalf("err = %v, se esperaba plan_no_encontrado", err)
	}

	// El borrado y las citas nuevas ya quedaron confirmados aunque el
	// plan no exista.
	if len(repo.deletes) != 1 || repo.deletes[0] != petID {
		t.Fatalf("deletes = %v", repo.deletes)
	}
	if len(repo.visitas) != 1 {
		t.Fatalf("citas-visita = %d, want 1", len(repo.visitas))
	}
}

func TestUpdatePlanValidation(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdatePlanWithVisits(repo, &fakeAudit{})

	sinID := planInput(nil)
	sinID.IDMascota = ""
	if _, err := uc.Execute(context.Background(), sinID); !httperr.IsBusiness(err, "id_mascota_obligatorio") {
		t.Fatalf("err = %v, se esperaba id_mascota_obligatorio", err)
	}
	if len(repo.deletes) != 0 {
		t.Fatalf("se borró con id ausente")
	}

	malID := planInput(nil)
	malID.IDMascota = "no-es-uuid"
	if _, err := uc.Execute(context.Background(), malID); !httperr.IsBusiness(err, "id_invalido") {
		t.Fatalf("err = %v, se esperaba id_invalido", err)
	}
	if len(repo.deletes) != 0 {
		t.Fatalf("se borró con id inválido")
	}
}

// -------------------------
// Consultas
// -------------------------

func TestQueriesByPet(t *testing.T) {
	repo := newFakeRepo()
	q := NewQueries(repo)

	if _, err := q.ByPet(context.Background(), "no-es-uuid"); !httperr.IsBusiness(err, "id_invalido") {
		t.Fatalf("err = %v, se esperaba id_invalido", err)
	}

	// Sin plan: nil sin error, el handler responde 200 con cuerpo nulo.
	plan, err := q.ByPet(context.Background(), petID)
	if err != nil {
		t.Fatalf("ByPet: %v", err)
	}
	if plan != nil {
		t.Fatalf("plan = %+v, want nil", plan)
	}

	seedPlan(t, repo)
	plan, err = q.ByPet(context.Background(), petID)
	if err != nil {
		t.Fatalf("ByPet: %v", err)
	}
	if plan == nil || plan.PetName != "Firulais" {
		t.Fatalf("plan = %+v", plan)
	}
}

func TestQueriesByOwnerEmail(t *testing.T) {
	repo := newFakeRepo()
	q := NewQueries(repo)

	if _, err := q.ByOwnerEmail(context.Background(), "duena@x.com"); !httperr.IsBusiness(err, "sin_planes") {
		t.Fatalf("err = %v, se esperaba sin_planes", err)
	}

	seedPlan(t, repo)
	planes, err := q.ByOwnerEmail(context.Background(), "duena@x.com")
	if err != nil {
		t.Fatalf("ByOwnerEmail: %v", err)
	}
	if len(planes) != 1 {
		t.Fatalf("planes = %d, want 1", len(planes))
	}
}
