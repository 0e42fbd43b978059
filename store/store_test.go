package store

import (
	"errors"
	"testing"

	"goldentouch-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap database: %v", err)
	}
	// One connection: every query must see the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.Expense{},
		&models.Revenue{},
		&models.Feedback{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func TestClientIDsStrictlyIncreaseAcrossDeletes(t *testing.T) {
	s := newTestStore(t)

	var ids []uint
	for _, name := range []string{"Ana Clara", "Beatriz Costa", "Carla Dias"} {
		c := models.Client{Name: name, Email: name + "@email.com"}
		if err := s.CreateClient(&c); err != nil {
			t.Fatalf("create client: %v", err)
		}
		ids = append(ids, c.ID)
	}
	if ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("expected ids 1,2,3, got %v", ids)
	}

	// Deleting the highest id must not allow its reuse.
	if err := s.DeleteClient(3); err != nil {
		t.Fatalf("delete client: %v", err)
	}
	next := models.Client{Name: "Daniela Lima", Email: "daniela@email.com"}
	if err := s.CreateClient(&next); err != nil {
		t.Fatalf("create client: %v", err)
	}
	if next.ID != 4 {
		t.Fatalf("expected id 4 after deleting id 3, got %d", next.ID)
	}
}

func TestDeleteClientCascadesToAppointments(t *testing.T) {
	s := newTestStore(t)

	ana := models.Client{Name: "Ana Clara", Email: "ana.clara@email.com"}
	bia := models.Client{Name: "Beatriz Costa", Email: "beatriz.costa@email.com"}
	for _, c := range []*models.Client{&ana, &bia} {
		if err := s.CreateClient(c); err != nil {
			t.Fatalf("create client: %v", err)
		}
	}

	for _, a := range []models.Appointment{
		{ClientID: ana.ID, ServiceID: 1, Date: "2024-07-28", Time: "10:00", Status: models.StatusConfirmed},
		{ClientID: ana.ID, ServiceID: 2, Date: "2024-07-29", Time: "11:00", Status: models.StatusPending},
		{ClientID: bia.ID, ServiceID: 1, Date: "2024-07-30", Time: "12:00", Status: models.StatusConfirmed},
	} {
		a := a
		if err := s.CreateAppointment(&a); err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	if err := s.DeleteClient(ana.ID); err != nil {
		t.Fatalf("delete client: %v", err)
	}

	remaining, err := s.ListAppointments()
	if err != nil {
		t.Fatalf("list appointments: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 appointment after cascade, got %d", len(remaining))
	}
	if remaining[0].ClientID != bia.ID {
		t.Fatalf("wrong appointment survived the cascade: %+v", remaining[0])
	}
}

func TestDeleteClientWithoutAppointments(t *testing.T) {
	s := newTestStore(t)

	c := models.Client{Name: "Carla Dias", Email: "carla.dias@email.com"}
	if err := s.CreateClient(&c); err != nil {
		t.Fatalf("create client: %v", err)
	}
	if err := s.DeleteClient(c.ID); err != nil {
		t.Fatalf("delete client with no appointments: %v", err)
	}
}

func TestUnknownIDsReportNotFound(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpdateClient(&models.Client{ID: 99, Name: "Ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update unknown client: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteService(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete unknown service: expected ErrNotFound, got %v", err)
	}
	if err := s.UpdateAppointmentStatus(7, models.StatusCancelled); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update unknown appointment: expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetClient(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get unknown client: expected ErrNotFound, got %v", err)
	}
}

func TestListReturnsInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	names := []string{"Manicure Essencial", "Pedicure Relax", "Unha de Gel"}
	for _, name := range names {
		sv := models.Service{Name: name, Price: 30}
		if err := s.CreateService(&sv); err != nil {
			t.Fatalf("create service: %v", err)
		}
	}

	services, err := s.ListServices()
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	for i, sv := range services {
		if sv.Name != names[i] {
			t.Fatalf("position %d: expected %q, got %q", i, names[i], sv.Name)
		}
	}
}

func TestDeleteServiceLeavesAppointmentsDangling(t *testing.T) {
	s := newTestStore(t)

	sv := models.Service{Name: "Spa das Mãos", Price: 50}
	if err := s.CreateService(&sv); err != nil {
		t.Fatalf("create service: %v", err)
	}
	a := models.Appointment{ClientID: 1, ServiceID: sv.ID, Date: "2024-08-01", Time: "09:00", Status: models.StatusConfirmed}
	if err := s.CreateAppointment(&a); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	if err := s.DeleteService(sv.ID); err != nil {
		t.Fatalf("delete service: %v", err)
	}
	got, err := s.GetAppointment(a.ID)
	if err != nil {
		t.Fatalf("appointment should survive service deletion: %v", err)
	}
	if got.ServiceID != sv.ID {
		t.Fatalf("dangling service reference should be kept, got %d", got.ServiceID)
	}
}

func TestQuestionnairePersistsAsJSONColumn(t *testing.T) {
	s := newTestStore(t)

	a := models.Appointment{
		ClientID:  1,
		ServiceID: 1,
		Date:      "2024-08-02",
		Time:      "14:00",
		Status:    models.StatusPending,
		Questionnaire: models.Questionnaire{
			Pregnancy: models.AnswerNo,
			Allergy:   models.AnswerYes,
			NailPlate: []string{"peeling", "spots"},
			Notes:     "sensitive cuticles",
		},
	}
	if err := s.CreateAppointment(&a); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	got, err := s.GetAppointment(a.ID)
	if err != nil {
		t.Fatalf("get appointment: %v", err)
	}
	if got.Questionnaire.Allergy != models.AnswerYes {
		t.Fatalf("expected allergy answer to survive round trip, got %q", got.Questionnaire.Allergy)
	}
	if len(got.Questionnaire.NailPlate) != 2 {
		t.Fatalf("expected 2 nail plate flags, got %v", got.Questionnaire.NailPlate)
	}
}
