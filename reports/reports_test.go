package reports

import (
	"testing"

	"goldentouch-backend/models"
)

var (
	testClients = []models.Client{
		{ID: 1, Name: "Ana Clara", Email: "ana.clara@email.com", Birthday: "1995-08-15"},
		{ID: 2, Name: "Beatriz Costa", Email: "beatriz.costa@email.com", Birthday: "2000-03-22"},
		{ID: 3, Name: "Carla Dias", Email: "carla.dias@email.com", Birthday: "1998-11-05"},
	}
	testServices = []models.Service{
		{ID: 1, Name: "Manicure Essencial", Price: 30, Emoji: "💅"},
		{ID: 2, Name: "Pedicure Relax", Price: 40, Emoji: "👣"},
		{ID: 3, Name: "Unha de Gel", Price: 120, Emoji: "💎"},
	}
)

func TestDetailsJoinsClientAndService(t *testing.T) {
	t.Parallel()

	a := models.Appointment{ID: 1, ClientID: 1, ServiceID: 3, Date: "2024-07-28", Time: "10:00", Status: models.StatusConfirmed}
	d := Details(a, testClients, testServices)

	if d.ClientName != "Ana Clara" {
		t.Fatalf("expected client name Ana Clara, got %q", d.ClientName)
	}
	if d.ServiceName != "Unha de Gel" || d.Price != 120 || d.Emoji != "💎" {
		t.Fatalf("unexpected service join: %+v", d)
	}
}

func TestDetailsSubstitutesPlaceholdersForDanglingReferences(t *testing.T) {
	t.Parallel()

	a := models.Appointment{ID: 1, ClientID: 99, ServiceID: 98, Date: "2024-07-28", Time: "10:00"}
	d := Details(a, testClients, testServices)

	if d.ClientName != "N/A" || d.ServiceName != "N/A" {
		t.Fatalf("expected N/A placeholders, got %q / %q", d.ClientName, d.ServiceName)
	}
	if d.Price != 0 {
		t.Fatalf("expected price 0 for missing service, got %v", d.Price)
	}
	if d.Emoji != "❓" {
		t.Fatalf("expected placeholder emoji, got %q", d.Emoji)
	}
}

func TestUpcomingFiltersAndSorts(t *testing.T) {
	t.Parallel()

	appointments := []models.Appointment{
		{ID: 1, ClientID: 1, ServiceID: 1, Date: "2024-07-30", Time: "15:00", Status: models.StatusConfirmed},
		{ID: 2, ClientID: 2, ServiceID: 2, Date: "2024-07-29", Time: "09:00", Status: models.StatusCancelled},
		{ID: 3, ClientID: 3, ServiceID: 3, Date: "2024-07-29", Time: "14:00", Status: models.StatusPending},
		{ID: 4, ClientID: 1, ServiceID: 1, Date: "2024-07-28", Time: "10:00", Status: models.StatusConfirmed},
		{ID: 5, ClientID: 2, ServiceID: 2, Date: "2024-07-30", Time: "08:00", Status: models.StatusConfirmed},
	}

	got := Upcoming(appointments, testClients, testServices, "2024-07-29")

	var ids []uint
	for _, d := range got {
		ids = append(ids, d.ID)
	}
	// Cancelled id 2 and past id 4 drop out; the rest sort by (date, time).
	want := []uint{3, 5, 1}
	if len(ids) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, ids)
		}
	}
}

func TestUpcomingEmptyInput(t *testing.T) {
	t.Parallel()

	if got := Upcoming(nil, nil, nil, "2024-07-29"); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestRevenueForMonth(t *testing.T) {
	t.Parallel()

	appointments := []models.Appointment{
		{ID: 1, ClientID: 1, ServiceID: 1, Date: "2024-07-28", Time: "10:00", Status: models.StatusConfirmed}, // 30
		{ID: 2, ClientID: 2, ServiceID: 3, Date: "2024-07-29", Time: "14:00", Status: models.StatusPending},   // excluded
	}
	revenues := []models.Revenue{
		{ID: 1, Item: "Venda de esmalte", Category: models.RevenueProductSale, Amount: 45, Date: "2024-07-15"},
	}

	if got := RevenueForMonth(appointments, testServices, revenues, 2024, 7); got != 75 {
		t.Fatalf("expected 75, got %v", got)
	}
}

func TestRevenueForMonthEmptyPeriodIsZero(t *testing.T) {
	t.Parallel()

	if got := RevenueForMonth(nil, nil, nil, 2024, 7); got != 0 {
		t.Fatalf("expected 0 for empty period, got %v", got)
	}
}

func TestRevenueForYearIncludesManualRecords(t *testing.T) {
	t.Parallel()

	appointments := []models.Appointment{
		{ID: 1, ClientID: 1, ServiceID: 1, Date: "2024-03-10", Time: "10:00", Status: models.StatusConfirmed}, // 30
		{ID: 2, ClientID: 2, ServiceID: 2, Date: "2024-11-02", Time: "11:00", Status: models.StatusConfirmed}, // 40
		{ID: 3, ClientID: 3, ServiceID: 3, Date: "2023-12-30", Time: "12:00", Status: models.StatusConfirmed}, // other year
		{ID: 4, ClientID: 1, ServiceID: 3, Date: "2024-05-05", Time: "13:00", Status: models.StatusCancelled}, // excluded
	}
	revenues := []models.Revenue{
		{ID: 1, Item: "Curso de cutilagem", Category: models.RevenueCourse, Amount: 200, Date: "2024-09-01"},
		{ID: 2, Item: "Venda de esmalte", Category: models.RevenueProductSale, Amount: 25, Date: "2023-09-01"},
	}

	if got := RevenueForYear(appointments, testServices, revenues, 2024); got != 270 {
		t.Fatalf("expected 270, got %v", got)
	}
}

func TestProfitForMonth(t *testing.T) {
	t.Parallel()

	appointments := []models.Appointment{
		{ID: 1, ClientID: 1, ServiceID: 3, Date: "2024-07-10", Time: "10:00", Status: models.StatusConfirmed}, // 120
	}
	expenses := []models.Expense{
		{ID: 1, Item: "Aluguel", Category: models.ExpenseRent, Amount: 70, Date: "2024-07-01"},
		{ID: 2, Item: "Esmaltes", Category: models.ExpenseSupplies, Amount: 10, Date: "2024-08-01"}, // other month
	}

	if got := ProfitForMonth(appointments, testServices, nil, expenses, 2024, 7); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestLoyaltyRankingStableTieBreak(t *testing.T) {
	t.Parallel()

	appointments := []models.Appointment{
		{ID: 1, ClientID: 1, ServiceID: 1, Date: "2024-07-01", Time: "10:00", Status: models.StatusConfirmed},
		{ID: 2, ClientID: 1, ServiceID: 1, Date: "2024-07-02", Time: "10:00", Status: models.StatusConfirmed},
		{ID: 3, ClientID: 3, ServiceID: 1, Date: "2024-07-03", Time: "10:00", Status: models.StatusConfirmed},
		{ID: 4, ClientID: 3, ServiceID: 1, Date: "2024-07-04", Time: "10:00", Status: models.StatusConfirmed},
		{ID: 5, ClientID: 2, ServiceID: 1, Date: "2024-07-05", Time: "10:00", Status: models.StatusPending}, // not counted
	}

	ranked := LoyaltyRanking(testClients, appointments)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked clients, got %d", len(ranked))
	}
	// Ana and Carla tie at 2; Ana registered first and must stay first.
	if ranked[0].Name != "Ana Clara" || ranked[1].Name != "Carla Dias" || ranked[2].Name != "Beatriz Costa" {
		t.Fatalf("expected Ana, Carla, Beatriz, got %s, %s, %s", ranked[0].Name, ranked[1].Name, ranked[2].Name)
	}
	if ranked[0].ConfirmedCount != 2 || ranked[2].ConfirmedCount != 0 {
		t.Fatalf("unexpected counts: %+v", ranked)
	}
}

func TestBirthdaysOnIgnoresYear(t *testing.T) {
	t.Parallel()

	got := BirthdaysOn(testClients, "2026-08-15")
	if len(got) != 1 || got[0].Name != "Ana Clara" {
		t.Fatalf("expected Ana Clara's birthday, got %v", got)
	}

	if got := BirthdaysOn(testClients, "2026-01-01"); len(got) != 0 {
		t.Fatalf("expected no birthdays, got %v", got)
	}
}

func TestFilterClients(t *testing.T) {
	t.Parallel()

	clients := append([]models.Client{}, testClients...)
	clients = append(clients, models.Client{ID: 4, Name: "Mariana Souza", Email: "mari.ana@email.com"})

	got := FilterClients(clients, "ana")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d: %v", "ana", len(got), got)
	}
	if got[0].Name != "Ana Clara" || got[1].Name != "Mariana Souza" {
		t.Fatalf("unexpected matches: %v", got)
	}

	if got := FilterClients(clients, "  "); len(got) != len(clients) {
		t.Fatalf("blank term should return all clients, got %d", len(got))
	}

	if got := FilterClients(clients, "BEATRIZ.COSTA@"); len(got) != 1 {
		t.Fatalf("email match should be case-insensitive, got %v", got)
	}
}

func TestGrowth(t *testing.T) {
	t.Parallel()

	if got := Growth(150, 100); got != 50 {
		t.Fatalf("expected 50%%, got %v", got)
	}
	if got := Growth(0, 0); got != 0 {
		t.Fatalf("expected 0%% for two empty periods, got %v", got)
	}
	if got := Growth(80, 0); got != 100 {
		t.Fatalf("expected 100%% from empty previous period, got %v", got)
	}
	if got := Growth(50, 100); got != -50 {
		t.Fatalf("expected -50%%, got %v", got)
	}
}

func TestNetIncome(t *testing.T) {
	t.Parallel()

	revenues := []models.Revenue{{Amount: 300}, {Amount: 200}}
	expenses := []models.Expense{{Amount: 150}}
	if got := NetIncome(revenues, expenses); got != 350 {
		t.Fatalf("expected 350, got %v", got)
	}
	if got := NetIncome(nil, nil); got != 0 {
		t.Fatalf("expected 0 for empty books, got %v", got)
	}
}
