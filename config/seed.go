package config

import (
	"fmt"
	"log/slog"
	"time"

	"goldentouch-backend/models"
	"goldentouch-backend/store"
)

// SeedDemoData populates an empty store with the salon's demo records.
// A store that already has clients is left alone.
func SeedDemoData(s *store.Store) error {
	existing, err := s.ListClients()
	if err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	clients := []models.Client{
		{Name: "Ana Clara", Email: "ana.clara@email.com", Phone: "+5511987650001", IsLoyal: true, Birthday: "1995-08-15", PhotoURL: "https://picsum.photos/id/1027/200/200"},
		{Name: "Beatriz Costa", Email: "beatriz.costa@email.com", Phone: "+5511987650002", Birthday: "2000-03-22"},
		{Name: "Carla Dias", Email: "carla.dias@email.com", IsLoyal: true, Birthday: "1998-11-05"},
	}
	for i := range clients {
		if err := s.CreateClient(&clients[i]); err != nil {
			return fmt.Errorf("seed clients: %w", err)
		}
	}

	services := []models.Service{
		{Name: "Manicure Essencial", Description: "Cutilagem, lixamento e esmaltação com cores nacionais.", Price: 30, Duration: 45, Category: "Mãos", Emoji: "💅"},
		{Name: "Pedicure Relax", Description: "Tratamento completo para os pés com esfoliação e massagem.", Price: 40, Duration: 60, Category: "Pés", Emoji: "👣"},
		{Name: "Unha de Gel", Description: "Aplicação de unhas de gel com aspecto natural e alta durabilidade.", Price: 120, Duration: 120, Category: "Alongamento", Emoji: "💎"},
		{Name: "Spa das Mãos", Description: "Hidratação profunda, esfoliação e tratamento para cutículas.", Price: 50, Duration: 60, Category: "Tratamento", Emoji: "✨"},
		{Name: "Esmaltação em Gel", Description: "Esmalte de longa duração com secagem imediata e brilho intenso.", Price: 60, Duration: 75, Category: "Mãos", Emoji: "💖"},
		{Name: "Manutenção Gel", Description: "Manutenção das unhas de gel para garantir a durabilidade.", Price: 80, Duration: 90, Category: "Alongamento", Emoji: "🔧"},
	}
	for i := range services {
		if err := s.CreateService(&services[i]); err != nil {
			return fmt.Errorf("seed services: %w", err)
		}
	}

	today := time.Now().Format("2006-01-02")
	appointments := []models.Appointment{
		{ClientID: 1, ServiceID: 1, Date: "2024-07-28", Time: "10:00", Status: models.StatusConfirmed},
		{ClientID: 2, ServiceID: 3, Date: "2024-07-29", Time: "14:00", Status: models.StatusConfirmed},
		{ClientID: 1, ServiceID: 2, Date: today, Time: "11:00", Status: models.StatusConfirmed},
	}
	for i := range appointments {
		if err := s.CreateAppointment(&appointments[i]); err != nil {
			return fmt.Errorf("seed appointments: %w", err)
		}
	}

	month := time.Now().Format("2006-01")
	expenses := []models.Expense{
		{Item: "Aluguel do Espaço", Category: models.ExpenseRent, Amount: 1500, Date: month + "-01"},
		{Item: "Esmaltes e Acetona", Category: models.ExpenseSupplies, Amount: 350, Date: month + "-05"},
		{Item: "Energia Elétrica", Category: models.ExpenseUtilities, Amount: 250, Date: month + "-10"},
	}
	for i := range expenses {
		if err := s.CreateExpense(&expenses[i]); err != nil {
			return fmt.Errorf("seed expenses: %w", err)
		}
	}

	slog.Info("seeded demo data",
		"clients", len(clients),
		"services", len(services),
		"appointments", len(appointments),
		"expenses", len(expenses))
	return nil
}
