package store

import (
	"errors"
	"fmt"

	"goldentouch-backend/models"

	"gorm.io/gorm"
)

func (s *Store) CreateAppointment(appointment *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID("appointments", &models.Appointment{})
	if err != nil {
		return err
	}
	appointment.ID = id
	if err := s.db.Create(appointment).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (s *Store) UpdateAppointment(appointment *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.exists(&models.Appointment{}, appointment.ID)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if !ok {
		return fmt.Errorf("appointment %d: %w", appointment.ID, ErrNotFound)
	}
	if err := s.db.Save(appointment).Error; err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// UpdateAppointmentStatus changes only the status field.
func (s *Store) UpdateAppointmentStatus(id uint, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.db.Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("update appointment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("appointment %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteAppointment(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.db.Delete(&models.Appointment{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("appointment %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) GetAppointment(id uint) (models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appointment, fmt.Errorf("appointment %d: %w", id, ErrNotFound)
		}
		return appointment, fmt.Errorf("get appointment: %w", err)
	}
	return appointment, nil
}

func (s *Store) ListAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.db.Order("id").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

// ListClientAppointments returns one client's appointments in insertion
// order.
func (s *Store) ListClientAppointments(clientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.db.Where("client_id = ?", clientID).Order("id").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("list client appointments: %w", err)
	}
	return appointments, nil
}
