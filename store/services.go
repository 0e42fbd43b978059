package store

import (
	"errors"
	"fmt"

	"goldentouch-backend/models"

	"gorm.io/gorm"
)

func (s *Store) CreateService(service *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID("services", &models.Service{})
	if err != nil {
		return err
	}
	service.ID = id
	if err := s.db.Create(service).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (s *Store) UpdateService(service *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.exists(&models.Service{}, service.ID)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if !ok {
		return fmt.Errorf("service %d: %w", service.ID, ErrNotFound)
	}
	if err := s.db.Save(service).Error; err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// DeleteService removes the service only. Appointments referencing it keep
// their service id and render with placeholder details.
func (s *Store) DeleteService(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("service %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) GetService(id uint) (models.Service, error) {
	var service models.Service
	if err := s.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service, fmt.Errorf("service %d: %w", id, ErrNotFound)
		}
		return service, fmt.Errorf("get service: %w", err)
	}
	return service, nil
}

func (s *Store) ListServices() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Order("id").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}
