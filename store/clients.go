package store

import (
	"errors"
	"fmt"

	"goldentouch-backend/models"

	"gorm.io/gorm"
)

// CreateClient assigns the next client id and inserts the record.
func (s *Store) CreateClient(client *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID("clients", &models.Client{})
	if err != nil {
		return err
	}
	client.ID = id
	if err := s.db.Create(client).Error; err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// UpdateClient replaces the stored client with the same id.
func (s *Store) UpdateClient(client *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.exists(&models.Client{}, client.ID)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if !ok {
		return fmt.Errorf("client %d: %w", client.ID, ErrNotFound)
	}
	if err := s.db.Save(client).Error; err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// DeleteClient removes a client and cascades to that client's
// appointments, so joins never outlive the client they reference.
func (s *Store) DeleteClient(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Client{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete client: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("client %d: %w", id, ErrNotFound)
		}
		if err := tx.Where("client_id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
			return fmt.Errorf("delete client appointments: %w", err)
		}
		return nil
	})
}

// GetClient fetches a single client by id.
func (s *Store) GetClient(id uint) (models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return client, fmt.Errorf("client %d: %w", id, ErrNotFound)
		}
		return client, fmt.Errorf("get client: %w", err)
	}
	return client, nil
}

// ListClients returns all clients in insertion order.
func (s *Store) ListClients() ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.Order("id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}
