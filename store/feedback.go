package store

import (
	"fmt"

	"goldentouch-backend/models"
)

func (s *Store) CreateFeedback(feedback *models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID("feedback", &models.Feedback{})
	if err != nil {
		return err
	}
	feedback.ID = id
	if err := s.db.Create(feedback).Error; err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

func (s *Store) ListFeedback() ([]models.Feedback, error) {
	var feedback []models.Feedback
	if err := s.db.Order("id").Find(&feedback).Error; err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return feedback, nil
}
