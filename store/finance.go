package store

import (
	"fmt"

	"goldentouch-backend/models"
)

func (s *Store) CreateExpense(expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID("expenses", &models.Expense{})
	if err != nil {
		return err
	}
	expense.ID = id
	if err := s.db.Create(expense).Error; err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

func (s *Store) DeleteExpense(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.db.Delete(&models.Expense{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("expense %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) ListExpenses() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Order("id").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

func (s *Store) CreateRevenue(revenue *models.Revenue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID("revenues", &models.Revenue{})
	if err != nil {
		return err
	}
	revenue.ID = id
	if err := s.db.Create(revenue).Error; err != nil {
		return fmt.Errorf("create revenue: %w", err)
	}
	return nil
}

func (s *Store) DeleteRevenue(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.db.Delete(&models.Revenue{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete revenue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("revenue %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) ListRevenues() ([]models.Revenue, error) {
	var revenues []models.Revenue
	if err := s.db.Order("id").Find(&revenues).Error; err != nil {
		return nil, fmt.Errorf("list revenues: %w", err)
	}
	return revenues, nil
}
