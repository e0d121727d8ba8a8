// internal/repository/commission_repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/redoak/realty-backend/internal/models"
)

type gormCommissionRepository struct {
	db *gorm.DB
}

func NewCommissionRepository(db *gorm.DB) CommissionRepository {
	return &gormCommissionRepository{db: db}
}

func (r *gormCommissionRepository) Create(commission *models.Commission) error {
	return r.db.Create(commission).Error
}

func (r *gormCommissionRepository) FindByID(id uuid.UUID) (*models.Commission, error) {
	var commission models.Commission
	if err := r.db.First(&commission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &commission, nil
}

func (r *gormCommissionRepository) ExistsForLead(leadID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Commission{}).Where("lead_id = ?", leadID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("database error: %w", err)
	}
	return count > 0, nil
}

func (r *gormCommissionRepository) List(status *models.CommissionStatus, limit, offset int) ([]models.Commission, int64, error) {
	query := r.db.Model(&models.Commission{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count commissions: %w", err)
	}

	var commissions []models.Commission
	if err := query.Order("transaction_date DESC").Limit(limit).Offset(offset).Find(&commissions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch commissions: %w", err)
	}

	return commissions, total, nil
}

func (r *gormCommissionRepository) ListByAgent(agentID uuid.UUID, limit, offset int) ([]models.Commission, int64, error) {
	query := r.db.Model(&models.Commission{}).Where("agent_id = ?", agentID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count commissions: %w", err)
	}

	var commissions []models.Commission
	if err := query.Order("transaction_date DESC").Limit(limit).Offset(offset).Find(&commissions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch commissions: %w", err)
	}

	return commissions, total, nil
}

func (r *gormCommissionRepository) RequestPayout(id, agentID uuid.UUID) (*models.Commission, error) {
	// Single conditional UPDATE closes the race between two concurrent
	// payout requests and a concurrent admin status change. A miss on any
	// predicate (missing record, wrong owner, not pending) is reported
	// uniformly as not found.
	result := r.db.Model(&models.Commission{}).
		Where("id = ? AND agent_id = ? AND status = ?", id, agentID, models.CommissionStatusPending).
		Update("status", models.CommissionStatusRequested)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to request payout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

func (r *gormCommissionRepository) UpdateStatus(id uuid.UUID, status models.CommissionStatus) (*models.Commission, error) {
	result := r.db.Model(&models.Commission{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update commission status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}
