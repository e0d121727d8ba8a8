// internal/repository/lead_repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/redoak/realty-backend/internal/models"
)

type gormLeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &gormLeadRepository{db: db}
}

func (r *gormLeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

func (r *gormLeadRepository) FindByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &lead, nil
}

func (r *gormLeadRepository) List(realtorID *uuid.UUID, status *models.LeadStatus, limit, offset int) ([]models.Lead, int64, error) {
	query := r.db.Model(&models.Lead{})
	if realtorID != nil {
		query = query.Where("realtor_id = ?", *realtorID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	var leads []models.Lead
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch leads: %w", err)
	}

	return leads, total, nil
}

func (r *gormLeadRepository) UpdateStatus(id uuid.UUID, status models.LeadStatus) (*models.Lead, error) {
	result := r.db.Model(&models.Lead{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update lead status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

func (r *gormLeadRepository) AssignRealtor(id, agentID uuid.UUID) (*models.Lead, error) {
	// Conditional update: attribution happens exactly once.
	result := r.db.Model(&models.Lead{}).
		Where("id = ? AND realtor_id IS NULL", id).
		Update("realtor_id", agentID)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to assign realtor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}
