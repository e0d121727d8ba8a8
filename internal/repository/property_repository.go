// internal/repository/property_repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/redoak/realty-backend/internal/models"
)

type gormPropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &gormPropertyRepository{db: db}
}

func (r *gormPropertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

func (r *gormPropertyRepository) FindByID(id uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := r.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &property, nil
}

func (r *gormPropertyRepository) List(agentID *uuid.UUID, limit, offset int) ([]models.Property, int64, error) {
	query := r.db.Model(&models.Property{})
	if agentID != nil {
		query = query.Where("agent_id = ?", *agentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	var properties []models.Property
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&properties).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch properties: %w", err)
	}

	return properties, total, nil
}

func (r *gormPropertyRepository) Update(property *models.Property) error {
	return r.db.Save(property).Error
}
