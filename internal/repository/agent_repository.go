// internal/repository/agent_repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/redoak/realty-backend/internal/models"
)

type gormAgentRepository struct {
	db *gorm.DB
}

func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &gormAgentRepository{db: db}
}

func (r *gormAgentRepository) Create(agent *models.Agent) error {
	if err := r.db.Create(agent).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

func (r *gormAgentRepository) FindByID(id uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	if err := r.db.First(&agent, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &agent, nil
}

func (r *gormAgentRepository) FindBySlug(slug string) (*models.Agent, error) {
	var agent models.Agent
	if err := r.db.First(&agent, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &agent, nil
}

func (r *gormAgentRepository) FindByUserID(userID uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	if err := r.db.First(&agent, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &agent, nil
}

func (r *gormAgentRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Agent{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("database error: %w", err)
	}
	return count > 0, nil
}

func (r *gormAgentRepository) Update(agent *models.Agent) error {
	return r.db.Save(agent).Error
}
