// internal/repository/repository.go
package repository

import (
	"errors"

	"github.com/google/uuid"

	"github.com/redoak/realty-backend/internal/models"
)

// ErrNotFound is returned when a referenced record does not exist. For the
// ownership-gated commission lookups it also covers "exists but not owned
// by the caller", so callers cannot probe for other agents' records.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateKey is returned when an insert violates a uniqueness
// constraint. Slug generation treats it as retryable.
var ErrDuplicateKey = errors.New("duplicate key")

type AgentRepository interface {
	Create(agent *models.Agent) error
	FindByID(id uuid.UUID) (*models.Agent, error)
	FindBySlug(slug string) (*models.Agent, error)
	FindByUserID(userID uuid.UUID) (*models.Agent, error)
	SlugExists(slug string) (bool, error)
	Update(agent *models.Agent) error
}

type PropertyRepository interface {
	Create(property *models.Property) error
	FindByID(id uuid.UUID) (*models.Property, error)
	List(agentID *uuid.UUID, limit, offset int) ([]models.Property, int64, error)
	Update(property *models.Property) error
}

type LeadRepository interface {
	Create(lead *models.Lead) error
	FindByID(id uuid.UUID) (*models.Lead, error)
	List(realtorID *uuid.UUID, status *models.LeadStatus, limit, offset int) ([]models.Lead, int64, error)
	UpdateStatus(id uuid.UUID, status models.LeadStatus) (*models.Lead, error)
	// AssignRealtor sets the realtor on an unassigned lead only; attribution
	// is never overwritten once set.
	AssignRealtor(id, agentID uuid.UUID) (*models.Lead, error)
}

type CommissionRepository interface {
	Create(commission *models.Commission) error
	FindByID(id uuid.UUID) (*models.Commission, error)
	ExistsForLead(leadID uuid.UUID) (bool, error)
	List(status *models.CommissionStatus, limit, offset int) ([]models.Commission, int64, error)
	ListByAgent(agentID uuid.UUID, limit, offset int) ([]models.Commission, int64, error)
	// RequestPayout atomically moves a pending commission owned by agentID
	// to requested. Returns ErrNotFound when no such row matches.
	RequestPayout(id, agentID uuid.UUID) (*models.Commission, error)
	UpdateStatus(id uuid.UUID, status models.CommissionStatus) (*models.Commission, error)
}
