// internal/services/property_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/redoak/realty-backend/internal/models"
	"github.com/redoak/realty-backend/internal/repository"
	"github.com/redoak/realty-backend/internal/utils"
)

type PropertyService struct {
	properties repository.PropertyRepository
	agents     repository.AgentRepository
}

type CreatePropertyRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address,omitempty" validate:"max=255"`
	City        string  `json:"city,omitempty" validate:"max=100"`
	Price       int64   `json:"price" validate:"required,gt=0"`
	Bedrooms    int     `json:"bedrooms,omitempty" validate:"min=0"`
	Bathrooms   int     `json:"bathrooms,omitempty" validate:"min=0"`
	AreaSqm     float64 `json:"area_sqm,omitempty" validate:"min=0"`

	// Commission policy, optional; platform defaults apply when absent.
	CommissionRate *float64               `json:"commission_rate,omitempty" validate:"omitempty,gt=0"`
	CommissionType *models.CommissionType `json:"commission_type,omitempty"`
}

func NewPropertyService(properties repository.PropertyRepository, agents repository.AgentRepository) *PropertyService {
	return &PropertyService{
		properties: properties,
		agents:     agents,
	}
}

// CreateProperty lists a property, optionally owned by the agent profile of
// the creating user.
func (s *PropertyService) CreateProperty(ownerAgentID *uuid.UUID, req *CreatePropertyRequest) (*models.Property, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.CommissionType != nil &&
		*req.CommissionType != models.CommissionTypePercentage &&
		*req.CommissionType != models.CommissionTypeFixed {
		return nil, errors.New("invalid commission type")
	}

	if ownerAgentID != nil {
		if _, err := s.agents.FindByID(*ownerAgentID); err != nil {
			return nil, err
		}
	}

	property := &models.Property{
		Title:          req.Title,
		Description:    req.Description,
		Address:        req.Address,
		City:           req.City,
		Price:          req.Price,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		AreaSqm:        req.AreaSqm,
		Status:         models.PropertyStatusListed,
		CommissionRate: req.CommissionRate,
		CommissionType: req.CommissionType,
		AgentID:        ownerAgentID,
	}

	if err := s.properties.Create(property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return property, nil
}

func (s *PropertyService) GetProperty(id uuid.UUID) (*models.Property, error) {
	return s.properties.FindByID(id)
}

func (s *PropertyService) ListProperties(agentID *uuid.UUID, params utils.PaginationParams) ([]models.Property, int64, error) {
	return s.properties.List(agentID, params.Limit, params.Offset())
}

// AddImage appends an uploaded image URL to the property's gallery.
func (s *PropertyService) AddImage(id uuid.UUID, imageURL string) (*models.Property, error) {
	property, err := s.properties.FindByID(id)
	if err != nil {
		return nil, err
	}

	property.Images = append(property.Images, imageURL)
	if err := s.properties.Update(property); err != nil {
		return nil, fmt.Errorf("failed to update property images: %w", err)
	}

	return property, nil
}
