// internal/services/agent_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/redoak/realty-backend/internal/config"
	"github.com/redoak/realty-backend/internal/models"
	"github.com/redoak/realty-backend/internal/repository"
	"github.com/redoak/realty-backend/internal/utils"
)

type AgentService struct {
	agents          repository.AgentRepository
	maxSlugAttempts int
}

type CreateAgentRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=120"`
	Phone       string `json:"phone,omitempty" validate:"max=30"`
	Agency      string `json:"agency,omitempty" validate:"max=120"`
}

type UpdateBankDetailsRequest struct {
	BankName          string `json:"bank_name" validate:"required,max=120"`
	BankAccountName   string `json:"bank_account_name" validate:"required,max=120"`
	BankAccountNumber string `json:"bank_account_number" validate:"required,max=60"`
}

func NewAgentService(agents repository.AgentRepository, cfg config.CommissionConfig) *AgentService {
	return &AgentService{
		agents:          agents,
		maxSlugAttempts: cfg.MaxSlugAttempts,
	}
}

// CreateAgent creates a realtor profile with a freshly generated slug.
// Slug generation is probe-then-insert and therefore racy under concurrent
// creation of similarly named agents; a uniqueness violation on insert is
// expected and retried with a regenerated slug, a bounded number of times.
func (s *AgentService) CreateAgent(userID uuid.UUID, req *CreateAgentRequest) (*models.Agent, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// One profile per account
	if _, err := s.agents.FindByUserID(userID); err == nil {
		return nil, errors.New("agent profile already exists for this user")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	for attempt := 1; attempt <= s.maxSlugAttempts; attempt++ {
		slug, err := s.GenerateAgentSlug(req.DisplayName)
		if err != nil {
			return nil, err
		}

		agent := &models.Agent{
			UserID:      userID,
			Slug:        slug,
			DisplayName: req.DisplayName,
			Phone:       req.Phone,
			Agency:      req.Agency,
		}

		err = s.agents.Create(agent)
		if err == nil {
			return agent, nil
		}
		if !errors.Is(err, repository.ErrDuplicateKey) {
			return nil, err
		}

		// A concurrent creation took the candidate between the probe and
		// the insert; regenerate and try again.
		logrus.WithFields(logrus.Fields{
			"slug":    slug,
			"attempt": attempt,
		}).Warn("Agent slug conflicted on insert, retrying")
	}

	return nil, fmt.Errorf("could not allocate a unique slug after %d attempts", s.maxSlugAttempts)
}

// GenerateAgentSlug derives the next unused slug for a display name. The
// result is only probabilistically unique; the insert may still conflict.
func (s *AgentService) GenerateAgentSlug(displayName string) (string, error) {
	return utils.GenerateUniqueSlug(displayName, s.agents.SlugExists)
}

func (s *AgentService) GetAgent(id uuid.UUID) (*models.Agent, error) {
	return s.agents.FindByID(id)
}

// GetAgentBySlug backs the public referral landing page.
func (s *AgentService) GetAgentBySlug(slug string) (*models.Agent, error) {
	return s.agents.FindBySlug(slug)
}

func (s *AgentService) GetAgentByUserID(userID uuid.UUID) (*models.Agent, error) {
	return s.agents.FindByUserID(userID)
}

func (s *AgentService) UpdateBankDetails(userID uuid.UUID, req *UpdateBankDetailsRequest) (*models.Agent, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	agent, err := s.agents.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	agent.BankName = req.BankName
	agent.BankAccountName = req.BankAccountName
	agent.BankAccountNumber = req.BankAccountNumber

	if err := s.agents.Update(agent); err != nil {
		return nil, fmt.Errorf("failed to update bank details: %w", err)
	}

	return agent, nil
}
