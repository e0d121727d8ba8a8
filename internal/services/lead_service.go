// internal/services/lead_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/redoak/realty-backend/internal/models"
	"github.com/redoak/realty-backend/internal/repository"
	"github.com/redoak/realty-backend/internal/utils"
)

type LeadService struct {
	leads               repository.LeadRepository
	agents              repository.AgentRepository
	properties          repository.PropertyRepository
	commissions         repository.CommissionRepository
	resolver            *ReferralResolver
	calculator          *CommissionCalculator
	notificationService *NotificationService
}

type CreateLeadRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"max=30"`
	Message string `json:"message,omitempty"`
	Source  string `json:"source,omitempty" validate:"max=60"`

	// Attribution hints, all optional
	RealtorSlug string `json:"realtor_slug,omitempty"`
	RealtorID   string `json:"realtor_id,omitempty"`
	PropertyID  string `json:"property_id,omitempty"`
}

func NewLeadService(
	leads repository.LeadRepository,
	agents repository.AgentRepository,
	properties repository.PropertyRepository,
	commissions repository.CommissionRepository,
	resolver *ReferralResolver,
	calculator *CommissionCalculator,
	notificationService *NotificationService,
) *LeadService {
	return &LeadService{
		leads:               leads,
		agents:              agents,
		properties:          properties,
		commissions:         commissions,
		resolver:            resolver,
		calculator:          calculator,
		notificationService: notificationService,
	}
}

// CreateLead persists an inbound inquiry. Attribution is resolved exactly
// once, here; a failed resolution degrades to an unassigned lead and never
// blocks the submission.
func (s *LeadService) CreateLead(req *CreateLeadRequest) (*models.Lead, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	realtorID := s.resolver.Resolve(ReferralSubmission{
		RealtorSlug: req.RealtorSlug,
		RealtorID:   req.RealtorID,
		PropertyID:  req.PropertyID,
	})

	// Only reference a property that actually exists; a dangling reference
	// would fail the insert and block the submission.
	var propertyID *uuid.UUID
	if idStr := strings.TrimSpace(req.PropertyID); idStr != "" {
		if id, err := uuid.Parse(idStr); err == nil {
			if _, err := s.properties.FindByID(id); err == nil {
				propertyID = &id
			} else {
				logrus.WithField("property_id", idStr).WithError(err).Debug("Submitted property not found, dropping reference")
			}
		}
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		switch {
		case strings.TrimSpace(req.RealtorSlug) != "":
			source = models.LeadSourceReferralLink
		case propertyID != nil:
			source = models.LeadSourcePropertyPage
		default:
			source = models.LeadSourceWebsite
		}
	}

	lead := &models.Lead{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		Source:     source,
		Status:     models.LeadStatusNew,
		RealtorID:  realtorID,
		PropertyID: propertyID,
	}

	if err := s.leads.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	if realtorID != nil && s.notificationService != nil {
		go func() {
			if err := s.notificationService.SendNewLeadNotification(lead); err != nil {
				logrus.WithError(err).WithField("lead_id", lead.ID).Error("Failed to send new lead notification")
			}
		}()
	}

	return lead, nil
}

func (s *LeadService) GetLead(id uuid.UUID) (*models.Lead, error) {
	return s.leads.FindByID(id)
}

func (s *LeadService) ListLeads(realtorID *uuid.UUID, status *models.LeadStatus, params utils.PaginationParams) ([]models.Lead, int64, error) {
	return s.leads.List(realtorID, status, params.Limit, params.Offset())
}

// AssignLead is the admin triage action for leads the resolver left
// unassigned. Attribution is immutable once set.
func (s *LeadService) AssignLead(leadID, agentID uuid.UUID) (*models.Lead, error) {
	if _, err := s.agents.FindByID(agentID); err != nil {
		return nil, err
	}

	lead, err := s.leads.FindByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead.RealtorID != nil {
		return nil, errors.New("lead is already assigned")
	}

	return s.leads.AssignRealtor(leadID, agentID)
}

// TransitionLeadStatus updates a lead's status. The status change is the
// authoritative, user-visible action: when it lands on converted, commission
// derivation runs as a best-effort side effect that never fails or rolls
// back the transition.
func (s *LeadService) TransitionLeadStatus(leadID uuid.UUID, newStatus models.LeadStatus) (*models.Lead, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("invalid lead status %q", newStatus)
	}

	lead, err := s.leads.UpdateStatus(leadID, newStatus)
	if err != nil {
		return nil, err
	}

	if newStatus == models.LeadStatusConverted {
		s.deriveCommission(lead)
	}

	return lead, nil
}

// deriveCommission creates the commission record for a converted lead.
// Leads missing an agent or a property simply never generate revenue
// tracking; that is a silent no-op, not an error. Storage failures are
// logged and absorbed, recoverable by an administrator reconciling later.
func (s *LeadService) deriveCommission(lead *models.Lead) {
	if lead.RealtorID == nil || lead.PropertyID == nil {
		logrus.WithFields(logrus.Fields{
			"lead_id":      lead.ID,
			"has_realtor":  lead.RealtorID != nil,
			"has_property": lead.PropertyID != nil,
		}).Info("Converted lead has no agent or property, skipping commission")
		return
	}

	exists, err := s.commissions.ExistsForLead(lead.ID)
	if err != nil {
		logrus.WithError(err).WithField("lead_id", lead.ID).Error("Failed to check existing commission")
		return
	}
	if exists {
		logrus.WithField("lead_id", lead.ID).Info("Commission already exists for lead, skipping")
		return
	}

	property, err := s.properties.FindByID(*lead.PropertyID)
	if err != nil {
		logrus.WithError(err).WithField("lead_id", lead.ID).Error("Failed to load property for commission")
		return
	}

	commission := &models.Commission{
		Client:          lead.Name,
		Amount:          s.calculator.Calculate(property),
		Status:          models.CommissionStatusPending,
		TransactionDate: time.Now(),
		Notes:           fmt.Sprintf("auto-generated from lead conversion, source=%s", lead.Source),
		AgentID:         *lead.RealtorID,
		PropertyID:      *lead.PropertyID,
		LeadID:          &lead.ID,
	}

	if err := s.commissions.Create(commission); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"lead_id":  lead.ID,
			"agent_id": *lead.RealtorID,
		}).Error("Failed to create commission for converted lead")
		return
	}

	logrus.WithFields(logrus.Fields{
		"lead_id":       lead.ID,
		"commission_id": commission.ID,
		"amount":        commission.Amount,
	}).Info("Commission created from lead conversion")

	if s.notificationService != nil {
		go func() {
			if err := s.notificationService.SendCommissionCreatedNotification(commission); err != nil {
				logrus.WithError(err).WithField("commission_id", commission.ID).Error("Failed to send commission notification")
			}
		}()
	}
}
