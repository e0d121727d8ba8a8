// internal/services/commission_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/redoak/realty-backend/internal/models"
	"github.com/redoak/realty-backend/internal/repository"
	"github.com/redoak/realty-backend/internal/utils"
)

type CommissionService struct {
	commissions repository.CommissionRepository
}

func NewCommissionService(commissions repository.CommissionRepository) *CommissionService {
	return &CommissionService{commissions: commissions}
}

// RequestPayout moves a pending commission to requested on behalf of the
// acting agent. Any failed precondition, whether the commission is missing,
// owned by another agent, or no longer pending, surfaces as not-found so
// agents cannot probe for records they do not own.
func (s *CommissionService) RequestPayout(commissionID, agentID uuid.UUID) (*models.Commission, error) {
	commission, err := s.commissions.RequestPayout(commissionID, agentID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"commission_id": commission.ID,
		"agent_id":      agentID,
	}).Info("Payout requested")

	return commission, nil
}

// SetStatus is the back-office transition. It is a plain overwrite with no
// ownership check and no linearity guard; admins may move a commission to
// any status, including backward.
func (s *CommissionService) SetStatus(commissionID uuid.UUID, status models.CommissionStatus) (*models.Commission, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid commission status %q", status)
	}
	return s.commissions.UpdateStatus(commissionID, status)
}

func (s *CommissionService) GetCommission(id uuid.UUID) (*models.Commission, error) {
	return s.commissions.FindByID(id)
}

func (s *CommissionService) ListCommissions(status *models.CommissionStatus, params utils.PaginationParams) ([]models.Commission, int64, error) {
	return s.commissions.List(status, params.Limit, params.Offset())
}

func (s *CommissionService) ListAgentCommissions(agentID uuid.UUID, params utils.PaginationParams) ([]models.Commission, int64, error) {
	return s.commissions.ListByAgent(agentID, params.Limit, params.Offset())
}
