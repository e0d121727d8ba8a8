// internal/services/commission_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/redoak/realty-backend/internal/models"
	"github.com/redoak/realty-backend/internal/repository"
	"github.com/redoak/realty-backend/internal/utils"
)

type CommissionServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *CommissionService

	agent    *models.Agent
	other    *models.Agent
	property *models.Property
}

func (suite *CommissionServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.service = NewCommissionService(repository.NewCommissionRepository(suite.db))

	suite.agent = createTestAgent(suite.T(), suite.db, "Jane Smith", "jane-smith")
	suite.other = createTestAgent(suite.T(), suite.db, "John Doe", "john-doe")
	suite.property = createTestProperty(suite.T(), suite.db, &suite.agent.ID, 50_000_000)
}

func (suite *CommissionServiceTestSuite) createCommission(agentID uuid.UUID, status models.CommissionStatus) *models.Commission {
	commission := &models.Commission{
		Client:          "Walter Buyer",
		Amount:          1_500_000,
		Status:          status,
		TransactionDate: time.Now(),
		AgentID:         agentID,
		PropertyID:      suite.property.ID,
	}
	suite.Require().NoError(suite.db.Create(commission).Error)
	return commission
}

func (suite *CommissionServiceTestSuite) TestRequestPayout() {
	commission := suite.createCommission(suite.agent.ID, models.CommissionStatusPending)

	updated, err := suite.service.RequestPayout(commission.ID, suite.agent.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.CommissionStatusRequested, updated.Status)
}

func (suite *CommissionServiceTestSuite) TestRequestPayoutTwiceReportsNotFound() {
	commission := suite.createCommission(suite.agent.ID, models.CommissionStatusPending)

	_, err := suite.service.RequestPayout(commission.ID, suite.agent.ID)
	suite.Require().NoError(err)

	_, err = suite.service.RequestPayout(commission.ID, suite.agent.ID)
	assert.ErrorIs(suite.T(), err, repository.ErrNotFound)
}

func (suite *CommissionServiceTestSuite) TestRequestPayoutByNonOwnerReportsNotFound() {
	commission := suite.createCommission(suite.agent.ID, models.CommissionStatusPending)

	_, err := suite.service.RequestPayout(commission.ID, suite.other.ID)
	assert.ErrorIs(suite.T(), err, repository.ErrNotFound)

	// The record must be untouched.
	var stored models.Commission
	suite.Require().NoError(suite.db.First(&stored, "id = ?", commission.ID).Error)
	assert.Equal(suite.T(), models.CommissionStatusPending, stored.Status)
}

func (suite *CommissionServiceTestSuite) TestRequestPayoutOnNonPendingReportsNotFound() {
	commission := suite.createCommission(suite.agent.ID, models.CommissionStatusApproved)

	_, err := suite.service.RequestPayout(commission.ID, suite.agent.ID)
	assert.ErrorIs(suite.T(), err, repository.ErrNotFound)
}

func (suite *CommissionServiceTestSuite) TestSetStatusForward() {
	commission := suite.createCommission(suite.agent.ID, models.CommissionStatusRequested)

	updated, err := suite.service.SetStatus(commission.ID, models.CommissionStatusApproved)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.CommissionStatusApproved, updated.Status)
}

func (suite *CommissionServiceTestSuite) TestSetStatusAllowsBackwardTransition() {
	commission := suite.createCommission(suite.agent.ID, models.CommissionStatusPaid)

	updated, err := suite.service.SetStatus(commission.ID, models.CommissionStatusPending)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.CommissionStatusPending, updated.Status)
}

func (suite *CommissionServiceTestSuite) TestSetStatusRejectsUnknownStatus() {
	commission := suite.createCommission(suite.agent.ID, models.CommissionStatusPending)

	_, err := suite.service.SetStatus(commission.ID, models.CommissionStatus("bogus"))
	assert.Error(suite.T(), err)
}

func (suite *CommissionServiceTestSuite) TestSetStatusOnMissingCommission() {
	_, err := suite.service.SetStatus(uuid.New(), models.CommissionStatusApproved)
	assert.ErrorIs(suite.T(), err, repository.ErrNotFound)
}

func (suite *CommissionServiceTestSuite) TestListAgentCommissionsScopedToOwner() {
	suite.createCommission(suite.agent.ID, models.CommissionStatusPending)
	suite.createCommission(suite.other.ID, models.CommissionStatusPending)

	commissions, total, err := suite.service.ListAgentCommissions(suite.agent.ID, utils.PaginationParams{Page: 1, Limit: 20})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(commissions, 1)
	assert.Equal(suite.T(), suite.agent.ID, commissions[0].AgentID)
}

func TestCommissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommissionServiceTestSuite))
}
