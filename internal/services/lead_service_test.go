// internal/services/lead_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/redoak/realty-backend/internal/config"
	"github.com/redoak/realty-backend/internal/models"
	"github.com/redoak/realty-backend/internal/repository"
)

type LeadServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *LeadService

	agent    *models.Agent
	property *models.Property
}

func (suite *LeadServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())

	agents := repository.NewAgentRepository(suite.db)
	properties := repository.NewPropertyRepository(suite.db)
	leads := repository.NewLeadRepository(suite.db)
	commissions := repository.NewCommissionRepository(suite.db)

	suite.service = NewLeadService(
		leads,
		agents,
		properties,
		commissions,
		NewReferralResolver(agents, properties),
		NewCommissionCalculator(config.CommissionConfig{DefaultRate: 3.0}),
		nil,
	)

	suite.agent = createTestAgent(suite.T(), suite.db, "Jane Smith", "jane-smith")
	suite.property = createTestProperty(suite.T(), suite.db, &suite.agent.ID, 50_000_000)
}

func (suite *LeadServiceTestSuite) createLead(realtorID, propertyID *uuid.UUID) *models.Lead {
	lead := &models.Lead{
		Name:       "Walter Buyer",
		Email:      "walter@example.com",
		Source:     models.LeadSourceWebsite,
		Status:     models.LeadStatusNew,
		RealtorID:  realtorID,
		PropertyID: propertyID,
	}
	suite.Require().NoError(suite.db.Create(lead).Error)
	return lead
}

func (suite *LeadServiceTestSuite) commissionCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&models.Commission{}).Count(&count).Error)
	return count
}

func (suite *LeadServiceTestSuite) TestCreateLeadWithReferralSlug() {
	lead, err := suite.service.CreateLead(&CreateLeadRequest{
		Name:        "Walter Buyer",
		Email:       "walter@example.com",
		RealtorSlug: "jane-smith",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(lead.RealtorID)
	assert.Equal(suite.T(), suite.agent.ID, *lead.RealtorID)
	assert.Equal(suite.T(), models.LeadSourceReferralLink, lead.Source)
	assert.Equal(suite.T(), models.LeadStatusNew, lead.Status)
}

func (suite *LeadServiceTestSuite) TestCreateLeadWithoutHintsStaysUnassigned() {
	lead, err := suite.service.CreateLead(&CreateLeadRequest{
		Name:  "Walter Buyer",
		Email: "walter@example.com",
	})

	suite.Require().NoError(err)
	assert.Nil(suite.T(), lead.RealtorID)
	assert.Equal(suite.T(), models.LeadSourceWebsite, lead.Source)
}

func (suite *LeadServiceTestSuite) TestCreateLeadFromPropertyPage() {
	lead, err := suite.service.CreateLead(&CreateLeadRequest{
		Name:       "Walter Buyer",
		Email:      "walter@example.com",
		PropertyID: suite.property.ID.String(),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(lead.PropertyID)
	assert.Equal(suite.T(), suite.property.ID, *lead.PropertyID)
	suite.Require().NotNil(lead.RealtorID)
	assert.Equal(suite.T(), suite.agent.ID, *lead.RealtorID)
	assert.Equal(suite.T(), models.LeadSourcePropertyPage, lead.Source)
}

func (suite *LeadServiceTestSuite) TestCreateLeadDropsDeadPropertyReference() {
	// A well-formed id pointing at no property must not block the
	// submission or leave a dangling reference on the lead.
	lead, err := suite.service.CreateLead(&CreateLeadRequest{
		Name:       "Walter Buyer",
		Email:      "walter@example.com",
		PropertyID: uuid.New().String(),
	})

	suite.Require().NoError(err)
	assert.Nil(suite.T(), lead.PropertyID)
	assert.Nil(suite.T(), lead.RealtorID)
	assert.Equal(suite.T(), models.LeadSourceWebsite, lead.Source)
}

func (suite *LeadServiceTestSuite) TestCreateLeadRejectsInvalidEmail() {
	_, err := suite.service.CreateLead(&CreateLeadRequest{
		Name:  "Walter Buyer",
		Email: "not-an-email",
	})

	assert.Error(suite.T(), err)
}

func (suite *LeadServiceTestSuite) TestConversionCreatesCommission() {
	lead := suite.createLead(&suite.agent.ID, &suite.property.ID)

	updated, err := suite.service.TransitionLeadStatus(lead.ID, models.LeadStatusConverted)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.LeadStatusConverted, updated.Status)

	var commission models.Commission
	suite.Require().NoError(suite.db.First(&commission, "lead_id = ?", lead.ID).Error)
	assert.Equal(suite.T(), "Walter Buyer", commission.Client)
	assert.Equal(suite.T(), int64(1_500_000), commission.Amount)
	assert.Equal(suite.T(), models.CommissionStatusPending, commission.Status)
	assert.Equal(suite.T(), suite.agent.ID, commission.AgentID)
	assert.Equal(suite.T(), suite.property.ID, commission.PropertyID)
	assert.Contains(suite.T(), commission.Notes, "source=website")
}

func (suite *LeadServiceTestSuite) TestConversionWithoutPropertySkipsCommission() {
	lead := suite.createLead(&suite.agent.ID, nil)

	updated, err := suite.service.TransitionLeadStatus(lead.ID, models.LeadStatusConverted)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.LeadStatusConverted, updated.Status)
	assert.Equal(suite.T(), int64(0), suite.commissionCount())
}

func (suite *LeadServiceTestSuite) TestConversionWithoutAgentSkipsCommission() {
	lead := suite.createLead(nil, &suite.property.ID)

	_, err := suite.service.TransitionLeadStatus(lead.ID, models.LeadStatusConverted)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(0), suite.commissionCount())
}

func (suite *LeadServiceTestSuite) TestRepeatedConversionCreatesOneCommission() {
	lead := suite.createLead(&suite.agent.ID, &suite.property.ID)

	_, err := suite.service.TransitionLeadStatus(lead.ID, models.LeadStatusConverted)
	suite.Require().NoError(err)
	_, err = suite.service.TransitionLeadStatus(lead.ID, models.LeadStatusContacted)
	suite.Require().NoError(err)
	_, err = suite.service.TransitionLeadStatus(lead.ID, models.LeadStatusConverted)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), int64(1), suite.commissionCount())
}

func (suite *LeadServiceTestSuite) TestCommissionFailureDoesNotBlockTransition() {
	lead := suite.createLead(&suite.agent.ID, &suite.property.ID)

	// Make commission storage unavailable; the status change must still land.
	suite.Require().NoError(suite.db.Migrator().DropTable(&models.Commission{}))

	updated, err := suite.service.TransitionLeadStatus(lead.ID, models.LeadStatusConverted)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.LeadStatusConverted, updated.Status)
}

func (suite *LeadServiceTestSuite) TestTransitionRejectsUnknownStatus() {
	lead := suite.createLead(nil, nil)

	_, err := suite.service.TransitionLeadStatus(lead.ID, models.LeadStatus("bogus"))
	assert.Error(suite.T(), err)
}

func (suite *LeadServiceTestSuite) TestAssignLead() {
	lead := suite.createLead(nil, nil)

	updated, err := suite.service.AssignLead(lead.ID, suite.agent.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(updated.RealtorID)
	assert.Equal(suite.T(), suite.agent.ID, *updated.RealtorID)
}

func (suite *LeadServiceTestSuite) TestAssignLeadNeverOverwritesAttribution() {
	other := createTestAgent(suite.T(), suite.db, "John Doe", "john-doe")
	lead := suite.createLead(&suite.agent.ID, nil)

	_, err := suite.service.AssignLead(lead.ID, other.ID)
	suite.Require().Error(err)

	var stored models.Lead
	suite.Require().NoError(suite.db.First(&stored, "id = ?", lead.ID).Error)
	suite.Require().NotNil(stored.RealtorID)
	assert.Equal(suite.T(), suite.agent.ID, *stored.RealtorID)
}

func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}
