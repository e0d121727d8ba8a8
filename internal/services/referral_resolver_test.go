// internal/services/referral_resolver_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/redoak/realty-backend/internal/models"
	"github.com/redoak/realty-backend/internal/repository"
)

type ReferralResolverTestSuite struct {
	suite.Suite
	db       *gorm.DB
	resolver *ReferralResolver

	jane     *models.Agent
	john     *models.Agent
	owner    *models.Agent
	property *models.Property
}

func (suite *ReferralResolverTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.resolver = NewReferralResolver(
		repository.NewAgentRepository(suite.db),
		repository.NewPropertyRepository(suite.db),
	)

	suite.jane = createTestAgent(suite.T(), suite.db, "Jane Smith", "jane-smith")
	suite.john = createTestAgent(suite.T(), suite.db, "John Doe", "john-doe")
	suite.owner = createTestAgent(suite.T(), suite.db, "Olivia Owner", "olivia-owner")
	suite.property = createTestProperty(suite.T(), suite.db, &suite.owner.ID, 50_000_000)
}

func (suite *ReferralResolverTestSuite) TestSlugBeatsDirectID() {
	got := suite.resolver.Resolve(ReferralSubmission{
		RealtorSlug: "jane-smith",
		RealtorID:   suite.john.ID.String(),
	})

	suite.Require().NotNil(got)
	assert.Equal(suite.T(), suite.jane.ID, *got)
}

func (suite *ReferralResolverTestSuite) TestSlugMissFallsThroughToDirectID() {
	got := suite.resolver.Resolve(ReferralSubmission{
		RealtorSlug: "no-such-agent",
		RealtorID:   suite.john.ID.String(),
	})

	suite.Require().NotNil(got)
	assert.Equal(suite.T(), suite.john.ID, *got)
}

func (suite *ReferralResolverTestSuite) TestBlankRealtorIDTreatedAsAbsent() {
	got := suite.resolver.Resolve(ReferralSubmission{RealtorID: "   "})

	assert.Nil(suite.T(), got)
}

func (suite *ReferralResolverTestSuite) TestMalformedRealtorIDFallsThroughToProperty() {
	got := suite.resolver.Resolve(ReferralSubmission{
		RealtorID:  "not-a-uuid",
		PropertyID: suite.property.ID.String(),
	})

	suite.Require().NotNil(got)
	assert.Equal(suite.T(), suite.owner.ID, *got)
}

func (suite *ReferralResolverTestSuite) TestPropertyOwnerTier() {
	got := suite.resolver.Resolve(ReferralSubmission{
		PropertyID: suite.property.ID.String(),
	})

	suite.Require().NotNil(got)
	assert.Equal(suite.T(), suite.owner.ID, *got)
}

func (suite *ReferralResolverTestSuite) TestUnknownRealtorIDFallsThroughToProperty() {
	got := suite.resolver.Resolve(ReferralSubmission{
		RealtorID:  uuid.New().String(),
		PropertyID: suite.property.ID.String(),
	})

	suite.Require().NotNil(got)
	assert.Equal(suite.T(), suite.owner.ID, *got)
}

func (suite *ReferralResolverTestSuite) TestOwnerlessPropertyYieldsUnassigned() {
	orphan := createTestProperty(suite.T(), suite.db, nil, 10_000_000)

	got := suite.resolver.Resolve(ReferralSubmission{PropertyID: orphan.ID.String()})

	assert.Nil(suite.T(), got)
}

func (suite *ReferralResolverTestSuite) TestNoHintsYieldsUnassigned() {
	got := suite.resolver.Resolve(ReferralSubmission{})

	assert.Nil(suite.T(), got)
}

func TestReferralResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ReferralResolverTestSuite))
}
