// internal/repository/agent_repository_test.go
package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/redoak/realty-backend/internal/models"
)

// setupTestDB opens a named shared-cache in-memory database per test so
// every pooled connection sees the same schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Agent{},
		&models.Property{},
		&models.Lead{},
		&models.Commission{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		UserType: models.UserTypeRealtor,
		Status:   models.UserStatusActive,
	}
	require.NoError(t, user.SetPassword("TestPass123!"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestAgentCreateTranslatesDuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAgentRepository(db)

	first := seedUser(t, db, "jane1")
	second := seedUser(t, db, "jane2")

	require.NoError(t, repo.Create(&models.Agent{
		UserID:      first.ID,
		Slug:        "jane-smith",
		DisplayName: "Jane Smith",
	}))

	err := repo.Create(&models.Agent{
		UserID:      second.ID,
		Slug:        "jane-smith",
		DisplayName: "Jane Smith",
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestAgentSlugExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAgentRepository(db)

	user := seedUser(t, db, "jane")
	require.NoError(t, repo.Create(&models.Agent{
		UserID:      user.ID,
		Slug:        "jane-smith",
		DisplayName: "Jane Smith",
	}))

	taken, err := repo.SlugExists("jane-smith")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.SlugExists("jane-smith-1")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestAgentFindByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAgentRepository(db)

	_, err := repo.FindByID(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeadAssignRealtorOnlyOnce(t *testing.T) {
	db := setupTestDB(t)
	agents := NewAgentRepository(db)
	leads := NewLeadRepository(db)

	user := seedUser(t, db, "jane")
	agent := &models.Agent{UserID: user.ID, Slug: "jane-smith", DisplayName: "Jane Smith"}
	require.NoError(t, agents.Create(agent))

	otherUser := seedUser(t, db, "john")
	other := &models.Agent{UserID: otherUser.ID, Slug: "john-doe", DisplayName: "John Doe"}
	require.NoError(t, agents.Create(other))

	lead := &models.Lead{
		Name:   "Walter Buyer",
		Email:  "walter@example.com",
		Source: models.LeadSourceWebsite,
		Status: models.LeadStatusNew,
	}
	require.NoError(t, leads.Create(lead))

	assigned, err := leads.AssignRealtor(lead.ID, agent.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.RealtorID)
	assert.Equal(t, agent.ID, *assigned.RealtorID)

	_, err = leads.AssignRealtor(lead.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
