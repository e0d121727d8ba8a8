// internal/services/testdb_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/redoak/realty-backend/internal/models"
)

// setupTestDB opens a fresh in-memory database per test. The database is
// named and opened with a shared cache so every pooled connection sees the
// same schema rather than its own empty memory database. TranslateError
// must stay on: the agent slug retry path matches on translated duplicate
// key errors, the same way the production Postgres connection is configured.
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

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
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

func createTestAgent(t *testing.T, db *gorm.DB, displayName, slug string) *models.Agent {
	t.Helper()

	user := createTestUser(t, db, slug)
	agent := &models.Agent{
		UserID:      user.ID,
		Slug:        slug,
		DisplayName: displayName,
	}
	require.NoError(t, db.Create(agent).Error)
	return agent
}

func createTestProperty(t *testing.T, db *gorm.DB, agentID *uuid.UUID, price int64) *models.Property {
	t.Helper()

	property := &models.Property{
		Title:   "Test Property",
		City:    "Springfield",
		Price:   price,
		Status:  models.PropertyStatusListed,
		AgentID: agentID,
	}
	require.NoError(t, db.Create(property).Error)
	return property
}
