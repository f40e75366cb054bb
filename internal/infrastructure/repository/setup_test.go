package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	vo "github.com/orris-inc/complaintdesk/internal/domain/complaint/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/project"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(name, name+"@example.com", role)
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedProject(t *testing.T, db *gorm.DB, teamID *uint) *project.Project {
	t.Helper()
	p, err := project.NewProject("Storefront", teamID)
	require.NoError(t, err)
	require.NoError(t, NewProjectRepository(db).Create(context.Background(), p))
	return p
}

func seedComplaint(t *testing.T, db *gorm.DB, clientID, projectID uint) *complaint.Complaint {
	t.Helper()
	c, err := complaint.NewComplaint("Checkout broken", "The pay button does nothing", vo.CategoryBug, vo.PriorityHigh, clientID, projectID)
	require.NoError(t, err)
	require.NoError(t, NewComplaintRepository(db, logger.NewNop()).Create(context.Background(), c))
	return c
}

func ts(minutes int) time.Time {
	return time.Date(2026, 4, 1, 9, minutes, 0, 0, time.UTC)
}
