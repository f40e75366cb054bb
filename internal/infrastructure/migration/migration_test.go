package migration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/complaintdesk/internal/shared/constants"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "migrate.db")+"?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	db := openSQLite(t)
	strategy, err := NewGooseStrategy(DialectSQLite3, logger.NewNop())
	require.NoError(t, err)

	require.NoError(t, NewManager(strategy, logger.NewNop()).Migrate(db))

	version, err := strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	for _, table := range []string{
		constants.TableUsers,
		constants.TableComplaints,
		constants.TableComplaintHistory,
		constants.TableNotifications,
		constants.TableOutboxEvents,
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// Running again is a no-op.
	require.NoError(t, strategy.Migrate(db))

	require.NoError(t, strategy.MigrateDown(db, 1))
	version, err = strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
	assert.False(t, db.Migrator().HasTable(constants.TableComplaints))
}

func TestGooseStrategy_SchemaMatchesModels(t *testing.T) {
	db := openSQLite(t)
	strategy, err := NewGooseStrategy(DialectSQLite3, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, strategy.Migrate(db))

	for _, m := range models.All() {
		stmt := &gorm.Statement{DB: db}
		require.NoError(t, stmt.Parse(m))
		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" {
				continue
			}
			assert.True(t, db.Migrator().HasColumn(m, field.DBName), "%s.%s", stmt.Schema.Table, field.DBName)
		}
	}
}

func TestNewGooseStrategy_RejectsUnknownDialect(t *testing.T) {
	_, err := NewGooseStrategy("postgres", logger.NewNop())
	assert.Error(t, err)
}

func TestDialectFor(t *testing.T) {
	assert.Equal(t, DialectSQLite3, DialectFor("sqlite"))
	assert.Equal(t, DialectMySQL, DialectFor("mysql"))
	assert.Equal(t, DialectMySQL, DialectFor(""))
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	db := openSQLite(t)
	strategy := NewGormAutoMigrateStrategy(logger.NewNop(), models.All()...)
	require.NoError(t, strategy.Migrate(db))
	assert.True(t, db.Migrator().HasTable(constants.TableTeamMembers))
	assert.Equal(t, "gorm_auto_migrate", strategy.GetName())
}
