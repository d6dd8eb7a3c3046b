package settings_test

import (
	"context"
	"testing"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSettingsRepository_Upsert(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&settings.GlobalSetting{}))

	repo := settings.NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &settings.GlobalSetting{Key: settings.KeySalaryDashboard, Value: "true", UpdatedAt: time.Now()}))
	require.NoError(t, repo.Upsert(ctx, &settings.GlobalSetting{Key: settings.KeySalaryDashboard, Value: "false", UpdatedAt: time.Now()}))

	rows, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "false", rows[0].Value)
}
