package payroll_test

import (
	"context"
	"errors"
	"testing"

	"github.com/code-hero23/peopledesk-sub002/internal/payroll"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPayrollDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&payroll.ManualPayroll{}))
	return db
}

func manualRow(email string, month, year int, net int64) *payroll.ManualPayroll {
	return &payroll.ManualPayroll{
		ID:              uuid.New(),
		Email:           email,
		Month:           month,
		Year:            year,
		AllocatedSalary: decimal.NewFromInt(30000),
		NetPayout:       decimal.NewFromInt(net),
	}
}

func TestPayrollRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := payroll.NewRepository(setupPayrollDB(t))

	require.NoError(t, repo.Upsert(ctx, manualRow(" Meera@PeopleDesk.test ", 3, 2026, 25000)))

	got, err := repo.FindByEmailAndPeriod(ctx, "meera@peopledesk.test", 3, 2026)
	require.NoError(t, err)
	assert.Equal(t, "meera@peopledesk.test", got.Email)
	assert.True(t, got.NetPayout.Equal(decimal.NewFromInt(25000)))

	t.Run("same period overwrites", func(t *testing.T) {
		actor := uuid.New()
		row := manualRow("meera@peopledesk.test", 3, 2026, 27000)
		row.ImportedBy = &actor
		require.NoError(t, repo.Upsert(ctx, row))

		got, err := repo.FindByEmailAndPeriod(ctx, "MEERA@peopledesk.test", 3, 2026)
		require.NoError(t, err)
		assert.True(t, got.NetPayout.Equal(decimal.NewFromInt(27000)))
		require.NotNil(t, got.ImportedBy)
		assert.Equal(t, actor, *got.ImportedBy)

		rows, err := repo.FindByPeriod(ctx, 3, 2026)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("other period is a new row", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, manualRow("meera@peopledesk.test", 4, 2026, 26000)))

		rows, err := repo.FindByPeriod(ctx, 4, 2026)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 4, rows[0].Month)
	})

	t.Run("month out of range", func(t *testing.T) {
		assert.Error(t, repo.Upsert(ctx, manualRow("arun@peopledesk.test", 13, 2026, 1000)))
	})
}

func TestPayrollRepository_Queries(t *testing.T) {
	ctx := context.Background()
	repo := payroll.NewRepository(setupPayrollDB(t))

	require.NoError(t, repo.Upsert(ctx, manualRow("zara@peopledesk.test", 5, 2026, 1)))
	require.NoError(t, repo.Upsert(ctx, manualRow("arun@peopledesk.test", 5, 2026, 2)))
	require.NoError(t, repo.Upsert(ctx, manualRow("arun@peopledesk.test", 6, 2026, 3)))

	t.Run("by period ordered by email", func(t *testing.T) {
		rows, err := repo.FindByPeriod(ctx, 5, 2026)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "arun@peopledesk.test", rows[0].Email)
		assert.Equal(t, "zara@peopledesk.test", rows[1].Email)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByEmailAndPeriod(ctx, "zara@peopledesk.test", 6, 2026)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})

	t.Run("empty period", func(t *testing.T) {
		rows, err := repo.FindByPeriod(ctx, 1, 2020)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
