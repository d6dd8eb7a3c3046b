package user_test

import (
	"context"
	"testing"

	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&user.User{}))
	return db
}

func seedUser(t *testing.T, repo user.Repository, name, role, designation string, bh *uuid.UUID) *user.User {
	t.Helper()
	u := &user.User{
		ID:              uuid.New(),
		Name:            name,
		Email:           name + "@mail.com",
		Password:        "x",
		Role:            role,
		Designation:     designation,
		Status:          domain.UserStatusActive,
		AllocatedSalary: decimal.NewFromInt(30000),
		ReportingBhID:   bh,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := setupUserDB(t)
	repo := user.NewRepository(db)

	bh := seedUser(t, repo, "meera", domain.RoleBusinessHead, "", nil)
	cre := seedUser(t, repo, "asha", domain.RoleEmployee, "CRE", &bh.ID)
	seedUser(t, repo, "ravi", domain.RoleEmployee, "FA", &bh.ID)

	t.Run("find by id preloads reporting bh", func(t *testing.T) {
		got, err := repo.FindByID(ctx, cre.ID.String())
		require.NoError(t, err)
		require.NotNil(t, got.ReportingBh)
		assert.Equal(t, "meera", got.ReportingBh.Name)
		assert.True(t, got.AllocatedSalary.Equal(decimal.NewFromInt(30000)))
	})

	t.Run("find all filters by role and designation", func(t *testing.T) {
		users, err := repo.FindAll(ctx, user.Filter{Role: domain.RoleEmployee})
		require.NoError(t, err)
		assert.Len(t, users, 2)

		users, err = repo.FindAll(ctx, user.Filter{Designation: "CRE"})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "asha", users[0].Name)
	})

	t.Run("find by email", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, "ravi@mail.com")
		require.NoError(t, err)
		assert.Equal(t, "FA", got.Designation)

		_, err = repo.FindByEmail(ctx, "nobody@mail.com")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("update status on tx is visible after commit", func(t *testing.T) {
		sqlDB, err := db.DB()
		require.NoError(t, err)

		tx, err := sqlDB.BeginTx(ctx, nil)
		require.NoError(t, err)

		affected, err := repo.WithTx(tx).UpdateStatus(ctx, []string{cre.ID.String()}, domain.UserStatusBlocked)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		require.NoError(t, tx.Commit())

		got, err := repo.FindByID(ctx, cre.ID.String())
		require.NoError(t, err)
		assert.Equal(t, domain.UserStatusBlocked, got.Status)
	})
}
