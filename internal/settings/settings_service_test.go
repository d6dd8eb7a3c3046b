package settings_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/settings"
	settingserrors "github.com/code-hero23/peopledesk-sub002/internal/settings/errors"
	mock_settings "github.com/code-hero23/peopledesk-sub002/internal/settings/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type settingsDeps struct {
	svc         settings.Service
	repo        *mock_settings.MockRepository
	invalidator *mock_settings.MockSummaryInvalidator
	redis       redismock.ClientMock
}

func setupSettings(t *testing.T) settingsDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	t.Cleanup(func() { assert.NoError(t, redisMock.ExpectationsWereMet()) })

	d := settingsDeps{
		repo:        mock_settings.NewMockRepository(ctrl),
		invalidator: mock_settings.NewMockSummaryInvalidator(ctrl),
		redis:       redisMock,
	}
	d.svc = settings.NewService(d.repo, rdb, d.invalidator)
	return d
}

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		d := setupSettings(t)
		cached, _ := json.Marshal(settings.Settings{PayrollMode: settings.ModeManual, SalaryDashboardEnabled: true})
		d.redis.ExpectGet(settings.CacheKey).SetVal(string(cached))

		got, err := d.svc.Get(ctx)
		require.NoError(t, err)
		assert.True(t, got.IsManual())
		assert.False(t, got.ShortageDeductionEnabled)
	})

	t.Run("cache miss loads and applies defaults", func(t *testing.T) {
		d := setupSettings(t)
		want := settings.Settings{PayrollMode: settings.ModeAuto, ShortageDeductionEnabled: false, SalaryDashboardEnabled: true}
		data, _ := json.Marshal(want)

		d.redis.ExpectGet(settings.CacheKey).RedisNil()
		d.repo.EXPECT().FindAll(gomock.Any()).Return([]settings.GlobalSetting{
			{Key: settings.KeyGlobalShortageDeduction, Value: "false"},
			{Key: settings.KeyPayrollCalculationMode, Value: "bogus"},
		}, nil)
		d.redis.ExpectSet(settings.CacheKey, data, 10*time.Minute).SetVal("OK")

		got, err := d.svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("negative repository failure", func(t *testing.T) {
		d := setupSettings(t)
		d.redis.ExpectGet(settings.CacheKey).SetErr(redis.ErrClosed)
		d.repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := d.svc.Get(ctx)
		assert.Error(t, err)
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes value and invalidates caches", func(t *testing.T) {
		d := setupSettings(t)
		d.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *settings.GlobalSetting) error {
				assert.Equal(t, "MANUAL", s.Value)
				assert.NotNil(t, s.UpdatedBy)
				return nil
			})
		d.redis.ExpectDel(settings.CacheKey).SetVal(1)
		d.invalidator.EXPECT().InvalidateAll(gomock.Any()).Return(nil)

		res, err := d.svc.Update(ctx, "8b0f1a9e-8f57-4a4c-9a55-1f1f7a0d9c11", settings.KeyPayrollCalculationMode, " manual ")
		require.NoError(t, err)
		assert.Equal(t, "MANUAL", res.Value)
	})

	t.Run("negative unknown key", func(t *testing.T) {
		d := setupSettings(t)
		_, err := d.svc.Update(ctx, "", "darkMode", "true")
		assert.ErrorIs(t, err, settingserrors.ErrUnknownKey)
	})

	t.Run("negative invalid bool", func(t *testing.T) {
		d := setupSettings(t)
		_, err := d.svc.Update(ctx, "", settings.KeySalaryDashboard, "sometimes")
		assert.ErrorIs(t, err, settingserrors.ErrInvalidValue)
	})
}

func TestSettingsService_List(t *testing.T) {
	d := setupSettings(t)
	d.repo.EXPECT().FindAll(gomock.Any()).Return([]settings.GlobalSetting{
		{Key: settings.KeySalaryDashboard, Value: "false"},
	}, nil)

	res, err := d.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, settings.KeyPayrollCalculationMode, res[0].Key)
	assert.True(t, res[0].IsDefault)
	assert.Equal(t, "false", res[2].Value)
	assert.False(t, res[2].IsDefault)
}

func TestFromMap_Defaults(t *testing.T) {
	s := settings.Default()
	assert.Equal(t, settings.ModeAuto, s.PayrollMode)
	assert.True(t, s.ShortageDeductionEnabled)
	assert.True(t, s.SalaryDashboardEnabled)
}
