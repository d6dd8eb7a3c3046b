package settings

import (
	"context"
	"encoding/json"
	"time"

	settingserrors "github.com/code-hero23/peopledesk-sub002/internal/settings/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CacheKey = "settings:global"
	cacheTTL = 10 * time.Minute
)

// SummaryInvalidator membuang seluruh ringkasan gaji yang sudah di-cache.
type SummaryInvalidator interface {
	InvalidateAll(ctx context.Context) error
}

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (Settings, error)
	List(ctx context.Context) ([]SettingResponse, error)
	Update(ctx context.Context, actorID, key, value string) (SettingResponse, error)
}

type service struct {
	repo        Repository
	rdb         *redis.Client
	sf          *singleflight.Group
	invalidator SummaryInvalidator
	logger      *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, invalidator SummaryInvalidator, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{
		repo:        repo,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		invalidator: invalidator,
		logger:      l,
	}
}

func (s *service) Get(ctx context.Context) (Settings, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, CacheKey).Result(); err == nil {
			var out Settings
			if json.Unmarshal([]byte(cached), &out) == nil {
				return out, nil
			}
		}
	}

	v, err, _ := s.sf.Do(CacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		out := FromMap(toMap(rows))
		if s.rdb != nil {
			if data, err := json.Marshal(out); err == nil {
				s.rdb.Set(ctx, CacheKey, data, cacheTTL)
			}
		}
		return out, nil
	})
	if err != nil {
		s.logger.Error("load settings failed", zap.Error(err))
		return Settings{}, err
	}
	return v.(Settings), nil
}

func (s *service) List(ctx context.Context) ([]SettingResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list settings failed", zap.Error(err))
		return nil, err
	}

	stored := make(map[string]GlobalSetting, len(rows))
	for _, r := range rows {
		stored[r.Key] = r
	}

	out := make([]SettingResponse, 0, len(Keys))
	for _, key := range Keys {
		row, ok := stored[key]
		if !ok {
			out = append(out, SettingResponse{Key: key, Value: defaults[key], IsDefault: true})
			continue
		}
		out = append(out, mapToResponse(row))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, actorID, key, value string) (SettingResponse, error) {
	s.logger.Debug("update setting requested",
		zap.String("actor_id", actorID),
		zap.String("key", key),
		zap.String("value", value),
	)

	if !IsKnownKey(key) {
		return SettingResponse{}, settingserrors.ErrUnknownKey
	}
	normalized, err := Normalize(key, value)
	if err != nil {
		s.logger.Warn("update setting validation failed", zap.String("key", key), zap.String("value", value))
		return SettingResponse{}, err
	}

	row := &GlobalSetting{Key: key, Value: normalized, UpdatedAt: time.Now().UTC()}
	if id, err := uuid.Parse(actorID); err == nil {
		row.UpdatedBy = &id
	}

	if err := s.repo.Upsert(ctx, row); err != nil {
		s.logger.Error("update setting persist failed", zap.String("key", key), zap.Error(err))
		return SettingResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, CacheKey).Err(); err != nil {
			s.logger.Warn("invalidate settings cache failed", zap.String("key", CacheKey), zap.Error(err))
		}
	}
	if s.invalidator != nil {
		if err := s.invalidator.InvalidateAll(ctx); err != nil {
			s.logger.Warn("invalidate payroll summaries failed", zap.Error(err))
		}
	}

	s.logger.Info("update setting success", zap.String("key", key), zap.String("value", normalized))
	return mapToResponse(*row), nil
}

func toMap(rows []GlobalSetting) map[string]string {
	m := make(map[string]string, len(rows))
	for _, r := range rows {
		m[r.Key] = r.Value
	}
	return m
}

func mapToResponse(g GlobalSetting) SettingResponse {
	resp := SettingResponse{Key: g.Key, Value: g.Value}
	if g.UpdatedBy != nil {
		v := g.UpdatedBy.String()
		resp.UpdatedBy = &v
	}
	if !g.UpdatedAt.IsZero() {
		v := g.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &v
	}
	return resp
}
