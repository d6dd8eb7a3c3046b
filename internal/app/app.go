package app

import (
	"database/sql"
	"strings"

	"github.com/code-hero23/peopledesk-sub002/internal/attendance"
	"github.com/code-hero23/peopledesk-sub002/internal/config"
	"github.com/code-hero23/peopledesk-sub002/internal/messaging/kafka"
	"github.com/code-hero23/peopledesk-sub002/internal/middleware"
	"github.com/code-hero23/peopledesk-sub002/internal/payroll"
	"github.com/code-hero23/peopledesk-sub002/internal/request"
	"github.com/code-hero23/peopledesk-sub002/internal/settings"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/connection"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/counter"
	"github.com/code-hero23/peopledesk-sub002/internal/user"
	"github.com/code-hero23/peopledesk-sub002/internal/wfh"
	"github.com/code-hero23/peopledesk-sub002/internal/worklog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra adalah koneksi yang dipakai bersama oleh api, worker, consumer, dan CLI.
type Infra struct {
	Config *config.Config
	GormDB *gorm.DB
	DB     *sql.DB
	Redis  *redis.Client
}

// Connect membuka database dan (jika withRedis) Redis dengan retry.
func Connect(cfg *config.Config, withRedis bool) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		cfg.Database.MaxRetries,
	)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	infra := &Infra{Config: cfg, GormDB: gormDB, DB: sqlDB}
	if withRedis {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Database.MaxRetries)
		if err != nil {
			sqlDB.Close()
			return nil, err
		}
		infra.Redis = rdb
	}
	return infra, nil
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		_ = i.DB.Close()
	}
}

// Migrate membuat atau memperbarui semua tabel.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&request.Request{},
		&attendance.Record{},
		&attendance.BreakLog{},
		&worklog.WorkLog{},
		&settings.GlobalSetting{},
		&payroll.ManualPayroll{},
		&counter.Counter{},
		&kafka.OutboxRecord{},
		&wfh.Request{},
	)
}

// BuildApp menyiapkan infrastruktur, middleware global, dan semua route.
// Fungsi cleanup yang dikembalikan menutup koneksi.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	middleware.SetJWTSecret(cfg.Auth.JWTSecret)

	infra, err := Connect(cfg, true)
	if err != nil {
		return nil, err
	}
	logger.Info("database and redis connection established")

	if err := Migrate(infra.GormDB); err != nil {
		infra.Close()
		return nil, err
	}

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.App.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "Idempotency-Key"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
	}))
	router.Static("/uploads", cfg.App.UploadDir)

	svc, err := NewServices(infra, logger)
	if err != nil {
		infra.Close()
		return nil, err
	}
	registerModules(router, infra, svc, logger)

	return infra.Close, nil
}
