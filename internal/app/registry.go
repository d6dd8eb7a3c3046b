package app

import (
	"context"

	"github.com/code-hero23/peopledesk-sub002/internal/attendance"
	"github.com/code-hero23/peopledesk-sub002/internal/auth"
	"github.com/code-hero23/peopledesk-sub002/internal/messaging/kafka"
	"github.com/code-hero23/peopledesk-sub002/internal/payroll"
	"github.com/code-hero23/peopledesk-sub002/internal/rbac"
	"github.com/code-hero23/peopledesk-sub002/internal/rbac/infra"
	"github.com/code-hero23/peopledesk-sub002/internal/report"
	"github.com/code-hero23/peopledesk-sub002/internal/request"
	"github.com/code-hero23/peopledesk-sub002/internal/settings"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/counter"
	"github.com/code-hero23/peopledesk-sub002/internal/storage"
	"github.com/code-hero23/peopledesk-sub002/internal/user"
	"github.com/code-hero23/peopledesk-sub002/internal/wfh"
	"github.com/code-hero23/peopledesk-sub002/internal/worklog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services berisi repository dan service yang sudah di-wire.
type Services struct {
	UserRepo       user.Repository
	AttendanceRepo attendance.Repository
	RequestRepo    request.Repository
	Outbox         kafka.OutboxRepository

	RBAC       rbac.Service
	Auth       auth.Service
	Users      user.Service
	Attendance attendance.Service
	Requests   request.Service
	WorkLogs   worklog.Service
	Settings   settings.Service
	Payroll    payroll.Service
	Reports    report.Service
	Wfh        wfh.Service
}

// payrollInvalidator memutus siklus settings -> payroll -> settings.
type payrollInvalidator struct {
	target payroll.Service
}

func (p *payrollInvalidator) InvalidateUser(ctx context.Context, userID string) error {
	if p.target == nil {
		return nil
	}
	return p.target.InvalidateUser(ctx, userID)
}

func (p *payrollInvalidator) InvalidateAll(ctx context.Context) error {
	if p.target == nil {
		return nil
	}
	return p.target.InvalidateAll(ctx)
}

func NewServices(in *Infra, logger *zap.Logger) (*Services, error) {
	cfg := in.Config
	loc := cfg.Location()

	// --- Repositories ---
	userRepo := user.NewRepository(in.GormDB)
	attendanceRepo := attendance.NewRepository(in.GormDB)
	requestRepo := request.NewRepository(in.GormDB)
	worklogRepo := worklog.NewRepository(in.GormDB)
	settingsRepo := settings.NewRepository(in.GormDB)
	payrollRepo := payroll.NewRepository(in.GormDB)
	counterRepo := counter.NewRepository(in.GormDB)
	outboxRepo := kafka.NewOutboxRepository(in.DB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return nil, err
	}

	resolver, err := storage.NewResolver(cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	// --- Services ---
	invalidator := &payrollInvalidator{}
	settingsService := settings.NewService(settingsRepo, in.Redis, invalidator, logger)
	worklogService := worklog.NewService(in.DB, worklogRepo, userRepo, loc, logger)
	payrollService := payroll.NewService(in.DB, payrollRepo, payroll.Sources{
		Users:      userRepo,
		Attendance: attendanceRepo,
		Requests:   requestRepo,
		WorkLogs:   worklogService,
		Settings:   settingsService,
	}, in.Redis, cfg.Payroll.ShiftStart, loc, logger)
	invalidator.target = payrollService

	return &Services{
		UserRepo:       userRepo,
		AttendanceRepo: attendanceRepo,
		RequestRepo:    requestRepo,
		Outbox:         outboxRepo,

		RBAC: rbacService,
		Auth: auth.NewService(userRepo, auth.TokenConfig{
			Secret:    cfg.Auth.JWTSecret,
			AccessTTL: cfg.Auth.AccessTokenTTL,
		}, logger),
		Users:      user.NewService(userRepo, invalidator, logger),
		Attendance: attendance.NewService(in.DB, attendanceRepo, resolver, loc, logger),
		Requests:   request.NewService(in.DB, requestRepo, userRepo, counterRepo, outboxRepo, loc, logger),
		WorkLogs:   worklogService,
		Settings:   settingsService,
		Payroll:    payrollService,
		Reports: report.NewService(report.Sources{
			Users:      userRepo,
			Attendance: attendanceRepo,
			WorkLogs:   worklogRepo,
			Requests:   requestRepo,
		}, resolver, loc, logger),
		Wfh: wfh.NewService(wfh.NewRepository(in.GormDB), userRepo, logger),
	}, nil
}

func registerModules(router *gin.Engine, in *Infra, svc *Services, logger *zap.Logger) {
	// --- Handlers ---
	authHandler := auth.NewHandler(svc.Auth, in.Config.IsProduction(), logger)
	userHandler := user.NewHandler(svc.Users, logger)
	attendanceHandler := attendance.NewHandler(svc.Attendance, logger)
	requestHandler := request.NewHandler(svc.Requests, logger)
	worklogHandler := worklog.NewHandler(svc.WorkLogs, logger)
	settingsHandler := settings.NewHandler(svc.Settings, logger)
	payrollHandler := payroll.NewHandler(svc.Payroll, in.Redis, logger)
	reportHandler := report.NewHandler(svc.Reports, logger)
	wfhHandler := wfh.NewHandler(svc.Wfh, logger)
	rbacHandler := rbac.NewHandler(svc.RBAC)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler, svc.RBAC, logger)
		attendance.RegisterRoutes(api, attendanceHandler, svc.RBAC, logger)
		request.RegisterRoutes(api, requestHandler, svc.RBAC, logger)
		worklog.RegisterRoutes(api, worklogHandler, svc.RBAC, logger)
		settings.RegisterRoutes(api, settingsHandler, svc.RBAC)
		payroll.RegisterRoutes(api, payrollHandler, svc.RBAC, in.Redis, logger)
		report.RegisterRoutes(api, reportHandler, svc.RBAC, logger)
		wfh.RegisterRoutes(api, wfhHandler, svc.RBAC, logger)
		rbac.RegisterRoutes(api, rbacHandler)
	}
}
