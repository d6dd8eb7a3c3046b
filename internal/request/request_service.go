package request

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/approval"
	"github.com/code-hero23/peopledesk-sub002/internal/cycle"
	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/events"
	"github.com/code-hero23/peopledesk-sub002/internal/messaging/kafka"
	requesterrors "github.com/code-hero23/peopledesk-sub002/internal/request/errors"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/contextutil"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/counter"
	"github.com/code-hero23/peopledesk-sub002/internal/timewindow"
	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// LeaveDayLimit adalah batas hari cuti per pengajuan sebelum ditandai exceeded.
	LeaveDayLimit = 4
	// PermissionCycleLimit adalah jumlah permission per cycle sebelum ditandai exceeded.
	PermissionCycleLimit = 4

	dateLayout = "2006-01-02"
)

var refPrefix = map[string]string{
	KindLeave:         "LV",
	KindPermission:    "PM",
	KindSiteVisit:     "SV",
	KindShowroomVisit: "SR",
}

// Actor adalah identitas yang sudah diverifikasi oleh auth middleware.
type Actor struct {
	ID   string
	Role string
}

// UserLookup cukup dipenuhi oleh user.Repository.
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, userID string, req SubmitRequest) (RequestResponse, error)
	ActOn(ctx context.Context, actor Actor, id string, req DecisionRequest) (RequestResponse, error)
	Get(ctx context.Context, actor Actor, id string) (RequestResponse, error)
	Mine(ctx context.Context, userID, kind string) ([]RequestResponse, error)
	PendingForBH(ctx context.Context, bhID string) ([]RequestResponse, error)
	PendingForHR(ctx context.Context) ([]RequestResponse, error)
	List(ctx context.Context, f Filter) ([]RequestResponse, error)
	ExportXLSX(ctx context.Context, f Filter) ([]byte, error)
	RecomputeLimits(ctx context.Context, month, year int) (RecomputeLimitsResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	users   UserLookup
	counter counter.Repository
	outbox  kafka.OutboxRepository
	loc     *time.Location
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	users UserLookup,
	counter counter.Repository,
	outbox kafka.OutboxRepository,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		db:      db,
		repo:    repo,
		users:   users,
		counter: counter,
		outbox:  outbox,
		loc:     loc,
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) Submit(ctx context.Context, userID string, req SubmitRequest) (RequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	kind := strings.ToUpper(strings.TrimSpace(req.Kind))
	s.logger.Debug("submit request requested",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
		zap.String("kind", kind),
	)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidActorID
	}

	rec, err := buildRequest(kind, req)
	if err != nil {
		s.logger.Warn("submit request validation failed", zap.String("kind", kind), zap.Error(err))
		return RequestResponse{}, err
	}

	requester, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrRequesterNotFound
		}
		s.logger.Error("submit request load requester failed", zap.Error(err))
		return RequestResponse{}, err
	}
	// tanpa BH tujuan track BH tidak bisa diputuskan siapa pun.
	if requester.ReportingBhID == nil {
		s.logger.Warn("submit request without reporting bh", zap.String("user_id", userID))
		return RequestResponse{}, requesterrors.ErrReportingBhNotAssigned
	}

	rec.ID = uuid.New()
	rec.UserID = userUUID
	rec.TargetBhID = requester.ReportingBhID
	rec.Status = string(approval.StatusPending)
	rec.BhStatus = string(approval.StatusPending)
	rec.HrStatus = string(approval.StatusPending)

	seq, err := s.counter.GetNextValue(ctx, "request_"+strings.ToLower(kind))
	if err != nil {
		s.logger.Error("submit request ref number failed", zap.Error(err))
		return RequestResponse{}, err
	}
	rec.RefNo = fmt.Sprintf("%s-%06d", refPrefix[kind], seq)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	switch kind {
	case KindLeave:
		rec.IsExceededLimit = rec.Days() > LeaveDayLimit
	case KindPermission:
		from, to := s.cycleOf(rec.StartDate).DateRange()
		n, err := qtx.CountActivePermissions(ctx, userID, from, to)
		if err != nil {
			s.logger.Error("submit request count permissions failed", zap.Error(err))
			return RequestResponse{}, err
		}
		rec.IsExceededLimit = n >= PermissionCycleLimit
	}

	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("submit request persist failed", zap.Error(err))
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit request commit failed", zap.Error(err))
		return RequestResponse{}, err
	}

	s.logger.Info("submit request success",
		zap.String("request_id", rid),
		zap.String("record_id", rec.ID.String()),
		zap.String("ref_no", rec.RefNo),
		zap.Bool("exceeded_limit", rec.IsExceededLimit),
	)

	rec.User = requester
	return mapToResponse(*rec), nil
}

// ActOn memutuskan satu track. Baris dikunci dulu, lalu ditulis dengan
// UPDATE bersyarat sehingga keputusan ganda selalu berakhir InvalidTransition.
func (s *service) ActOn(ctx context.Context, actor Actor, id string, req DecisionRequest) (RequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("act on request requested",
		zap.String("request_id", rid),
		zap.String("record_id", id),
		zap.String("actor_id", actor.ID),
		zap.String("role", actor.Role),
		zap.String("decision", req.Decision),
	)

	actorUUID, err := uuid.Parse(actor.ID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidActorID
	}
	recordUUID, err := uuid.Parse(id)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidRequestID
	}
	track, err := approval.TrackForRole(actor.Role)
	if err != nil {
		s.logger.Warn("act on request role rejected", zap.String("role", actor.Role))
		return RequestResponse{}, err
	}
	decision, err := approval.ParseDecision(strings.ToUpper(strings.TrimSpace(req.Decision)))
	if err != nil {
		return RequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("act on request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrRequestNotFound
		}
		s.logger.Error("act on request load failed", zap.Error(err))
		return RequestResponse{}, err
	}

	if track == approval.TrackBH && (rec.TargetBhID == nil || *rec.TargetBhID != actorUUID) {
		s.logger.Warn("act on request not target business head",
			zap.String("record_id", id),
			zap.String("actor_id", actor.ID),
		)
		return RequestResponse{}, approval.ErrNotAuthorized
	}

	from := rec.State()
	to, err := from.Decide(track, decision)
	if err != nil {
		s.logger.Warn("act on request invalid transition",
			zap.String("record_id", id),
			zap.String("track", string(track)),
			zap.String("current", string(from.Of(track))),
		)
		return RequestResponse{}, err
	}

	now := s.now().UTC()
	rows, err := qtx.ApplyDecision(ctx, recordUUID, track, from, to, actorUUID, now)
	if err != nil {
		s.logger.Error("act on request persist failed", zap.Error(err))
		return RequestResponse{}, err
	}
	if rows == 0 {
		s.logger.Warn("act on request lost race", zap.String("record_id", id))
		return RequestResponse{}, approval.ErrInvalidTransition
	}

	rec.BhStatus = string(to.BH)
	rec.HrStatus = string(to.HR)
	rec.Status = string(to.Aggregate())
	if track == approval.TrackBH {
		rec.BhID = &actorUUID
		rec.BhActedAt = &now
	} else {
		rec.HrID = &actorUUID
		rec.HrActedAt = &now
	}

	if s.outbox != nil && to.Aggregate().IsTerminal() {
		event := events.RequestDecidedEvent{
			EventType:  events.RequestDecidedEventType,
			RequestID:  rid,
			RecordID:   rec.ID.String(),
			RefNo:      rec.RefNo,
			Kind:       rec.Kind,
			UserID:     rec.UserID.String(),
			Status:     rec.Status,
			BhStatus:   rec.BhStatus,
			HrStatus:   rec.HrStatus,
			DecidedBy:  actor.ID,
			Track:      string(track),
			StartDate:  rec.StartDate.Format(dateLayout),
			EndDate:    rec.EndDate.Format(dateLayout),
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return RequestResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "request",
			AggregateID:   rec.ID.String(),
			EventType:     event.EventType,
			Topic:         events.RequestDecidedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("act on request outbox persist failed",
				zap.String("record_id", id),
				zap.Error(err),
			)
			return RequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("act on request commit failed", zap.Error(err))
		return RequestResponse{}, err
	}

	s.logger.Info("act on request success",
		zap.String("request_id", rid),
		zap.String("record_id", id),
		zap.String("track", string(track)),
		zap.String("decision", string(decision)),
		zap.String("status", rec.Status),
	)
	return mapToResponse(*rec), nil
}

func (s *service) Get(ctx context.Context, actor Actor, id string) (RequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidRequestID
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}

	if !canView(actor, rec) {
		return RequestResponse{}, requesterrors.ErrRequestNotFound
	}
	return mapToResponse(*rec), nil
}

func (s *service) Mine(ctx context.Context, userID, kind string) ([]RequestResponse, error) {
	kind = strings.ToUpper(strings.TrimSpace(kind))
	if kind != "" && !IsValidKind(kind) {
		return nil, requesterrors.ErrInvalidKind
	}
	if _, err := uuid.Parse(userID); err != nil {
		return nil, requesterrors.ErrInvalidActorID
	}

	recs, err := s.repo.FindByUser(ctx, userID, kind)
	if err != nil {
		s.logger.Error("list my requests failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) PendingForBH(ctx context.Context, bhID string) ([]RequestResponse, error) {
	if _, err := uuid.Parse(bhID); err != nil {
		return nil, requesterrors.ErrInvalidActorID
	}
	recs, err := s.repo.FindPendingForBH(ctx, bhID)
	if err != nil {
		s.logger.Error("list bh pending requests failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) PendingForHR(ctx context.Context) ([]RequestResponse, error) {
	recs, err := s.repo.FindPendingForHR(ctx)
	if err != nil {
		s.logger.Error("list hr pending requests failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) List(ctx context.Context, f Filter) ([]RequestResponse, error) {
	recs, err := s.list(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) list(ctx context.Context, f Filter) ([]Request, error) {
	f.Kind = strings.ToUpper(strings.TrimSpace(f.Kind))
	f.Status = strings.ToUpper(strings.TrimSpace(f.Status))
	if f.Kind != "" && !IsValidKind(f.Kind) {
		return nil, requesterrors.ErrInvalidKind
	}
	if f.Status != "" {
		switch approval.Status(f.Status) {
		case approval.StatusPending, approval.StatusApproved, approval.StatusRejected:
		default:
			return nil, apperror.InvalidField("status")
		}
	}

	recs, err := s.repo.FindAll(ctx, f)
	if err != nil {
		s.logger.Error("list requests failed", zap.Error(err))
		return nil, err
	}
	return recs, nil
}

// RecomputeLimits menghitung ulang isExceededLimit untuk leave dan permission
// yang tanggalnya jatuh di cycle (month, year). Mengembalikan jumlah baris yang berubah.
func (s *service) RecomputeLimits(ctx context.Context, month, year int) (RecomputeLimitsResponse, error) {
	s.logger.Debug("recompute limits requested", zap.Int("month", month), zap.Int("year", year))

	c, err := cycle.For(month, year, s.loc)
	if err != nil {
		return RecomputeLimitsResponse{}, requesterrors.ErrInvalidCycle
	}
	from, to := c.DateRange()

	recs, err := s.repo.FindInRange(ctx, []string{KindLeave, KindPermission}, from, to)
	if err != nil {
		s.logger.Error("recompute limits load failed", zap.Error(err))
		return RecomputeLimitsResponse{}, err
	}

	var updated int64
	permissions := map[uuid.UUID]int{}
	for _, rec := range recs {
		want := rec.IsExceededLimit
		switch rec.Kind {
		case KindLeave:
			want = rec.Days() > LeaveDayLimit
		case KindPermission:
			if rec.Status == string(approval.StatusRejected) {
				continue
			}
			want = permissions[rec.UserID] >= PermissionCycleLimit
			permissions[rec.UserID]++
		}
		if want == rec.IsExceededLimit {
			continue
		}
		if err := s.repo.UpdateExceededLimit(ctx, rec.ID, want); err != nil {
			s.logger.Error("recompute limits update failed", zap.String("record_id", rec.ID.String()), zap.Error(err))
			return RecomputeLimitsResponse{}, err
		}
		updated++
	}

	s.logger.Info("recompute limits success",
		zap.String("cycle", c.String()),
		zap.Int("scanned", len(recs)),
		zap.Int64("updated", updated),
	)
	return RecomputeLimitsResponse{Month: month, Year: year, Updated: updated}, nil
}

func (s *service) cycleOf(date time.Time) cycle.Cycle {
	return cycle.Containing(time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, s.loc), s.loc)
}

func canView(actor Actor, rec *Request) bool {
	switch {
	case actor.Role == domain.RoleAdmin || actor.Role == domain.RoleHR:
		return true
	case rec.UserID.String() == actor.ID:
		return true
	case domain.IsBusinessHead(actor.Role):
		return rec.TargetBhID != nil && rec.TargetBhID.String() == actor.ID
	default:
		return false
	}
}

// buildRequest memvalidasi payload sesuai jenisnya dan mengisi kolom tanggal.
func buildRequest(kind string, req SubmitRequest) (*Request, error) {
	if !IsValidKind(kind) {
		return nil, requesterrors.ErrInvalidKind
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, apperror.RequiredField("reason")
	}

	rec := &Request{
		Kind:   kind,
		Reason: reason,
	}

	if kind == KindLeave {
		rec.LeaveType = strings.ToUpper(strings.TrimSpace(req.LeaveType))
		if rec.LeaveType == "" {
			return nil, apperror.RequiredField("leave_type")
		}
		start, err := parseDate("start_date", req.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDate("end_date", req.EndDate)
		if err != nil {
			return nil, err
		}
		if end.Before(start) {
			return nil, requesterrors.ErrInvalidDateRange
		}
		rec.StartDate, rec.EndDate = start, end
		return rec, nil
	}

	raw := req.Date
	if raw == "" {
		raw = req.StartDate
	}
	date, err := parseDate("date", raw)
	if err != nil {
		return nil, err
	}
	rec.StartDate, rec.EndDate = date, date

	if kind == KindPermission || strings.TrimSpace(req.StartTime) != "" || strings.TrimSpace(req.EndTime) != "" {
		w := timewindow.Window{Start: strings.TrimSpace(req.StartTime), End: strings.TrimSpace(req.EndTime)}
		if w.Start == "" {
			return nil, apperror.RequiredField("start_time")
		}
		if w.End == "" {
			return nil, apperror.RequiredField("end_time")
		}
		start, end, err := w.Bounds()
		if err != nil {
			return nil, apperror.InvalidField("start_time/end_time")
		}
		if end <= start {
			return nil, requesterrors.ErrInvalidTimeRange
		}
		rec.StartTime, rec.EndTime = w.Start, w.End
	}

	switch kind {
	case KindSiteVisit:
		rec.Location = strings.TrimSpace(req.Location)
		rec.ProjectName = strings.TrimSpace(req.ProjectName)
		if rec.Location == "" {
			return nil, apperror.RequiredField("location")
		}
	case KindShowroomVisit:
		rec.SourceShowroom = strings.TrimSpace(req.SourceShowroom)
		rec.DestinationShowroom = strings.TrimSpace(req.DestinationShowroom)
		if rec.SourceShowroom == "" {
			return nil, apperror.RequiredField("source_showroom")
		}
		if rec.DestinationShowroom == "" {
			return nil, apperror.RequiredField("destination_showroom")
		}
	}
	return rec, nil
}

func parseDate(field, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, apperror.RequiredField(field)
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, requesterrors.ErrInvalidDateFormat
	}
	return t, nil
}

func inclusiveDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}
