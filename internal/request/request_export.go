package request

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/spreadsheet"

	"go.uber.org/zap"
)

var exportHeaders = []string{
	"Ref No", "Type", "Employee", "Email", "Date / Duration", "Details", "Reason",
	"Overall Status", "BH Status", "HR Status", "Exceeded Limit", "Requested At",
}

func (s *service) ExportXLSX(ctx context.Context, f Filter) ([]byte, error) {
	recs, err := s.list(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(recs))
	for _, r := range recs {
		var name, email string
		if r.User != nil {
			name, email = r.User.Name, r.User.Email
		}
		exceeded := "No"
		if r.IsExceededLimit {
			exceeded = "Yes"
		}
		rows = append(rows, []any{
			r.RefNo,
			kindLabel(r.Kind),
			name,
			email,
			durationLabel(r),
			detailsLabel(r),
			r.Reason,
			r.Status,
			r.BhStatus,
			r.HrStatus,
			exceeded,
			r.CreatedAt.In(s.loc).Format("2006-01-02 15:04"),
		})
	}

	data, err := spreadsheet.Write("Requests", exportHeaders, rows)
	if err != nil {
		s.logger.Error("export requests failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("export requests success", zap.Int("rows", len(rows)))
	return data, nil
}

func kindLabel(kind string) string {
	switch kind {
	case KindLeave:
		return "Leave"
	case KindPermission:
		return "Permission"
	case KindSiteVisit:
		return "Site Visit"
	case KindShowroomVisit:
		return "Showroom Visit"
	default:
		return kind
	}
}

func durationLabel(r Request) string {
	if r.Kind == KindLeave {
		return fmt.Sprintf("%s to %s (%d days)", r.StartDate.Format(dateLayout), r.EndDate.Format(dateLayout), r.Days())
	}
	if r.StartTime != "" {
		return fmt.Sprintf("%s %s - %s", r.StartDate.Format(dateLayout), r.StartTime, r.EndTime)
	}
	return r.StartDate.Format(dateLayout)
}

func detailsLabel(r Request) string {
	switch r.Kind {
	case KindLeave:
		return r.LeaveType
	case KindSiteVisit:
		return strings.TrimSpace(r.Location + " " + r.ProjectName)
	case KindShowroomVisit:
		return r.SourceShowroom + " -> " + r.DestinationShowroom
	default:
		return ""
	}
}

func mapToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:                  r.ID.String(),
		RefNo:               r.RefNo,
		Kind:                r.Kind,
		UserID:              r.UserID.String(),
		LeaveType:           r.LeaveType,
		StartDate:           r.StartDate.Format(dateLayout),
		EndDate:             r.EndDate.Format(dateLayout),
		Days:                r.Days(),
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		Location:            r.Location,
		ProjectName:         r.ProjectName,
		SourceShowroom:      r.SourceShowroom,
		DestinationShowroom: r.DestinationShowroom,
		Reason:              r.Reason,
		Status:              r.Status,
		BhStatus:            r.BhStatus,
		HrStatus:            r.HrStatus,
		IsExceededLimit:     r.IsExceededLimit,
		CreatedAt:           r.CreatedAt.Format(time.RFC3339),
	}
	if r.User != nil {
		resp.UserName = r.User.Name
		resp.UserEmail = r.User.Email
	}
	if r.TargetBhID != nil {
		v := r.TargetBhID.String()
		resp.TargetBhID = &v
	}
	if r.BhID != nil {
		v := r.BhID.String()
		resp.BhID = &v
	}
	if r.HrID != nil {
		v := r.HrID.String()
		resp.HrID = &v
	}
	if r.BhActedAt != nil {
		v := r.BhActedAt.Format(time.RFC3339)
		resp.BhActedAt = &v
	}
	if r.HrActedAt != nil {
		v := r.HrActedAt.Format(time.RFC3339)
		resp.HrActedAt = &v
	}
	return resp
}

func mapToListResponse(recs []Request) []RequestResponse {
	out := make([]RequestResponse, len(recs))
	for i, r := range recs {
		out[i] = mapToResponse(r)
	}
	return out
}
