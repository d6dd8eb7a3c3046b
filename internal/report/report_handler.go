package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	reporterrors "github.com/code-hero23/peopledesk-sub002/internal/report/errors"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/response"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/spreadsheet"
	"github.com/code-hero23/peopledesk-sub002/internal/worklog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) EmployeeStats(c *gin.Context) {
	r, err := rangeFrom(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.EmployeeStats(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TeamOverview(c *gin.Context) {
	r, err := rangeFrom(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.TeamOverview(c.Request.Context(), r, designationFor(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportPerformance(c *gin.Context) {
	r, err := rangeFrom(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	data, filename, err := h.service.PerformanceXLSX(c.Request.Context(), r, c.Query("userId"), designationFor(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, filename, spreadsheet.ContentTypeXLSX, data)
}

func (h *Handler) ExportAttendance(c *gin.Context) {
	f, err := exportFilterFrom(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	data, filename, err := h.service.AttendanceXLSX(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, filename, spreadsheet.ContentTypeXLSX, data)
}

func (h *Handler) ExportWorkLogs(c *gin.Context) {
	f, err := exportFilterFrom(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	data, filename, err := h.service.WorkLogXLSX(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, filename, spreadsheet.ContentTypeXLSX, data)
}

// AE manager hanya melihat tim AE
func designationFor(c *gin.Context) string {
	if c.GetString("role") == domain.RoleAEManager {
		return worklog.DesignationAE
	}
	return c.Query("designation")
}

func rangeFrom(c *gin.Context) (Range, error) {
	var r Range
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return Range{}, reporterrors.ErrInvalidDate
		}
		r.From = t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return Range{}, reporterrors.ErrInvalidDate
		}
		r.To = t
	}
	return r, nil
}

func exportFilterFrom(c *gin.Context) (ExportFilter, error) {
	f := ExportFilter{
		UserID:      c.Query("userId"),
		Designation: designationFor(c),
		Search:      c.Query("search"),
	}
	if v := c.Query("date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return ExportFilter{}, reporterrors.ErrInvalidDate
		}
		f.Date = &t
	}
	if m, y := c.Query("month"), c.Query("year"); m != "" || y != "" {
		month, errM := strconv.Atoi(m)
		year, errY := strconv.Atoi(y)
		if errM != nil || errY != nil {
			return ExportFilter{}, reporterrors.ErrInvalidPeriod
		}
		f.Month, f.Year = month, year
	}
	return f, nil
}
