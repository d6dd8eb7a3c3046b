package payroll

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/middleware"
	payrollerrors "github.com/code-hero23/peopledesk-sub002/internal/payroll/errors"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/response"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/spreadsheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	maxImportSize  = 10 << 20
	idempotencyTTL = 24 * time.Hour
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) MySummary(c *gin.Context) {
	month, year, err := periodFrom(c.Query("month"), c.Query("year"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.MySummary(c.Request.Context(), c.GetString("user_id"), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UserSummary(c *gin.Context) {
	month, year, err := periodFrom(c.Query("month"), c.Query("year"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.UserSummary(c.Request.Context(), c.Param("userId"), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SalarySlip(c *gin.Context) {
	month, year, err := periodFrom(c.Query("month"), c.Query("year"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	data, filename, err := h.service.SalarySlipPDF(c.Request.Context(), c.GetString("user_id"), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, filename, "application/pdf", data)
}

func (h *Handler) ImportManual(c *gin.Context) {
	var result any
	if h.rdb != nil {
		defer func() { middleware.StoreIdempotentResponse(c, h.rdb, result, idempotencyTTL) }()
	}

	month, year, err := periodFrom(c.PostForm("month"), c.PostForm("year"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if month == 0 || year == 0 {
		h.writeServiceError(c, apperror.RequiredField("month and year"))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrFileRequired)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrUnreadableFile)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImportSize))
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrUnreadableFile)
		return
	}

	resp, err := h.service.ImportManual(c.Request.Context(), c.GetString("user_id"), data, fh.Filename, month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	result = resp
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportReport(c *gin.Context) {
	month, year, err := periodFrom(c.Query("month"), c.Query("year"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// AE manager hanya melihat tim AE
	designation := c.Query("designation")
	if c.GetString("role") == domain.RoleAEManager {
		designation = "AE"
	}

	data, filename, err := h.service.ExportReport(c.Request.Context(), month, year, designation)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, filename, spreadsheet.ContentTypeXLSX, data)
}

// periodFrom: keduanya kosong berarti cycle default.
func periodFrom(m, y string) (int, int, error) {
	if m == "" && y == "" {
		return 0, 0, nil
	}
	month, err := strconv.Atoi(m)
	if err != nil {
		return 0, 0, payrollerrors.ErrInvalidMonth
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return 0, 0, payrollerrors.ErrInvalidYear
	}
	return month, year, nil
}
