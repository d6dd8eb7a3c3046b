package attendance

import (
	"errors"
	"io"
	"net/http"
	"time"

	attendanceerrors "github.com/code-hero23/peopledesk-sub002/internal/attendance/errors"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", httpErr.Message)
}

// bindOptionalJSON menerima body kosong.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		h.writeBindError(c, err)
		return
	}
	if req.DeviceInfo == "" {
		req.DeviceInfo = c.Request.UserAgent()
	}
	req.IPAddress = c.ClientIP()

	resp, err := h.service.CheckIn(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CheckOut(c *gin.Context) {
	var req CheckOutRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.CheckOut(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) StartBreak(c *gin.Context) {
	var req StartBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http start break validation failed", zap.Error(err))
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.StartBreak(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) EndBreak(c *gin.Context) {
	resp, err := h.service.EndBreak(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Today(c *gin.Context) {
	resp, err := h.service.Today(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Mine(c *gin.Context) {
	h.history(c, c.GetString("user_id"))
}

func (h *Handler) UserHistory(c *gin.Context) {
	h.history(c, c.Param("userId"))
}

func (h *Handler) history(c *gin.Context, userID string) {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.History(c.Request.Context(), userID, from, to)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) ListByDate(c *gin.Context) {
	date, err := parseDateQuery(c, "date")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListByDate(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) CloseStaleBreaks(c *gin.Context) {
	closed, err := h.service.CloseStaleBreaks(c.Request.Context(), time.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, CloseStaleBreaksResponse{Closed: closed}, nil)
}

func parseDateQuery(c *gin.Context, key string) (time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDateFormat
	}
	return t, nil
}
