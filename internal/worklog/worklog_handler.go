package worklog

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/response"
	worklogerrors "github.com/code-hero23/peopledesk-sub002/internal/worklog/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("worklog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worklog.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("worklog request failed",
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

func (h *Handler) Form(c *gin.Context) {
	resp, err := h.service.Form(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SaveToday(c *gin.Context) {
	var req SaveWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http save work log validation failed", zap.Error(err))
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.SaveToday(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Close(c *gin.Context) {
	var req CloseWorkLogRequest
	// body opsional
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Close(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Mine(c *gin.Context) {
	from, to, err := rangeFromQuery(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Mine(c.Request.Context(), c.GetString("user_id"), from, to)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetAll(c *gin.Context) {
	from, to, err := rangeFromQuery(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListByRange(c.Request.Context(), from, to, c.Query("designation"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func rangeFromQuery(c *gin.Context) (time.Time, time.Time, error) {
	var from, to time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return from, to, worklogerrors.ErrInvalidDateFormat
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return from, to, worklogerrors.ErrInvalidDateFormat
		}
		to = t
	}
	if from.IsZero() != to.IsZero() {
		if from.IsZero() {
			from = to
		} else {
			to = from
		}
	}
	return from, to, nil
}
