package request

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	requesterrors "github.com/code-hero23/peopledesk-sub002/internal/request/errors"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/contextutil"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/response"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/spreadsheet"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("request.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.handler")
	}
	return &Handler{svc: service, logger: l}
}

func actorFrom(c *gin.Context) Actor {
	return Actor{ID: c.GetString("user_id"), Role: c.GetString("role")}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("request request failed",
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

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit request validation failed", zap.Error(err))
		h.writeBindError(c, err)
		return
	}

	resp, err := h.svc.Submit(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Decide(c *gin.Context) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http decide request validation failed", zap.Error(err))
		h.writeBindError(c, err)
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)
	resp, err := h.svc.ActOn(ctx, actorFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Mine(c *gin.Context) {
	resp, err := h.svc.Mine(c.Request.Context(), c.GetString("user_id"), c.Query("kind"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) PendingForBH(c *gin.Context) {
	resp, err := h.svc.PendingForBH(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) PendingForHR(c *gin.Context) {
	resp, err := h.svc.PendingForHR(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) Export(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	data, err := h.svc.ExportXLSX(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	name := "requests"
	if f.Status != "" {
		name += "-" + strings.ToLower(f.Status)
	}
	response.Attachment(c, fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("20060102")), spreadsheet.ContentTypeXLSX, data)
}

func (h *Handler) RecomputeLimits(c *gin.Context) {
	var req RecomputeLimitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.svc.RecomputeLimits(c.Request.Context(), req.Month, req.Year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func filterFromQuery(c *gin.Context) (Filter, error) {
	f := Filter{
		Status: strings.ToUpper(strings.TrimSpace(c.Query("status"))),
		Kind:   strings.ToUpper(strings.TrimSpace(c.Query("kind"))),
		UserID: strings.TrimSpace(c.Query("user_id")),
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return Filter{}, requesterrors.ErrInvalidDateFormat
		}
		f.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return Filter{}, requesterrors.ErrInvalidDateFormat
		}
		f.To = &t
	}
	return f, nil
}
