package booking

import (
	"net/http"

	"go-benefits/internal/identity"
	"go-benefits/internal/shared/apperror"
	"go-benefits/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("booking.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("booking.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("booking request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	caller, _ := identity.FromContext(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create booking validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	caller, _ := identity.FromContext(c)

	resp, err := h.service.GetAll(c.Request.Context(), caller)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	caller, _ := identity.FromContext(c)

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update booking status validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
