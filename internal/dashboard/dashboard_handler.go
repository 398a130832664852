package dashboard

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
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetStats(c *gin.Context) {
	caller, _ := identity.FromContext(c)

	resp, err := h.service.ComputeStats(c.Request.Context(), caller.CompanyID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("dashboard stats failed",
			zap.String("company_id", caller.CompanyID),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
