package claim

import (
	"encoding/json"
	"net/http"
	"time"

	"go-benefits/internal/identity"
	"go-benefits/internal/shared/apperror"
	"go-benefits/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("claim.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("claim.handler")
	}
	return &Handler{service: service, logger: l}
}

// NewHandlerWithRedis is the wiring used in production. The redis client
// completes the idempotency contract: the middleware takes the lock, the
// handler releases it and stores the finished response for replay.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("claim request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	caller, _ := identity.FromContext(c)

	var req CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create claim validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
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

func (h *Handler) GetById(c *gin.Context) {
	caller, _ := identity.FromContext(c)

	resp, err := h.service.GetByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Review(c *gin.Context) {
	caller, _ := identity.FromContext(c)

	var req ReviewClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http review claim validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Review(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
