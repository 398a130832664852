package claim

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	claimerrors "go-benefits/internal/claim/errors"
	"go-benefits/internal/dashboard"
	"go-benefits/internal/employee"
	employeeerrors "go-benefits/internal/employee/errors"
	"go-benefits/internal/events"
	"go-benefits/internal/identity"
	"go-benefits/internal/messaging/kafka"
	"go-benefits/internal/shared/apperror"
	"go-benefits/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=claim_service.go -destination=mock/claim_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller identity.Identity, req CreateClaimRequest) (ClaimResponse, error)
	GetAll(ctx context.Context, caller identity.Identity) ([]ClaimResponse, error)
	GetByID(ctx context.Context, caller identity.Identity, id string) (ClaimResponse, error)
	Review(ctx context.Context, caller identity.Identity, id string, req ReviewClaimRequest) (ClaimResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	rdb          *redis.Client
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, employeeRepo, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("claim.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("claim.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		outbox:       outboxRepo,
		rdb:          rdb,
		logger:       l,
	}
}

func (s *service) Create(ctx context.Context, caller identity.Identity, req CreateClaimRequest) (ClaimResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create claim requested",
		zap.String("request_id", rid),
		zap.String("user_id", caller.UserID),
		zap.String("claim_type", req.ClaimType),
		zap.Float64("amount", req.Amount),
	)

	// A claim is always filed against the caller's own profile; employee
	// id and company id are stamped from it, never taken from the client.
	// Provisioning happened at registration, so a missing profile is
	// terminal here.
	profile, err := s.requireProfile(ctx, caller)
	if err != nil {
		s.logger.Warn("create claim without profile", zap.String("user_id", caller.UserID))
		return ClaimResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create claim begin tx failed", zap.Error(err))
		return ClaimResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c := &Claim{
		ID:             uuid.New(),
		EmployeeID:     profile.ID,
		CompanyID:      profile.CompanyID,
		ClaimType:      req.ClaimType,
		Amount:         req.Amount,
		Description:    req.Description,
		Status:         StatusSubmitted,
		Documents:      req.Documents,
		SubmissionDate: time.Now().UTC(),
	}

	if err := qtx.Create(ctx, c); err != nil {
		s.logger.Error("create claim persist failed", zap.Error(err))
		return ClaimResponse{}, err
	}

	if s.outbox != nil {
		event := events.ClaimSubmittedEvent{
			EventType:  "claim_submitted",
			RequestID:  rid,
			ClaimID:    c.ID.String(),
			EmployeeID: c.EmployeeID.String(),
			CompanyID:  c.CompanyID.String(),
			ClaimType:  c.ClaimType,
			Amount:     c.Amount,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.queueEvent(ctx, tx, c, event.EventType, event); err != nil {
			return ClaimResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create claim commit failed", zap.Error(err))
		return ClaimResponse{}, err
	}

	s.invalidateStats(ctx, c.CompanyID.String())

	s.logger.Info("create claim success",
		zap.String("request_id", rid),
		zap.String("claim_id", c.ID.String()),
		zap.String("company_id", c.CompanyID.String()),
	)

	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, caller identity.Identity) ([]ClaimResponse, error) {
	// Employees only ever see their own claims; admin and HR roles see
	// the whole company.
	if caller.IsEmployee() {
		profile, err := s.employeeRepo.FindByUserID(ctx, caller.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []ClaimResponse{}, nil
			}
			return nil, err
		}
		claims, err := s.repo.FindAllByEmployee(ctx, profile.ID.String())
		if err != nil {
			return nil, err
		}
		return mapToListResponse(claims), nil
	}

	claims, err := s.repo.FindAllByCompany(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(claims), nil
}

func (s *service) GetByID(ctx context.Context, caller identity.Identity, id string) (ClaimResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ClaimResponse{}, claimerrors.ErrClaimNotFound
		}
		return ClaimResponse{}, err
	}

	if !caller.IsSuperAdmin() && c.CompanyID.String() != caller.CompanyID {
		return ClaimResponse{}, apperror.ErrForbidden
	}
	if caller.IsEmployee() {
		profile, err := s.requireProfile(ctx, caller)
		if err != nil {
			return ClaimResponse{}, err
		}
		if c.EmployeeID != profile.ID {
			return ClaimResponse{}, apperror.ErrForbidden
		}
	}

	return mapToResponse(*c), nil
}

func (s *service) Review(ctx context.Context, caller identity.Identity, id string, req ReviewClaimRequest) (ClaimResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("review claim requested",
		zap.String("request_id", rid),
		zap.String("claim_id", id),
		zap.String("reviewer_id", caller.UserID),
		zap.String("target_status", req.Status),
	)

	reviewerID, err := uuid.Parse(caller.UserID)
	if err != nil {
		return ClaimResponse{}, apperror.ErrForbidden
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review claim begin tx failed", zap.Error(err))
		return ClaimResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ClaimResponse{}, claimerrors.ErrClaimNotFound
		}
		return ClaimResponse{}, err
	}

	// Reviewer and review time are stamped on every call, even when the
	// status does not actually change.
	now := time.Now().UTC()
	c.Status = req.Status
	c.ReviewerNotes = req.ReviewerNotes
	c.ReviewedBy = &reviewerID
	c.ReviewDate = &now

	if err := qtx.Update(ctx, c); err != nil {
		s.logger.Error("review claim persist failed", zap.String("claim_id", id), zap.Error(err))
		return ClaimResponse{}, err
	}

	if s.outbox != nil {
		event := events.ClaimReviewedEvent{
			EventType:  "claim_reviewed",
			RequestID:  rid,
			ClaimID:    c.ID.String(),
			CompanyID:  c.CompanyID.String(),
			Status:     c.Status,
			ReviewedBy: caller.UserID,
			OccurredAt: now,
		}
		if err := s.queueEvent(ctx, tx, c, event.EventType, event); err != nil {
			return ClaimResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("review claim commit failed", zap.String("claim_id", id), zap.Error(err))
		return ClaimResponse{}, err
	}

	s.invalidateStats(ctx, c.CompanyID.String())

	s.logger.Info("review claim success",
		zap.String("claim_id", id),
		zap.String("status", c.Status),
	)

	return mapToResponse(*c), nil
}

func (s *service) requireProfile(ctx context.Context, caller identity.Identity) (*employee.Employee, error) {
	profile, err := s.employeeRepo.FindByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, c *Claim, eventType string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal claim event failed", zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "claim",
		AggregateID:   c.ID.String(),
		EventType:     eventType,
		Topic:         events.ClaimLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("claim outbox persist failed",
			zap.String("claim_id", c.ID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (s *service) invalidateStats(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := dashboard.StatsCacheKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate dashboard stats cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(c Claim) ClaimResponse {
	resp := ClaimResponse{
		ID:             c.ID.String(),
		EmployeeID:     c.EmployeeID.String(),
		CompanyID:      c.CompanyID.String(),
		ClaimType:      c.ClaimType,
		Amount:         c.Amount,
		Description:    c.Description,
		Status:         c.Status,
		Documents:      c.Documents,
		SubmissionDate: c.SubmissionDate.Format(time.RFC3339),
	}
	if resp.Documents == nil {
		resp.Documents = []string{}
	}
	if c.ReviewDate != nil {
		v := c.ReviewDate.Format(time.RFC3339)
		resp.ReviewDate = &v
	}
	resp.ReviewerNotes = c.ReviewerNotes
	if c.ReviewedBy != nil {
		v := c.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	return resp
}

func mapToListResponse(claims []Claim) []ClaimResponse {
	resp := make([]ClaimResponse, len(claims))
	for i, c := range claims {
		resp[i] = mapToResponse(c)
	}
	return resp
}
