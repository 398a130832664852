package financial

import (
	"context"
	"time"

	"go-benefits/internal/dashboard"
	financialerrors "go-benefits/internal/financial/errors"
	"go-benefits/internal/identity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:generate mockgen -source=financial_service.go -destination=mock/financial_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller identity.Identity, req CreateFinancialRequest) (FinancialResponse, error)
	GetAll(ctx context.Context, caller identity.Identity) ([]FinancialResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("financial.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("financial.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(ctx context.Context, caller identity.Identity, req CreateFinancialRequest) (FinancialResponse, error) {
	// The transaction is always booked against the caller's own company.
	// A super admin without a company scope has nothing to book against.
	companyID, err := uuid.Parse(caller.CompanyID)
	if err != nil {
		return FinancialResponse{}, financialerrors.ErrInvalidCompanyScope
	}

	f := &Financial{
		ID:              uuid.New(),
		CompanyID:       companyID,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: time.Now().UTC(),
		ReferenceID:     req.ReferenceID,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Error("create financial persist failed", zap.Error(err))
		return FinancialResponse{}, err
	}

	s.invalidateStats(ctx, f.CompanyID.String())

	s.logger.Info("create financial success",
		zap.String("financial_id", f.ID.String()),
		zap.String("company_id", f.CompanyID.String()),
		zap.String("transaction_type", f.TransactionType),
	)

	return mapToResponse(*f), nil
}

func (s *service) GetAll(ctx context.Context, caller identity.Identity) ([]FinancialResponse, error) {
	financials, err := s.repo.FindAllByCompany(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}

	resp := make([]FinancialResponse, len(financials))
	for i, f := range financials {
		resp[i] = mapToResponse(f)
	}
	return resp, nil
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

func mapToResponse(f Financial) FinancialResponse {
	return FinancialResponse{
		ID:              f.ID.String(),
		CompanyID:       f.CompanyID.String(),
		TransactionType: f.TransactionType,
		Amount:          f.Amount,
		Description:     f.Description,
		TransactionDate: f.TransactionDate.Format(time.RFC3339),
		ReferenceID:     f.ReferenceID,
	}
}
