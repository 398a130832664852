package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	StatsKeyPrefix = "dashboard:stats:"
	statsCacheTTL  = 30 * time.Second
)

// StatsCacheKey is shared with the claim and financial services, which
// delete the key whenever they change the numbers behind it.
func StatsCacheKey(companyID string) string {
	return StatsKeyPrefix + companyID
}

// Claim statuses and financial transaction types as stored. Duplicated
// here because the aggregator reads raw rows, not module entities.
const (
	statusSubmitted      = "submitted"
	statusApproved       = "approved"
	statusRejected       = "rejected"
	typePremiumPayment   = "premium_payment"
	typeClaimPayout      = "claim_payout"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	ComputeStats(ctx context.Context, companyID string) (StatsResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) ComputeStats(ctx context.Context, companyID string) (StatsResponse, error) {
	cacheKey := StatsCacheKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp StatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses the dashboard stampede after a cache miss
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.computeStats(ctx, companyID)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, statsCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return StatsResponse{}, err
	}

	return v.(StatsResponse), nil
}

func (s *service) computeStats(ctx context.Context, companyID string) (StatsResponse, error) {
	employeeCount, err := s.repo.CountActiveEmployees(ctx, companyID)
	if err != nil {
		s.logger.Error("stats count employees failed", zap.Error(err))
		return StatsResponse{}, err
	}

	claims, err := s.repo.FindClaimsByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("stats scan claims failed", zap.Error(err))
		return StatsResponse{}, err
	}

	financials, err := s.repo.FindFinancialsByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("stats scan financials failed", zap.Error(err))
		return StatsResponse{}, err
	}

	resp := StatsResponse{
		EmployeeCount: employeeCount,
		TotalClaims:   len(claims),
	}

	for _, c := range claims {
		resp.TotalClaimAmount += c.Amount
		switch c.Status {
		case statusSubmitted:
			resp.PendingClaims++
		case statusApproved:
			resp.ApprovedClaims++
			resp.ApprovedClaimAmount += c.Amount
		case statusRejected:
			resp.RejectedClaims++
		}
	}

	for _, f := range financials {
		switch f.TransactionType {
		case typePremiumPayment:
			resp.TotalPremiums += f.Amount
		case typeClaimPayout:
			resp.TotalPayouts += f.Amount
		}
	}

	resp.NetBalance = resp.TotalPremiums - resp.TotalPayouts

	return resp, nil
}
