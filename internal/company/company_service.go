package company

import (
	"context"
	"errors"
	"time"

	companyerrors "go-benefits/internal/company/errors"
	"go-benefits/internal/identity"
	"go-benefits/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller identity.Identity, req CreateCompanyRequest) (CompanyResponse, error)
	GetAll(ctx context.Context, caller identity.Identity) ([]CompanyResponse, error)
	GetByID(ctx context.Context, caller identity.Identity, id string) (CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, caller identity.Identity, req CreateCompanyRequest) (CompanyResponse, error) {
	s.logger.Debug("create company requested",
		zap.String("actor_id", caller.UserID),
		zap.String("name", req.Name),
	)

	c := &Company{
		ID:            uuid.New(),
		Name:          req.Name,
		Industry:      req.Industry,
		EmployeeCount: req.EmployeeCount,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Address:       req.Address,
		PlanType:      req.PlanType,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create company persist failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	s.logger.Info("create company success", zap.String("company_id", c.ID.String()))

	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, caller identity.Identity) ([]CompanyResponse, error) {
	// Super admin sees the whole estate, everyone else only their own
	// company as a one-element list.
	if caller.IsSuperAdmin() {
		companies, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(companies), nil
	}

	if caller.CompanyID == "" {
		return []CompanyResponse{}, nil
	}

	c, err := s.repo.FindByID(ctx, caller.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []CompanyResponse{}, nil
		}
		return nil, err
	}
	return []CompanyResponse{mapToResponse(*c)}, nil
}

func (s *service) GetByID(ctx context.Context, caller identity.Identity, id string) (CompanyResponse, error) {
	if !caller.IsSuperAdmin() && caller.CompanyID != id {
		return CompanyResponse{}, apperror.ErrForbidden
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}

	return mapToResponse(*c), nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Industry:      c.Industry,
		EmployeeCount: c.EmployeeCount,
		ContactEmail:  c.ContactEmail,
		ContactPhone:  c.ContactPhone,
		Address:       c.Address,
		PlanType:      c.PlanType,
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(companies []Company) []CompanyResponse {
	resp := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = mapToResponse(c)
	}
	return resp
}
