package wellness

import (
	"context"
	"errors"

	wellnesserrors "go-benefits/internal/wellness/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=wellness_service.go -destination=mock/wellness_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePartnerRequest) (PartnerResponse, error)
	GetAll(ctx context.Context) ([]PartnerResponse, error)
	GetByID(ctx context.Context, id string) (PartnerResponse, error)
	Update(ctx context.Context, id string, req UpdatePartnerRequest) (PartnerResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("wellness.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wellness.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePartnerRequest) (PartnerResponse, error) {
	p := &Partner{
		ID:           uuid.New(),
		Name:         req.Name,
		ServiceType:  req.ServiceType,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Availability: req.Availability,
		Pricing:      req.Pricing,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create wellness partner failed", zap.Error(err))
		return PartnerResponse{}, err
	}

	s.logger.Info("create wellness partner success",
		zap.String("partner_id", p.ID.String()),
		zap.String("service_type", p.ServiceType),
	)

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PartnerResponse, error) {
	partners, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PartnerResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PartnerResponse{}, wellnesserrors.ErrPartnerNotFound
		}
		return PartnerResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePartnerRequest) (PartnerResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PartnerResponse{}, wellnesserrors.ErrPartnerNotFound
		}
		return PartnerResponse{}, err
	}

	p.Name = req.Name
	p.ServiceType = req.ServiceType
	p.Description = req.Description
	p.ContactEmail = req.ContactEmail
	p.ContactPhone = req.ContactPhone
	p.Availability = req.Availability
	p.Pricing = req.Pricing

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update wellness partner failed", zap.String("partner_id", id), zap.Error(err))
		return PartnerResponse{}, err
	}

	s.logger.Info("update wellness partner success", zap.String("partner_id", id))

	return mapToResponse(*p), nil
}

func mapToResponse(p Partner) PartnerResponse {
	return PartnerResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		ServiceType:  p.ServiceType,
		Description:  p.Description,
		ContactEmail: p.ContactEmail,
		ContactPhone: p.ContactPhone,
		Availability: p.Availability,
		Pricing:      p.Pricing,
	}
}
