package booking

import (
	"context"
	"errors"

	bookingerrors "go-benefits/internal/booking/errors"
	"go-benefits/internal/employee"
	employeeerrors "go-benefits/internal/employee/errors"
	"go-benefits/internal/identity"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=booking_service.go -destination=mock/booking_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller identity.Identity, req CreateBookingRequest) (BookingResponse, error)
	GetAll(ctx context.Context, caller identity.Identity) ([]BookingResponse, error)
	UpdateStatus(ctx context.Context, caller identity.Identity, id string, req UpdateBookingStatusRequest) (BookingResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("booking.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("booking.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Create(ctx context.Context, caller identity.Identity, req CreateBookingRequest) (BookingResponse, error) {
	// Bookings are always filed against the caller's own profile,
	// whatever the role. Missing profile is terminal; provisioning only
	// happens at registration.
	profile, err := s.employeeRepo.FindByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("create booking without profile", zap.String("user_id", caller.UserID))
			return BookingResponse{}, employeeerrors.ErrProfileNotFound
		}
		return BookingResponse{}, err
	}

	// partner_id is stored as given. There is no existence check against
	// the partner catalog.
	partnerID, err := uuid.Parse(req.PartnerID)
	if err != nil {
		return BookingResponse{}, bookingerrors.ErrInvalidPartnerID
	}

	b := &Booking{
		ID:          uuid.New(),
		EmployeeID:  profile.ID,
		PartnerID:   partnerID,
		ServiceType: req.ServiceType,
		BookingDate: req.BookingDate,
		BookingTime: req.BookingTime,
		Status:      StatusScheduled,
		Notes:       req.Notes,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.Error("create booking persist failed", zap.Error(err))
		return BookingResponse{}, err
	}

	s.logger.Info("create booking success",
		zap.String("booking_id", b.ID.String()),
		zap.String("employee_id", b.EmployeeID.String()),
		zap.String("partner_id", b.PartnerID.String()),
	)

	return mapToResponse(*b), nil
}

func (s *service) GetAll(ctx context.Context, caller identity.Identity) ([]BookingResponse, error) {
	// Everyone, admins included, only sees bookings filed under their
	// own profile. No profile means an empty list, not an error.
	profile, err := s.employeeRepo.FindByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []BookingResponse{}, nil
		}
		return nil, err
	}

	bookings, err := s.repo.FindAllByEmployee(ctx, profile.ID.String())
	if err != nil {
		return nil, err
	}

	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = mapToResponse(b)
	}
	return resp, nil
}

func (s *service) UpdateStatus(ctx context.Context, caller identity.Identity, id string, req UpdateBookingStatusRequest) (BookingResponse, error) {
	profile, err := s.employeeRepo.FindByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BookingResponse{}, employeeerrors.ErrProfileNotFound
		}
		return BookingResponse{}, err
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BookingResponse{}, bookingerrors.ErrBookingNotFound
		}
		return BookingResponse{}, err
	}

	// Only the owner may move a booking through its lifecycle.
	if b.EmployeeID != profile.ID {
		return BookingResponse{}, bookingerrors.ErrBookingNotFound
	}

	b.Status = req.Status
	if err := s.repo.Update(ctx, b); err != nil {
		s.logger.Error("update booking status failed", zap.String("booking_id", id), zap.Error(err))
		return BookingResponse{}, err
	}

	s.logger.Info("update booking status success",
		zap.String("booking_id", id),
		zap.String("status", b.Status),
	)

	return mapToResponse(*b), nil
}

func mapToResponse(b Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID.String(),
		EmployeeID:  b.EmployeeID.String(),
		PartnerID:   b.PartnerID.String(),
		ServiceType: b.ServiceType,
		BookingDate: b.BookingDate,
		BookingTime: b.BookingTime,
		Status:      b.Status,
		Notes:       b.Notes,
	}
}
