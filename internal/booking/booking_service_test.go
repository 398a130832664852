package booking_test

import (
	"context"
	"testing"

	"go-benefits/internal/booking"
	bookingerrors "go-benefits/internal/booking/errors"
	"go-benefits/internal/employee"
	employeeerrors "go-benefits/internal/employee/errors"
	"go-benefits/internal/identity"

	bookingMock "go-benefits/internal/booking/mock"
	employeeMock "go-benefits/internal/employee/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupBookingService(t *testing.T) (*bookingMock.MockRepository, *employeeMock.MockRepository, booking.Service) {
	ctrl := gomock.NewController(t)
	repo := bookingMock.NewMockRepository(ctrl)
	employeeRepo := employeeMock.NewMockRepository(ctrl)
	return repo, employeeRepo, booking.NewService(repo, employeeRepo)
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	profile := &employee.Employee{ID: uuid.New(), UserID: uuid.New(), CompanyID: companyID}
	caller := identity.Identity{
		UserID:    profile.UserID.String(),
		Role:      identity.RoleEmployee,
		CompanyID: companyID.String(),
	}
	partnerID := uuid.New()

	t.Run("booking is stamped with the caller's profile", func(t *testing.T) {
		repo, employeeRepo, svc := setupBookingService(t)
		employeeRepo.EXPECT().FindByUserID(ctx, caller.UserID).Return(profile, nil)

		var created *booking.Booking
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				created = b
				return nil
			})

		resp, err := svc.Create(ctx, caller, booking.CreateBookingRequest{
			PartnerID:   partnerID.String(),
			ServiceType: "gym",
			BookingDate: "2026-10-01",
			BookingTime: "10:00",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, profile.ID, created.EmployeeID)
		assert.Equal(t, partnerID, created.PartnerID)
		assert.Equal(t, booking.StatusScheduled, created.Status)
		assert.Equal(t, booking.StatusScheduled, resp.Status)
	})

	t.Run("missing profile is terminal", func(t *testing.T) {
		repo, employeeRepo, svc := setupBookingService(t)
		employeeRepo.EXPECT().FindByUserID(ctx, caller.UserID).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(ctx, caller, booking.CreateBookingRequest{
			PartnerID:   partnerID.String(),
			ServiceType: "gym",
			BookingDate: "2026-10-01",
			BookingTime: "10:00",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrProfileNotFound)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	profile := &employee.Employee{ID: uuid.New(), UserID: uuid.New(), CompanyID: companyID}
	caller := identity.Identity{
		UserID:    profile.UserID.String(),
		Role:      identity.RoleEmployee,
		CompanyID: companyID.String(),
	}

	t.Run("only the caller's bookings come back", func(t *testing.T) {
		repo, employeeRepo, svc := setupBookingService(t)
		employeeRepo.EXPECT().FindByUserID(ctx, caller.UserID).Return(profile, nil)
		repo.EXPECT().FindAllByEmployee(ctx, profile.ID.String()).Return([]booking.Booking{
			{ID: uuid.New(), EmployeeID: profile.ID, PartnerID: uuid.New(), Status: booking.StatusScheduled},
		}, nil)

		resp, err := svc.GetAll(ctx, caller)
		require.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("no profile means empty list, not error", func(t *testing.T) {
		_, employeeRepo, svc := setupBookingService(t)
		employeeRepo.EXPECT().FindByUserID(ctx, caller.UserID).Return(nil, gorm.ErrRecordNotFound)

		resp, err := svc.GetAll(ctx, caller)
		require.NoError(t, err)
		assert.Empty(t, resp)
		assert.NotNil(t, resp)
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	profile := &employee.Employee{ID: uuid.New(), UserID: uuid.New(), CompanyID: companyID}
	caller := identity.Identity{
		UserID:    profile.UserID.String(),
		Role:      identity.RoleEmployee,
		CompanyID: companyID.String(),
	}

	t.Run("owner moves a booking through its lifecycle", func(t *testing.T) {
		repo, employeeRepo, svc := setupBookingService(t)
		record := &booking.Booking{ID: uuid.New(), EmployeeID: profile.ID, Status: booking.StatusScheduled}

		employeeRepo.EXPECT().FindByUserID(ctx, caller.UserID).Return(profile, nil)
		repo.EXPECT().FindByID(ctx, record.ID.String()).Return(record, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := svc.UpdateStatus(ctx, caller, record.ID.String(), booking.UpdateBookingStatusRequest{
			Status: booking.StatusCancelled,
		})

		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, resp.Status)
	})

	t.Run("someone else's booking reads as missing", func(t *testing.T) {
		repo, employeeRepo, svc := setupBookingService(t)
		record := &booking.Booking{ID: uuid.New(), EmployeeID: uuid.New(), Status: booking.StatusScheduled}

		employeeRepo.EXPECT().FindByUserID(ctx, caller.UserID).Return(profile, nil)
		repo.EXPECT().FindByID(ctx, record.ID.String()).Return(record, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.UpdateStatus(ctx, caller, record.ID.String(), booking.UpdateBookingStatusRequest{
			Status: booking.StatusCompleted,
		})

		assert.ErrorIs(t, err, bookingerrors.ErrBookingNotFound)
	})
}
