package booking

import (
	"context"

	"go-benefits/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=booking_repo.go -destination=mock/booking_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Booking, error)
	FindByID(ctx context.Context, id string) (*Booking, error)
	Update(ctx context.Context, b *Booking) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("booking_date DESC, booking_time DESC").
		Limit(tenant.ScanCap).
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Update(ctx context.Context, b *Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}
