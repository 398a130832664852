package wellness

import (
	"context"

	"go-benefits/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=wellness_repo.go -destination=mock/wellness_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Partner) error
	FindAll(ctx context.Context) ([]Partner, error)
	FindByID(ctx context.Context, id string) (*Partner, error)
	Update(ctx context.Context, p *Partner) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Partner) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Partner, error) {
	var partners []Partner
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(tenant.ScanCap).
		Find(&partners).Error
	return partners, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Partner, error) {
	var p Partner
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Partner) error {
	return r.db.WithContext(ctx).Save(p).Error
}
