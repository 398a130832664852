package company

import (
	"context"

	"go-benefits/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *Company) error
	FindAll(ctx context.Context) ([]Company, error)
	FindByID(ctx context.Context, id string) (*Company, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(tenant.ScanCap).
		Find(&companies).Error
	return companies, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
