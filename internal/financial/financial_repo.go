package financial

import (
	"context"

	"go-benefits/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=financial_repo.go -destination=mock/financial_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, f *Financial) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Financial, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *Financial) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Financial, error) {
	var financials []Financial
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("transaction_date DESC").
		Limit(tenant.ScanCap).
		Find(&financials).Error
	return financials, err
}
