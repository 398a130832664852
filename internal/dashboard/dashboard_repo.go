package dashboard

import (
	"context"

	"go-benefits/internal/tenant"

	"gorm.io/gorm"
)

// ClaimRow and FinancialRow are the projections the aggregator needs; the
// dashboard reads the claim and financial tables directly instead of
// depending on those modules.
type ClaimRow struct {
	Status string
	Amount float64
}

type FinancialRow struct {
	TransactionType string
	Amount          float64
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountActiveEmployees(ctx context.Context, companyID string) (int64, error)
	FindClaimsByCompany(ctx context.Context, companyID string) ([]ClaimRow, error)
	FindFinancialsByCompany(ctx context.Context, companyID string) ([]FinancialRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountActiveEmployees(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", "active").
		Count(&count).Error
	return count, err
}

func (r *repository) FindClaimsByCompany(ctx context.Context, companyID string) ([]ClaimRow, error) {
	var rows []ClaimRow
	err := r.db.WithContext(ctx).
		Table("claims").
		Select("status", "amount").
		Scopes(tenant.Scope(companyID)).
		Limit(tenant.ScanCap).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindFinancialsByCompany(ctx context.Context, companyID string) ([]FinancialRow, error) {
	var rows []FinancialRow
	err := r.db.WithContext(ctx).
		Table("financials").
		Select("transaction_type", "amount").
		Scopes(tenant.Scope(companyID)).
		Limit(tenant.ScanCap).
		Find(&rows).Error
	return rows, err
}
