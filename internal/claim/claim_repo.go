package claim

import (
	"context"
	"database/sql"

	"go-benefits/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=claim_repo.go -destination=mock/claim_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Claim) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Claim, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Claim, error)
	FindByID(ctx context.Context, id string) (*Claim, error)
	Update(ctx context.Context, c *Claim) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, c *Claim) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Claim, error) {
	var claims []Claim
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("submission_date DESC").
		Limit(tenant.ScanCap).
		Find(&claims).Error
	return claims, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Claim, error) {
	var claims []Claim
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("submission_date DESC").
		Limit(tenant.ScanCap).
		Find(&claims).Error
	return claims, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Claim, error) {
	var c Claim
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Claim) error {
	return r.db.WithContext(ctx).Save(c).Error
}
