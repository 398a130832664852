package company_test

import (
	"context"
	"testing"

	"go-benefits/internal/company"
	companyerrors "go-benefits/internal/company/errors"
	"go-benefits/internal/identity"
	"go-benefits/internal/shared/apperror"

	companyMock "go-benefits/internal/company/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupCompanyService(t *testing.T) (*companyMock.MockRepository, company.Service) {
	ctrl := gomock.NewController(t)
	repo := companyMock.NewMockRepository(ctrl)
	return repo, company.NewService(repo)
}

func TestCompanyService_Create(t *testing.T) {
	ctx := context.Background()
	superAdmin := identity.Identity{UserID: uuid.NewString(), Role: identity.RoleSuperAdmin}

	repo, svc := setupCompanyService(t)

	var created *company.Company
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *company.Company) error {
			created = c
			return nil
		})

	resp, err := svc.Create(ctx, superAdmin, company.CreateCompanyRequest{
		Name:          "Acme Benefits",
		Industry:      "Manufacturing",
		EmployeeCount: 250,
		ContactEmail:  "hq@acme.test",
		ContactPhone:  "555-0100",
		Address:       "1 Main St",
		PlanType:      company.PlanPremium,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, company.PlanPremium, resp.PlanType)
}

func TestCompanyService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("super admin sees every company", func(t *testing.T) {
		repo, svc := setupCompanyService(t)
		repo.EXPECT().FindAll(ctx).Return([]company.Company{
			{ID: uuid.New(), Name: "A"},
			{ID: uuid.New(), Name: "B"},
		}, nil)

		resp, err := svc.GetAll(ctx, identity.Identity{UserID: uuid.NewString(), Role: identity.RoleSuperAdmin})
		require.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("scoped caller sees own company as a one-element list", func(t *testing.T) {
		repo, svc := setupCompanyService(t)
		repo.EXPECT().FindByID(ctx, companyID.String()).Return(&company.Company{ID: companyID, Name: "Acme"}, nil)

		resp, err := svc.GetAll(ctx, identity.Identity{
			UserID:    uuid.NewString(),
			Role:      identity.RoleEmployee,
			CompanyID: companyID.String(),
		})
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, companyID.String(), resp[0].ID)
	})

	t.Run("scoped caller whose company vanished gets an empty list", func(t *testing.T) {
		repo, svc := setupCompanyService(t)
		repo.EXPECT().FindByID(ctx, companyID.String()).Return(nil, gorm.ErrRecordNotFound)

		resp, err := svc.GetAll(ctx, identity.Identity{
			UserID:    uuid.NewString(),
			Role:      identity.RoleHRManager,
			CompanyID: companyID.String(),
		})
		require.NoError(t, err)
		assert.Empty(t, resp)
		assert.NotNil(t, resp)
	})
}

func TestCompanyService_GetByID(t *testing.T) {
	ctx := context.Background()
	companyA := uuid.New()
	companyB := uuid.New()

	t.Run("cross tenant read is forbidden before any lookup", func(t *testing.T) {
		repo, svc := setupCompanyService(t)
		repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.GetByID(ctx, identity.Identity{
			UserID:    uuid.NewString(),
			Role:      identity.RoleCompanyAdmin,
			CompanyID: companyA.String(),
		}, companyB.String())

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("super admin reads any company", func(t *testing.T) {
		repo, svc := setupCompanyService(t)
		repo.EXPECT().FindByID(ctx, companyB.String()).Return(&company.Company{ID: companyB}, nil)

		resp, err := svc.GetByID(ctx, identity.Identity{
			UserID: uuid.NewString(),
			Role:   identity.RoleSuperAdmin,
		}, companyB.String())

		require.NoError(t, err)
		assert.Equal(t, companyB.String(), resp.ID)
	})

	t.Run("missing company is not found", func(t *testing.T) {
		repo, svc := setupCompanyService(t)
		repo.EXPECT().FindByID(ctx, companyA.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, identity.Identity{
			UserID: uuid.NewString(),
			Role:   identity.RoleSuperAdmin,
		}, companyA.String())

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}
