package financial_test

import (
	"context"
	"testing"

	"go-benefits/internal/dashboard"
	"go-benefits/internal/financial"
	financialerrors "go-benefits/internal/financial/errors"
	"go-benefits/internal/identity"

	financialMock "go-benefits/internal/financial/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFinancialService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	caller := identity.Identity{
		UserID:    uuid.NewString(),
		Role:      identity.RoleCompanyAdmin,
		CompanyID: companyID.String(),
	}

	t.Run("transaction is booked against the caller's company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := financialMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := financial.NewService(repo, rdb)

		var created *financial.Financial
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f *financial.Financial) error {
				created = f
				return nil
			})
		redisMock.ExpectDel(dashboard.StatsCacheKey(companyID.String())).SetVal(1)

		resp, err := svc.Create(ctx, caller, financial.CreateFinancialRequest{
			TransactionType: financial.TypePremiumPayment,
			Amount:          1500,
			Description:     "September premium batch",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, companyID, created.CompanyID)
		assert.False(t, created.TransactionDate.IsZero())
		assert.Equal(t, companyID.String(), resp.CompanyID)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("no company scope, nothing to book against", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := financialMock.NewMockRepository(ctrl)
		svc := financial.NewService(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(ctx, identity.Identity{
			UserID: uuid.NewString(),
			Role:   identity.RoleSuperAdmin,
		}, financial.CreateFinancialRequest{
			TransactionType: financial.TypeClaimPayout,
			Amount:          200,
		})

		assert.ErrorIs(t, err, financialerrors.ErrInvalidCompanyScope)
	})
}

func TestFinancialService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	caller := identity.Identity{
		UserID:    uuid.NewString(),
		Role:      identity.RoleHRManager,
		CompanyID: companyID.String(),
	}

	t.Run("listing stays inside the caller's company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := financialMock.NewMockRepository(ctrl)
		svc := financial.NewService(repo, nil)

		repo.EXPECT().FindAllByCompany(ctx, companyID.String()).Return([]financial.Financial{
			{ID: uuid.New(), CompanyID: companyID, TransactionType: financial.TypePremiumPayment, Amount: 1000},
			{ID: uuid.New(), CompanyID: companyID, TransactionType: financial.TypeClaimPayout, Amount: 300},
		}, nil)

		resp, err := svc.GetAll(ctx, caller)
		require.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, financial.TypePremiumPayment, resp[0].TransactionType)
	})

	t.Run("empty ledger is an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := financialMock.NewMockRepository(ctrl)
		svc := financial.NewService(repo, nil)

		repo.EXPECT().FindAllByCompany(ctx, companyID.String()).Return([]financial.Financial{}, nil)

		resp, err := svc.GetAll(ctx, caller)
		require.NoError(t, err)
		assert.Empty(t, resp)
		assert.NotNil(t, resp)
	})
}
