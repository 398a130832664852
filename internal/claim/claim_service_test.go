package claim_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"go-benefits/internal/claim"
	claimerrors "go-benefits/internal/claim/errors"
	"go-benefits/internal/dashboard"
	"go-benefits/internal/employee"
	employeeerrors "go-benefits/internal/employee/errors"
	"go-benefits/internal/events"
	"go-benefits/internal/identity"
	"go-benefits/internal/messaging/kafka"
	"go-benefits/internal/shared/apperror"

	claimMock "go-benefits/internal/claim/mock"
	employeeMock "go-benefits/internal/employee/mock"
	kafkaMock "go-benefits/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type claimServiceDeps struct {
	db           *sql.DB
	sqlMock      sqlmock.Sqlmock
	service      claim.Service
	repo         *claimMock.MockRepository
	employeeRepo *employeeMock.MockRepository
	outbox       *kafkaMock.MockOutboxRepository
	redisMock    redismock.ClientMock
}

func setupClaimService(t *testing.T) *claimServiceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := claimMock.NewMockRepository(ctrl)
	employeeRepo := employeeMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := claim.NewServiceWithOutbox(db, repo, employeeRepo, outbox, rdb)

	return &claimServiceDeps{
		db:           db,
		sqlMock:      sqlMock,
		service:      svc,
		repo:         repo,
		employeeRepo: employeeRepo,
		outbox:       outbox,
		redisMock:    redisMock,
	}
}

func TestClaimService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	profile := &employee.Employee{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		CompanyID: companyID,
		Status:    employee.StatusActive,
	}
	caller := identity.Identity{
		UserID:    profile.UserID.String(),
		Role:      identity.RoleEmployee,
		CompanyID: companyID.String(),
	}

	t.Run("claim is stamped from the caller's profile", func(t *testing.T) {
		deps := setupClaimService(t)
		defer deps.db.Close()

		deps.employeeRepo.EXPECT().FindByUserID(ctx, caller.UserID).Return(profile, nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var created *claim.Claim
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *claim.Claim) error {
				created = c
				return nil
			})

		var queued kafka.OutboxEvent
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				queued = e
				return nil
			})

		deps.redisMock.ExpectDel(dashboard.StatsCacheKey(companyID.String())).SetVal(1)

		resp, err := deps.service.Create(ctx, caller, claim.CreateClaimRequest{
			ClaimType:   claim.TypeMedical,
			Amount:      420.50,
			Description: "Annual checkup",
			Documents:   []string{"receipt-1.pdf"},
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, profile.ID, created.EmployeeID)
		assert.Equal(t, companyID, created.CompanyID)
		assert.Equal(t, claim.StatusSubmitted, created.Status)
		assert.False(t, created.SubmissionDate.IsZero())
		assert.Equal(t, claim.StatusSubmitted, resp.Status)

		assert.Equal(t, events.ClaimLifecycleTopic, queued.Topic)
		assert.Equal(t, "claim_submitted", queued.EventType)
		assert.Equal(t, kafka.OutboxStatusPending, queued.Status)

		var event events.ClaimSubmittedEvent
		require.NoError(t, json.Unmarshal(queued.Payload, &event))
		assert.Equal(t, created.ID.String(), event.ClaimID)
		assert.Equal(t, companyID.String(), event.CompanyID)
		assert.InEpsilon(t, 420.50, event.Amount, 1e-9)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("missing profile is terminal", func(t *testing.T) {
		deps := setupClaimService(t)
		defer deps.db.Close()

		deps.employeeRepo.EXPECT().FindByUserID(ctx, caller.UserID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, caller, claim.CreateClaimRequest{
			ClaimType:   claim.TypeDental,
			Amount:      100,
			Description: "Cleaning",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrProfileNotFound)
	})
}

func TestClaimService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("employee sees only their own claims", func(t *testing.T) {
		deps := setupClaimService(t)
		defer deps.db.Close()

		profile := &employee.Employee{ID: uuid.New(), UserID: uuid.New(), CompanyID: companyID}
		caller := identity.Identity{
			UserID:    profile.UserID.String(),
			Role:      identity.RoleEmployee,
			CompanyID: companyID.String(),
		}

		deps.employeeRepo.EXPECT().FindByUserID(ctx, caller.UserID).Return(profile, nil)
		deps.repo.EXPECT().
			FindAllByEmployee(ctx, profile.ID.String()).
			Return([]claim.Claim{{ID: uuid.New(), EmployeeID: profile.ID, CompanyID: companyID, Status: claim.StatusSubmitted}}, nil)

		resp, err := deps.service.GetAll(ctx, caller)
		require.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("employee without profile gets an empty list", func(t *testing.T) {
		deps := setupClaimService(t)
		defer deps.db.Close()

		caller := identity.Identity{
			UserID:    uuid.NewString(),
			Role:      identity.RoleEmployee,
			CompanyID: companyID.String(),
		}
		deps.employeeRepo.EXPECT().FindByUserID(ctx, caller.UserID).Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.GetAll(ctx, caller)
		require.NoError(t, err)
		assert.Empty(t, resp)
		assert.NotNil(t, resp)
	})

	t.Run("hr manager sees the whole company", func(t *testing.T) {
		deps := setupClaimService(t)
		defer deps.db.Close()

		caller := identity.Identity{
			UserID:    uuid.NewString(),
			Role:      identity.RoleHRManager,
			CompanyID: companyID.String(),
		}
		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID.String()).
			Return([]claim.Claim{{ID: uuid.New(), CompanyID: companyID}, {ID: uuid.New(), CompanyID: companyID}}, nil)

		resp, err := deps.service.GetAll(ctx, caller)
		require.NoError(t, err)
		assert.Len(t, resp, 2)
	})
}

func TestClaimService_GetByID(t *testing.T) {
	ctx := context.Background()
	companyA := uuid.New()
	record := &claim.Claim{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		CompanyID:  companyA,
		Status:     claim.StatusSubmitted,
	}

	t.Run("cross tenant read is forbidden", func(t *testing.T) {
		deps := setupClaimService(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, record.ID.String()).Return(record, nil)

		_, err := deps.service.GetByID(ctx, identity.Identity{
			UserID:    uuid.NewString(),
			Role:      identity.RoleCompanyAdmin,
			CompanyID: uuid.NewString(),
		}, record.ID.String())

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("employee cannot read a colleague's claim", func(t *testing.T) {
		deps := setupClaimService(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, record.ID.String()).Return(record, nil)

		otherProfile := &employee.Employee{ID: uuid.New(), UserID: uuid.New(), CompanyID: companyA}
		caller := identity.Identity{
			UserID:    otherProfile.UserID.String(),
			Role:      identity.RoleEmployee,
			CompanyID: companyA.String(),
		}
		deps.employeeRepo.EXPECT().FindByUserID(ctx, caller.UserID).Return(otherProfile, nil)

		_, err := deps.service.GetByID(ctx, caller, record.ID.String())
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("missing claim is not found", func(t *testing.T) {
		deps := setupClaimService(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, identity.Identity{
			UserID: uuid.NewString(),
			Role:   identity.RoleSuperAdmin,
		}, "missing")

		assert.ErrorIs(t, err, claimerrors.ErrClaimNotFound)
	})
}

func TestClaimService_Review(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	reviewer := identity.Identity{
		UserID:    uuid.NewString(),
		Role:      identity.RoleHRManager,
		CompanyID: companyID.String(),
	}

	t.Run("review stamps the reviewer on every call", func(t *testing.T) {
		deps := setupClaimService(t)
		defer deps.db.Close()

		record := &claim.Claim{
			ID:         uuid.New(),
			EmployeeID: uuid.New(),
			CompanyID:  companyID,
			Status:     claim.StatusSubmitted,
			Amount:     300,
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), record.ID.String()).Return(record, nil)

		var updated *claim.Claim
		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *claim.Claim) error {
				updated = c
				return nil
			})

		var queued kafka.OutboxEvent
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				queued = e
				return nil
			})

		deps.redisMock.ExpectDel(dashboard.StatsCacheKey(companyID.String())).SetVal(1)

		notes := "looks legitimate"
		resp, err := deps.service.Review(ctx, reviewer, record.ID.String(), claim.ReviewClaimRequest{
			Status:        claim.StatusApproved,
			ReviewerNotes: &notes,
		})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, claim.StatusApproved, updated.Status)
		require.NotNil(t, updated.ReviewedBy)
		assert.Equal(t, reviewer.UserID, updated.ReviewedBy.String())
		require.NotNil(t, updated.ReviewDate)
		assert.Equal(t, claim.StatusApproved, resp.Status)

		assert.Equal(t, "claim_reviewed", queued.EventType)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("missing claim is not found", func(t *testing.T) {
		deps := setupClaimService(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Review(ctx, reviewer, "missing", claim.ReviewClaimRequest{
			Status: claim.StatusRejected,
		})

		assert.ErrorIs(t, err, claimerrors.ErrClaimNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
