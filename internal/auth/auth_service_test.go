package auth_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-benefits/internal/auth"
	autherrors "go-benefits/internal/auth/errors"
	"go-benefits/internal/employee"
	"go-benefits/internal/identity"

	authMock "go-benefits/internal/auth/mock"
	employeeMock "go-benefits/internal/employee/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type serviceDeps struct {
	db           *sql.DB
	sqlMock      sqlmock.Sqlmock
	service      auth.Service
	repo         *authMock.MockRepository
	employeeRepo *employeeMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := authMock.NewMockRepository(ctrl)
	employeeRepo := employeeMock.NewMockRepository(ctrl)

	svc := auth.NewService(db, repo, employeeRepo)

	return &serviceDeps{
		db:           db,
		sqlMock:      sqlMock,
		service:      svc,
		repo:         repo,
		employeeRepo: employeeRepo,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("employee registration provisions a profile in the same transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var createdUser *auth.User
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *auth.User) error {
				createdUser = u
				return nil
			})

		var createdProfile *employee.Employee
		deps.employeeRepo.EXPECT().WithTx(gomock.Any()).Return(deps.employeeRepo)
		deps.employeeRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				createdProfile = e
				return nil
			})

		resp, err := deps.service.Register(ctx, auth.RegisterRequest{
			Email:     "worker@acme.test",
			Password:  "secret123",
			Name:      "Worker",
			Role:      identity.RoleEmployee,
			CompanyID: &companyID,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, identity.RoleEmployee, resp.User.Role)

		require.NotNil(t, createdUser)
		require.NotNil(t, createdProfile)
		assert.Equal(t, createdUser.ID, createdProfile.UserID)
		assert.Equal(t, companyID, createdProfile.CompanyID.String())
		assert.Equal(t, "General", createdProfile.Department)
		assert.Equal(t, "Employee", createdProfile.Designation)
		assert.Equal(t, employee.StatusActive, createdProfile.Status)
		assert.Regexp(t, `^EMP-[0-9A-F]{8}$`, createdProfile.EmployeeCode)

		// password is stored hashed, never verbatim
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.Password), []byte("secret123")))

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("admin registration skips profile provisioning", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.employeeRepo.EXPECT().WithTx(gomock.Any()).Times(0)

		resp, err := deps.service.Register(ctx, auth.RegisterRequest{
			Email:     "admin@acme.test",
			Password:  "secret123",
			Name:      "Admin",
			Role:      identity.RoleCompanyAdmin,
			CompanyID: &companyID,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate email maps to conflict and rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_user_email",
		})

		_, err := deps.service.Register(ctx, auth.RegisterRequest{
			Email:    "taken@acme.test",
			Password: "secret123",
			Name:     "Taken",
			Role:     identity.RoleCompanyAdmin,
		})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("profile write failure rolls the user back too", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.employeeRepo.EXPECT().WithTx(gomock.Any()).Return(deps.employeeRepo)
		deps.employeeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := deps.service.Register(ctx, auth.RegisterRequest{
			Email:     "worker@acme.test",
			Password:  "secret123",
			Name:      "Worker",
			Role:      identity.RoleEmployee,
			CompanyID: &companyID,
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &auth.User{
		ID:       uuid.New(),
		Email:    "worker@acme.test",
		Password: string(hashed),
		Name:     "Worker",
		Role:     identity.RoleEmployee,
	}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().GetByEmail(ctx, "worker@acme.test").Return(user, nil)

		resp, err := deps.service.Login(ctx, auth.LoginRequest{
			Email:    "worker@acme.test",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, user.ID.String(), resp.User.ID)
	})

	t.Run("wrong password and unknown email yield the same error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().GetByEmail(ctx, "worker@acme.test").Return(user, nil)
		_, errWrongPass := deps.service.Login(ctx, auth.LoginRequest{
			Email:    "worker@acme.test",
			Password: "not-it",
		})

		deps.repo.EXPECT().GetByEmail(ctx, "ghost@acme.test").Return(nil, errors.New("record not found"))
		_, errUnknown := deps.service.Login(ctx, auth.LoginRequest{
			Email:    "ghost@acme.test",
			Password: "secret123",
		})

		assert.ErrorIs(t, errWrongPass, autherrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("round trip from login token to identity", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
		user := &auth.User{
			ID:        uuid.New(),
			Email:     "hr@acme.test",
			Password:  string(hashed),
			Name:      "HR",
			Role:      identity.RoleHRManager,
			CompanyID: &companyID,
		}

		deps.repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
		resp, err := deps.service.Login(ctx, auth.LoginRequest{Email: user.Email, Password: "secret123"})
		require.NoError(t, err)

		deps.repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		id, err := deps.service.Authenticate(ctx, resp.AccessToken)
		require.NoError(t, err)

		assert.Equal(t, user.ID.String(), id.UserID)
		assert.Equal(t, identity.RoleHRManager, id.Role)
		assert.Equal(t, companyID.String(), id.CompanyID)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Authenticate(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("deleted subject is rejected even with a valid token", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
		user := &auth.User{
			ID:       uuid.New(),
			Email:    "gone@acme.test",
			Password: string(hashed),
			Role:     identity.RoleEmployee,
		}

		deps.repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
		resp, err := deps.service.Login(ctx, auth.LoginRequest{Email: user.Email, Password: "secret123"})
		require.NoError(t, err)

		deps.repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(nil, errors.New("record not found"))
		_, err = deps.service.Authenticate(ctx, resp.AccessToken)
		assert.ErrorIs(t, err, autherrors.ErrIdentityNotFound)
	})
}
