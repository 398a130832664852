package auth

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	autherrors "go-benefits/internal/auth/errors"
	"go-benefits/internal/employee"
	"go-benefits/internal/identity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)

	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)

	GetMe(ctx context.Context, userID string) (*UserResponse, error)

	// Authenticate is the single admission gate for protected routes:
	// verify signature and expiry, then confirm the subject still exists.
	Authenticate(ctx context.Context, token string) (identity.Identity, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	s.logger.Debug("register requested",
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	var companyID *uuid.UUID
	if req.CompanyID != nil && *req.CompanyID != "" {
		cid, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return AuthResponse{}, autherrors.ErrInvalidUserID
		}
		companyID = &cid
	}

	user := &User{
		ID:        uuid.New(),
		Email:     req.Email,
		Password:  string(hashed),
		Name:      req.Name,
		Role:      req.Role,
		CompanyID: companyID,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.Error(err))
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	// User insert goes first: if the profile write fails, a user without
	// a profile is the recoverable state, not an orphaned profile.
	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, user); err != nil {
		s.logger.Warn("register persist user failed", zap.String("email", req.Email), zap.Error(err))
		return AuthResponse{}, mapCreateError(err)
	}

	if req.Role == identity.RoleEmployee && companyID != nil {
		profile := employee.DefaultProfile(user.ID, *companyID)
		if err := s.employeeRepo.WithTx(tx).Create(ctx, profile); err != nil {
			s.logger.Error("register auto-provision profile failed",
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
			return AuthResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.Error(err))
		return AuthResponse{}, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("register success",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        mapToUserResponse(user),
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	// Unknown email and wrong password yield the same error so callers
	// cannot probe which addresses are registered.
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()))

	return AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        mapToUserResponse(user),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToUserResponse(u)
	return &resp, nil
}

func (s *service) Authenticate(ctx context.Context, tokenString string) (identity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return identity.Identity{}, autherrors.ErrTokenExpired
		}
		return identity.Identity{}, autherrors.ErrInvalidToken
	}
	if !token.Valid {
		return identity.Identity{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return identity.Identity{}, autherrors.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return identity.Identity{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return identity.Identity{}, autherrors.ErrInvalidToken
	}

	// Role and company come from the stored user, not the claims: the
	// record is the source of truth if the two ever diverge.
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return identity.Identity{}, autherrors.ErrIdentityNotFound
	}

	id := identity.Identity{
		UserID: user.ID.String(),
		Role:   user.Role,
	}
	if user.CompanyID != nil {
		id.CompanyID = user.CompanyID.String()
	}
	return id, nil
}

func (s *service) generateToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	if user.CompanyID != nil {
		claims["company_id"] = user.CompanyID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToUserResponse(u *User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.CompanyID != nil {
		v := u.CompanyID.String()
		resp.CompanyID = &v
	}
	return resp
}
