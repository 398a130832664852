package autherrors

import (
	"net/http"

	"go-benefits/internal/shared/apperror"
)

var (
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"email already registered",
		http.StatusConflict,
	)
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid email or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"token has expired",
		http.StatusUnauthorized,
	)
	ErrIdentityNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"user no longer exists",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"could not generate token",
		http.StatusInternalServerError,
	)
)
