package claimerrors

import (
	"net/http"

	"go-benefits/internal/shared/apperror"
)

var (
	ErrClaimNotFound = apperror.New(
		apperror.CodeNotFound,
		"claim not found",
		http.StatusNotFound,
	)
	ErrInvalidClaimID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid claim id",
		http.StatusBadRequest,
	)
)
