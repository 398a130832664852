package bookingerrors

import (
	"net/http"

	"go-benefits/internal/shared/apperror"
)

var (
	ErrBookingNotFound = apperror.New(
		apperror.CodeNotFound,
		"booking not found",
		http.StatusNotFound,
	)
	ErrInvalidBookingID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid booking id",
		http.StatusBadRequest,
	)
	ErrInvalidPartnerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid partner id",
		http.StatusBadRequest,
	)
)
