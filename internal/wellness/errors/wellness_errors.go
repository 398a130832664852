package wellnesserrors

import (
	"net/http"

	"go-benefits/internal/shared/apperror"
)

var (
	ErrPartnerNotFound = apperror.New(
		apperror.CodeNotFound,
		"wellness partner not found",
		http.StatusNotFound,
	)
	ErrInvalidPartnerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid wellness partner id",
		http.StatusBadRequest,
	)
)
