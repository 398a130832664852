package financialerrors

import (
	"net/http"

	"go-benefits/internal/shared/apperror"
)

var ErrInvalidCompanyScope = apperror.New(
	apperror.CodeForbidden,
	"caller has no company scope",
	http.StatusForbidden,
)
