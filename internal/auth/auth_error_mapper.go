package auth

import (
	"errors"
	"strings"

	autherrors "go-benefits/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapCreateError turns the users email unique-index violation into the
// domain conflict error. The index is the authority for duplicates: two
// concurrent registrations race past any existence check, only one insert
// wins.
func mapCreateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_user_email" {
			return autherrors.ErrEmailAlreadyRegistered
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_user_email") {
		return autherrors.ErrEmailAlreadyRegistered
	}

	return err
}
