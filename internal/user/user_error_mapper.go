package user

import (
	"errors"
	"strings"

	usererrors "github.com/code-hero23/peopledesk-sub002/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_users_email" {
			return usererrors.ErrUserAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_users_email") {
		return usererrors.ErrUserAlreadyExists
	}
	if strings.Contains(errMsg, "unique constraint failed") && strings.Contains(errMsg, "users.email") {
		return usererrors.ErrUserAlreadyExists
	}

	return err
}
