package attendance

import (
	"errors"
	"strings"

	attendanceerrors "github.com/code-hero23/peopledesk-sub002/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_attendance_user_date":
			return attendanceerrors.ErrAlreadyCheckedIn
		case "uq_break_logs_open":
			return attendanceerrors.ErrBreakAlreadyOpen
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint failed") {
		if strings.Contains(errMsg, "attendance_records.") {
			return attendanceerrors.ErrAlreadyCheckedIn
		}
		if strings.Contains(errMsg, "break_logs.") {
			return attendanceerrors.ErrBreakAlreadyOpen
		}
	}

	return err
}
