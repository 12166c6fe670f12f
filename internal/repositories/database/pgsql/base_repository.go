package pgsql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cbfacademy/iou_api/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// wrapWriteError tags errors caused by the data itself with apperrors.ErrValidation.
// SQLSTATE class 22 is "data exception", class 23 "integrity constraint violation".
func wrapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")) {
		return fmt.Errorf("%s: %w: %s", op, apperrors.ErrValidation, pgErr.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}
