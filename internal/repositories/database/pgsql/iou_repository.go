package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbfacademy/iou_api/internal/apperrors"
	"github.com/cbfacademy/iou_api/internal/core/domain"
	portsrepo "github.com/cbfacademy/iou_api/internal/core/ports/repositories"
	"github.com/cbfacademy/iou_api/internal/models"
	"github.com/cbfacademy/iou_api/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const iouColumns = `id, borrower, lender, amount, created_at`

type PgxIOURepository struct {
	BaseRepository
}

// newPgxIOURepository creates a new repository for IOU data.
func newPgxIOURepository(pool *pgxpool.Pool) portsrepo.IOURepositoryFacade {
	return &PgxIOURepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.IOURepositoryFacade = (*PgxIOURepository)(nil)

// SaveIOU inserts a new IOU or overwrites borrower, lender and amount of an existing one.
// created_at is only ever written on insert.
func (r *PgxIOURepository) SaveIOU(ctx context.Context, iou domain.IOU) (*domain.IOU, error) {
	modelIOU := mapping.ToModelIOU(iou)
	if modelIOU.ID == uuid.Nil {
		modelIOU.ID = uuid.New()
	}

	var createdAt *time.Time
	if !modelIOU.CreatedAt.IsZero() {
		t := modelIOU.CreatedAt.UTC()
		createdAt = &t
	}

	query := `
		INSERT INTO ious (id, borrower, lender, amount, created_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
		ON CONFLICT (id) DO UPDATE SET
			borrower = EXCLUDED.borrower,
			lender = EXCLUDED.lender,
			amount = EXCLUDED.amount
		RETURNING ` + iouColumns + `;
	`

	var saved models.IOU
	err := r.Pool.QueryRow(ctx, query,
		modelIOU.ID,
		modelIOU.Borrower,
		modelIOU.Lender,
		modelIOU.Amount,
		createdAt,
	).Scan(
		&saved.ID,
		&saved.Borrower,
		&saved.Lender,
		&saved.Amount,
		&saved.CreatedAt,
	)
	if err != nil {
		return nil, wrapWriteError(fmt.Sprintf("failed to save IOU %s", modelIOU.ID), err)
	}

	domainIOU := mapping.ToDomainIOU(saved)
	return &domainIOU, nil
}

// FindIOUByID retrieves an IOU by its ID.
func (r *PgxIOURepository) FindIOUByID(ctx context.Context, id uuid.UUID) (*domain.IOU, error) {
	query := `SELECT ` + iouColumns + ` FROM ious WHERE id = $1;`

	var modelIOU models.IOU
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&modelIOU.ID,
		&modelIOU.Borrower,
		&modelIOU.Lender,
		&modelIOU.Amount,
		&modelIOU.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find IOU by ID %s: %w", id, err)
	}

	domainIOU := mapping.ToDomainIOU(modelIOU)
	return &domainIOU, nil
}

// FindIOUs retrieves all IOUs.
func (r *PgxIOURepository) FindIOUs(ctx context.Context) ([]domain.IOU, error) {
	query := `SELECT ` + iouColumns + ` FROM ious ORDER BY created_at DESC, id;`
	return r.queryIOUs(ctx, "all", query)
}

// FindIOUsByBorrower retrieves IOUs for a borrower, ignoring case.
func (r *PgxIOURepository) FindIOUsByBorrower(ctx context.Context, borrower string) ([]domain.IOU, error) {
	query := `
		SELECT ` + iouColumns + `
		FROM ious
		WHERE LOWER(borrower) = LOWER($1)
		ORDER BY created_at DESC, id;
	`
	return r.queryIOUs(ctx, "by borrower", query, borrower)
}

// FindIOUsByLender retrieves IOUs for a lender, ignoring case.
func (r *PgxIOURepository) FindIOUsByLender(ctx context.Context, lender string) ([]domain.IOU, error) {
	query := `
		SELECT ` + iouColumns + `
		FROM ious
		WHERE LOWER(lender) = LOWER($1)
		ORDER BY created_at DESC, id;
	`
	return r.queryIOUs(ctx, "by lender", query, lender)
}

// FindIOUsAboveAverage retrieves IOUs whose amount is strictly greater than the
// average amount. AVG over an empty table is NULL, so nothing matches.
func (r *PgxIOURepository) FindIOUsAboveAverage(ctx context.Context) ([]domain.IOU, error) {
	query := `
		SELECT ` + iouColumns + `
		FROM ious
		WHERE amount > (SELECT AVG(amount) FROM ious)
		ORDER BY created_at DESC, id;
	`
	return r.queryIOUs(ctx, "above average", query)
}

// FindIOUsAtOrBelowAverage retrieves IOUs whose amount is less than or equal to
// the average amount.
func (r *PgxIOURepository) FindIOUsAtOrBelowAverage(ctx context.Context) ([]domain.IOU, error) {
	query := `
		SELECT ` + iouColumns + `
		FROM ious
		WHERE amount <= (SELECT AVG(amount) FROM ious)
		ORDER BY created_at DESC, id;
	`
	return r.queryIOUs(ctx, "at or below average", query)
}

// DeleteIOU removes an IOU by ID.
func (r *PgxIOURepository) DeleteIOU(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM ious WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete IOU %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("IOU %s not found: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxIOURepository) queryIOUs(ctx context.Context, label string, query string, args ...any) ([]domain.IOU, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query IOUs %s: %w", label, err)
	}
	defer rows.Close()

	modelIOUs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.IOU, error) {
		var iou models.IOU
		err := row.Scan(
			&iou.ID,
			&iou.Borrower,
			&iou.Lender,
			&iou.Amount,
			&iou.CreatedAt,
		)
		return iou, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan IOUs %s: %w", label, err)
	}

	return mapping.ToDomainIOUSlice(modelIOUs), nil
}
