package repositories

import (
	"context"

	"github.com/cbfacademy/iou_api/internal/core/domain"
	"github.com/google/uuid"
)

// IOUReader defines lookup operations for IOU data
type IOUReader interface {
	// FindIOUs retrieves every IOU, newest first.
	FindIOUs(ctx context.Context) ([]domain.IOU, error)

	// FindIOUByID retrieves a single IOU. Returns apperrors.ErrNotFound if absent.
	FindIOUByID(ctx context.Context, id uuid.UUID) (*domain.IOU, error)

	// FindIOUsByBorrower retrieves IOUs whose borrower matches name, ignoring case.
	FindIOUsByBorrower(ctx context.Context, borrower string) ([]domain.IOU, error)

	// FindIOUsByLender retrieves IOUs whose lender matches name, ignoring case.
	FindIOUsByLender(ctx context.Context, lender string) ([]domain.IOU, error)
}

// IOUValueReader defines the queries that compare amounts with the current average
type IOUValueReader interface {
	// FindIOUsAboveAverage retrieves IOUs with amount > AVG(amount), newest first.
	FindIOUsAboveAverage(ctx context.Context) ([]domain.IOU, error)

	// FindIOUsAtOrBelowAverage retrieves IOUs with amount <= AVG(amount), newest first.
	FindIOUsAtOrBelowAverage(ctx context.Context) ([]domain.IOU, error)
}

// IOUWriter defines write operations for IOU data
type IOUWriter interface {
	// SaveIOU inserts the IOU when its ID is uuid.Nil, assigning ID and
	// defaulting CreatedAt. Otherwise borrower, lender and amount of the
	// row with that ID are overwritten.
	SaveIOU(ctx context.Context, iou domain.IOU) (*domain.IOU, error)

	// DeleteIOU removes an IOU. Returns apperrors.ErrNotFound if nothing was removed.
	DeleteIOU(ctx context.Context, id uuid.UUID) error
}

// IOURepositoryFacade combines all IOU-related repository interfaces
type IOURepositoryFacade interface {
	IOUReader
	IOUValueReader
	IOUWriter
}
