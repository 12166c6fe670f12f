package services

import (
	"context"

	"github.com/cbfacademy/iou_api/internal/core/domain"
	"github.com/google/uuid"
)

// IOUReaderSvc defines read operations for IOU data
type IOUReaderSvc interface {
	// ListIOUs retrieves all IOUs.
	ListIOUs(ctx context.Context) ([]domain.IOU, error)

	// GetIOUByID retrieves an IOU by ID.
	GetIOUByID(ctx context.Context, id uuid.UUID) (*domain.IOU, error)

	// ListIOUsByBorrower retrieves IOUs for a borrower (case-insensitive).
	ListIOUsByBorrower(ctx context.Context, borrower string) ([]domain.IOU, error)

	// ListIOUsByLender retrieves IOUs for a lender (case-insensitive).
	ListIOUsByLender(ctx context.Context, lender string) ([]domain.IOU, error)
}

// IOUValueSvc defines the high/low value classification queries
type IOUValueSvc interface {
	// ListHighValueIOUs retrieves IOUs whose amount is above the average.
	ListHighValueIOUs(ctx context.Context) ([]domain.IOU, error)

	// ListLowValueIOUs retrieves IOUs whose amount is at or below the average.
	ListLowValueIOUs(ctx context.Context) ([]domain.IOU, error)
}

// IOUWriterSvc defines write operations for IOU data
type IOUWriterSvc interface {
	// CreateIOU persists a new IOU. Any ID on the candidate is ignored.
	CreateIOU(ctx context.Context, candidate domain.IOU) (*domain.IOU, error)

	// UpdateIOU copies borrower, lender and amount from patch onto an existing IOU.
	UpdateIOU(ctx context.Context, id uuid.UUID, patch domain.IOU) (*domain.IOU, error)

	// DeleteIOU removes an IOU.
	DeleteIOU(ctx context.Context, id uuid.UUID) error
}

// IOUSvcFacade combines all IOU-related service interfaces
type IOUSvcFacade interface {
	IOUReaderSvc
	IOUValueSvc
	IOUWriterSvc
}
