package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cbfacademy/iou_api/internal/apperrors"
	"github.com/cbfacademy/iou_api/internal/core/domain"
	portsrepo "github.com/cbfacademy/iou_api/internal/core/ports/repositories"
	portssvc "github.com/cbfacademy/iou_api/internal/core/ports/services"
	"github.com/google/uuid"
)

// iouService implements the IOUSvcFacade interface. It holds no state of its
// own; every call goes straight to the repository.
type iouService struct {
	BaseService
	iouRepo portsrepo.IOURepositoryFacade
}

// NewIOUService creates a new IOU service.
func NewIOUService(repo portsrepo.IOURepositoryFacade) portssvc.IOUSvcFacade {
	return &iouService{iouRepo: repo}
}

func (s *iouService) ListIOUs(ctx context.Context) ([]domain.IOU, error) {
	ious, err := s.iouRepo.FindIOUs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list IOUs")
		return nil, fmt.Errorf("failed to list IOUs: %w", err)
	}
	return nonNil(ious), nil
}

func (s *iouService) GetIOUByID(ctx context.Context, id uuid.UUID) (*domain.IOU, error) {
	iou, err := s.iouRepo.FindIOUByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get IOU", slog.String("iou_id", id.String()))
		}
		return nil, fmt.Errorf("failed to get IOU %s: %w", id, err)
	}
	return iou, nil
}

func (s *iouService) CreateIOU(ctx context.Context, candidate domain.IOU) (*domain.IOU, error) {
	// The store assigns the ID; never trust one from the caller.
	candidate.ID = uuid.Nil

	created, err := s.iouRepo.SaveIOU(ctx, candidate)
	if err != nil {
		s.LogError(ctx, err, "Failed to create IOU",
			slog.String("borrower", candidate.Borrower),
			slog.String("lender", candidate.Lender))
		return nil, fmt.Errorf("failed to create IOU: %w", err)
	}

	s.LogInfo(ctx, "IOU created", slog.String("iou_id", created.ID.String()))
	return created, nil
}

func (s *iouService) UpdateIOU(ctx context.Context, id uuid.UUID, patch domain.IOU) (*domain.IOU, error) {
	existing, err := s.iouRepo.FindIOUByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find IOU %s for update: %w", id, err)
	}

	merged := domain.MergeIOU(*existing, patch)

	updated, err := s.iouRepo.SaveIOU(ctx, merged)
	if err != nil {
		s.LogError(ctx, err, "Failed to update IOU", slog.String("iou_id", id.String()))
		return nil, fmt.Errorf("failed to update IOU %s: %w", id, err)
	}

	s.LogInfo(ctx, "IOU updated", slog.String("iou_id", id.String()))
	return updated, nil
}

// DeleteIOU checks for existence before deleting. The check and the delete
// are not atomic; a concurrent delete in between surfaces as ErrNotFound from
// the repository.
func (s *iouService) DeleteIOU(ctx context.Context, id uuid.UUID) error {
	if _, err := s.iouRepo.FindIOUByID(ctx, id); err != nil {
		return fmt.Errorf("failed to find IOU %s for delete: %w", id, err)
	}

	if err := s.iouRepo.DeleteIOU(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete IOU", slog.String("iou_id", id.String()))
		return fmt.Errorf("failed to delete IOU %s: %w", id, err)
	}

	s.LogInfo(ctx, "IOU deleted", slog.String("iou_id", id.String()))
	return nil
}

func (s *iouService) ListIOUsByBorrower(ctx context.Context, borrower string) ([]domain.IOU, error) {
	ious, err := s.iouRepo.FindIOUsByBorrower(ctx, borrower)
	if err != nil {
		s.LogError(ctx, err, "Failed to list IOUs by borrower", slog.String("borrower", borrower))
		return nil, fmt.Errorf("failed to list IOUs for borrower %q: %w", borrower, err)
	}
	return nonNil(ious), nil
}

func (s *iouService) ListIOUsByLender(ctx context.Context, lender string) ([]domain.IOU, error) {
	ious, err := s.iouRepo.FindIOUsByLender(ctx, lender)
	if err != nil {
		s.LogError(ctx, err, "Failed to list IOUs by lender", slog.String("lender", lender))
		return nil, fmt.Errorf("failed to list IOUs for lender %q: %w", lender, err)
	}
	return nonNil(ious), nil
}

func (s *iouService) ListHighValueIOUs(ctx context.Context) ([]domain.IOU, error) {
	ious, err := s.iouRepo.FindIOUsAboveAverage(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list high value IOUs")
		return nil, fmt.Errorf("failed to list high value IOUs: %w", err)
	}
	return nonNil(ious), nil
}

func (s *iouService) ListLowValueIOUs(ctx context.Context) ([]domain.IOU, error) {
	ious, err := s.iouRepo.FindIOUsAtOrBelowAverage(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list low value IOUs")
		return nil, fmt.Errorf("failed to list low value IOUs: %w", err)
	}
	return nonNil(ious), nil
}

// nonNil keeps empty results serialising as [] rather than null.
func nonNil(ious []domain.IOU) []domain.IOU {
	if ious == nil {
		return []domain.IOU{}
	}
	return ious
}
