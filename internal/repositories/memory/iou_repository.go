// Package memory provides an in-process Record Store. It backs STORE_DRIVER=memory
// for local runs and is the store used by end-to-end handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cbfacademy/iou_api/internal/apperrors"
	"github.com/cbfacademy/iou_api/internal/core/domain"
	portsrepo "github.com/cbfacademy/iou_api/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type IOURepository struct {
	mu   sync.RWMutex
	ious map[uuid.UUID]domain.IOU
	now  func() time.Time
}

// NewIOURepository creates an empty in-memory IOU repository.
func NewIOURepository() *IOURepository {
	return &IOURepository{
		ious: make(map[uuid.UUID]domain.IOU),
		now:  time.Now,
	}
}

var _ portsrepo.IOURepositoryFacade = (*IOURepository)(nil)

func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		IOURepo: NewIOURepository(),
	}
}

func (r *IOURepository) SaveIOU(_ context.Context, iou domain.IOU) (*domain.IOU, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.ious[iou.ID]; ok && iou.ID != uuid.Nil {
		merged := domain.MergeIOU(existing, iou)
		r.ious[merged.ID] = merged
		return &merged, nil
	}

	if iou.ID == uuid.Nil {
		iou.ID = uuid.New()
	}
	if iou.CreatedAt.IsZero() {
		// Postgres keeps microseconds; match it so both stores round-trip the same.
		iou.CreatedAt = r.now().UTC().Truncate(time.Microsecond)
	} else {
		iou.CreatedAt = iou.CreatedAt.UTC()
	}
	r.ious[iou.ID] = iou
	return &iou, nil
}

func (r *IOURepository) FindIOUByID(_ context.Context, id uuid.UUID) (*domain.IOU, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	iou, ok := r.ious[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &iou, nil
}

func (r *IOURepository) FindIOUs(_ context.Context) ([]domain.IOU, error) {
	return r.filter(func(domain.IOU) bool { return true }), nil
}

func (r *IOURepository) FindIOUsByBorrower(_ context.Context, borrower string) ([]domain.IOU, error) {
	return r.filter(func(iou domain.IOU) bool { return strings.EqualFold(iou.Borrower, borrower) }), nil
}

func (r *IOURepository) FindIOUsByLender(_ context.Context, lender string) ([]domain.IOU, error) {
	return r.filter(func(iou domain.IOU) bool { return strings.EqualFold(iou.Lender, lender) }), nil
}

func (r *IOURepository) FindIOUsAboveAverage(_ context.Context) ([]domain.IOU, error) {
	high, _ := domain.SplitByAverage(r.filter(func(domain.IOU) bool { return true }))
	return high, nil
}

func (r *IOURepository) FindIOUsAtOrBelowAverage(_ context.Context) ([]domain.IOU, error) {
	_, low := domain.SplitByAverage(r.filter(func(domain.IOU) bool { return true }))
	return low, nil
}

func (r *IOURepository) DeleteIOU(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ious[id]; !ok {
		return fmt.Errorf("IOU %s not found: %w", id, apperrors.ErrNotFound)
	}
	delete(r.ious, id)
	return nil
}

// filter returns a snapshot of matching IOUs ordered by created_at DESC, id ASC.
func (r *IOURepository) filter(keep func(domain.IOU) bool) []domain.IOU {
	r.mu.RLock()
	out := make([]domain.IOU, 0, len(r.ious))
	for _, iou := range r.ious {
		if keep(iou) {
			out = append(out, iou)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}
