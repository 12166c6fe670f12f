package mapping

import (
	"github.com/cbfacademy/iou_api/internal/core/domain"
	"github.com/cbfacademy/iou_api/internal/models"
)

// ToModelIOU converts a domain IOU to a model IOU
func ToModelIOU(d domain.IOU) models.IOU {
	return models.IOU{
		ID:        d.ID,
		Borrower:  d.Borrower,
		Lender:    d.Lender,
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainIOU converts a model IOU to a domain IOU.
// Timestamps read back from the database are normalised to UTC.
func ToDomainIOU(m models.IOU) domain.IOU {
	return domain.IOU{
		ID:        m.ID,
		Borrower:  m.Borrower,
		Lender:    m.Lender,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// ToDomainIOUSlice converts a slice of model IOUs to a slice of domain IOUs
func ToDomainIOUSlice(ms []models.IOU) []domain.IOU {
	ds := make([]domain.IOU, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIOU(m)
	}
	return ds
}
