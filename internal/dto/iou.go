package dto

import (
	"time"

	"github.com/cbfacademy/iou_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIOURequest defines the data accepted when creating an IOU.
// Amount defaults to zero and CreatedAt to the current time when omitted.
// Any "id" in the body is ignored.
type CreateIOURequest struct {
	Borrower  string           `json:"borrower" binding:"required,notblank" example:"Bob"`
	Lender    string           `json:"lender" binding:"required,notblank" example:"Ann"`
	Amount    *decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
	CreatedAt *time.Time       `json:"createdAt,omitempty"`
}

// ToDomain converts the request into an IOU candidate for the service.
func (r CreateIOURequest) ToDomain() domain.IOU {
	iou := domain.IOU{
		Borrower: r.Borrower,
		Lender:   r.Lender,
		Amount:   decimal.Zero,
	}
	if r.Amount != nil {
		iou.Amount = *r.Amount
	}
	if r.CreatedAt != nil {
		iou.CreatedAt = r.CreatedAt.UTC()
	}
	return iou
}

// UpdateIOURequest defines the fields copied onto an existing IOU.
// ID and CreatedAt cannot be changed.
type UpdateIOURequest struct {
	Borrower string           `json:"borrower" binding:"required,notblank" example:"Bob"`
	Lender   string           `json:"lender" binding:"required,notblank" example:"Ann"`
	Amount   *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"75.50"`
}

// ToDomain converts the request into an IOU patch for the service.
func (r UpdateIOURequest) ToDomain() domain.IOU {
	iou := domain.IOU{
		Borrower: r.Borrower,
		Lender:   r.Lender,
	}
	if r.Amount != nil {
		iou.Amount = *r.Amount
	}
	return iou
}

// ListIOUsParams defines the optional filters of the list endpoint.
type ListIOUsParams struct {
	Borrower string `form:"borrower"`
	Lender   string `form:"lender"`
}

// IOUResponse defines the data returned for an IOU.
type IOUResponse struct {
	ID        string          `json:"id" example:"5f1c2f0e-4a43-4f55-9a3e-8d3f0a1b2c3d"`
	Borrower  string          `json:"borrower" example:"Bob"`
	Lender    string          `json:"lender" example:"Ann"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToIOUResponse converts a domain.IOU to IOUResponse DTO
func ToIOUResponse(iou *domain.IOU) IOUResponse {
	return IOUResponse{
		ID:        iou.ID.String(),
		Borrower:  iou.Borrower,
		Lender:    iou.Lender,
		Amount:    iou.Amount,
		CreatedAt: iou.CreatedAt.UTC(),
	}
}

// ToListIOUResponse converts a slice of domain.IOU to a slice of IOUResponse DTOs.
// The result is never nil so an empty list encodes as [].
func ToListIOUResponse(ious []domain.IOU) []IOUResponse {
	res := make([]IOUResponse, len(ious))
	for i := range ious {
		res[i] = ToIOUResponse(&ious[i])
	}
	return res
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"IOU Not Found"`
}
