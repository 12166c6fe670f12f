package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IOU represents a debt owed by Borrower to Lender.
type IOU struct {
	ID        uuid.UUID       `json:"id"`        // Assigned by the store on creation
	Borrower  string          `json:"borrower"`  // Party owing money
	Lender    string          `json:"lender"`    // Party owed money
	Amount    decimal.Decimal `json:"amount"`    // Exact decimal, never float
	CreatedAt time.Time       `json:"createdAt"` // UTC, immutable after creation
}

// MergeIOU copies the mutable fields of patch onto existing and returns the result.
// ID and CreatedAt always come from existing.
func MergeIOU(existing IOU, patch IOU) IOU {
	merged := existing
	merged.Borrower = patch.Borrower
	merged.Lender = patch.Lender
	merged.Amount = patch.Amount
	return merged
}

// SplitByAverage partitions ious into those whose amount is strictly above the
// arithmetic mean of all amounts and those at or below it. The comparison is
// done as amount*n against sum so no division rounding is involved.
// Input order is preserved in both slices.
func SplitByAverage(ious []IOU) (high []IOU, low []IOU) {
	high = []IOU{}
	low = []IOU{}
	if len(ious) == 0 {
		return high, low
	}

	sum := decimal.Zero
	for _, iou := range ious {
		sum = sum.Add(iou.Amount)
	}
	count := decimal.NewFromInt(int64(len(ious)))

	for _, iou := range ious {
		if iou.Amount.Mul(count).GreaterThan(sum) {
			high = append(high, iou)
		} else {
			low = append(low, iou)
		}
	}
	return high, low
}
