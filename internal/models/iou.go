package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IOU is the row stored in the ious table.
type IOU struct {
	ID        uuid.UUID       `db:"id"`
	Borrower  string          `db:"borrower"`
	Lender    string          `db:"lender"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}
