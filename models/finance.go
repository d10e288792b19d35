package models

import "time"

const (
	FinanceTypeIncome  = "income"
	FinanceTypeExpense = "expense"
)

// Finance is a single ledger line. TravelID is nil for general entries that
// are not tied to a trip.
type Finance struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount"`
	Date        time.Time  `json:"date"`
	Description string     `json:"description"`
	TravelID    *uint      `json:"travelId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Travel      *TravelRef `json:"travel" gorm:"-"`
}

type CreateFinanceRequest struct {
	Type        string   `json:"type" binding:"required,oneof=income expense"`
	Category    string   `json:"category" binding:"required,max=100"`
	Amount      *float64 `json:"amount" binding:"required,gte=0"`
	Date        string   `json:"date"`
	Description string   `json:"description" binding:"required,max=255"`
	TravelID    *uint    `json:"travelId"`
}

// UpdateFinanceRequest is a partial update. A TravelID of 0 detaches the
// entry from its travel.
type UpdateFinanceRequest struct {
	Type        *string  `json:"type" binding:"omitempty,oneof=income expense"`
	Category    *string  `json:"category" binding:"omitempty,min=1,max=100"`
	Amount      *float64 `json:"amount" binding:"omitempty,gte=0"`
	Date        *string  `json:"date"`
	Description *string  `json:"description" binding:"omitempty,min=1,max=255"`
	TravelID    *uint    `json:"travelId"`
}
