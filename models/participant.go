package models

import "time"

const (
	ParticipantStatusRegistered = "registered"
	ParticipantStatusConfirmed  = "confirmed"
	ParticipantStatusCancelled  = "cancelled"
)

type Participant struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	TravelID   uint       `json:"travelId"`
	AmountPaid float64    `json:"amountPaid"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Travel     *TravelRef `json:"travel" gorm:"-"`
}

type CreateParticipantRequest struct {
	FirstName  string   `json:"firstName" binding:"required,max=100"`
	LastName   string   `json:"lastName" binding:"required,max=100"`
	Email      string   `json:"email" binding:"required,email,max=100"`
	Phone      string   `json:"phone" binding:"required,max=20"`
	TravelID   uint     `json:"travelId" binding:"required"`
	AmountPaid *float64 `json:"amountPaid" binding:"omitempty,gte=0"`
	Status     string   `json:"status" binding:"omitempty,oneof=registered confirmed cancelled"`
	Notes      string   `json:"notes"`
}

type UpdateParticipantRequest struct {
	FirstName  *string  `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName   *string  `json:"lastName" binding:"omitempty,min=1,max=100"`
	Email      *string  `json:"email" binding:"omitempty,email,max=100"`
	Phone      *string  `json:"phone" binding:"omitempty,min=1,max=20"`
	TravelID   *uint    `json:"travelId" binding:"omitempty,gt=0"`
	AmountPaid *float64 `json:"amountPaid" binding:"omitempty,gte=0"`
	Status     *string  `json:"status" binding:"omitempty,oneof=registered confirmed cancelled"`
	Notes      *string  `json:"notes"`
}
