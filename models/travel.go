package models

import "time"

const (
	TravelStatusPlanned   = "planned"
	TravelStatusOngoing   = "ongoing"
	TravelStatusCompleted = "completed"
	TravelStatusCancelled = "cancelled"
)

type Travel struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Location     string    `json:"location"`
	TravelAgency string    `json:"travelAgency"`
	Commission   float64   `json:"commission"`
	TotalFee     float64   `json:"totalFee"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TravelRef is the minimal projection of a Travel joined into participant
// and finance responses.
type TravelRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Ref returns the {id, name} projection of t.
func (t *Travel) Ref() *TravelRef {
	return &TravelRef{ID: t.ID, Name: t.Name}
}

type CreateTravelRequest struct {
	Name         string   `json:"name" binding:"required,max=100"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate" binding:"required"`
	EndDate      string   `json:"endDate" binding:"required"`
	Location     string   `json:"location" binding:"required,max=100"`
	TravelAgency string   `json:"travelAgency" binding:"required,max=100"`
	Commission   *float64 `json:"commission" binding:"required,gte=0"`
	TotalFee     *float64 `json:"totalFee" binding:"required,gte=0"`
	Status       string   `json:"status" binding:"omitempty,oneof=planned ongoing completed cancelled"`
}

// UpdateTravelRequest is a partial update: nil fields are left untouched.
type UpdateTravelRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Description  *string  `json:"description"`
	StartDate    *string  `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	Location     *string  `json:"location" binding:"omitempty,min=1,max=100"`
	TravelAgency *string  `json:"travelAgency" binding:"omitempty,min=1,max=100"`
	Commission   *float64 `json:"commission" binding:"omitempty,gte=0"`
	TotalFee     *float64 `json:"totalFee" binding:"omitempty,gte=0"`
	Status       *string  `json:"status" binding:"omitempty,oneof=planned ongoing completed cancelled"`
}
