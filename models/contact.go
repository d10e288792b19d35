package models

import "time"

type Contact struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Organization string    `json:"organization"`
	Role         string    `json:"role"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateContactRequest struct {
	FirstName    string `json:"firstName" binding:"required,max=100"`
	LastName     string `json:"lastName" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email,max=100"`
	Phone        string `json:"phone" binding:"required,max=20"`
	Organization string `json:"organization" binding:"required,max=100"`
	Role         string `json:"role" binding:"required,max=100"`
	Notes        string `json:"notes"`
}

type UpdateContactRequest struct {
	FirstName    *string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName     *string `json:"lastName" binding:"omitempty,min=1,max=100"`
	Email        *string `json:"email" binding:"omitempty,email,max=100"`
	Phone        *string `json:"phone" binding:"omitempty,min=1,max=20"`
	Organization *string `json:"organization" binding:"omitempty,min=1,max=100"`
	Role         *string `json:"role" binding:"omitempty,min=1,max=100"`
	Notes        *string `json:"notes"`
}
