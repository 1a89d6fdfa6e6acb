package models

import "time"

// Employee represents an employee record owned by the user who created it.
type Employee struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"fullName"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	Address    string    `json:"address"`
	OwnerID    int64     `json:"-"` // Internal use; ownership is implied by the requesting identity
	CreatedAt  time.Time `json:"createdAt"`
}
