package models

import "time"

// UserModel is one element of the users store. Active is a pointer because records written by
// early versions carry no active flag; they are read as active.
type UserModel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Login     string    `json:"login"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	Active    *bool     `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
