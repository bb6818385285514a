package model

import "time"

// User represents a platform account as returned by the super-admin API.
type User struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Role        Role       `json:"role"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
}

// FullName is used for list rendering.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// CreateUserRequest is the POST /users payload. The server assigns id,
// status and createdAt.
type CreateUserRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        Role   `json:"role" validate:"required,oneof=SUPER_ADMIN ADMIN DOCTOR PATIENT STAFF"`
}
