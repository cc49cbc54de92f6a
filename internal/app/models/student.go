package models

import (
	"time"
)

// RoleType defines the access tier of a student account
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStudent RoleType = "STUDENT"
)

// Student defines the student model based on the 'students' table.
// The email doubles as the login username.
type Student struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                                  // Unique identifier for the student
	Email       string     `json:"email" db:"email" example:"thaina@gmail.com"`                             // Student's email address (login username)
	Password    string     `json:"-" db:"password"`                                                         // Bcrypt hash (excluded from JSON)
	FirstName   string     `json:"firstName" db:"first_name" example:"Thaina"`                              // Student's first name
	LastName    string     `json:"lastName" db:"last_name" example:"Silva"`                                 // Student's last name
	RoleType    RoleType   `json:"roleType" db:"role_type" example:"STUDENT"`                               // Access tier (ADMIN or STUDENT)
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`                // Timestamp when the record was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`                // Timestamp of the last update
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" example:"2024-04-20T18:00:00Z"` // Timestamp of the last login (nullable)
}
