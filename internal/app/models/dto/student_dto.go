package dto

import (
	"github.com/itai/estagios/internal/app/models"
)

// StudentInput represents the updatable profile fields of a student.
// Identity is always resolved from the token, never from this payload.
type StudentInput struct {
	FirstName string `json:"firstName" binding:"required" example:"Thainá"`
	LastName  string `json:"lastName" binding:"required" example:"Silva"`
	Email     string `json:"email" binding:"required,email" example:"thaina@gmail.com"`
}

// StudentResponse is the wire projection of a student. The password hash
// never leaves the persistence layer.
type StudentResponse struct {
	ID        int64  `json:"id" example:"1"`
	FirstName string `json:"firstName" example:"Thaina"`
	LastName  string `json:"lastName" example:"Silva"`
	Email     string `json:"email" example:"thaina@gmail.com"`
	RoleType  string `json:"roleType" example:"STUDENT"`
}

// NewStudentResponse maps a student entity to its wire projection
func NewStudentResponse(student *models.Student) StudentResponse {
	return StudentResponse{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Email:     student.Email,
		RoleType:  string(student.RoleType),
	}
}

// NewStudentResponseList maps a slice of student entities to projections
func NewStudentResponseList(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for i := range students {
		responses = append(responses, NewStudentResponse(&students[i]))
	}
	return responses
}
