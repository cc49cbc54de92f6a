package dto

import (
	"github.com/itai/estagios/internal/app/models"
)

// SelectionProcessInput represents the payload for creating a selection process
type SelectionProcessInput struct {
	Title string `json:"title" binding:"required" example:"Internship 2024/1"`
}

// UpdateStatusRequest represents a status transition request
type UpdateStatusRequest struct {
	Status models.SelectionProcessStatus `json:"status" binding:"required,oneof=OPEN IN_PROGRESS CLOSED" example:"IN_PROGRESS"`
}

// EnrollStudentRequest represents a roster enrollment request
type EnrollStudentRequest struct {
	StudentID int64 `json:"studentId" binding:"required,gt=0" example:"3"`
}

// SelectionProcessResponse is the wire projection of a selection process
// including its student roster.
type SelectionProcessResponse struct {
	ID          int64             `json:"id" example:"1"`
	Title       string            `json:"title" example:"Internship 2024/1"`
	Status      string            `json:"status" example:"OPEN"`
	StudentList []StudentResponse `json:"studentList"`
}

// NewSelectionProcessResponse maps a selection process entity to its projection
func NewSelectionProcessResponse(process *models.SelectionProcess) SelectionProcessResponse {
	return SelectionProcessResponse{
		ID:          process.ID,
		Title:       process.Title,
		Status:      string(process.Status),
		StudentList: NewStudentResponseList(process.Students),
	}
}
