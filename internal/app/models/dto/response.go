package dto

// SuccessResponse represents a standard success message for API endpoints
// that have no resource body to return.
type SuccessResponse struct {
	Message string `json:"message"`
}
