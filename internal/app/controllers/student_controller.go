package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itai/estagios/internal/app/models/dto"
	"github.com/itai/estagios/internal/app/services"
	"github.com/itai/estagios/internal/middleware"
	"github.com/rs/zerolog"
)

// StudentController handles student resource operations
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// selfID resolves the caller's identity from the request context. Handlers
// never accept identity from path or payload.
func (c *StudentController) selfID(ctx *gin.Context) (int64, bool) {
	studentID, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		errorDetail = errorDetail.WithDetails("Student identity not found")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return studentID, true
}

// GetProfile returns the caller's own student projection
// @Summary Get own profile
// @Description Retrieves the authenticated student's own record, resolved from the token
// @Tags Students
// @Produce json
// @Security TokenAccess
// @Success 200 {object} dto.StudentResponse "Student profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	studentID, ok := c.selfID(ctx)
	if !ok {
		return
	}

	profile, err := c.studentService.GetProfile(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// GetByToken returns the caller's own student projection (token variant)
// @Summary Get own record by token
// @Description Self-lookup variant of the profile endpoint, same projection shape
// @Tags Students
// @Produce json
// @Security TokenAccess
// @Success 200 {object} dto.StudentResponse "Student record"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/token [get]
func (c *StudentController) GetByToken(ctx *gin.Context) {
	studentID, ok := c.selfID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetProfile(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// ListStudents returns all student projections
// @Summary List all students
// @Description Retrieves the full student collection. Admin only.
// @Tags Students
// @Produce json
// @Security TokenAccess
// @Success 200 {array} dto.StudentResponse "Students"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Insufficient role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/ [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// UpdateProfile updates the caller's own record
// @Summary Update own profile
// @Description Merges the payload into the authenticated student's own record. Identity comes from the token, never from the body.
// @Tags Students
// @Accept json
// @Produce json
// @Security TokenAccess
// @Param request body dto.StudentInput true "Profile fields"
// @Success 200 {object} dto.StudentResponse "Updated student"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/ [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	studentID, ok := c.selfID(ctx)
	if !ok {
		return
	}

	var input dto.StudentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.studentService.UpdateProfile(ctx.Request.Context(), studentID, &input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
