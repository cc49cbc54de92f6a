package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/itai/estagios/internal/app/models/dto"
	"github.com/itai/estagios/internal/app/services"
	"github.com/itai/estagios/internal/middleware"
	"github.com/rs/zerolog"
)

// SelectionProcessController handles selection process operations
type SelectionProcessController struct {
	processService services.SelectionProcessService
	logger         zerolog.Logger
}

// NewSelectionProcessController creates a new SelectionProcessController
func NewSelectionProcessController(processService services.SelectionProcessService, logger zerolog.Logger) *SelectionProcessController {
	return &SelectionProcessController{
		processService: processService,
		logger:         logger,
	}
}

// processID parses the :id path parameter
func (c *SelectionProcessController) processID(ctx *gin.Context) (int64, bool) {
	idParam := ctx.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid selection process ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// List returns all selection processes with their rosters
// @Summary List selection processes
// @Description Retrieves all selection processes including enrolled students
// @Tags Selection Processes
// @Produce json
// @Security TokenAccess
// @Success 200 {array} dto.SelectionProcessResponse "Selection processes"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /selection-processes/ [get]
func (c *SelectionProcessController) List(ctx *gin.Context) {
	processes, err := c.processService.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list selection processes")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, processes)
}

// GetByID returns one selection process
// @Summary Get a selection process
// @Description Retrieves a selection process by ID including its roster
// @Tags Selection Processes
// @Produce json
// @Security TokenAccess
// @Param id path int true "Selection process ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SelectionProcessResponse "Selection process"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Selection process not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /selection-processes/{id} [get]
func (c *SelectionProcessController) GetByID(ctx *gin.Context) {
	id, ok := c.processID(ctx)
	if !ok {
		return
	}

	process, err := c.processService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, process)
}

// Create creates a selection process
// @Summary Create a selection process
// @Description Creates a new selection process in OPEN status. Admin only.
// @Tags Selection Processes
// @Accept json
// @Produce json
// @Security TokenAccess
// @Param request body dto.SelectionProcessInput true "Selection process fields"
// @Success 201 {object} dto.SelectionProcessResponse "Created selection process"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Insufficient role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /selection-processes/ [post]
func (c *SelectionProcessController) Create(ctx *gin.Context) {
	var input dto.SelectionProcessInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid selection process payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	process, err := c.processService.Create(ctx.Request.Context(), &input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, process)
}

// UpdateStatus transitions a selection process status
// @Summary Update selection process status
// @Description Transitions the status. Processes only move forward: OPEN to IN_PROGRESS to CLOSED. Admin only.
// @Tags Selection Processes
// @Accept json
// @Produce json
// @Security TokenAccess
// @Param id path int true "Selection process ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} dto.SelectionProcessResponse "Updated selection process"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Insufficient role"
// @Failure 404 {object} dto.ErrorResponse "Selection process not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /selection-processes/{id}/status [put]
func (c *SelectionProcessController) UpdateStatus(ctx *gin.Context) {
	id, ok := c.processID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid status update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	process, err := c.processService.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, process)
}

// EnrollStudent adds a student to a selection process roster
// @Summary Enroll a student
// @Description Adds an existing student to an OPEN selection process. Admin only.
// @Tags Selection Processes
// @Accept json
// @Produce json
// @Security TokenAccess
// @Param id path int true "Selection process ID" Format(int64) minimum(1)
// @Param request body dto.EnrollStudentRequest true "Student to enroll"
// @Success 200 {object} dto.SelectionProcessResponse "Updated selection process"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Insufficient role"
// @Failure 404 {object} dto.ErrorResponse "Selection process or student not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled or enrollment closed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /selection-processes/{id}/students [post]
func (c *SelectionProcessController) EnrollStudent(ctx *gin.Context) {
	id, ok := c.processID(ctx)
	if !ok {
		return
	}

	var req dto.EnrollStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid enrollment payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	process, err := c.processService.EnrollStudent(ctx.Request.Context(), id, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, process)
}
