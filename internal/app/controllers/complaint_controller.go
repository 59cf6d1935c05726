package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hostelops/dormdesk/internal/app/models/dto"
	"github.com/hostelops/dormdesk/internal/app/services"
	"github.com/hostelops/dormdesk/internal/middleware"
)

// ComplaintController handles student-facing complaint endpoints
type ComplaintController struct {
	complaintService *services.ComplaintService
	logger           zerolog.Logger
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService *services.ComplaintService, logger zerolog.Logger) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
		logger:           logger,
	}
}

// Create handles POST /api/complaints
func (c *ComplaintController) Create(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required."))
		return
	}

	var req dto.CreateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	complaint, err := c.complaintService.Create(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ComplaintResponse{
		Message:   "Complaint submitted successfully.",
		Complaint: complaint,
	})
}

// ListMine handles GET /api/complaints
func (c *ComplaintController) ListMine(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required."))
		return
	}

	complaints, err := c.complaintService.ListMine(ctx.Request.Context(), user.ID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to list complaints")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ComplaintListResponse{Complaints: complaints})
}

// Delete handles DELETE /api/complaints/:id
func (c *ComplaintController) Delete(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required."))
		return
	}

	complaintID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Complaint not found."))
		return
	}

	if err := c.complaintService.Delete(ctx.Request.Context(), user.ID, complaintID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Complaint deleted successfully."})
}
