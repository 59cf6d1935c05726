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

// AdminController handles the admin complaint endpoints
type AdminController struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// ListAll handles GET /api/admin/complaints with optional category, status
// and priority equality filters.
func (c *AdminController) ListAll(ctx *gin.Context) {
	var filters dto.ComplaintFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters."))
		return
	}

	complaints, err := c.adminService.ListAll(ctx.Request.Context(), filters)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list complaints")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ComplaintListResponse{Complaints: complaints})
}

// UpdateStatus handles PATCH /api/admin/complaints/:id
func (c *AdminController) UpdateStatus(ctx *gin.Context) {
	complaintID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Complaint not found."))
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Status is required."))
		return
	}

	complaint, err := c.adminService.UpdateStatus(ctx.Request.Context(), complaintID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ComplaintResponse{
		Message:   "Complaint status updated successfully.",
		Complaint: complaint,
	})
}

// Stats handles GET /api/admin/stats
func (c *AdminController) Stats(ctx *gin.Context) {
	stats, err := c.adminService.Stats(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to compute dashboard stats")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatsResponse{Stats: stats})
}
