// internal/handlers/lead.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/redoak/realty-backend/internal/models"
	"github.com/redoak/realty-backend/internal/repository"
	"github.com/redoak/realty-backend/internal/services"
	"github.com/redoak/realty-backend/internal/utils"
)

type LeadHandler struct {
	leadService  *services.LeadService
	agentService *services.AgentService
}

func NewLeadHandler(leadService *services.LeadService, agentService *services.AgentService) *LeadHandler {
	return &LeadHandler{
		leadService:  leadService,
		agentService: agentService,
	}
}

// POST /leads: public lead intake. Always succeeds when the contact data
// is valid; attribution failures degrade to an unassigned lead.
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req services.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	lead, err := h.leadService.CreateLead(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, lead)
}

// GET /leads: admins see everything; realtors see only their own.
func (h *LeadHandler) ListLeads(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var status *models.LeadStatus
	if s := c.Query("status"); s != "" {
		leadStatus := models.LeadStatus(s)
		if !leadStatus.Valid() {
			utils.BadRequestResponse(c, "Invalid lead status", nil)
			return
		}
		status = &leadStatus
	}

	var realtorID *uuid.UUID
	userType, _ := utils.GetUserTypeFromContext(c)
	if userType != string(models.UserTypeAdmin) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		agent, err := h.agentService.GetAgentByUserID(userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.NotFoundResponse(c, "Agent profile")
				return
			}
			utils.InternalErrorResponse(c, "")
			return
		}
		realtorID = &agent.ID
	}

	leads, total, err := h.leadService.ListLeads(realtorID, status, params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(leads, total, params))
}

// GET /leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid lead ID", nil)
		return
	}

	lead, err := h.leadService.GetLead(leadID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Lead")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, lead)
}

// PATCH /leads/:id/assign: admin triage of unassigned leads
func (h *LeadHandler) AssignLead(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid lead ID", nil)
		return
	}

	var req struct {
		AgentID uuid.UUID `json:"agent_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	lead, err := h.leadService.AssignLead(leadID, req.AgentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Lead or agent")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, lead)
}

// PATCH /leads/:id/status: admin status transition; converting triggers
// commission derivation as a side effect.
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid lead ID", nil)
		return
	}

	var req struct {
		Status models.LeadStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	lead, err := h.leadService.TransitionLeadStatus(leadID, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Lead")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, lead)
}
