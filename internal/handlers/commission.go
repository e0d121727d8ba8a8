// internal/handlers/commission.go
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

type CommissionHandler struct {
	commissionService *services.CommissionService
	agentService      *services.AgentService
}

func NewCommissionHandler(commissionService *services.CommissionService, agentService *services.AgentService) *CommissionHandler {
	return &CommissionHandler{
		commissionService: commissionService,
		agentService:      agentService,
	}
}

// GET /commissions/mine
func (h *CommissionHandler) ListMyCommissions(c *gin.Context) {
	agent, ok := h.currentAgent(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	commissions, total, err := h.commissionService.ListAgentCommissions(agent.ID, params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(commissions, total, params))
}

// POST /commissions/:id/payout-request
func (h *CommissionHandler) RequestPayout(c *gin.Context) {
	commissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid commission ID", nil)
		return
	}

	agent, ok := h.currentAgent(c)
	if !ok {
		return
	}

	commission, err := h.commissionService.RequestPayout(commissionID, agent.ID)
	if err != nil {
		// Not-pending and not-owned both come back as not found; agents
		// cannot distinguish other agents' commissions from missing ones.
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Commission")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, commission)
}

// GET /admin/commissions
func (h *CommissionHandler) ListCommissions(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var status *models.CommissionStatus
	if s := c.Query("status"); s != "" {
		commissionStatus := models.CommissionStatus(s)
		if !commissionStatus.Valid() {
			utils.BadRequestResponse(c, "Invalid commission status", nil)
			return
		}
		status = &commissionStatus
	}

	commissions, total, err := h.commissionService.ListCommissions(status, params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(commissions, total, params))
}

// PATCH /admin/commissions/:id/status
func (h *CommissionHandler) SetCommissionStatus(c *gin.Context) {
	commissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid commission ID", nil)
		return
	}

	var req struct {
		Status models.CommissionStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	commission, err := h.commissionService.SetStatus(commissionID, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Commission")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, commission)
}

func (h *CommissionHandler) currentAgent(c *gin.Context) (*models.Agent, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return nil, false
	}

	agent, err := h.agentService.GetAgentByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Agent profile")
			return nil, false
		}
		utils.InternalErrorResponse(c, "")
		return nil, false
	}

	return agent, true
}
