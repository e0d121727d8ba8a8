// internal/handlers/property.go
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

type PropertyHandler struct {
	propertyService *services.PropertyService
	agentService    *services.AgentService
	storageService  *services.StorageService
}

func NewPropertyHandler(propertyService *services.PropertyService, agentService *services.AgentService, storageService *services.StorageService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		agentService:    agentService,
		storageService:  storageService,
	}
}

// POST /properties: realtors list under their own agent profile; admins
// may create platform-owned listings with no agent.
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req services.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	var ownerAgentID *uuid.UUID
	userType, _ := utils.GetUserTypeFromContext(c)
	if userType == string(models.UserTypeRealtor) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		agent, err := h.agentService.GetAgentByUserID(userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.BadRequestResponse(c, "Create an agent profile before listing properties", nil)
				return
			}
			utils.InternalErrorResponse(c, "")
			return
		}
		ownerAgentID = &agent.ID
	}

	property, err := h.propertyService.CreateProperty(ownerAgentID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, property)
}

// GET /properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var agentID *uuid.UUID
	if idStr := c.Query("agent_id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid agent ID", nil)
			return
		}
		agentID = &id
	}

	properties, total, err := h.propertyService.ListProperties(agentID, params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(properties, total, params))
}

// GET /properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	property, err := h.propertyService.GetProperty(propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Property")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, property)
}

// POST /properties/:id/images
func (h *PropertyHandler) UploadImage(c *gin.Context) {
	if h.storageService == nil {
		utils.InternalErrorResponse(c, "Storage is not configured")
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "Image file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadFile(file, header, services.PropertyImageOptions())
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	property, err := h.propertyService.AddImage(propertyID, result.URL)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Property")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, property)
}
