package handlers

import (
	"net/http"

	"github.com/LovationAdmin/travel-api/middleware"
	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/services"
	"github.com/LovationAdmin/travel-api/utils"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	Service *services.ParticipantService
}

func NewParticipantHandler(service *services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{Service: service}
}

func (h *ParticipantHandler) List(c *gin.Context) {
	participants, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

func (h *ParticipantHandler) ListByTravel(c *gin.Context) {
	travelID, ok := parseID(c, "travelId")
	if !ok {
		return
	}
	participants, err := h.Service.ListByTravel(c.Request.Context(), travelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

func (h *ParticipantHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	participant, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

func (h *ParticipantHandler) Create(c *gin.Context) {
	var req models.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	participant, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogTravelAction("create", "participant", participant.ID, middleware.GetUserID(c))
	c.JSON(http.StatusCreated, participant)
}

func (h *ParticipantHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	participant, err := h.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogTravelAction("update", "participant", id, middleware.GetUserID(c))
	c.JSON(http.StatusOK, participant)
}

func (h *ParticipantHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.LogTravelAction("delete", "participant", id, middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Participant deleted successfully"})
}
