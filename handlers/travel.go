package handlers

import (
	"net/http"

	"github.com/LovationAdmin/travel-api/middleware"
	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/services"
	"github.com/LovationAdmin/travel-api/utils"

	"github.com/gin-gonic/gin"
)

type TravelHandler struct {
	Service *services.TravelService
}

func NewTravelHandler(service *services.TravelService) *TravelHandler {
	return &TravelHandler{Service: service}
}

func (h *TravelHandler) List(c *gin.Context) {
	travels, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, travels)
}

func (h *TravelHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	travel, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, travel)
}

func (h *TravelHandler) Create(c *gin.Context) {
	var req models.CreateTravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	travel, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogTravelAction("create", "travel", travel.ID, middleware.GetUserID(c))
	c.JSON(http.StatusCreated, travel)
}

func (h *TravelHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateTravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	travel, err := h.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogTravelAction("update", "travel", id, middleware.GetUserID(c))
	c.JSON(http.StatusOK, travel)
}

func (h *TravelHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.LogTravelAction("delete", "travel", id, middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Travel deleted successfully"})
}

func (h *TravelHandler) Summary(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	summary, err := h.Service.Summary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *TravelHandler) Summaries(c *gin.Context) {
	summaries, err := h.Service.Summaries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}
