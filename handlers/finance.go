package handlers

import (
	"net/http"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/services"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	Service *services.FinanceService
}

func NewFinanceHandler(service *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{Service: service}
}

func (h *FinanceHandler) List(c *gin.Context) {
	finances, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, finances)
}

func (h *FinanceHandler) ListByTravel(c *gin.Context) {
	travelID, ok := parseID(c, "travelId")
	if !ok {
		return
	}
	finances, err := h.Service.ListByTravel(c.Request.Context(), travelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, finances)
}

func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *FinanceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	finance, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, finance)
}

func (h *FinanceHandler) Create(c *gin.Context) {
	var req models.CreateFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	finance, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, finance)
}

func (h *FinanceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	finance, err := h.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, finance)
}

func (h *FinanceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Finance record deleted successfully"})
}
