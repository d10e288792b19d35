package handlers

import (
	"net/http"

	"github.com/LovationAdmin/travel-api/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Service *services.AdminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{Service: service}
}

// Stats is admin only.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) Export(c *gin.Context) {
	result, err := h.Service.Export(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) ExportCSV(c *gin.Context) {
	entity := c.Param("entity")
	path, err := h.Service.ExportCSV(c.Request.Context(), entity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  entity + " exported to CSV successfully",
		"filePath": path,
	})
}

type seedRequest struct {
	Secret string `json:"secret"`
}

// Seed wipes the database and loads the sample data set.
func (h *AdminHandler) Seed(c *gin.Context) {
	var req seedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.Service.Seed(c.Request.Context(), req.Secret); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database seeded successfully"})
}
