package routes

import (
	"github.com/LovationAdmin/travel-api/handlers"
	"github.com/LovationAdmin/travel-api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes mounts login publicly and the account routes behind auth.
func SetupAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, auth gin.HandlerFunc) {
	rg.POST("/auth/login", h.Login)

	account := rg.Group("/auth", auth)
	{
		account.GET("/user", h.Me)
		account.POST("/register", middleware.RequireAdmin(), h.Register)
		account.PUT("/password", h.ChangePassword)
		account.POST("/2fa/setup", h.SetupTOTP)
		account.POST("/2fa/verify", h.VerifyTOTP)
		account.POST("/2fa/disable", h.DisableTOTP)
	}
}

// SetupTravelRoutes mounts travel CRUD and rollups on a protected group.
func SetupTravelRoutes(rg *gin.RouterGroup, h *handlers.TravelHandler) {
	rg.GET("/travels", h.List)
	rg.POST("/travels", h.Create)
	rg.GET("/travels/summaries", h.Summaries)
	rg.GET("/travels/:id", h.Get)
	rg.PUT("/travels/:id", h.Update)
	rg.DELETE("/travels/:id", h.Delete)
	rg.GET("/travels/:id/summary", h.Summary)
}

func SetupParticipantRoutes(rg *gin.RouterGroup, h *handlers.ParticipantHandler) {
	rg.GET("/participants", h.List)
	rg.POST("/participants", h.Create)
	rg.GET("/participants/travel/:travelId", h.ListByTravel)
	rg.GET("/participants/:id", h.Get)
	rg.PUT("/participants/:id", h.Update)
	rg.DELETE("/participants/:id", h.Delete)
}

func SetupFinanceRoutes(rg *gin.RouterGroup, h *handlers.FinanceHandler) {
	rg.GET("/finances", h.List)
	rg.POST("/finances", h.Create)
	rg.GET("/finances/summary", h.Summary)
	rg.GET("/finances/travel/:travelId", h.ListByTravel)
	rg.GET("/finances/:id", h.Get)
	rg.PUT("/finances/:id", h.Update)
	rg.DELETE("/finances/:id", h.Delete)
}

func SetupContactRoutes(rg *gin.RouterGroup, h *handlers.ContactHandler) {
	rg.GET("/contacts", h.List)
	rg.POST("/contacts", h.Create)
	rg.GET("/contacts/search", h.Search)
	rg.GET("/contacts/:id", h.Get)
	rg.PUT("/contacts/:id", h.Update)
	rg.DELETE("/contacts/:id", h.Delete)
}

// SetupAdminRoutes mounts statistics and exports for admins only. Seeding is
// open to any authenticated user holding the seed secret.
func SetupAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler) {
	admin := rg.Group("/admin")
	admin.GET("/stats", middleware.RequireAdmin(), h.Stats)
	admin.GET("/export", middleware.RequireAdmin(), h.Export)
	admin.GET("/export/:entity/csv", middleware.RequireAdmin(), h.ExportCSV)
	admin.POST("/seed-database", h.Seed)
}

func SetupWSRoutes(rg *gin.RouterGroup, h *handlers.WSHandler) {
	rg.GET("/ws", h.HandleWS)
}

// Handlers groups everything mounted under /api.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Travel      *handlers.TravelHandler
	Participant *handlers.ParticipantHandler
	Finance     *handlers.FinanceHandler
	Contact     *handlers.ContactHandler
	Admin       *handlers.AdminHandler
	WS          *handlers.WSHandler
}

// Mount wires /api onto router. auth guards every route except login.
func Mount(router *gin.Engine, h Handlers, auth gin.HandlerFunc) {
	api := router.Group("/api")
	SetupAuthRoutes(api, h.Auth, auth)

	protected := api.Group("/")
	protected.Use(auth)
	{
		SetupTravelRoutes(protected, h.Travel)
		SetupParticipantRoutes(protected, h.Participant)
		SetupFinanceRoutes(protected, h.Finance)
		SetupContactRoutes(protected, h.Contact)
		SetupAdminRoutes(protected, h.Admin)
		SetupWSRoutes(protected, h.WS)
	}
}
