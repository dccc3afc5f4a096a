// server/internal/api/routes/routes.go
package routes

import (
	"ecoconnect-api-server/config"
	"ecoconnect-api-server/internal/api/handlers"
	"ecoconnect-api-server/internal/api/middleware"
	"ecoconnect-api-server/internal/authgw"
	"ecoconnect-api-server/internal/centers"
	"ecoconnect-api-server/internal/registry"
	"ecoconnect-api-server/internal/scanner"
	"ecoconnect-api-server/internal/session"
	"ecoconnect-api-server/internal/socket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the handlers to their dependencies and lays out the
// route groups.
func SetupRouter(
	cfg config.Config,
	store *session.Store,
	gateway *authgw.Gateway,
	pickups *registry.Registry,
	directory *centers.Directory,
	classifier *scanner.Classifier,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())

	// The browser client is served from a different origin and relies on
	// the auth service's cookie riding along.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	authHandler := &handlers.AuthHandler{Gateway: gateway}
	pickupHandler := &handlers.PickupHandler{Registry: pickups}
	centerHandler := &handlers.CenterHandler{Directory: directory}
	scannerHandler := &handlers.ScannerHandler{Classifier: classifier}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// === PUBLIC ROUTES ===

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/session", authHandler.Session)
		}

		public := apiV1.Group("/")
		{
			public.GET("/centers", centerHandler.GetCenters)
			public.POST("/scan", scannerHandler.IdentifyWaste)
		}

		// === PROTECTED ROUTES ===
		// The wastepicker workflow needs an authenticated session.

		pickupRoutes := apiV1.Group("/pickups")
		pickupRoutes.Use(middleware.RequireSession(store))
		{
			pickupRoutes.GET("/available", pickupHandler.GetAvailable)
			pickupRoutes.GET("/active", pickupHandler.GetActive)
			pickupRoutes.GET("/stats", pickupHandler.GetStats)
			pickupRoutes.POST("/", pickupHandler.CreatePickup)
			pickupRoutes.POST("/:id/accept", pickupHandler.AcceptPickup)
			pickupRoutes.PUT("/:id/status", pickupHandler.UpdateStatus)
			pickupRoutes.DELETE("/:id", pickupHandler.CancelPickup)
		}
	}

	return router
}
