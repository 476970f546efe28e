package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, catalogHandler *api.CatalogHandler, identityMiddleware *middleware.IdentityMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, catalogHandler, identityMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, catalogHandler *api.CatalogHandler, identityMiddleware *middleware.IdentityMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		{
			// Availability checks and quotes are anonymous; creating or
			// reading bookings needs a resolved user.
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/check", Handler: bookingHandler.CheckAvailability},
				{Method: http.MethodPost, Path: "/quote", Handler: bookingHandler.PreviewPrice},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
			})

			userRequired := bookings.Group("")
			userRequired.Use(identityMiddleware.RequireUser())
			addRoutes(userRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/courts", Handler: catalogHandler.ListCourts},
			{Method: http.MethodGet, Path: "/coaches", Handler: catalogHandler.ListCoaches},
			{Method: http.MethodGet, Path: "/equipment", Handler: catalogHandler.ListEquipment},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
