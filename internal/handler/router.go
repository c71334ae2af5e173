package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tourism-api/internal/handler/api"
	"tourism-api/internal/handler/middleware"
	"tourism-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	TourReservations       *api.TourReservationHandler
	RestaurantReservations *api.RestaurantReservationHandler
	Ratings                *api.RatingHandler
	Stats                  *api.StatsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) error {
	if err := RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.NoRoute(middleware.NoRoute)
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/tours/:id/reservations", Handler: h.TourReservations.Book},
			{Method: http.MethodDelete, Path: "/tour-reservations/:id", Handler: h.TourReservations.Cancel},
			{Method: http.MethodGet, Path: "/users/:id/tour-reservations", Handler: h.TourReservations.ListByUser},

			{Method: http.MethodPost, Path: "/restaurants/:id/reservations", Handler: h.RestaurantReservations.Book},
			{Method: http.MethodGet, Path: "/restaurants/:id/reservations", Handler: h.RestaurantReservations.ListByRestaurant},
			{Method: http.MethodDelete, Path: "/restaurant-reservations/:id", Handler: h.RestaurantReservations.Cancel},
			{Method: http.MethodGet, Path: "/users/:id/restaurant-reservations", Handler: h.RestaurantReservations.ListByUser},

			{Method: http.MethodPost, Path: "/ratings", Handler: h.Ratings.Create},
		})

		owners := apiGroup.Group("/owners/:ownerId/restaurants")
		addRoutes(owners, []route{
			{Method: http.MethodGet, Path: "/ranking", Handler: h.Stats.Ranking},
			{Method: http.MethodGet, Path: "/:id/dashboard", Handler: h.Stats.Dashboard},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/guides/:id/tour-stats", Handler: h.Stats.GuideTours},
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
