package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campground/internal/handler/api"
	"campground/internal/handler/dto/request"
	"campground/internal/handler/middleware"
	"campground/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	blockHandler *api.BlockHandler,
	dashboardHandler *api.DashboardHandler,
	accessPassHandler *api.AccessPassHandler,
	paymentHandler *api.PaymentHandler,
	availabilityHandler *api.AvailabilityHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	if err := request.RegisterValidations(); err != nil {
		slog.Error("failed to register request validations", "error", err)
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, blockHandler, dashboardHandler, accessPassHandler, paymentHandler, availabilityHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	blockHandler *api.BlockHandler,
	dashboardHandler *api.DashboardHandler,
	accessPassHandler *api.AccessPassHandler,
	paymentHandler *api.PaymentHandler,
	availabilityHandler *api.AvailabilityHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability/sold-out", Handler: availabilityHandler.SoldOutDates},
			{Method: http.MethodGet, Path: "/extras", Handler: availabilityHandler.ListExtras},
			// Provider callbacks authenticate out of band (shared secret at
			// the edge), not with a user token.
			{Method: http.MethodPost, Path: "/payments/webhook", Handler: paymentHandler.Webhook},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListOwnBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/pass", Handler: accessPassHandler.IssuePass},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireOperator())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.ListAllBookings},
				{Method: http.MethodPost, Path: "/bookings/:id/pitch", Handler: bookingHandler.AssignPitch},
				{Method: http.MethodPost, Path: "/holds/expire", Handler: bookingHandler.ExpireHolds},
				{Method: http.MethodPost, Path: "/blocks", Handler: blockHandler.CreateBlock},
				{Method: http.MethodGet, Path: "/blocks", Handler: blockHandler.ListBlocks},
				{Method: http.MethodDelete, Path: "/blocks/:id", Handler: blockHandler.DeleteBlock},
				{Method: http.MethodGet, Path: "/dashboard", Handler: dashboardHandler.GetMetrics},
				{Method: http.MethodGet, Path: "/dashboard/pitches", Handler: dashboardHandler.GetFleetStatuses},
			})
		}
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
