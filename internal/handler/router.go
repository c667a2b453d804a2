package handler

import (
	"net/http"

	"courtside/internal/domain/user"
	"courtside/internal/handler/api"
	"courtside/internal/handler/middleware"
	"courtside/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health      *api.HealthHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	Match       *api.MatchHandler
	Slot        *api.SlotHandler
	Metrics     http.Handler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)
	if h.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(h.Metrics))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// provider callbacks carry an HMAC signature instead of a bearer token
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/payments/webhook", Handler: h.Payment.Webhook},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())

		addRoutes(authed, []route{
			{Method: http.MethodGet, Path: "/courts/:id/slots", Handler: h.Slot.ListByCourt},
			{Method: http.MethodPost, Path: "/payments", Handler: h.Payment.Initiate},
		})

		reservations := authed.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
		})

		admin := authed.Group("/admin")
		admin.Use(authMiddleware.RequireRole(user.RoleSuperAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/reservations/:id/mark-paid", Handler: h.Reservation.MarkPaid},
		})

		matches := authed.Group("/matches")
		addRoutes(matches, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Match.Get},
			{
				Method:  http.MethodPost,
				Path:    "/:id/referee/offer",
				Handler: h.Match.OfferReferee,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOrganizer, user.RoleSuperAdmin)},
			},
			{
				Method:  http.MethodPost,
				Path:    "/:id/referee/accept",
				Handler: h.Match.AcceptReferee,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleReferee)},
			},
			{Method: http.MethodPost, Path: "/:id/start", Handler: h.Match.Start},
			{Method: http.MethodPost, Path: "/:id/events", Handler: h.Match.AppendEvent},
			{Method: http.MethodGet, Path: "/:id/events", Handler: h.Match.ListEvents},
			{Method: http.MethodPost, Path: "/:id/finalize", Handler: h.Match.Finalize},
			{Method: http.MethodGet, Path: "/:id/snapshot", Handler: h.Match.Snapshot},
			{Method: http.MethodPost, Path: "/:id/awards", Handler: h.Match.DecideAward},
			{Method: http.MethodGet, Path: "/:id/awards", Handler: h.Match.ListAwards},
		})
	}
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
