package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/api"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Wizard    *api.WizardHandler
	Booking   *api.BookingHandler
	Service   *api.ServiceHandler
	Category  *api.CategoryHandler
	Provider  *api.ProviderHandler
	User      *api.UserHandler
	Payment   *api.PaymentHandler
	AuditLog  *api.AuditLogHandler
	Dashboard *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics *middleware.HTTPMetrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, metrics)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics *middleware.HTTPMetrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Service.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Service.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Service.Availability},
			})

			adminOnly := services.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Service.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Service.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Service.Delete},
			})
		}

		categories := apiGroup.Group("/categories")
		{
			addRoutes(categories, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Category.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Category.Get},
			})

			adminOnly := categories.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Category.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Category.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Category.Delete},
			})
		}

		providers := apiGroup.Group("/providers")
		{
			addRoutes(providers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Provider.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Provider.Get},
			})

			adminOnly := providers.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Provider.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Provider.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Provider.Delete},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			wizard := bookings.Group("/wizard")
			addRoutes(wizard, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Wizard.Start},
				{Method: http.MethodGet, Path: "/:token", Handler: h.Wizard.Get},
				{Method: http.MethodPut, Path: "/:token/details", Handler: h.Wizard.UpdateDetails},
				{Method: http.MethodPost, Path: "/:token/next", Handler: h.Wizard.Next},
				{Method: http.MethodPost, Path: "/:token/back", Handler: h.Wizard.Back},
			})

			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{
					Method:  http.MethodPost,
					Path:    "/:id/complete",
					Handler: h.Booking.Complete,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleProvider)},
				},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleProvider))
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Payment.List},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get},
				{Method: http.MethodPost, Path: "", Handler: h.User.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.User.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.Delete},
				{Method: http.MethodPut, Path: "/:id/active", Handler: h.User.SetActive},
			})
		}

		auditLogs := apiGroup.Group("/audit-logs")
		auditLogs.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(auditLogs, []route{
				{Method: http.MethodGet, Path: "", Handler: h.AuditLog.List},
				{Method: http.MethodPost, Path: "", Handler: h.AuditLog.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.AuditLog.Delete},
				{Method: http.MethodPost, Path: "/bulk-delete", Handler: h.AuditLog.BulkDelete},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dashboard, []route{
				{
					Method:  http.MethodGet,
					Path:    "/admin",
					Handler: h.Dashboard.Admin,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
				},
				{
					Method:  http.MethodGet,
					Path:    "/provider",
					Handler: h.Dashboard.Provider,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleProvider)},
				},
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
