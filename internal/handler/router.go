package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"invoice-dashboard/internal/handler/api"
	"invoice-dashboard/internal/handler/middleware"
	"invoice-dashboard/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	invoiceHandler *api.InvoiceHandler,
	customerHandler *api.CustomerHandler,
	authMiddleware *middleware.AuthMiddleware,
	metrics *middleware.Metrics,
	loginLimiter *middleware.LoginLimiter,
) {
	setupMiddleware(engine, cfg, metrics)
	setupRoutes(engine, authHandler, invoiceHandler, customerHandler, authMiddleware, metrics, loginLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics *middleware.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	invoiceHandler *api.InvoiceHandler,
	customerHandler *api.CustomerHandler,
	authMiddleware *middleware.AuthMiddleware,
	metrics *middleware.Metrics,
	loginLimiter *middleware.LoginLimiter,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", metrics.Handler())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := engine.Group("/api/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login, Mw: []gin.HandlerFunc{loginLimiter.Middleware()}},
			{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
		})

		authRequired := auth.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
		})
	}

	dashboard := engine.Group("/dashboard")
	dashboard.Use(authMiddleware.RequireAuth())
	{
		addRoutes(dashboard, []route{
			{Method: http.MethodGet, Path: "/invoices", Handler: invoiceHandler.List},
			{Method: http.MethodPost, Path: "/invoices", Handler: invoiceHandler.Create},
			{Method: http.MethodGet, Path: "/invoices/:id", Handler: invoiceHandler.Get},
			{Method: http.MethodPut, Path: "/invoices/:id", Handler: invoiceHandler.Update},
			{Method: http.MethodDelete, Path: "/invoices/:id", Handler: invoiceHandler.Delete},
			{Method: http.MethodGet, Path: "/invoices/:id/edit", Handler: invoiceHandler.EditPage},
			{Method: http.MethodGet, Path: "/customers", Handler: customerHandler.List},
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
