package handlers

import (
	"time"

	"github.com/dare2earn/d2e_backend/cmd/docs"
	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/dare2earn/d2e_backend/internal/middleware"
	"github.com/dare2earn/d2e_backend/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	services *portssvc.ServiceContainer,
) {
	r.Use(corsMiddleware(cfg))

	registerHomeRoutes(r, dbPool)

	// Public routes
	registerAuthRoutes(r, services)
	registerGoogleOAuthRoutes(r, services)
	registerCategoryRoutes(r, services)

	// Authenticated /api group plus the public dare reads
	protected := r.Group("/api", middleware.AuthMiddleware(services.Session))
	registerDareRoutes(r, protected, services)
	registerLedgerRoutes(protected, services)

	setupSwaggerRoutes(r, cfg)
}

// corsMiddleware allows the configured frontend origin, or any origin when
// none is configured.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.FrontendBaseURL != "" {
		corsCfg.AllowOrigins = []string{cfg.FrontendBaseURL}
	} else {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	return cors.New(corsCfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
