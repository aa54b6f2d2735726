package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/SscSPs/temple_admin_app/cmd/docs"
	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	portssvc "github.com/SscSPs/temple_admin_app/internal/core/ports/services"
	"github.com/SscSPs/temple_admin_app/internal/middleware"
	"github.com/SscSPs/temple_admin_app/internal/platform/config"
	"github.com/SscSPs/temple_admin_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouterOptions carries the optional cross-cutting pieces of the router.
type RouterOptions struct {
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer // Defaults to prometheus.DefaultGatherer
	Limiter  *limiter.Limiter    // Nil disables rate limiting
}

var (
	bindingOnce sync.Once
	bindingErr  error
)

// RegisterBindingValidators teaches gin's binding engine the decimal amount
// tags used on request DTOs. Safe to call more than once.
func RegisterBindingValidators() error {
	bindingOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			bindingErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		bindingErr = domain.RegisterDecimalType(v)
	})
	return bindingErr
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouterOptions,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	r.GET("/", getHome)

	setupAPIRoutes(r, cfg, services, opts)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouterOptions,
) {
	chain := []gin.HandlerFunc{middleware.RequestMetrics(opts.Metrics)}
	if opts.Limiter != nil {
		chain = append(chain, middleware.RateLimit(opts.Limiter))
	}
	chain = append(chain, middleware.AuthMiddleware(cfg.JWTSecret), middleware.TempleScope())

	api := r.Group("/api", chain...)

	RegisterTaxSettingsRoutes(api, services.TaxPolicy)
	RegisterTaxCalculationRoutes(api, services.TaxCalculation)
	RegisterTaxRegistrationRoutes(api, services.TaxRegistration)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
