// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	authfeature "github.com/supplyaid/supplyaid-server/internal/app/features/auth"
	donationsfeature "github.com/supplyaid/supplyaid-server/internal/app/features/donations"
	gratitudefeature "github.com/supplyaid/supplyaid-server/internal/app/features/gratitude"
	healthfeature "github.com/supplyaid/supplyaid-server/internal/app/features/health"
	statusfeature "github.com/supplyaid/supplyaid-server/internal/app/features/status"
	suppliesfeature "github.com/supplyaid/supplyaid-server/internal/app/features/supplies"
	testimonialsfeature "github.com/supplyaid/supplyaid-server/internal/app/features/testimonials"
	volunteersfeature "github.com/supplyaid/supplyaid-server/internal/app/features/volunteers"
	credentials "github.com/supplyaid/supplyaid-server/internal/app/system/auth"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// Every API feature mounts under /api/v1. The root probe and /health sit
// outside the prefix because deploy tooling and the existing frontend hit
// them directly.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.SupplyAidMongoDatabase
	tokens := credentials.NewTokenIssuer(appCfg.JWTSecret, appCfg.JWTExpiry)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.SupplyAidMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Root probe polled by the existing frontend
	statusHandler := statusfeature.NewHandler(logger)
	r.Mount("/", statusfeature.Routes(statusHandler))

	authHandler := authfeature.NewHandler(db, tokens, logger)
	suppliesHandler := suppliesfeature.NewHandler(db, logger)
	donationsHandler := donationsfeature.NewHandler(db, logger)
	volunteersHandler := volunteersfeature.NewHandler(db, logger)
	gratitudeHandler := gratitudefeature.NewHandler(db, logger)
	testimonialsHandler := testimonialsfeature.NewHandler(db, logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/", authfeature.Routes(authHandler))
		api.Mount("/supplies", suppliesfeature.Routes(suppliesHandler))
		api.Mount("/donations", donationsfeature.Routes(donationsHandler))

		// Submission uses the singular legacy path; the rest are plural.
		api.Mount("/volunteer-application", volunteersfeature.ApplyRoutes(volunteersHandler))
		api.Mount("/volunteer-applications", volunteersfeature.Routes(volunteersHandler))

		api.Mount("/gratitude", gratitudefeature.Routes(gratitudeHandler))
		api.Mount("/testimonials", testimonialsfeature.Routes(testimonialsHandler))
	})

	return r, nil
}
