package app

import (
	"context"
	"fmt"

	"github.com/rathoremon/car-repair-sub000/domain"
	"github.com/rathoremon/car-repair-sub000/internal/config"
	"github.com/rathoremon/car-repair-sub000/internal/http/handlers"
	"github.com/rathoremon/car-repair-sub000/internal/http/middleware"
	"github.com/rathoremon/car-repair-sub000/internal/infrastructure/auth"
	"github.com/rathoremon/car-repair-sub000/internal/infrastructure/cache"
	"github.com/rathoremon/car-repair-sub000/internal/infrastructure/database"
	"github.com/rathoremon/car-repair-sub000/internal/infrastructure/identity"
	"github.com/rathoremon/car-repair-sub000/internal/infrastructure/notifications"
	"github.com/rathoremon/car-repair-sub000/internal/infrastructure/repositories"
	"github.com/rathoremon/car-repair-sub000/internal/services"
)

// Container wires infrastructure, services and handlers
type Container struct {
	Config *config.Config

	AuthService       domain.AuthService
	OnboardingService domain.OnboardingService

	AuthHandlers       *handlers.AuthHandlers
	OnboardingHandlers *handlers.OnboardingHandlers
	AuthMW             *middleware.AuthMW
	CasbinMW           *middleware.CasbinMW
}

// BuildContainer constructs the dependency graph from configuration
func BuildContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	accountRepo := repositories.NewAccountRepository(db)
	providerRepo := repositories.NewProviderProfileRepository(db)
	mechanicRepo := repositories.NewMechanicProfileRepository(db)

	hasher := auth.NewPasswordService()
	tokens := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)

	verifier, err := identity.NewFirebaseVerifier(ctx, cfg.FirebaseCredentials)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity verifier: %w", err)
	}

	notifier := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)
	draftStore := cache.NewRedisDraftStore(rdb.Client, cfg.DraftTTL)

	casbinSvc, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize authorization: %w", err)
	}
	if err := seedPolicies(casbinSvc); err != nil {
		return nil, fmt.Errorf("failed to seed authorization policies: %w", err)
	}

	authSvc := services.NewAuthService(
		accountRepo, providerRepo, mechanicRepo,
		hasher, tokens, verifier, notifier,
		cfg.DefaultCountryCode,
	)
	onboardingSvc := services.NewOnboardingService(draftStore, providerRepo)

	return &Container{
		Config:             cfg,
		AuthService:        authSvc,
		OnboardingService:  onboardingSvc,
		AuthHandlers:       handlers.NewAuthHandlers(authSvc),
		OnboardingHandlers: handlers.NewOnboardingHandlers(onboardingSvc),
		AuthMW:             middleware.NewAuthMW(tokens),
		CasbinMW:           middleware.NewCasbinMW(casbinSvc.E),
	}, nil
}

// seedPolicies installs the default route policies on first boot. An enforcer
// with any stored policy is left alone so operators can manage rules directly.
func seedPolicies(svc *auth.CasbinService) error {
	existing, err := svc.E.GetPolicy()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	policies := [][]string{
		{"role_customer", "/auth/me", "GET"},
		{"role_customer", "/auth/set-password", "POST"},
		{"role_provider", "/auth/me", "GET"},
		{"role_provider", "/auth/set-password", "POST"},
		{"role_provider", "/onboarding/draft", "(GET)|(PUT)"},
		{"role_mechanic", "/auth/me", "GET"},
		{"role_mechanic", "/auth/set-password", "POST"},
		{"role_admin", "/*", "(GET)|(POST)|(PUT)|(DELETE)"},
	}
	for _, p := range policies {
		if _, err := svc.E.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	return svc.E.SavePolicy()
}
