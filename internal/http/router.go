package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rathoremon/car-repair-sub000/internal/http/handlers"
	"github.com/rathoremon/car-repair-sub000/internal/http/middleware"
)

// NewRouter builds the HTTP routing table
func NewRouter(
	authHandlers *handlers.AuthHandlers,
	onboardingHandlers *handlers.OnboardingHandlers,
	authMW *middleware.AuthMW,
	casbinMW *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandlers.Register)
		auth.POST("/login", authHandlers.Login)
		auth.POST("/otp/verify", authHandlers.VerifyOtp)
	}

	protected := r.Group("/")
	protected.Use(authMW.WithJWT(), casbinMW.Enforce())
	{
		protected.GET("/auth/me", authHandlers.Me)
		protected.POST("/auth/set-password", authHandlers.SetPassword)
		protected.GET("/onboarding/draft", onboardingHandlers.GetDraft)
		protected.PUT("/onboarding/draft", onboardingHandlers.PutDraft)
	}

	return r
}
