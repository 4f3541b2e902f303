package app

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/rathoremon/car-repair-sub000/internal/config"
	httpserver "github.com/rathoremon/car-repair-sub000/internal/http"
)

// Run loads configuration, builds the container and serves HTTP
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := BuildContainer(context.Background(), cfg)
	if err != nil {
		return err
	}

	router := httpserver.NewRouter(
		container.AuthHandlers,
		container.OnboardingHandlers,
		container.AuthMW,
		container.CasbinMW,
	)

	log.Printf("auth service listening on :%s", cfg.Port)
	return router.Run(":" + cfg.Port)
}
