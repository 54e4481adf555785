package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/navalhaclub/booking-api/internal/config"
	dbpkg "github.com/navalhaclub/booking-api/internal/db"
	"github.com/navalhaclub/booking-api/internal/logging"
	"github.com/navalhaclub/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logging.NewLogger(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
