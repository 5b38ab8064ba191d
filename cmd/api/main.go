package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/itzlabs/clientdesk/internal/config"
	dbpkg "github.com/itzlabs/clientdesk/internal/db"
	"github.com/itzlabs/clientdesk/internal/logx"
	"github.com/itzlabs/clientdesk/internal/middleware"
	"github.com/itzlabs/clientdesk/internal/redisdb"
	"github.com/itzlabs/clientdesk/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	log := logx.New("clientdesk-api")

	db := dbpkg.NewDB(cfg)
	rdb := redisdb.NewClient(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Error("server stopped", "err", err)
	}
}
