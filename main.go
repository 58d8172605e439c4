package main

import (
	"log"
	"strings"

	"api/config"
	"api/database"
	"api/middleware"
	"api/repository"
	"api/routes"

	_ "api/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Pageant Tabulation API
// @version 1.0
// @description Scoring and tabulation backend for a live pageant event. Judges authenticate with a PIN, submit per-criterion scores, and the results endpoint produces the ranked leaderboard.
// @BasePath /api
func main() {
	config.Load()

	db, err := database.InitDB()
	if err != nil {
		log.Fatal(err)
	}
	store := repository.NewGormStore(db)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if config.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(config.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	routes.Register(r, store)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	middleware.UpdateSystemMetrics()

	log.Printf("Server running on port %s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
