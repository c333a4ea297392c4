package main

import (
	"log"

	"github.com/ecomall/ecomall-backend/config"
	"github.com/ecomall/ecomall-backend/gateway"
	"github.com/ecomall/ecomall-backend/routes"
	"github.com/ecomall/ecomall-backend/utils"
)

func main() {
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	config.InitDB()

	gateway.Init(cfg)

	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
