package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"hoaki-food-ordering/controllers"
	"hoaki-food-ordering/database"
	middleware "hoaki-food-ordering/middleware"
	"hoaki-food-ordering/repositories"
	routes "hoaki-food-ordering/routes"
	"hoaki-food-ordering/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	seedCatalog()

	router := gin.New()
	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	// Public API
	routes.UserRoutes(router)
	routes.FoodRoutes(router)

	// Authenticated API
	router.Use(middleware.Authentication())
	routes.ProtectedUserRoutes(router)
	routes.CartRoutes(router)
	routes.AddressRoutes(router)
	routes.OrderRoutes(router)

	controllers.StartEventPump()

	router.Run(":" + port)
}

// seedCatalog loads the starter menu on first run.
func seedCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	catalog := services.NewCatalogService(
		repositories.NewFoodRepository(database.Client),
		repositories.NewCategoryRepository(database.Client),
	)
	if err := catalog.SeedIfEmpty(ctx); err != nil {
		log.Println("catalog seeding failed:", err)
	}
}
