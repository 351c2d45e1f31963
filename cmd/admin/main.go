package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"library-backend/config"
	"library-backend/routes"
	"library-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	db, err := config.Open()
	if err != nil {
		log.Fatal("database setup failed: ", err)
	}

	service := services.NewLibraryService(db)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupAdminRouter(r, db, service)

	port := os.Getenv("ADMIN_PORT")
	if port == "" {
		port = "2324"
	}

	log.Println("admin API running at port " + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server failed: ", err)
	}
}
