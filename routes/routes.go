package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"library-backend/controllers"
	"library-backend/middleware"
	"library-backend/services"
)

// SetupAdminRouter registers the administrative surface: user listings and
// the full book catalog CRUD.
func SetupAdminRouter(r *gin.Engine, db *gorm.DB, service *services.LibraryService) *gin.Engine {
	userController := controllers.NewUserController(service)
	bookController := controllers.NewBookController(service)
	healthController := controllers.NewHealthController(db)

	r.Use(middleware.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", healthController.Check)

	api := r.Group("/api")
	{
		api.GET("/users", userController.List)
		api.GET("/user/:id", userController.Get)
		api.GET("/users/books", userController.WithBooks)

		api.GET("/books", bookController.List)
		api.POST("/books", bookController.Create)
		api.GET("/books/:id", bookController.Get)
		api.PUT("/books/:id", bookController.Update)
		api.DELETE("/books/:id", bookController.Delete)

		api.GET("/borrowed", bookController.Borrowed)
	}

	return r
}

// SetupPublicRouter registers the member-facing surface: registration, the
// available catalog, filtering, and the borrow/return workflow.
func SetupPublicRouter(r *gin.Engine, db *gorm.DB, service *services.LibraryService) *gin.Engine {
	userController := controllers.NewUserController(service)
	bookController := controllers.NewBookController(service)
	borrowController := controllers.NewBorrowController(service)
	healthController := controllers.NewHealthController(db)

	r.Use(middleware.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", healthController.Check)

	public := r.Group("/api/public")
	{
		public.POST("/user", userController.Register)
		public.GET("/books", bookController.Available)
		public.GET("/books/:id", bookController.Get)
		public.GET("/filter", bookController.Filter)
		public.PUT("/borrow", borrowController.Borrow)
		public.PUT("/return", borrowController.Return)
	}

	return r
}
