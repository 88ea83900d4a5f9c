package main

import (
	"fmt"
	"log"
	"net/http"

	"fitlink/backend/internal/auth"
	"fitlink/backend/internal/config"
	"fitlink/backend/internal/database"
	"fitlink/backend/internal/handler"
	"fitlink/backend/internal/logging"
	"fitlink/backend/internal/service"
	"fitlink/backend/internal/social"
	"fitlink/backend/internal/store"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "fitlink/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

func newStore() store.Store {
	if config.AppConfig.StoreDriver == "memory" {
		log.Println("Using in-memory store (data is not persisted).")
		return store.NewMemoryStore()
	}
	db := database.Connect(config.AppConfig.DatabaseURL)
	return store.NewGormStore(db)
}

// @title           FitLink API
// @version         1.0
// @description     This is the API for the FitLink service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logging.Setup()

	st := newStore()

	graph := social.NewGraph(st)
	userService := service.NewUserService(st)
	activityService := service.NewActivityService(st, graph)
	exerciseTypeService := service.NewExerciseTypeService(st)

	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	activityHandler := handler.NewActivityHandler(activityService)
	friendHandler := handler.NewFriendHandler(graph)
	exerciseTypeHandler := handler.NewExerciseTypeHandler(exerciseTypeService)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("", userHandler.ListUsers)
			userRoutes.GET("/me", userHandler.GetMe)
			userRoutes.GET("/:id", userHandler.GetUser)
			userRoutes.PUT("/:id", userHandler.UpdateUser)
			userRoutes.DELETE("/:id", userHandler.DeleteUser)
			userRoutes.GET("/:id/activities", activityHandler.ListUserActivities)
			userRoutes.GET("/:id/activities/feed", activityHandler.FriendFeed)
		}

		// Activity routes (protected)
		activityRoutes := apiV1.Group("/activities")
		activityRoutes.Use(auth.AuthMiddleware())
		{
			activityRoutes.POST("", activityHandler.CreateActivity)
			activityRoutes.GET("/:id", activityHandler.GetActivity)
			activityRoutes.PUT("/:id", activityHandler.UpdateActivity)
			activityRoutes.DELETE("/:id", activityHandler.DeleteActivity)
		}

		// Friendship routes (protected)
		friendRoutes := apiV1.Group("/friends")
		friendRoutes.Use(auth.AuthMiddleware())
		{
			friendRoutes.GET("", friendHandler.ListFriends)
			friendRoutes.DELETE("/:id", friendHandler.RemoveFriend)
			friendRoutes.GET("/requests", friendHandler.ListRequests)
			friendRoutes.POST("/requests", friendHandler.SendRequest)
			friendRoutes.POST("/requests/:id/accept", friendHandler.AcceptRequest)
			friendRoutes.DELETE("/requests/:id", friendHandler.RejectRequest)
		}

		// Exercise type catalog (protected; writes are admin-only in the service)
		exerciseTypeRoutes := apiV1.Group("/exercise-types")
		exerciseTypeRoutes.Use(auth.AuthMiddleware())
		{
			exerciseTypeRoutes.GET("", exerciseTypeHandler.ListExerciseTypes)
			exerciseTypeRoutes.GET("/:id", exerciseTypeHandler.GetExerciseType)
			exerciseTypeRoutes.POST("", exerciseTypeHandler.CreateExerciseType)
			exerciseTypeRoutes.PUT("/:id", exerciseTypeHandler.UpdateExerciseType)
			exerciseTypeRoutes.DELETE("/:id", exerciseTypeHandler.DeleteExerciseType)
		}
	}

	addr := ":" + config.AppConfig.Port
	fmt.Printf("Server is running on %s\n", addr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", addr)
	log.Fatal(router.Run(addr))
}
