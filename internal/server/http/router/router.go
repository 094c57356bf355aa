package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/server/http/handlers"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade, facade)

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.POST("/orders", orderHandler.Create)
	userAuth.GET("/orders", orderHandler.List)
	userAuth.GET("/orders/:id", orderHandler.Get)
	userAuth.POST("/orders/:id/cancel", orderHandler.Cancel)
	userAuth.POST("/orders/:id/proof", paymentHandler.Upload)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired(facade))
	admin.GET("/orders", adminHandler.Orders)
	admin.PATCH("/orders/:id/status", adminHandler.SetOrderStatus)
	admin.GET("/proofs/:id", adminHandler.Proof)
	admin.POST("/proofs/:id/approve", adminHandler.ApproveProof)
	admin.POST("/proofs/:id/reject", adminHandler.RejectProof)
	admin.GET("/stock/incidences", adminHandler.Incidences)
	admin.POST("/stock/sync", adminHandler.SyncStock)

	return engine
}
