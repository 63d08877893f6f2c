// Package router builds the gin engine and registers every route.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"youthcup_backend/internal/app/di"
	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/platform/http/handler"
	jwtmw "youthcup_backend/internal/platform/jwt"
	"youthcup_backend/internal/platform/metrics"
)

// Options configures the parts of the router that are not handlers.
type Options struct {
	AllowedOrigins []string
	UploadDir      string // served under UploadPath
	UploadPath     string
	HealthChecks   []handler.Check
}

// NewRouter registers all routes on a new engine.
func NewRouter(h *di.Handlers, opts Options) *gin.Engine {
	r := gin.Default()
	r.Use(metrics.Middleware())
	corsCfg := cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))

	// 認証不要
	// 導通確認用
	health := handler.Health(opts.HealthChecks...)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	if opts.UploadDir != "" && opts.UploadPath != "" {
		r.Static(opts.UploadPath, opts.UploadDir)
	}

	api := r.Group("/api")
	authRequired := jwtmw.AuthRequired(h.AccessTokens)
	adminOnly := jwtmw.RequireRole(string(entity.RoleAdmin))

	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.POST("/refresh-token", h.Auth.Refresh)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		auth.GET("/me", authRequired, h.Auth.Me)
		auth.POST("/change-password", authRequired, h.Auth.ChangePassword)
	}

	teams := api.Group("/teams")
	{
		teams.GET("", h.Teams.List)
		teams.GET("/:id", h.Teams.Get)
		teams.POST("", authRequired, h.Teams.Create)
		teams.PUT("/:id", authRequired, h.Teams.Update)
		teams.DELETE("/:id", authRequired, h.Teams.Delete)
		teams.POST("/:id/image", authRequired, h.Teams.UploadImage)
	}

	players := api.Group("/players")
	{
		players.GET("", h.Players.List)
		players.GET("/:id", h.Players.Get)
		players.POST("", authRequired, h.Players.Create)
		players.PUT("/:id", authRequired, h.Players.Update)
		players.DELETE("/:id", authRequired, h.Players.Delete)
	}

	games := api.Group("/games")
	{
		games.GET("", h.Games.List)
		games.GET("/:id", h.Games.Get)
		games.POST("", authRequired, h.Games.Create)
		games.PUT("/:id", authRequired, h.Games.Update)
		games.DELETE("/:id", authRequired, h.Games.Delete)
	}

	events := api.Group("/events")
	{
		events.GET("", h.Events.List)
		events.GET("/:id", h.Events.Get)
		events.POST("", authRequired, h.Events.Create)
		events.PUT("/:id", authRequired, h.Events.Update)
		events.DELETE("/:id", authRequired, h.Events.Delete)
	}

	api.GET("/standings", h.Standings.Get)

	// 商品の更新系は管理者のみ
	products := api.Group("/products")
	{
		products.GET("", h.Products.List)
		products.GET("/featured", h.Products.Featured)
		products.GET("/category/:category", h.Products.ByCategory)
		products.POST("", authRequired, adminOnly, h.Products.Create)
		products.PUT("/:id", authRequired, adminOnly, h.Products.Edit)
		products.PATCH("/:id", authRequired, adminOnly, h.Products.ToggleFeatured)
		products.DELETE("/:id", authRequired, adminOnly, h.Products.Delete)
	}

	payments := api.Group("/payments", authRequired)
	{
		payments.POST("/create-checkout-session", h.Checkout.CreateCheckoutSession)
		payments.GET("/orders", adminOnly, h.Checkout.Orders)
	}

	return r
}
