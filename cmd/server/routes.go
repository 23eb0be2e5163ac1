package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"aeobro.backend/internal/interfaces/http/handlers"
	"aeobro.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	profileHandler      *handlers.ProfileHandler
	verificationHandler *handlers.VerificationHandler
	syndicationHandler  *handlers.SyndicationHandler
	authMiddleware      gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "aeobro-backend",
			"version": "0.2.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Profile routes (protected)
		profiles := v1.Group("/profiles")
		profiles.Use(d.authMiddleware)
		{
			profiles.POST("", middleware.IdempotencyMiddleware(), d.profileHandler.Create)
			profiles.GET("/me", d.profileHandler.GetMine)
			profiles.PUT("/me", d.profileHandler.Update)
		}

		// Verification routes (protected)
		verification := v1.Group("/verification")
		verification.Use(d.authMiddleware)
		{
			verification.POST("/domain/start", middleware.IdempotencyMiddleware(), d.verificationHandler.StartDomain)
			verification.POST("/domain/check", d.verificationHandler.CheckDomain)
			verification.POST("/domain/email/send", d.verificationHandler.SendDomainEmail)
			verification.POST("/platform/start", middleware.IdempotencyMiddleware(), d.verificationHandler.StartPlatform)
			verification.POST("/platform/oauth", middleware.IdempotencyMiddleware(), d.verificationHandler.VerifyOAuth)
			verification.POST("/platform/bio", d.verificationHandler.VerifyBio)
		}

		// Email confirm is reachable from a mail client, no auth
		v1.POST("/verification/domain/email/confirm", d.verificationHandler.ConfirmDomainEmail)
		v1.GET("/verification/domain/email/confirm", d.verificationHandler.ConfirmDomainEmail)

		// Platform account routes (protected)
		accounts := v1.Group("/platform-accounts")
		accounts.Use(d.authMiddleware)
		{
			accounts.GET("", d.verificationHandler.ListPlatformAccounts)
			accounts.DELETE("/:id", d.verificationHandler.DisconnectPlatformAccount)
		}

		// Public machine-readable feed
		v1.GET("/syndication/:slug", d.syndicationHandler.GetBySlug)
	}
}
