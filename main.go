package main

import (
	"log"
	"net/http"
	"os"

	"newshub-cms/clients"
	"newshub-cms/config"
	"newshub-cms/handlers"
	"newshub-cms/middleware"
	"newshub-cms/repositories"
	"newshub-cms/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize external clients. They are constructed once here and
	// injected; nothing downstream lazily builds shared state.
	mailer := clients.NewSMTPMailer(config.LoadSMTP())

	var poster clients.SocialPoster
	socialCfg := config.LoadSocial()
	if socialCfg.ConsumerKey != "" {
		poster = clients.NewSocialPoster(socialCfg)
	} else {
		log.Println("Social credentials not configured, broadcasts disabled")
	}

	var events clients.EventPublisher
	if url := config.NATSURL(); url != "" {
		var err error
		events, err = clients.NewNATSPublisher(url, config.NATSSubject())
		if err != nil {
			log.Fatal("Failed to connect to NATS:", err)
		}
		defer events.Close()
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	publisherRepo := repositories.NewPublisherRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	resetTokenRepo := repositories.NewResetTokenRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, resetTokenRepo, mailer, config.LoadReset())
	notificationService := services.NewNotificationService(userRepo, mailer, poster, events)
	articleService := services.NewArticleService(articleRepo, publisherRepo, notificationService)
	publisherService := services.NewPublisherService(publisherRepo, userRepo)
	subscriptionService := services.NewSubscriptionService(userRepo, publisherRepo)
	newsletterService := services.NewNewsletterService(newsletterRepo, articleRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService, authService)
	publisherHandler := handlers.NewPublisherHandler(publisherService, subscriptionService, authService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService, authService)

	// Setup router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))
	router.Use(middleware.PrometheusMiddleware())

	// Health check and metrics
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Legacy JSON API surface
	api := router.Group("/api")
	{
		api.GET("/articles", articleHandler.ListArticlesAPI)
		api.POST("/articles/create", middleware.AuthMiddleware(), articleHandler.CreateArticleAPI)
	}

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/password-reset/request", authHandler.RequestPasswordReset)
			auth.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)
		}

		// Public article routes (approved only)
		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:id", articleHandler.GetPublicArticle)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", middleware.RequirePermission(services.PermAddArticle), articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/pending", middleware.RequirePermission(services.PermReviewArticles), articleHandler.GetPendingArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", middleware.RequirePermission(services.PermChangeArticle), articleHandler.UpdateArticle)
				articles.DELETE("/:id", middleware.RequirePermission(services.PermDeleteArticle), articleHandler.DeleteArticle)
				articles.POST("/:id/approve", middleware.RequirePermission(services.PermApproveArticle), articleHandler.ApproveArticle)
				articles.POST("/:id/reviews", middleware.RequirePermission(services.PermReviewArticles), articleHandler.SubmitReview)
				articles.GET("/:id/reviews", articleHandler.GetReviews)
			}

			// Publishers and subscriptions
			publishers := protected.Group("/publishers")
			{
				publishers.POST("", publisherHandler.BecomePublisher)
				publishers.GET("", publisherHandler.GetPublishers)
				publishers.GET("/:id", publisherHandler.GetPublisher)
				publishers.DELETE("/:id", publisherHandler.DeletePublisher)
				publishers.POST("/:id/editors", publisherHandler.AddEditor)
				publishers.POST("/:id/journalists", publisherHandler.AddJournalist)
				publishers.POST("/:id/subscribe", publisherHandler.SubscribeToPublisher)
			}
			protected.POST("/journalists/:id/subscribe", publisherHandler.SubscribeToJournalist)

			// Newsletters
			newsletters := protected.Group("/newsletters")
			{
				newsletters.POST("", middleware.RequirePermission(services.PermAddNewsletter), newsletterHandler.CreateNewsletter)
				newsletters.GET("", newsletterHandler.GetNewsletters)
				newsletters.GET("/:id", newsletterHandler.GetNewsletter)
				newsletters.PUT("/:id", middleware.RequirePermission(services.PermChangeNewsletter), newsletterHandler.UpdateNewsletter)
				newsletters.DELETE("/:id", middleware.RequirePermission(services.PermDeleteNewsletter), newsletterHandler.DeleteNewsletter)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
