package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "founderdesk/docs"
	"founderdesk/pkg/airtable"
	"founderdesk/pkg/config"
	"founderdesk/pkg/dashboard"
	"founderdesk/pkg/magiclink"
	"founderdesk/pkg/roster"
	"founderdesk/pkg/sendemail"
	"founderdesk/pkg/token"
)

// @title           FounderDesk API
// @version         1.0
// @description     Magic-link authentication and team roster dashboard for startup-program members

// @BasePath  /

// @schemes   http https

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	store := airtable.NewClient(
		&http.Client{Timeout: 30 * time.Second},
		logger,
		cfg.AirtableAPIKey,
		cfg.AirtableBaseID,
	)

	var emailService sendemail.EmailService
	if cfg.EmailEnabled() {
		emailService = sendemail.NewEmailService(cfg.SendgridAPIKey, cfg.SenderEmail, cfg.SenderName)
	} else {
		log.Println("SendGrid not configured, magic links will not be emailed")
		emailService = sendemail.NewNoopEmailService()
	}

	startupsRepo := roster.NewAirtableStartupRepository(store, cfg.StartupsTable)
	membersRepo := roster.NewAirtableTeamMemberRepository(store, cfg.TeamMembersTable)
	tokenService := token.NewService(cfg.JWTSecret, nil)

	magicLinkService := magiclink.NewMagicLinkService(
		startupsRepo, membersRepo, tokenService, emailService, cfg.BaseURL, cfg.MagicLinkTTL)
	magicLinkHandler := magiclink.NewMagicLinkHandler(magicLinkService)

	dashboardService := dashboard.NewDashboardService(
		startupsRepo, membersRepo, tokenService, cfg.EditScope)
	dashboardHandler := dashboard.NewDashboardHandler(dashboardService)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.CORSCredentials,
		MaxAge:           12 * time.Hour,
	}))

	router.StaticFile("/", "./public/index.html")
	router.StaticFile("/styles.css", "./public/styles.css")

	magicLinkHandler.RegisterRoutes(router)
	dashboardHandler.RegisterRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
