package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "investiq/internal/adapter/http"
	mw "investiq/internal/adapter/middleware"
	"investiq/internal/adapter/repository/postgres"
	"investiq/internal/config"
	investorDomain "investiq/internal/domain/investor"
	"investiq/internal/infrastructure/cache"
	"investiq/internal/infrastructure/db"
	"investiq/internal/infrastructure/llm"
	chatUC "investiq/internal/usecase/chat"
	investorUC "investiq/internal/usecase/investor"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	if err := gdb.AutoMigrate(&investorDomain.Investor{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := postgres.NewInvestorRepository(gdb)
	invUsecase := investorUC.NewUsecase(repo)

	llmClient := llm.NewClient(
		cfg.OpenAIBaseURL,
		cfg.OpenAIAPIKey,
		cfg.OpenAIModel,
		time.Duration(cfg.LLMTimeoutSecs)*time.Second,
	)
	chatUsecase := chatUC.NewUsecase(repo, llmClient)

	h := httpadp.NewHandler()
	ih := httpadp.NewInvestorHandler(invUsecase)
	ch := httpadp.NewChatHandler(chatUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))

	// routes
	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	api := e.Group("/api")
	if cfg.RedisAddr != "" {
		rdb, err := cache.Open(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Printf("redis unavailable, idempotency replay disabled: %v", err)
		} else {
			api.Use(mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
		}
	}
	api.POST("/investors", ih.Create)
	api.GET("/investors", ih.List)
	api.GET("/investors/:id", ih.Get)
	api.PUT("/investors/:id", ih.Update)
	api.DELETE("/investors/:id", ih.Delete)
	api.POST("/chat", ch.Ask)

	go func() {
		addr := ":" + cfg.AppPort
		log.Printf("listening on %s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
