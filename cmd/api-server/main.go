package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamal464/wissen-publication-group-sub000/internal/article"
	"github.com/kamal464/wissen-publication-group-sub000/internal/assets"
	"github.com/kamal464/wissen-publication-group-sub000/internal/auth"
	"github.com/kamal464/wissen-publication-group-sub000/internal/board"
	"github.com/kamal464/wissen-publication-group-sub000/internal/dashboard"
	"github.com/kamal464/wissen-publication-group-sub000/internal/events"
	"github.com/kamal464/wissen-publication-group-sub000/internal/journal"
	"github.com/kamal464/wissen-publication-group-sub000/internal/storage"
	"github.com/kamal464/wissen-publication-group-sub000/internal/upload"
	"github.com/kamal464/wissen-publication-group-sub000/pkg/database"
	"github.com/kamal464/wissen-publication-group-sub000/pkg/utils"
)

func main() {
	cfg := utils.Load()

	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	hub := events.NewHub()
	router.GET("/ws", events.WSHandler(hub))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbCfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"db_error":   err.Error(),
				"ws_clients": hub.Count(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"db":         "ok",
			"ws_clients": hub.Count(),
		})
	})

	rewriter := assets.NewRewriter(cfg.CDNBaseURL, cfg.Storage.BaseURL())

	// Public read path
	journalRepo := journal.NewRepo(db, rewriter)
	journalHandler := journal.NewHandler(journalRepo, hub)
	journalsPublic := router.Group("/journals")
	journalHandler.RegisterPublicRoutes(journalsPublic)

	articleRepo := article.NewRepo(db)
	articleHandler := article.NewHandler(articleRepo, journalRepo, hub)
	articleHandler.RegisterPublicRoutes(journalsPublic, router.Group("/articles"))

	boardRepo := board.NewRepo(db)
	boardHandler := board.NewHandler(boardRepo, hub)
	boardHandler.RegisterPublicRoutes(router.Group("/board-members"))

	// Auth
	tokenSvc := auth.TokenService{
		Secret:   []byte(cfg.Auth.JWTSecret),
		Issuer:   cfg.Auth.JWTIssuer,
		Duration: cfg.Auth.JWTDuration,
	}
	authRepo := auth.NewRepo(db)
	authHandler := auth.NewHandler(authRepo, tokenSvc)
	authHandler.RegisterRoutes(router.Group("/auth"))

	// Admin console (protected)
	admin := router.Group("/admin")
	admin.Use(auth.AuthMiddleware(tokenSvc, authRepo))

	journalHandler.RegisterAdminRoutes(admin.Group("/journals"))
	journalHandler.RegisterShortcodeRoutes(admin.Group("/shortcodes"))
	articleHandler.RegisterAdminRoutes(admin.Group("/articles"))
	boardHandler.RegisterAdminRoutes(admin.Group("/board-members"))

	dashRepo := dashboard.NewRepo(db)
	dashboard.NewHandler(dashRepo).RegisterRoutes(admin.Group("/dashboard"))

	uploader, err := storage.NewS3Uploader(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}
	upload.NewHandler(uploader, rewriter).RegisterRoutes(admin.Group("/uploads"))

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on :%s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
