package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"
)

func main() {
	_ = godotenv.Load()

	app := &App{
		IsProduction:   os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
		StartTime:      time.Now(),
		CookieMaxAge:   getEnvDuration("COOKIE_MAX_AGE", 24*time.Hour),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		LimiterMap:     make(map[string]*rate.Limiter),
	}
	logInfo("Starting Konektoj in %s mode", map[bool]string{true: "production", false: "development"}[app.IsProduction])

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/wordsdb.db"
	}
	store, err := openCategoryStore(dbPath, "data/categories.json")
	if err != nil {
		logWarn("Category store unavailable, serving the fallback puzzle: %v", err)
	} else {
		app.Store = store
		defer store.Close()
	}

	startServer(app.newRouter())
}

// newRouter builds the gin engine with all middleware and routes.
func (app *App) newRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	// Puzzle and progress responses change per day and per guess, so the
	// whole API is served no-store.
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())

	router.GET(RouteGame, app.gameHandler)
	router.POST(RouteCheckSelection, app.rateLimitMiddleware(), app.checkSelectionHandler)
	router.GET(RouteGameStatus, app.gameStatusHandler)
	router.GET(RouteDailyInfo, app.dailyInfoHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
