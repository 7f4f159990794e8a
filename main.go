package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/IliaW/scraper-api/config"
	docs "github.com/IliaW/scraper-api/docs"
	"github.com/IliaW/scraper-api/handler"
	cacheClient "github.com/IliaW/scraper-api/internal/cache"
	"github.com/IliaW/scraper-api/internal/converter"
	"github.com/IliaW/scraper-api/internal/crawler"
	"github.com/IliaW/scraper-api/internal/persistence"
	"github.com/IliaW/scraper-api/internal/qa"
	"github.com/IliaW/scraper-api/internal/telemetry"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	cfg       *config.Config
	cache     cacheClient.CachedClient
	db        *sql.DB
	jobRepo   persistence.JobStorage
	qaRepo    persistence.QAPairStorage
	docRepo   persistence.DocumentStorage
	generator qa.PairGenerator
	metrics   *telemetry.MetricsProvider
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg = config.MustLoad()
	setupLogger()
	metrics = telemetry.SetupMetrics(context.Background(), cfg)
	defer metrics.Close()
	db = setupDatabase()
	defer closeDatabase()
	jobRepo = persistence.NewJobRepository(db)
	qaRepo = persistence.NewQAPairRepository(db)
	docRepo = persistence.NewDocumentRepository(db)
	cache = cacheClient.NewCachedClient(cfg.CacheSettings)
	defer cache.Close()
	generator = setupQaGenerator()
	slog.Info("starting application on port "+cfg.Port, slog.String("env", cfg.Env))

	port := fmt.Sprintf(":%v", cfg.Port)
	srv := &http.Server{
		Addr:    port,
		Handler: httpServer().Handler(),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			slog.Error("listen:", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("stopping server...")
	ctxT, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(ctxT)
	if errors.Is(err, context.DeadlineExceeded) {
		slog.Error("shutdown timeout exceeded")
		os.Exit(1)
	}
	slog.Info("server stopped.")
}

func httpServer() *gin.Engine {
	setupGinMod()
	r := gin.New()
	r.UseH2C = true
	r.Use(gin.Recovery())
	r.Use(setCORS())
	r.Use(limitBodySize())
	r.Use(setRequestId())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{SkipPaths: []string{"/ping", "/swagger"}}))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// the rate limiter is process-global; per-job configs share it so
	// the politeness bound holds across concurrent jobs
	limiter := crawler.NewBlockingLimiter(cfg.CrawlerSettings.RateLimit)
	robots := crawler.NewHttpRobotsPolicy(cache, cfg.CrawlerSettings.RobotsFetchTimeout,
		cfg.CrawlerSettings.OnRobotsLookupFailure)
	newScraper := func(crawlCfg *config.CrawlerConfig) crawler.Scraper {
		fetcher := crawler.NewFetcher(limiter, crawlCfg.FetchTimeout, crawlCfg.UserAgent)
		return crawler.NewWebScraper(crawlCfg, robots, fetcher, metrics.CrawlMetrics)
	}

	apiHandler := handler.NewScraperApiHandler(cfg, jobRepo, qaRepo, docRepo, generator,
		converter.NewDocumentConverter(cfg.ConverterSettings), newScraper, metrics.ApiMetrics,
		metrics.CrawlMetrics)
	api := r.Group(cfg.ApiUrlPath)
	api.POST("/scrape", apiHandler.ScrapeUrl)
	api.GET("/jobs", apiHandler.GetJobs)
	api.POST("/qa/generate/:job_id", apiHandler.GenerateQaPairs)
	api.GET("/qa/export/:job_id", apiHandler.ExportQaPairs)
	api.GET("/qa/:job_id", apiHandler.GetQaPairs)
	api.POST("/documents/convert/:job_id", apiHandler.ConvertJobContent)
	api.GET("/documents/download/:job_id/:format", apiHandler.DownloadDocument)

	docs.SwaggerInfo.Title = fmt.Sprintf("Scraper API (%s)", cfg.ServiceName)
	docs.SwaggerInfo.Description = "This API scrapes documentation websites, generates Q&A pairs from the " +
		"harvested text, and exports the content as documents."
	docs.SwaggerInfo.Version = cfg.Version
	docs.SwaggerInfo.BasePath = cfg.ApiUrlPath
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound,
			gin.H{"message": fmt.Sprintf("no route found for %s %s", c.Request.Method, c.Request.URL)})
	})

	return r
}

func setCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { //allow all origins and echoes back the caller domain
			return true
		},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "X-Forwarded-For",
			"X-CSRF-Token", "X-Max"},
		AllowCredentials: true,
		MaxAge:           cfg.CorsMaxAgeHours,
	})
}

func limitBodySize() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxBodySize*1024*1024)
	}
}

func setRequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader("X-Request-Id")
		if requestId == "" {
			requestId = uuid.New().String()
		}
		c.Header("X-Request-Id", requestId)
		c.Next()
	}
}

func setupQaGenerator() qa.PairGenerator {
	g, err := qa.NewGenerator(cfg.QaSettings, setupHttpClient())
	if err != nil {
		slog.Warn("qa generator is disabled.", slog.String("err", err.Error()))
		return nil
	}

	return g
}

func setupLogger() *slog.Logger {
	envLogLevel := strings.ToLower(cfg.LogLevel)
	var slogLevel slog.Level
	err := slogLevel.UnmarshalText([]byte(envLogLevel))
	if err != nil {
		log.Printf("encountenred log level: '%s'. The package does not support custom log levels", envLogLevel)
		slogLevel = slog.LevelDebug
	}
	log.Printf("slog level overwritten to '%v'", slogLevel)
	slog.SetLogLoggerLevel(slogLevel)

	replaceAttrs := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.SourceKey {
			source := a.Value.Any().(*slog.Source)
			source.File = filepath.Base(source.File)
		}
		return a
	}

	var logger *slog.Logger
	if strings.ToLower(cfg.LogType) == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource:   true,
			Level:       slogLevel,
			ReplaceAttr: replaceAttrs}))
	} else {
		logger = slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			AddSource:   true,
			Level:       slogLevel,
			ReplaceAttr: replaceAttrs,
			NoColor: func() bool {
				if cfg.Env == "local" {
					return false
				}
				return true
			}()}))
	}

	slog.SetDefault(logger)
	logger.Debug("debug messages are enabled.")

	return logger
}

func setupGinMod() {
	env := strings.ToLower(cfg.Env)
	if env == "dev" || env == "" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
}

func setupDatabase() *sql.DB {
	slog.Info("connecting to the database...")
	connStr := fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		cfg.DbSettings.User,
		cfg.DbSettings.Password,
		cfg.DbSettings.Host,
		cfg.DbSettings.Port,
		cfg.DbSettings.Name,
	)
	database, err := sql.Open("postgres", connStr)
	if err != nil {
		slog.Error("failed to establish database connection.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	database.SetConnMaxLifetime(cfg.DbSettings.ConnMaxLifetime)
	database.SetMaxOpenConns(cfg.DbSettings.MaxOpenConns)
	database.SetMaxIdleConns(cfg.DbSettings.MaxIdleConns)

	maxRetry := 6
	for i := 1; i <= maxRetry; i++ {
		slog.Info("ping the database.", slog.String("attempt", fmt.Sprintf("%d/%d", i, maxRetry)))
		pingErr := database.Ping()
		if pingErr != nil {
			slog.Error("not responding.", slog.String("err", pingErr.Error()))
			if i == maxRetry {
				slog.Error("failed to establish database connection.")
				os.Exit(1)
			}
			slog.Info(fmt.Sprintf("wait %d seconds", 5*i))
			time.Sleep(time.Duration(5*i) * time.Second)
		} else {
			break
		}
	}
	slog.Info("connected to the database!")

	return database
}

func closeDatabase() {
	slog.Info("closing database connection.")
	err := db.Close()
	if err != nil {
		slog.Error("failed to close database connection.", slog.String("err", err.Error()))
	}
}

func setupHttpClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        cfg.HttpClientSettings.MaxIdleConnections,
			MaxIdleConnsPerHost: cfg.HttpClientSettings.MaxIdleConnectionsPerHost,
			MaxConnsPerHost:     cfg.HttpClientSettings.MaxConnectionsPerHost,
			IdleConnTimeout:     cfg.HttpClientSettings.IdleConnectionTimeout,
			TLSHandshakeTimeout: cfg.HttpClientSettings.TlsHandshakeTimeout,
		},
		Timeout: cfg.HttpClientSettings.RequestTimeout,
	}
}
