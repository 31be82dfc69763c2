package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/drivingschool-api/api/swagger"
	"github.com/noah-isme/drivingschool-api/internal/handler"
	internalmiddleware "github.com/noah-isme/drivingschool-api/internal/middleware"
	"github.com/noah-isme/drivingschool-api/internal/repository"
	"github.com/noah-isme/drivingschool-api/internal/seed"
	"github.com/noah-isme/drivingschool-api/internal/service"
	"github.com/noah-isme/drivingschool-api/pkg/cache"
	"github.com/noah-isme/drivingschool-api/pkg/config"
	"github.com/noah-isme/drivingschool-api/pkg/jobs"
	"github.com/noah-isme/drivingschool-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/drivingschool-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/drivingschool-api/pkg/middleware/requestid"
)

// @title Driving School API
// @version 1.0.0
// @description Students, attendance, class schedule and fleet of a driving school
// @BasePath /api/v1
// @schemes http

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	data, err := loadSeed(cfg.Seed)
	if err != nil {
		logr.Fatal("failed to load seed data", zap.Error(err))
	}
	db, err := repository.Open(data)
	if err != nil {
		logr.Fatal("failed to open in-memory store", zap.Error(err))
	}

	metricsSvc := service.NewMetricsService()

	// keep the client an untyped nil when caching is off
	var redisClient redis.UniversalClient
	if cfg.Dashboard.CacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		} else {
			redisClient = client
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, "drivingschool", logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, redisClient != nil)

	dataSvc := service.NewDataService(service.DataServiceParams{
		Students:          repository.NewStudentRepository(db),
		Attendance:        repository.NewAttendanceRepository(db),
		Schedule:          repository.NewScheduleRepository(db),
		Reference:         repository.NewReferenceRepository(db),
		Cache:             cacheSvc,
		Metrics:           metricsSvc,
		Validator:         service.NewValidator(),
		Logger:            logr,
		DefaultInstructor: cfg.Attendance.DefaultInstructor,
	})

	clock := service.Clock(time.Now)
	studentSvc := service.NewStudentService(dataSvc, logr)
	attendanceSvc := service.NewAttendanceService(dataSvc, clock, logr)
	scheduleSvc := service.NewScheduleService(dataSvc, cfg.Display.Locale, clock, logr)
	fleetSvc := service.NewFleetService(dataSvc, clock, logr)
	exportSvc := service.NewExportService(studentSvc, clock, logr)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Data:  dataSvc,
		Cache: cacheSvc,
		Config: service.DashboardServiceConfig{
			CacheTTL:       cfg.Dashboard.CacheTTL,
			RecentStudents: cfg.Dashboard.RecentStudents,
		},
		Now:    clock,
		Logger: logr,
	})

	var (
		pinger    handler.Pinger
		refresher internalmiddleware.Refresher
	)
	if redisClient != nil {
		pinger = cacheRepo
		warmer := service.NewDashboardWarmWorker(dashboardSvc, logr)
		queue := jobs.NewQueue[string]("dashboard-warm", warmer.Handle, jobs.QueueConfig{
			Workers: 1,
			Logger:  logr,
		})
		queue.Start(ctx)
		defer queue.Stop()
		refresher = service.NewDashboardRefresher(queue, clock, logr)
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/metrics"))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))
	r.Use(internalmiddleware.WithResponseMeta())
	r.Use(internalmiddleware.RefreshOnWrite(refresher))

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Students:   handler.NewStudentHandler(studentSvc, dataSvc, scheduleSvc),
		Hours:      handler.NewHoursHandler(studentSvc, exportSvc),
		Attendance: handler.NewAttendanceHandler(attendanceSvc, dataSvc),
		Schedule:   handler.NewScheduleHandler(scheduleSvc, dataSvc),
		Fleet:      handler.NewFleetHandler(fleetSvc),
		Dashboard:  handler.NewDashboardHandler(dashboardSvc),
		Metrics:    handler.NewMetricsHandler(metricsSvc, pinger),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "students", len(data.Students))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

func loadSeed(cfg config.SeedConfig) (seed.Data, error) {
	if cfg.File == "" {
		return seed.Default(), nil
	}
	return seed.LoadFile(cfg.File)
}
