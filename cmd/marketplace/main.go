package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	analyticsHandler "github.com/liquex/liquex/services/analytics/handler"
	analyticsHTTP "github.com/liquex/liquex/services/analytics/handler/http"
	analyticsUsecase "github.com/liquex/liquex/services/analytics/usecase"
	locationService "github.com/liquex/liquex/services/location"
	locationHandler "github.com/liquex/liquex/services/location/handler"
	locationHTTP "github.com/liquex/liquex/services/location/handler/http"
	locationRepo "github.com/liquex/liquex/services/location/repository"
	locationUsecase "github.com/liquex/liquex/services/location/usecase"
	"github.com/liquex/liquex/services/requests"
	"github.com/liquex/liquex/services/requests/gateway"
	"github.com/liquex/liquex/services/requests/handler"
	httpHandler "github.com/liquex/liquex/services/requests/handler/http"
	"github.com/liquex/liquex/services/requests/repository"
	"github.com/liquex/liquex/services/requests/usecase"

	"github.com/liquex/liquex/internal/pkg/config"
	"github.com/liquex/liquex/internal/pkg/database"
	"github.com/liquex/liquex/internal/pkg/health"
	"github.com/liquex/liquex/internal/pkg/logger"
	"github.com/liquex/liquex/internal/pkg/middleware"
	nsqpkg "github.com/liquex/liquex/internal/pkg/nsq"
)

const appName = "liquex-marketplace"

func main() {
	configs := config.InitConfig()

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Redis backs verification codes and the meetup spot geo index when
	// enabled; without it the demo runs fully in memory
	var redisClient *database.RedisClient
	if configs.Redis.Enabled {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
	}

	// Postgres archives completed and cancelled transactions when enabled
	var postgresClient *database.PostgresClient
	if configs.Database.Enabled {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		if err != nil {
			logger.Fatal("Failed to connect to PostgreSQL", logger.ErrorField(err))
		}
		defer postgresClient.Close()
	}

	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.ErrorField(err))
		}
		defer producer.Stop()
	}

	// Initialize repositories
	requestRepo := repository.NewMemoryRequestRepo()

	var transactionRepo requests.TransactionRepo = repository.NewMemoryTransactionRepo()
	if postgresClient != nil {
		transactionRepo = repository.NewPostgresTransactionRepo(postgresClient.GetDB())
	}

	var codeStore requests.CodeStore = repository.NewMemoryCodeStore()
	if redisClient != nil {
		codeStore = repository.NewRedisCodeStore(redisClient)
	}

	spots := locationRepo.DefaultMeetupSpots(configs.Match.GeohashPrecision)
	var spotRepo locationService.SpotRepo = locationRepo.NewMemorySpotRepo(spots)
	if redisClient != nil {
		spotRepo, err = locationRepo.NewRedisSpotRepo(ctx, redisClient, spots)
		if err != nil {
			logger.Fatal("Failed to seed meetup spot geo index", logger.ErrorField(err))
		}
	}

	// Initialize gateway
	requestGW := gateway.NewRequestGW(producer)

	// Initialize usecases
	requestUC := usecase.NewRequestUC(requestRepo, transactionRepo, codeStore, requestGW, configs)
	locationUC := locationUsecase.NewLocationUC(spotRepo)
	analyticsUC := analyticsUsecase.NewAnalyticsUC(requestRepo)

	// Initialize handlers
	requestsHandler := handler.NewHandler(
		httpHandler.NewRequestHandler(requestUC, configs),
		httpHandler.NewSessionHandler(requestUC, configs),
		configs,
	)
	meetupHandler := locationHandler.NewHandler(locationHTTP.NewMeetupHandler(locationUC), configs)
	statsHandler := analyticsHandler.NewHandler(analyticsHTTP.NewAnalyticsHandler(analyticsUC), configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	requestsHandler.RegisterRoutes(e)
	meetupHandler.RegisterRoutes(e)
	statsHandler.RegisterRoutes(e)

	logger.Info("Starting server",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port))

	if err := e.Start(fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)); err != nil {
		logger.Fatal("Failed to start server",
			logger.String("app", appName),
			logger.ErrorField(err))
	}
}
