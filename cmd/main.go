package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"piercing-service/internal/config"
	"piercing-service/internal/database/minio"
	"piercing-service/internal/database/postgres"
	"piercing-service/internal/database/redis"
	"piercing-service/internal/event"
	"piercing-service/internal/handlers"
	"piercing-service/internal/phone"
	"piercing-service/internal/repository"
	"piercing-service/internal/rules"
	"piercing-service/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const reminderMarkerTTL = 48 * time.Hour

func setupLogging(logDir string) (*os.File, error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic: %v\n", r)
		}
	}()

	fmt.Println("Log directory:", logDir)
	err := os.MkdirAll(logDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func newSMSSender(cfg config.SMSConfig) phone.Sender {
	switch cfg.Provider {
	case "twilio":
		sender, err := phone.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
		if err != nil {
			log.Printf("Twilio unavailable, SMS disabled: %v", err)
			return phone.DisabledSender{}
		}
		return sender
	case "gateway":
		if cfg.GatewayHost == "" {
			log.Printf("SMS gateway host not set, SMS disabled")
			return phone.DisabledSender{}
		}
		return phone.NewGatewaySender(cfg.GatewayHost, cfg.GatewayPort, cfg.GatewayUsername, cfg.GatewayPassword)
	default:
		log.Printf("SMS provider %q not recognised, SMS disabled", cfg.Provider)
		return phone.DisabledSender{}
	}
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	return corsCfg
}

func main() {
	cfg := config.New()

	logFile, err := setupLogging(cfg.LogDir)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	log.Printf("Connecting to PostgreSQL with: host=%s, port=%s, user=%s, dbname=%s",
		cfg.PostgresCfg.Host, cfg.PostgresCfg.Port, cfg.PostgresCfg.Username, cfg.PostgresCfg.DBname)
	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("error connect to database: %s", err)
		// records are the point of the service; wait for the database
		postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}
	defer db.Close()

	var reminders repository.IReminderRepository
	redisClient, err := redis.NewRedisClient(cfg.RedisCfg)
	if err != nil {
		log.Printf("Redis unavailable, reminder de-duplication disabled: %v", err)
	} else {
		defer redisClient.Close()
		reminders = repository.NewReminderRepository(redisClient.GetClient(), reminderMarkerTTL)
	}

	var documents services.DocumentStore
	minioClient, err := minio.NewMinioClient(cfg.MinioCfg)
	if err != nil {
		log.Printf("MinIO unavailable, release documents stored inline: %v", err)
	} else {
		defer minioClient.Close()
		documents = minioClient
	}

	var publisher services.EventPublisher
	var piercingPublisher *event.PiercingPublisher
	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		log.Printf("RabbitMQ unavailable, piercing events disabled: %v", err)
	} else {
		defer rabbitConn.Close()
		piercingPublisher = event.NewPiercingPublisher(rabbitConn)
		publisher = piercingPublisher
	}

	engine := rules.DefaultEngine

	// repositories
	clientRepository := repository.NewClientRepository(db)
	piercingRepository := repository.NewPiercingRepository(db)

	// services
	releaseFormService := services.NewReleaseFormService(engine, clientRepository, documents, publisher)
	catalogService := services.NewCatalogService(engine)
	clientService := services.NewClientService(clientRepository, piercingRepository)
	notificationService := services.NewNotificationService(engine, newSMSSender(cfg.SMSCfg), reminders, publisher)
	reminderJob := services.NewDownsizeReminderJob(clientRepository, piercingRepository, notificationService)

	// handlers
	checks := map[string]handlers.DependencyCheck{
		"postgres": func(ctx context.Context) bool { return db.PingContext(ctx) == nil },
		"redis":    func(ctx context.Context) bool { return redisClient != nil && redisClient.Ping(ctx) == nil },
		"minio":    func(ctx context.Context) bool { return minioClient != nil && minioClient.Ping(ctx) == nil },
		"rabbitmq": func(context.Context) bool { return rabbitConn.IsOpen() },
	}
	details := map[string]handlers.HealthDetail{
		"reminder_job": func() any { return reminderJob.Stats() },
	}
	if piercingPublisher != nil {
		details["event_publisher"] = func() any { return piercingPublisher.HealthCheck() }
	}
	catalogHandler := handlers.NewCatalogHandler(catalogService, checks, details)
	releaseFormHandler := handlers.NewReleaseFormHandler(releaseFormService)
	clientHandler := handlers.NewClientHandler(clientService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg.CORSCfg)))

	// Register routes
	catalogHandler.RegisterRoutes(r)
	releaseFormHandler.RegisterRoutes(r)
	clientHandler.RegisterRoutes(r)
	notificationHandler.RegisterRoutes(r)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go reminderJob.Start(ctx)

	server := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%s", cfg.Port),
		Handler: r,
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting piercing-service on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
