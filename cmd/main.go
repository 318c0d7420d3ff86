package main

import (
	"context"
	"fmt"
	"learning-service/internal/config"
	mongodb "learning-service/internal/database/mongo"
	redisdb "learning-service/internal/database/redis"
	"learning-service/internal/events"
	"learning-service/internal/handlers"
	"learning-service/internal/middleware"
	"learning-service/internal/repository"
	"learning-service/internal/service"
	"learning-service/pkg/discovery"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"
)

// setupLogging writes to a dated file under logDir, or stays on stderr when
// no directory is configured.
func setupLogging(logDir string) (*os.File, error) {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if logDir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	logFileName := fmt.Sprintf("log_%s.log", time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	return file, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.New()

	logFile, err := setupLogging(cfg.LogDir)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	mongoClient, db, err := mongodb.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongodb.Disconnect(mongoClient)

	userRepo := repository.NewUserRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	pageRepo := repository.NewPageRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	var limiter service.AttemptLimiter
	redisClient := redisdb.Connect(cfg)
	if redisClient != nil {
		defer redisClient.Close()
		limiter = repository.NewRedisRepository(redisClient)
	}

	publisher, err := events.NewEventPublisher(cfg.RabbitMQURI)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	var mail service.MailSender
	if cfg.SMTP.Host != "" {
		mail = service.NewMailService(cfg.SMTP)
	} else {
		log.Println("Warning: SMTP_HOST is empty, outbound mail is disabled")
	}

	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpired)
	userService := service.NewUserService(userRepo, mail, publisher)
	twoFactorService := service.NewTwoFactorService(userRepo, mail, limiter, cfg.TwoFactorCodeTTL, cfg.TwoFactorMaxAttempts)
	moduleService := service.NewModuleService(moduleRepo)
	pageService := service.NewPageService(pageRepo, moduleRepo)
	answerService := service.NewAnswerService(answerRepo, pageRepo, publisher)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	app := fiber.New(fiber.Config{
		AppName: cfg.ServiceName,
	})
	app.Use(recoverer.New())
	app.Use(logger.New())
	app.Use(cors.New())

	handlers.NewAuthHandler(userService, twoFactorService, jwtService).RegisterRoutes(app)
	handlers.NewUserHandler(userService).RegisterRoutes(app, authMiddleware)
	handlers.NewModuleHandler(moduleService, pageService).RegisterRoutes(app, authMiddleware)
	handlers.NewPageHandler(pageService).RegisterRoutes(app, authMiddleware)
	handlers.NewAnswerHandler(answerService).RegisterRoutes(app, authMiddleware)

	var registry *discovery.ServiceRegistry
	if cfg.ConsulAddress != "" {
		registry, err = discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Fatalf("Failed to create Consul client: %v", err)
		}
		if err := registry.Register(); err != nil {
			log.Fatalf("Failed to register with Consul: %v", err)
		}
	}

	shutdownChan := make(chan os.Signal, 1)
	doneChan := make(chan bool, 1)

	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
		doneChan <- true
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	if registry != nil {
		registry.Deregister()
	}

	if err := app.Shutdown(); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	<-doneChan
	log.Println("Server exited, goodbye!")
}
